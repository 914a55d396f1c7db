package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"letcalc/internal/diag"
	"letcalc/internal/observ"
	"letcalc/internal/source"
	"letcalc/internal/trace"
)

// SourceExt is the extension of letcalc programs.
const SourceExt = ".calc"

// ListSourceFiles возвращает отсортированный список всех *.calc файлов в директории.
func ListSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, SourceExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// DirOptions configures RunDir.
type DirOptions struct {
	RunOptions
	Jobs     int          // <=0 → GOMAXPROCS
	Progress ProgressSink // may be nil
}

// RunDir evaluates every *.calc file under dir concurrently. Each file gets
// its own lexer, Evaluator and Store; files share only the FileSet, which is
// filled before any worker starts. Results keep the sorted file order.
// A file that fails (I/O or language error) does not stop the others; only
// cancellation of ctx does.
func RunDir(ctx context.Context, dir string, opts DirOptions) (*source.FileSet, []*RunResult, error) {
	files, err := ListSourceFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	tr := trace.FromContext(ctx)
	span := trace.Begin(tr, trace.ScopeDriver, "dir", trace.ParentSpan(ctx)).
		WithExtra("dir", dir).
		WithExtra("files", strconv.Itoa(len(files)))
	defer span.End("")
	ctx = trace.WithParent(ctx, span.ID())

	for _, path := range files {
		emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusQueued})
	}

	// Предзагрузка: FileSet не потокобезопасен на запись
	fileIDs := make([]source.FileID, len(files))
	loadErrs := make([]error, len(files))
	for i, path := range files {
		fileIDs[i], loadErrs[i] = fileSet.Load(path)
		if loadErrs[i] != nil {
			// пустая заглушка, чтобы у IO-диагностики был файл для span
			fileIDs[i] = fileSet.AddVirtual(path, nil)
		}
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	results := make([]*RunResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			if loadErrs[i] != nil {
				results[i] = loadFailure(fileSet, fileIDs[i], loadErrs[i], opts.MaxDiagnostics)
				emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusError, Err: loadErrs[i]})
				return nil
			}
			emit(opts.Progress, Event{File: path, Stage: StageEval, Status: StatusWorking})
			res := evaluate(gctx, fileSet, fileIDs[i], opts.RunOptions, observ.NewTimer())
			results[i] = res

			status := StatusDone
			switch {
			case res.Failed():
				status = StatusError
			case res.Cached:
				status = StatusCached
			}
			emit(opts.Progress, Event{File: path, Stage: StageEval, Status: status, Err: res.Err, Elapsed: time.Since(start)})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

func loadFailure(fileSet *source.FileSet, stub source.FileID, err error, maxDiagnostics int) *RunResult {
	bag := diag.NewBag(maxDiagnostics)
	bag.Add(diag.NewError(diag.IOLoadFileError, source.At(stub, 0), err.Error()))
	return &RunResult{
		Path:    fileSet.Get(stub).Path,
		FileSet: fileSet,
		Bag:     bag,
		Err:     err,
	}
}
