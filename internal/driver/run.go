package driver

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"letcalc/internal/diag"
	"letcalc/internal/eval"
	"letcalc/internal/lexer"
	"letcalc/internal/observ"
	"letcalc/internal/source"
	"letcalc/internal/trace"
)

// RunOptions configures one program run.
type RunOptions struct {
	MaxDepth       int          // eval.Options.MaxDepth
	MaxDiagnostics int          // limit for the diagnostic bag
	Cache          *ResultCache // nil disables caching
}

// RunResult is the outcome of one program run.
type RunResult struct {
	Path       string
	FileSet    *source.FileSet
	File       *source.File // nil when the file could not be loaded
	Bag        *diag.Bag
	Vars       map[string]int64
	Names      []string // sorted keys of Vars
	Statements int
	Err        error // first fatal error, usually *eval.Error
	Cached     bool
	Timer      *observ.Timer
}

// Failed reports whether the run stopped on an error.
func (r *RunResult) Failed() bool {
	return r.Err != nil || (r.Bag != nil && r.Bag.HasErrors())
}

// RunSource evaluates an in-memory program.
func RunSource(ctx context.Context, name string, src []byte, opts RunOptions) *RunResult {
	fs := source.NewFileSet()
	timer := observ.NewTimer()
	idx := timer.Begin("load")
	id := fs.AddVirtual(name, src)
	timer.End(idx, "")
	return evaluate(ctx, fs, id, opts, timer)
}

// RunFile loads path and evaluates it. Only I/O failures are returned as
// error; language errors end up in RunResult.Err and RunResult.Bag.
func RunFile(ctx context.Context, path string, opts RunOptions) (*RunResult, error) {
	fs := source.NewFileSet()
	timer := observ.NewTimer()
	idx := timer.Begin("load")
	id, err := fs.Load(path)
	timer.End(idx, path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return evaluate(ctx, fs, id, opts, timer), nil
}

func evaluate(ctx context.Context, fs *source.FileSet, id source.FileID, opts RunOptions, timer *observ.Timer) *RunResult {
	file := fs.Get(id)
	tr := trace.FromContext(ctx)
	span := trace.Begin(tr, trace.ScopeDriver, "run", trace.ParentSpan(ctx)).WithExtra("file", file.Path)

	res := &RunResult{
		Path:    file.Path,
		FileSet: fs,
		File:    file,
		Bag:     diag.NewBag(opts.MaxDiagnostics),
		Timer:   timer,
	}
	reporter := diag.NewDedupReporter(diag.BagReporter{Bag: res.Bag})

	key := cacheKey(file.Hash, opts.MaxDepth)
	if opts.Cache != nil {
		idx := timer.Begin("cache")
		hit, ok, err := opts.Cache.Get(key)
		timer.End(idx, "")
		if err != nil {
			reporter.Report(diag.IOCacheError, diag.SevWarning, source.At(id, 0), err.Error(), nil)
		}
		if ok {
			res.fromCache(hit)
			span.WithExtra("cached", "true").End("")
			return res
		}
	}

	idx := timer.Begin("eval")
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	ev, err := eval.New(lx, eval.Options{
		Reporter: reporter,
		Tracer:   tr,
		Parent:   span.ID(),
		MaxDepth: opts.MaxDepth,
	})
	if err == nil {
		err = ev.Run()
		res.Vars = ev.Vars().Snapshot()
		res.Names = ev.Vars().Names()
		res.Statements = ev.Statements()
	}
	res.Err = err
	timer.End(idx, strconv.Itoa(res.Statements)+" statements")

	if opts.Cache != nil && !res.Failed() {
		if perr := opts.Cache.Put(key, res.toCache()); perr != nil {
			reporter.Report(diag.IOCacheError, diag.SevWarning, source.At(id, 0), perr.Error(), nil)
		}
	}

	res.Bag.Sort()
	if res.Err != nil {
		span.WithExtra("error", res.Err.Error())
	}
	span.WithExtra("vars", strconv.Itoa(len(res.Names))).End("")
	return res
}

func (r *RunResult) toCache() *CachedRun {
	run := &CachedRun{
		Path:       r.Path,
		Names:      r.Names,
		Values:     make([]int64, len(r.Names)),
		Statements: r.Statements,
		Created:    time.Now().UTC(),
	}
	for i, name := range r.Names {
		run.Values[i] = r.Vars[name]
	}
	return run
}

func (r *RunResult) fromCache(run *CachedRun) {
	r.Cached = true
	r.Names = run.Names
	r.Statements = run.Statements
	r.Vars = make(map[string]int64, len(run.Names))
	for i, name := range run.Names {
		r.Vars[name] = run.Values[i]
	}
}
