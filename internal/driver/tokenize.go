package driver

import (
	"context"
	"fmt"

	"letcalc/internal/diag"
	"letcalc/internal/lexer"
	"letcalc/internal/source"
	"letcalc/internal/token"
	"letcalc/internal/trace"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token // включая завершающий EOF
	Bag     *diag.Bag
}

// Tokenize loads path and scans it to EOF. Unknown characters do not stop
// scanning; they show up as Invalid tokens plus LEX diagnostics.
func Tokenize(ctx context.Context, path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return tokenizeFile(ctx, fs, fileID, maxDiagnostics), nil
}

// TokenizeSource scans an in-memory program.
func TokenizeSource(ctx context.Context, name string, src []byte, maxDiagnostics int) *TokenizeResult {
	fs := source.NewFileSet()
	return tokenizeFile(ctx, fs, fs.AddVirtual(name, src), maxDiagnostics)
}

func tokenizeFile(ctx context.Context, fs *source.FileSet, id source.FileID, maxDiagnostics int) *TokenizeResult {
	file := fs.Get(id)
	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "lex", trace.ParentSpan(ctx)).WithExtra("file", file.Path)

	bag := diag.NewBag(maxDiagnostics)
	lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})

	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	span.WithExtra("tokens", fmt.Sprint(len(tokens))).End("")

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}
}
