package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"letcalc/internal/diag"
	"letcalc/internal/source"
)

func TestPrettyExcerptAndNotes(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.calc", []byte("let x = (1 + 2;\n"))

	bag := diag.NewBag(4)
	bag.Add(diag.NewError(diag.SynUnclosedParen, source.Span{File: fileID, Start: 14, End: 15}, "expected ')', found ';'").
		WithNote(source.Span{File: fileID, Start: 8, End: 9}, "'(' opened here"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{ShowNotes: true})

	want := strings.Join([]string{
		"test.calc:1:15: ERROR SYN2006: expected ')', found ';'",
		" 1 | let x = (1 + 2;",
		"   |               ^",
		"test.calc:1:9: note '(' opened here",
		" 1 | let x = (1 + 2;",
		"   |         ^",
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Fatalf("unexpected output:\nwant:\n%s\ngot:\n%s", want, got)
	}
}

func TestPrettyUnderlinesWholeSpan(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("t.calc", []byte("let y = 10 / 0;"))

	bag := diag.NewBag(1)
	bag.Add(diag.NewError(diag.EvalDivisionByZero, source.Span{File: fileID, Start: 8, End: 14}, "division by zero"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})
	if !strings.Contains(buf.String(), "   |         ^~~~~~\n") {
		t.Fatalf("expected a 6-column underline, got:\n%s", buf.String())
	}
}

func TestPrettyWideCharacters(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("t.calc", []byte("x = 世 @;"))

	bag := diag.NewBag(1)
	// "x = 世 " is 8 bytes wide but occupies 7 columns.
	bag.Add(diag.NewError(diag.LexUnknownChar, source.Span{File: fileID, Start: 8, End: 9}, "unknown character '@'"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})
	if !strings.Contains(buf.String(), "   |        ^\n") {
		t.Fatalf("caret must account for double-width runes, got:\n%s", buf.String())
	}
}

func TestPrettyContextLines(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("t.calc", []byte("let a = 1;\nlet b = 2;\nlet c = q;\n"))

	bag := diag.NewBag(1)
	bag.Add(diag.NewError(diag.EvalUndefinedVariable, source.Span{File: fileID, Start: 30, End: 31}, "undefined variable 'q'"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Context: 1})
	out := buf.String()
	if !strings.Contains(out, " 2 | let b = 2;\n 3 | let c = q;\n") {
		t.Fatalf("expected one line of context, got:\n%s", out)
	}
	if strings.Contains(out, "let a") {
		t.Fatalf("context must be limited to one line, got:\n%s", out)
	}
}

func TestPathModes(t *testing.T) {
	fs := source.NewFileSetWithBase("/home/user/project")
	fileID := fs.Add("/home/user/project/src/test.calc", []byte("1 @ 2;"), 0)

	bag := diag.NewBag(1)
	bag.Add(diag.NewError(diag.LexUnknownChar, source.Span{File: fileID, Start: 2, End: 3}, "unknown character '@'"))

	tests := []struct {
		mode PathMode
		want string
	}{
		{PathModeAbsolute, "/home/user/project/src/test.calc:1:3:"},
		{PathModeRelative, "src/test.calc:1:3:"},
		{PathModeBasename, "test.calc:1:3:"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		Pretty(&buf, bag, fs, PrettyOpts{PathMode: tt.mode})
		if !strings.HasPrefix(buf.String(), tt.want) {
			t.Errorf("mode %d: expected prefix %q, got:\n%s", tt.mode, tt.want, buf.String())
		}
	}
}

func TestPathModeAutoShortensLongPaths(t *testing.T) {
	fs := source.NewFileSetWithBase("/elsewhere")
	fileID := fs.Add("/very/long/absolute/path/to/some/nested/directory/file.calc", []byte("@"), 0)

	bag := diag.NewBag(1)
	bag.Add(diag.NewError(diag.LexUnknownChar, source.Span{File: fileID, Start: 0, End: 1}, "unknown character '@'"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})
	if !strings.HasPrefix(buf.String(), "file.calc:1:1:") {
		t.Fatalf("expected basename, got:\n%s", buf.String())
	}
}
