package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"letcalc/internal/source"
	"letcalc/internal/token"
)

func TestFormatTokens(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("t.calc", []byte("x;"))
	tokens := []token.Token{
		{Kind: token.Ident, Span: source.Span{File: id, Start: 0, End: 1}, Text: "x"},
		{Kind: token.Semicolon, Span: source.Span{File: id, Start: 1, End: 2}, Text: ";"},
		{Kind: token.EOF, Span: source.At(id, 2)},
	}
	id2 := fs.AddVirtual("u.calc", []byte("let a = 1 + @"))
	classes := map[string]token.Token{
		"keyword":  {Kind: token.KwLet, Span: source.Span{File: id2, Start: 0, End: 3}, Text: "let"},
		"ident":    {Kind: token.Ident, Span: source.Span{File: id2, Start: 4, End: 5}, Text: "a"},
		"punct":    {Kind: token.Assign, Span: source.Span{File: id2, Start: 6, End: 7}, Text: "="},
		"literal":  {Kind: token.Number, Span: source.Span{File: id2, Start: 8, End: 9}, Text: "1"},
		"operator": {Kind: token.Plus, Span: source.Span{File: id2, Start: 10, End: 11}, Text: "+"},
		"invalid":  {Kind: token.Invalid, Span: source.Span{File: id2, Start: 12, End: 13}, Text: "@"},
		"eof":      {Kind: token.EOF, Span: source.At(id2, 13)},
	}
	for want, tok := range classes {
		if got := tokenClass(tok); got != want {
			t.Errorf("%v: class %q, want %q", tok.Kind, got, want)
		}
	}

	var pretty bytes.Buffer
	if err := FormatTokensPretty(&pretty, tokens, fs); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(pretty.String()), "\n")
	if len(lines) != 3 || !strings.Contains(lines[0], `Ident`) || !strings.Contains(lines[0], `ident`) ||
		!strings.Contains(lines[0], `"x"`) ||
		!strings.HasSuffix(lines[2], "at 1:3-1:3") {
		t.Fatalf("unexpected pretty output:\n%s", pretty.String())
	}

	var js bytes.Buffer
	if err := FormatTokensJSON(&js, tokens); err != nil {
		t.Fatal(err)
	}
	var out []TokenOutput
	if err := json.Unmarshal(js.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if len(out) != 3 || out[1].Kind != "Semicolon" || out[1].Class != "punct" || out[2].Text != "" {
		t.Fatalf("unexpected json %+v", out)
	}
}

func TestFormatVars(t *testing.T) {
	var buf bytes.Buffer
	vars := map[string]int64{"x": 33, "total": -5}
	if err := FormatVarsPretty(&buf, []string{"total", "x"}, vars, false); err != nil {
		t.Fatal(err)
	}
	want := "total = -5\nx     = 33\n"
	if buf.String() != want {
		t.Fatalf("got:\n%q\nwant:\n%q", buf.String(), want)
	}

	buf.Reset()
	if err := FormatVarsPretty(&buf, nil, nil, false); err != nil || buf.String() != "(no variables)\n" {
		t.Fatalf("unexpected empty output %q", buf.String())
	}

	buf.Reset()
	if err := FormatVarsJSON(&buf, []VarsOutput{{File: "a.calc", Statements: 0}}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"vars": {}`) {
		t.Fatalf("nil vars must encode as an empty object:\n%s", buf.String())
	}
}
