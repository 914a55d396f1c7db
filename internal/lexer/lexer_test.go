package lexer_test

import (
	"fmt"
	"strings"
	"testing"

	"letcalc/internal/diag"
	"letcalc/internal/lexer"
	"letcalc/internal/source"
	"letcalc/internal/testkit"
	"letcalc/internal/token"
)

// testReporter собирает все диагностики, полученные от лексера
type testReporter struct {
	diagnostics []diag.Diagnostic
}

// Report реализует интерфейс diag.Reporter
func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
	})
}

// HasErrors возвращает true, если были зарегистрированы ошибки
func (r *testReporter) HasErrors() bool {
	for _, d := range r.diagnostics {
		if d.Severity == diag.SevError {
			return true
		}
	}
	return false
}

// ErrorMessages возвращает список сообщений об ошибках
func (r *testReporter) ErrorMessages() []string {
	messages := make([]string, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		messages = append(messages, fmt.Sprintf("[%s] %s: %s", d.Code.ID(), d.Severity, d.Message))
	}
	return messages
}

// makeTestLexer создаёт лексер для тестовой строки
func makeTestLexer(input string) (*lexer.Lexer, *testReporter) {
	fs := source.NewFileSet()
	fileID := fs.Add("test.calc", []byte(input), source.FileVirtual)
	file := fs.Get(fileID)

	reporter := &testReporter{}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	return lx, reporter
}

// collectAllTokens собирает все токены до EOF включительно
func collectAllTokens(lx *lexer.Lexer) []token.Token {
	tokens := make([]token.Token, 0)
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens
}

// expectTokens проверяет последовательность видов токенов (без EOF)
func expectTokens(t *testing.T, input string, expected []token.Kind) []token.Token {
	t.Helper()
	lx, reporter := makeTestLexer(input)
	tokens := collectAllTokens(lx)
	tokens = tokens[:len(tokens)-1]

	if len(tokens) != len(expected) {
		t.Fatalf("Expected %d tokens, got %d for input %q\nTokens: %s\nErrors: %v",
			len(expected), len(tokens), input, tokensToString(tokens), reporter.ErrorMessages())
	}
	for i, want := range expected {
		if tokens[i].Kind != want {
			t.Errorf("Token %d: expected %v, got %v (text %q)", i, want, tokens[i].Kind, tokens[i].Text)
		}
	}
	return tokens
}

func tokensToString(tokens []token.Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = fmt.Sprintf("%v(%q)", tok.Kind, tok.Text)
	}
	return strings.Join(parts, " ")
}

func TestLexer_LetStatement(t *testing.T) {
	tokens := expectTokens(t, "let x = 3 + 5 * (10 - 4);", []token.Kind{
		token.KwLet, token.Ident, token.Assign, token.Number, token.Plus,
		token.Number, token.Star, token.LParen, token.Number, token.Minus,
		token.Number, token.RParen, token.Semicolon,
	})
	texts := []string{"let", "x", "=", "3", "+", "5", "*", "(", "10", "-", "4", ")", ";"}
	for i, want := range texts {
		if tokens[i].Text != want {
			t.Errorf("token %d text = %q, want %q", i, tokens[i].Text, want)
		}
	}
	if tokens[8].Span.Start != 17 || tokens[8].Span.End != 19 {
		t.Errorf("unexpected span for '10': %v", tokens[8].Span)
	}
}

func TestLexer_Operators(t *testing.T) {
	expectTokens(t, "+-*/()=;", []token.Kind{
		token.Plus, token.Minus, token.Star, token.Slash,
		token.LParen, token.RParen, token.Assign, token.Semicolon,
	})
}

func TestKeywords_ExactMatchOnly(t *testing.T) {
	cases := []struct {
		input string
		kind  token.Kind
	}{
		{"let", token.KwLet},
		{"Let", token.Ident},
		{"LET", token.Ident},
		{"lets", token.Ident},
		{"_let", token.Ident},
	}
	for _, tc := range cases {
		tokens := expectTokens(t, tc.input, []token.Kind{tc.kind})
		if tokens[0].Text != tc.input {
			t.Errorf("text = %q, want %q", tokens[0].Text, tc.input)
		}
	}
}

func TestIdentifiers_NoDigits(t *testing.T) {
	tokens := expectTokens(t, "x1 foo_bar _", []token.Kind{
		token.Ident, token.Number, token.Ident, token.Ident,
	})
	if tokens[0].Text != "x" || tokens[1].Text != "1" {
		t.Fatalf("digits must end an identifier: %s", tokensToString(tokens))
	}
	if tokens[2].Text != "foo_bar" || tokens[3].Text != "_" {
		t.Fatalf("unexpected identifiers: %s", tokensToString(tokens))
	}
}

func TestNumbers_LeadingZerosKept(t *testing.T) {
	tokens := expectTokens(t, "007 0", []token.Kind{token.Number, token.Number})
	if tokens[0].Text != "007" || tokens[1].Text != "0" {
		t.Fatalf("unexpected number texts: %s", tokensToString(tokens))
	}
}

func TestLexer_Whitespace(t *testing.T) {
	inputs := []string{"", "   ", "\t\n\r\n", "\f\v", "  　"}
	for _, input := range inputs {
		lx, reporter := makeTestLexer(input)
		tok := lx.Next()
		if tok.Kind != token.EOF {
			t.Errorf("input %q: expected EOF, got %v", input, tok.Kind)
		}
		if tok.Text != "" {
			t.Errorf("input %q: EOF must have empty text", input)
		}
		if reporter.HasErrors() {
			t.Errorf("input %q: unexpected errors %v", input, reporter.ErrorMessages())
		}
	}
	expectTokens(t, " let x ;  \n\t", []token.Kind{token.KwLet, token.Ident, token.Semicolon})
}

func TestLexer_EOFIsIdempotent(t *testing.T) {
	lx, _ := makeTestLexer("x ")
	if tok := lx.Next(); tok.Kind != token.Ident {
		t.Fatalf("expected identifier, got %v", tok.Kind)
	}
	first := lx.Next()
	for i := 0; i < 5; i++ {
		tok := lx.Next()
		if tok.Kind != token.EOF {
			t.Fatalf("call %d after EOF returned %v", i, tok.Kind)
		}
		if tok.Span != first.Span {
			t.Fatalf("EOF span moved: %v vs %v", tok.Span, first.Span)
		}
	}
}

func TestLexer_UnknownCharacter(t *testing.T) {
	cases := []struct {
		input   string
		text    string
		message string
	}{
		{"@", "@", "unknown character '@'"},
		{"#", "#", "unknown character '#'"},
		{"λ", "λ", "unknown character 'λ'"},
		{"\xff", "\xff", `invalid UTF-8 byte "\xff"`},
	}
	for _, tc := range cases {
		lx, reporter := makeTestLexer(tc.input)
		tok := lx.Next()
		if tok.Kind != token.Invalid {
			t.Fatalf("input %q: expected Invalid, got %v", tc.input, tok.Kind)
		}
		if tok.Text != tc.text {
			t.Errorf("input %q: text = %q", tc.input, tok.Text)
		}
		if len(reporter.diagnostics) != 1 {
			t.Fatalf("input %q: expected one diagnostic, got %v", tc.input, reporter.ErrorMessages())
		}
		d := reporter.diagnostics[0]
		if d.Code != diag.LexUnknownChar || d.Message != tc.message {
			t.Errorf("input %q: got %s %q", tc.input, d.Code.ID(), d.Message)
		}
		if d.Primary != tok.Span {
			t.Errorf("input %q: diagnostic span %v != token span %v", tc.input, d.Primary, tok.Span)
		}
		if next := lx.Next(); next.Kind != token.EOF {
			t.Errorf("input %q: expected EOF after invalid token, got %v", tc.input, next.Kind)
		}
	}
}

func TestLexer_LookalikeRunesAreUnknown(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		bad     string
		message string
	}{
		{"greek question mark", "let x = 5\u037e", "\u037e", "unknown character '\u037e' (U+037E, looks like \";\")"},
		{"kelvin sign", "let \u212a = 5;", "\u212a", "unknown character '\u212a' (U+212A, looks like \"K\")"},
		{"fullwidth semicolon", "1\uff1b", "\uff1b", "unknown character '\uff1b' (U+FF1B, looks like \";\")"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lx, reporter := makeTestLexer(tc.input)
			tokens := collectAllTokens(lx)
			if err := testkit.CheckTokenInvariants(lx.File(), tokens); err != nil {
				t.Fatalf("invariants: %v", err)
			}
			var invalid []token.Token
			for _, tok := range tokens {
				if tok.Kind == token.Invalid {
					invalid = append(invalid, tok)
				}
			}
			if len(invalid) != 1 || invalid[0].Text != tc.bad {
				t.Fatalf("expected one Invalid %q, got %s", tc.bad, tokensToString(tokens))
			}
			if len(reporter.diagnostics) != 1 {
				t.Fatalf("expected one diagnostic, got %v", reporter.ErrorMessages())
			}
			d := reporter.diagnostics[0]
			if d.Code != diag.LexUnknownChar || d.Message != tc.message {
				t.Errorf("got %s %q", d.Code.ID(), d.Message)
			}
			if d.Primary != invalid[0].Span {
				t.Errorf("diagnostic span %v != token span %v", d.Primary, invalid[0].Span)
			}
		})
	}
}

func TestLexer_ScanningContinuesAfterInvalid(t *testing.T) {
	expectTokens(t, "a @ b", []token.Kind{token.Ident, token.Invalid, token.Ident})
}

func TestLexer_CoversEveryByte(t *testing.T) {
	inputs := []string{
		"let x = 3 + 5 * (10 - 4); let y = x + 2;",
		"  a$b\t(1)\n\n;;",
		"x = λ;",
	}
	for _, input := range inputs {
		lx, _ := makeTestLexer(input)
		tokens := collectAllTokens(lx)
		if err := testkit.CheckTokenInvariants(lx.File(), tokens); err != nil {
			t.Errorf("input %q: %v", input, err)
		}
	}
}

func BenchmarkLexer_SimpleExpression(b *testing.B) {
	input := "let x = 123 + 456 * (789 - 10);"
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("bench.calc", []byte(input))
	file := fs.Get(fileID)

	b.ResetTimer()
	for b.Loop() {
		lx := lexer.New(file, lexer.Options{})
		for lx.Next().Kind != token.EOF {
		}
	}
}

func BenchmarkLexer_LargeFile(b *testing.B) {
	var sb strings.Builder
	for i := range 1000 {
		fmt.Fprintf(&sb, "let v = %d * (v + %d) / 3;\n", i, i+1)
	}
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("bench.calc", []byte(sb.String()))
	file := fs.Get(fileID)

	b.ResetTimer()
	for b.Loop() {
		lx := lexer.New(file, lexer.Options{})
		for lx.Next().Kind != token.EOF {
		}
	}
}
