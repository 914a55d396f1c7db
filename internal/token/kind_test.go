package token_test

import (
	"testing"

	"letcalc/internal/source"
	"letcalc/internal/token"
)

func tok(k token.Kind) token.Token {
	return token.Token{Kind: k, Span: source.Span{Start: 0, End: 0}}
}

func TestIsOperator(t *testing.T) {
	for _, k := range []token.Kind{token.Plus, token.Minus, token.Star, token.Slash} {
		if !tok(k).IsOperator() {
			t.Fatalf("%v should be an operator", k)
		}
	}
	for _, k := range []token.Kind{token.Assign, token.LParen, token.Number, token.KwLet} {
		if tok(k).IsOperator() {
			t.Fatalf("%v must NOT be an operator", k)
		}
	}
}

func TestIsPunct(t *testing.T) {
	for _, k := range []token.Kind{token.LParen, token.RParen, token.Assign, token.Semicolon} {
		if !tok(k).IsPunct() {
			t.Fatalf("%v should be punctuation", k)
		}
	}
	if tok(token.Plus).IsPunct() {
		t.Fatalf("Plus must NOT be punctuation")
	}
}

func TestKindStringAndLexeme(t *testing.T) {
	cases := []struct {
		kind   token.Kind
		name   string
		lexeme string
	}{
		{token.EOF, "EOF", ""},
		{token.Number, "Number", ""},
		{token.Ident, "Ident", ""},
		{token.KwLet, "KwLet", "let"},
		{token.Star, "Star", "*"},
		{token.Slash, "Slash", "/"},
		{token.Semicolon, "Semicolon", ";"},
	}
	for _, tc := range cases {
		if got := tc.kind.String(); got != tc.name {
			t.Errorf("String() = %q, want %q", got, tc.name)
		}
		if got := tc.kind.Lexeme(); got != tc.lexeme {
			t.Errorf("%v.Lexeme() = %q, want %q", tc.kind, got, tc.lexeme)
		}
	}
	if got := token.Kind(200).String(); got != "Kind(?)" {
		t.Errorf("out of range kind rendered as %q", got)
	}
}

func TestDescribe(t *testing.T) {
	cases := map[string]token.Token{
		"end of input":          {Kind: token.EOF},
		"'='":                   {Kind: token.Assign, Text: "="},
		"number '42'":           {Kind: token.Number, Text: "42"},
		"identifier 'x'":        {Kind: token.Ident, Text: "x"},
		"invalid character '@'": {Kind: token.Invalid, Text: "@"},
	}
	for want, tk := range cases {
		if got := tk.Describe(); got != want {
			t.Errorf("Describe(%v) = %q, want %q", tk.Kind, got, want)
		}
	}
}
