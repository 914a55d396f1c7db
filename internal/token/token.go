package token

import (
	"letcalc/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsLiteral reports whether the token is a numeric literal.
func (t Token) IsLiteral() bool { return t.Kind == Number }

// IsOperator reports whether the token is one of the four arithmetic operators.
func (t Token) IsOperator() bool {
	switch t.Kind {
	case Plus, Minus, Star, Slash:
		return true
	default:
		return false
	}
}

// IsPunct reports whether the token is grouping, assignment or terminator punctuation.
func (t Token) IsPunct() bool {
	switch t.Kind {
	case LParen, RParen, Assign, Semicolon:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool { return t.Kind == KwLet }

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// Describe renders the token for diagnostics, quoting variable text when present.
func (t Token) Describe() string {
	switch t.Kind {
	case Number, Ident, Invalid:
		if t.Text != "" {
			return t.Kind.Describe() + " '" + t.Text + "'"
		}
	}
	return t.Kind.Describe()
}
