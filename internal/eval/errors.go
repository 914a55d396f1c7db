package eval

import (
	"fmt"

	"letcalc/internal/diag"
	"letcalc/internal/source"
)

// ErrorKind classifies run failures.
type ErrorKind uint8

const (
	ErrLexical ErrorKind = iota + 1
	ErrSyntax
	ErrUndefined
	ErrDivisionByZero
	ErrOverflow
	ErrTooDeep
)

func (k ErrorKind) String() string {
	switch k {
	case ErrLexical:
		return "lexical"
	case ErrSyntax:
		return "syntax"
	case ErrUndefined:
		return "undefined variable"
	case ErrDivisionByZero:
		return "division by zero"
	case ErrOverflow:
		return "integer overflow"
	case ErrTooDeep:
		return "nesting too deep"
	}
	return "unknown"
}

// Error is the single fatal error of a run.
type Error struct {
	Kind    ErrorKind
	Code    diag.Code
	Message string
	Span    source.Span
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code.ID(), e.Message)
}

func kindOf(code diag.Code) ErrorKind {
	switch code {
	case diag.LexUnknownChar:
		return ErrLexical
	case diag.EvalUndefinedVariable:
		return ErrUndefined
	case diag.EvalDivisionByZero:
		return ErrDivisionByZero
	case diag.EvalIntegerOverflow:
		return ErrOverflow
	case diag.SynNestingTooDeep:
		return ErrTooDeep
	}
	return ErrSyntax
}
