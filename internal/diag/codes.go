package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Лексические
	LexInfo        Code = 1000
	LexUnknownChar Code = 1001

	// Синтаксические
	SynInfo             Code = 2000
	SynUnexpectedToken  Code = 2001
	SynUnclosedParen    Code = 2006
	SynExpectSemicolon  Code = 2012
	SynExpectAssign     Code = 2018
	SynNestingTooDeep   Code = 2030
	SynExpectIdentifier Code = 2102
	SynExpectExpression Code = 2203

	// Ошибки вычисления
	EvalInfo              Code = 3000
	EvalUndefinedVariable Code = 3001
	EvalDivisionByZero    Code = 3002
	EvalIntegerOverflow   Code = 3003

	// Ввод/вывод
	IOLoadFileError Code = 4001
	IOCacheError    Code = 4002
)

var codeDescription = map[Code]string{
	UnknownCode:           "Unknown error",
	LexInfo:               "Lexical information",
	LexUnknownChar:        "Unknown character",
	SynInfo:               "Syntax information",
	SynUnexpectedToken:    "Unexpected token",
	SynUnclosedParen:      "Unclosed parenthesis",
	SynExpectSemicolon:    "Expected semicolon",
	SynExpectAssign:       "Expected '='",
	SynNestingTooDeep:     "Expression nesting too deep",
	SynExpectIdentifier:   "Expected identifier",
	SynExpectExpression:   "Expected expression",
	EvalInfo:              "Evaluation information",
	EvalUndefinedVariable: "Undefined variable",
	EvalDivisionByZero:    "Division by zero",
	EvalIntegerOverflow:   "Integer overflow",
	IOLoadFileError:       "I/O error while loading file",
	IOCacheError:          "Result cache error",
}

// ID returns the stable printable identifier, e.g. "SYN2001".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("EVL%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
