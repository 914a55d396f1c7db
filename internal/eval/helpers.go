package eval

import (
	"fmt"

	"letcalc/internal/diag"
	"letcalc/internal/lexer"
	"letcalc/internal/source"
	"letcalc/internal/token"
)

// advance — единственное место, где меняется lookahead.
// Invalid от лексера сразу превращается в лексическую ошибку.
func (e *Evaluator) advance() *Error {
	e.lastSpan = e.cur.Span
	e.cur = e.lx.Next()
	if e.cur.Kind == token.Invalid {
		return e.lexicalError()
	}
	return nil
}

func (e *Evaluator) at(k token.Kind) bool {
	return e.cur.Kind == k
}

// expect — съедает токен вида k или возвращает синтаксическую ошибку.
func (e *Evaluator) expect(k token.Kind) (token.Token, *Error) {
	if e.cur.Kind == k {
		tok := e.cur
		return tok, e.advance()
	}
	return token.Token{}, e.fail(expectCode(k), e.diagnosticSpan(),
		fmt.Sprintf("expected %s, found %s", k.Describe(), e.cur.Describe()))
}

func expectCode(k token.Kind) diag.Code {
	switch k {
	case token.Semicolon:
		return diag.SynExpectSemicolon
	case token.Ident:
		return diag.SynExpectIdentifier
	case token.Assign:
		return diag.SynExpectAssign
	case token.RParen:
		return diag.SynUnclosedParen
	}
	return diag.SynUnexpectedToken
}

// diagnosticSpan — на EOF указываем сразу за последним токеном, а не на конец файла.
func (e *Evaluator) diagnosticSpan() source.Span {
	if e.cur.Kind == token.EOF && e.lastSpan.End > 0 {
		return source.At(e.lastSpan.File, e.lastSpan.End)
	}
	return e.cur.Span
}

// fail строит *Error и отправляет его в Reporter.
func (e *Evaluator) fail(code diag.Code, sp source.Span, msg string, notes ...diag.Note) *Error {
	if e.opts.Reporter != nil {
		b := diag.ReportError(e.opts.Reporter, code, sp, msg)
		for _, n := range notes {
			b.WithNote(n.Span, n.Msg)
		}
		b.Emit()
	}
	return &Error{Kind: kindOf(code), Code: code, Message: msg, Span: sp}
}

// lexicalError не репортит: лексер уже сообщил об этом символе.
func (e *Evaluator) lexicalError() *Error {
	return &Error{
		Kind:    ErrLexical,
		Code:    diag.LexUnknownChar,
		Message: lexer.UnknownCharMessage(e.cur.Text),
		Span:    e.cur.Span,
	}
}
