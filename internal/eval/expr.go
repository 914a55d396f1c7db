package eval

import (
	"errors"
	"fmt"
	"strconv"

	"letcalc/internal/diag"
	"letcalc/internal/source"
	"letcalc/internal/token"
)

// value — результат подвыражения вместе с его span для диагностик.
type value struct {
	val  int64
	span source.Span
}

// expr → term (("+" | "-") term)*, левоассоциативно.
func (e *Evaluator) expr() (value, *Error) {
	left, err := e.term()
	if err != nil {
		return value{}, err
	}
	for e.at(token.Plus) || e.at(token.Minus) {
		op := e.cur.Kind
		if err := e.advance(); err != nil {
			return value{}, err
		}
		right, err := e.term()
		if err != nil {
			return value{}, err
		}
		sp := left.span.Cover(right.span)
		var (
			r  int64
			ok bool
		)
		if op == token.Plus {
			r, ok = addChecked(left.val, right.val)
		} else {
			r, ok = subChecked(left.val, right.val)
		}
		if !ok {
			return value{}, e.overflow(op, left.val, right.val, sp)
		}
		left = value{val: r, span: sp}
	}
	return left, nil
}

// term → factor (("*" | "/") factor)*. Деление усекается к нулю.
func (e *Evaluator) term() (value, *Error) {
	left, err := e.factor()
	if err != nil {
		return value{}, err
	}
	for e.at(token.Star) || e.at(token.Slash) {
		op := e.cur.Kind
		if err := e.advance(); err != nil {
			return value{}, err
		}
		right, err := e.factor()
		if err != nil {
			return value{}, err
		}
		sp := left.span.Cover(right.span)
		var (
			r  int64
			ok bool
		)
		if op == token.Star {
			r, ok = mulChecked(left.val, right.val)
		} else {
			if right.val == 0 {
				return value{}, e.fail(diag.EvalDivisionByZero, sp, "division by zero",
					diag.Note{Span: right.span, Msg: "divisor evaluates to 0"})
			}
			r, ok = divChecked(left.val, right.val)
		}
		if !ok {
			return value{}, e.overflow(op, left.val, right.val, sp)
		}
		left = value{val: r, span: sp}
	}
	return left, nil
}

// factor → NUMBER | IDENT | "(" expr ")"
func (e *Evaluator) factor() (value, *Error) {
	tok := e.cur
	switch tok.Kind {
	case token.Number:
		n, perr := strconv.ParseInt(tok.Text, 10, 64)
		if perr != nil {
			if errors.Is(perr, strconv.ErrRange) {
				return value{}, e.fail(diag.EvalIntegerOverflow, tok.Span,
					fmt.Sprintf("integer literal %s does not fit in 64 bits", tok.Text))
			}
			return value{}, e.fail(diag.SynUnexpectedToken, tok.Span,
				fmt.Sprintf("malformed number %q", tok.Text))
		}
		if _, err := e.expect(token.Number); err != nil {
			return value{}, err
		}
		return value{val: n, span: tok.Span}, nil

	case token.Ident:
		v, ok := e.vars.Get(tok.Text)
		if !ok {
			return value{}, e.fail(diag.EvalUndefinedVariable, tok.Span,
				fmt.Sprintf("undefined variable '%s'", tok.Text))
		}
		if _, err := e.expect(token.Ident); err != nil {
			return value{}, err
		}
		return value{val: v, span: tok.Span}, nil

	case token.LParen:
		return e.group()
	}

	return value{}, e.fail(diag.SynExpectExpression, e.diagnosticSpan(),
		fmt.Sprintf("unexpected token %s, expected expression", tok.Describe()))
}

// group разбирает "(" expr ")" с ограничением глубины вложенности.
func (e *Evaluator) group() (value, *Error) {
	open := e.cur
	e.depth++
	defer func() { e.depth-- }()
	if limit := e.opts.maxDepth(); e.depth > limit {
		return value{}, e.fail(diag.SynNestingTooDeep, open.Span,
			fmt.Sprintf("parentheses nested deeper than %d levels", limit))
	}
	if _, err := e.expect(token.LParen); err != nil {
		return value{}, err
	}
	inner, err := e.expr()
	if err != nil {
		return value{}, err
	}
	closeTok := e.cur
	if e.cur.Kind != token.RParen {
		return value{}, e.fail(diag.SynUnclosedParen, e.diagnosticSpan(),
			fmt.Sprintf("expected ')', found %s", e.cur.Describe()),
			diag.Note{Span: open.Span, Msg: "'(' opened here"})
	}
	if _, err := e.expect(token.RParen); err != nil {
		return value{}, err
	}
	return value{val: inner.val, span: open.Span.Cover(closeTok.Span)}, nil
}

func (e *Evaluator) overflow(op token.Kind, a, b int64, sp source.Span) *Error {
	return e.fail(diag.EvalIntegerOverflow, sp,
		fmt.Sprintf("integer overflow in %d %s %d", a, op.Lexeme(), b))
}
