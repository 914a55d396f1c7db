package eval

import (
	"strconv"

	"letcalc/internal/source"
	"letcalc/internal/token"
	"letcalc/internal/trace"
)

// statement → "let" assignment ";" | expr ";"
func (e *Evaluator) statement(parent uint64) *Error {
	start := e.cur.Span
	if e.at(token.KwLet) {
		if err := e.advance(); err != nil {
			return err
		}
		name, v, err := e.assignment()
		if err != nil {
			return err
		}
		if _, err := e.expect(token.Semicolon); err != nil {
			return err
		}
		e.stmts++
		e.traceStatement(parent, "let "+name, v, start)
		return nil
	}

	v, err := e.expr()
	if err != nil {
		return err
	}
	if _, err := e.expect(token.Semicolon); err != nil {
		return err
	}
	e.last, e.hasLast = v.val, true
	e.stmts++
	e.traceStatement(parent, "expr", v.val, start)
	return nil
}

// assignment → IDENT "=" expr. Значение сохраняется до проверки ';'.
func (e *Evaluator) assignment() (string, int64, *Error) {
	id, err := e.expect(token.Ident)
	if err != nil {
		return "", 0, err
	}
	if _, err := e.expect(token.Assign); err != nil {
		return "", 0, err
	}
	v, err := e.expr()
	if err != nil {
		return "", 0, err
	}
	e.vars.set(id.Text, v.val)
	return id.Text, v.val, nil
}

func (e *Evaluator) traceStatement(parent uint64, detail string, v int64, start source.Span) {
	tr := e.opts.tracer()
	if !tr.Level().ShouldEmit(trace.ScopeStatement) {
		return
	}
	trace.Point(tr, trace.ScopeStatement, "stmt", parent, detail, map[string]string{
		"n":     strconv.Itoa(e.stmts),
		"value": strconv.FormatInt(v, 10),
		"at":    strconv.FormatUint(uint64(start.Start), 10),
	})
}
