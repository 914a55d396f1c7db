package eval

import (
	"strconv"

	"letcalc/internal/lexer"
	"letcalc/internal/source"
	"letcalc/internal/token"
	"letcalc/internal/trace"
)

// Evaluator — состояние одного запуска: лексер, текущий токен и переменные.
type Evaluator struct {
	lx       *lexer.Lexer
	cur      token.Token // единственный lookahead
	lastSpan source.Span // span последнего съеденного токена для диагностики
	vars     *Store
	opts     Options
	depth    int
	stmts    int
	last     int64
	hasLast  bool
	err      *Error
	ran      bool
}

// New создаёт вычислитель и сразу читает первый токен.
// Лексическая ошибка на первом токене возвращается как *Error.
func New(lx *lexer.Lexer, opts Options) (*Evaluator, error) {
	e := &Evaluator{
		lx:   lx,
		vars: newStore(),
		opts: opts,
	}
	e.cur = lx.Next()
	if e.cur.Kind == token.Invalid {
		return nil, e.lexicalError()
	}
	return e, nil
}

// Run executes statements until EOF or the first error. A second call
// returns the result of the first one without doing any work.
func (e *Evaluator) Run() error {
	if e.ran {
		if e.err != nil {
			return e.err
		}
		return nil
	}
	e.ran = true

	tr := e.opts.tracer()
	span := trace.Begin(tr, trace.ScopePass, "eval", e.opts.Parent)
	for e.cur.Kind != token.EOF {
		if err := e.statement(span.ID()); err != nil {
			e.err = err
			span.WithExtra("error", err.Code.ID())
			break
		}
	}
	span.WithExtra("statements", strconv.Itoa(e.stmts)).
		WithExtra("vars", strconv.Itoa(e.vars.Len())).
		End("")

	if e.err != nil {
		return e.err
	}
	return nil
}

// Vars returns the variable store. It is valid after a failed Run as well.
func (e *Evaluator) Vars() *Store {
	return e.vars
}

// Statements returns how many statements ran to completion.
func (e *Evaluator) Statements() int {
	return e.stmts
}

// LastValue returns the value of the most recent expression statement.
func (e *Evaluator) LastValue() (int64, bool) {
	return e.last, e.hasLast
}
