// Package trace records what a letcalc run did: which files were run, how
// long the lexer and the evaluator took, and, at the most detailed level,
// every statement that was executed together with the value it produced.
//
// Enable it from the CLI:
//
//	letcalc run --trace=- --trace-level=detail prog.calc
//
// Implementations:
//
//   - Nop: zero-overhead tracer used when tracing is off
//   - StreamTracer: writes each event immediately (text or NDJSON)
//   - RingTracer: keeps the last N events in memory and dumps them on failure
//   - MultiTracer: fans out to several tracers
//
// Scopes, coarse to fine: ScopeDriver (one CLI operation or one file of a
// directory run), ScopePass (lex, eval), ScopeStatement (one statement).
// LevelPhase shows driver and pass events, LevelDetail and LevelDebug add
// statements.
//
// Tracers travel with the context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "eval", 0)
//	defer span.End("")
package trace
