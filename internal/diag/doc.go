// Package diag defines the diagnostic model shared by the lexer, the
// evaluator and the driver.
//
// A Diagnostic carries a Severity, a numeric Code with a stable string ID
// (LEX1001, SYN2012, EVL3002, IO4001), a short message, the primary
// source.Span and optional notes pointing at related locations, e.g. the
// "(" that was never closed.
//
// Producers never store diagnostics themselves. They receive a Reporter and
// either call Report directly or build one through ReportError/WithNote/Emit.
// BagReporter collects into a Bag with a size limit; DedupReporter drops
// repeats of the same code at the same span.
//
// Rendering lives in internal/diagfmt. FormatShortDiagnostics here is the one
// plain-text form, used by `--diag-format short` and golden tests.
package diag
