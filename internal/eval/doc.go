// Package eval runs letcalc programs.
//
// The Evaluator is a recursive-descent parser that computes values while it
// parses; there is no syntax tree. It reads tokens from a lexer.Lexer through
// a single lookahead and stores `let` bindings in its own Store:
//
//	program    → statement* EOF
//	statement  → "let" assignment ";" | expr ";"
//	assignment → IDENT "=" expr
//	expr       → term (("+" | "-") term)*
//	term       → factor (("*" | "/") factor)*
//	factor     → NUMBER | IDENT | "(" expr ")"
//
// The first error stops the run. Bindings made before it stay in the Store.
package eval
