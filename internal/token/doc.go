// Package token defines lexical token kinds for letcalc programs.
// Invariants:
//   - Token.Text is the exact source lexeme; EOF carries no text.
//   - Token.Span matches Text exactly (Start..End).
//   - Keywords are case-sensitive; only "let" is reserved.
//   - Invalid marks a character no lexer rule accepts; it never reaches
//     the evaluator's grammar rules.
package token
