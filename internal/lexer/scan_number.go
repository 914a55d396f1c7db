package lexer

import "letcalc/internal/token"

// scanNumber читает максимальную серию десятичных цифр. Ведущие нули
// остаются в тексте; диапазон проверяет вычислитель.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: token.Number,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}
