package lexer

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"letcalc/internal/diag"
	"letcalc/internal/token"
)

// scanOperatorOrPunct распознаёт односимвольные токены. Всё остальное
// становится token.Invalid шириной в одну руну.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	emit := func(k token.Kind) token.Token {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{
			Kind: k,
			Span: sp,
			Text: string(lx.file.Content[sp.Start:sp.End]),
		}
	}

	switch lx.cursor.Peek() {
	case '+':
		lx.cursor.Bump()
		return emit(token.Plus)
	case '-':
		lx.cursor.Bump()
		return emit(token.Minus)
	case '*':
		lx.cursor.Bump()
		return emit(token.Star)
	case '/':
		lx.cursor.Bump()
		return emit(token.Slash)
	case '(':
		lx.cursor.Bump()
		return emit(token.LParen)
	case ')':
		lx.cursor.Bump()
		return emit(token.RParen)
	case '=':
		lx.cursor.Bump()
		return emit(token.Assign)
	case ';':
		lx.cursor.Bump()
		return emit(token.Semicolon)
	}

	lx.bumpRune()
	tok := emit(token.Invalid)
	lx.report(diag.LexUnknownChar, tok.Span, UnknownCharMessage(tok.Text))
	return tok
}

// UnknownCharMessage renders the LexUnknownChar message for the text of an
// Invalid token. Runes whose compatibility form is plain ASCII get a hint,
// e.g. U+037E reads as ';' but is not a terminator.
func UnknownCharMessage(text string) string {
	r, sz := utf8.DecodeRuneInString(text)
	if r == utf8.RuneError && sz <= 1 {
		return fmt.Sprintf("invalid UTF-8 byte %q", text)
	}
	msg := fmt.Sprintf("unknown character %q", r)
	if alike := lookalike(r); alike != "" {
		msg += fmt.Sprintf(" (U+%04X, looks like %q)", r, alike)
	}
	return msg
}

// lookalike возвращает ASCII-двойника руны по NFKC или "".
func lookalike(r rune) string {
	if r < utf8.RuneSelf {
		return ""
	}
	folded := norm.NFKC.String(string(r))
	if folded == "" || folded == string(r) {
		return ""
	}
	for i := 0; i < len(folded); i++ {
		if folded[i] >= utf8.RuneSelf {
			return ""
		}
	}
	return folded
}
