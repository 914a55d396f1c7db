package lexer

import (
	"unicode"
	"unicode/utf8"
)

// peekRune декодирует руну под курсором, не сдвигая его.
func (lx *Lexer) peekRune() (r rune, size int) {
	if lx.cursor.EOF() {
		return utf8.RuneError, 0
	}
	b := lx.cursor.Peek()
	if b < utf8.RuneSelf { // fast-path ASCII
		return rune(b), 1
	}
	return utf8.DecodeRune(lx.file.Content[lx.cursor.Off:])
}

// bumpRune сдвигает курсор на размер текущей руны. Битый UTF-8 съедается по байту.
func (lx *Lexer) bumpRune() {
	_, sz := lx.peekRune()
	if sz == 0 {
		return
	}
	lx.cursor.Advance(sz)
}

func isSpaceRune(r rune) bool {
	if r < utf8.RuneSelf {
		switch r {
		case ' ', '\t', '\n', '\r', '\v', '\f':
			return true
		}
		return false
	}
	// U+FEFF посреди файла считаем пробелом, ведущий BOM снимает source.Normalize
	return r == '\uFEFF' || unicode.IsSpace(r)
}

// Идентификаторы только из букв ASCII и '_'; цифр внутри нет.
func isIdentByte(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }
