package lexer

import (
	"letcalc/internal/source"
	"letcalc/internal/token"
)

// Lexer turns one source.File into tokens on demand. It holds no state
// beyond the cursor: every Next call scans exactly one token.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// File returns the file being scanned.
func (lx *Lexer) File() *source.File {
	return lx.file
}

// Next возвращает следующий токен. После конца ввода всегда возвращает EOF.
// Неизвестный символ даёт token.Invalid и одну диагностику LexUnknownChar.
func (lx *Lexer) Next() token.Token {
	lx.skipWhitespace()

	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: lx.emptySpan(),
		}
	}

	ch := lx.cursor.Peek()
	switch {
	case isDec(ch):
		return lx.scanNumber()
	case isIdentByte(ch):
		return lx.scanIdentOrKeyword()
	default:
		return lx.scanOperatorOrPunct()
	}
}

func (lx *Lexer) skipWhitespace() {
	for !lx.cursor.EOF() {
		r, sz := lx.peekRune()
		if sz == 0 || !isSpaceRune(r) {
			return
		}
		lx.bumpRune()
	}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}
