package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates a character no lexer rule matched.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Number is a run of decimal digits.
	Number
	// Ident is a run of ASCII letters and underscores.
	Ident
	// KwLet represents the 'let' keyword.
	KwLet // let

	// Plus represents the plus operator token.
	Plus // +
	// Minus represents the minus operator token.
	Minus // -
	// Star represents the multiplication operator token.
	Star // *
	// Slash represents the division operator token.
	Slash // /
	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// Assign represents the assign operator token.
	Assign // =
	// Semicolon terminates a statement.
	Semicolon // ;
)

var kindNames = [...]string{
	Invalid:   "Invalid",
	EOF:       "EOF",
	Number:    "Number",
	Ident:     "Ident",
	KwLet:     "KwLet",
	Plus:      "Plus",
	Minus:     "Minus",
	Star:      "Star",
	Slash:     "Slash",
	LParen:    "LParen",
	RParen:    "RParen",
	Assign:    "Assign",
	Semicolon: "Semicolon",
}

var lexemes = [...]string{
	KwLet:     "let",
	Plus:      "+",
	Minus:     "-",
	Star:      "*",
	Slash:     "/",
	LParen:    "(",
	RParen:    ")",
	Assign:    "=",
	Semicolon: ";",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}

// Lexeme returns the fixed spelling of punctuation and keyword kinds,
// or "" for kinds whose text varies (Number, Ident) or has none.
func (k Kind) Lexeme() string {
	if int(k) < len(lexemes) {
		return lexemes[k]
	}
	return ""
}

// IsEOF reports whether k terminates the stream.
func (k Kind) IsEOF() bool { return k == EOF }

// Describe renders the kind for diagnostics: `'+'` for fixed tokens,
// "number"/"identifier" for variable ones, "end of input" for EOF.
func (k Kind) Describe() string {
	switch k {
	case EOF:
		return "end of input"
	case Number:
		return "number"
	case Ident:
		return "identifier"
	case Invalid:
		return "invalid character"
	}
	return "'" + k.Lexeme() + "'"
}
