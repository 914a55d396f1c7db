package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"letcalc/internal/source"
	"letcalc/internal/token"
)

type TokenOutput struct {
	Kind  string      `json:"kind"`
	Class string      `json:"class"`
	Text  string      `json:"text,omitempty"`
	Span  source.Span `json:"span"`
}

// tokenClass группирует виды токенов для вывода tokenize.
func tokenClass(tok token.Token) string {
	switch {
	case tok.IsLiteral():
		return "literal"
	case tok.IsKeyword():
		return "keyword"
	case tok.IsIdent():
		return "ident"
	case tok.IsOperator():
		return "operator"
	case tok.IsPunct():
		return "punct"
	case tok.Kind == token.Invalid:
		return "invalid"
	default:
		return "eof"
	}
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		startPos, endPos := fs.Resolve(tok.Span)
		if _, err := fmt.Fprintf(w, "%3d: %-10s %-8s", i+1, tok.Kind.String(), tokenClass(tok)); err != nil {
			return err
		}
		if tok.Text != "" {
			fmt.Fprintf(w, " %-8q", tok.Text)
		} else {
			fmt.Fprintf(w, " %-8s", "")
		}
		fmt.Fprintf(w, " at %d:%d-%d:%d\n", startPos.Line, startPos.Col, endPos.Line, endPos.Col)
		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		output = append(output, TokenOutput{
			Kind:  tok.Kind.String(),
			Class: tokenClass(tok),
			Text:  tok.Text,
			Span:  tok.Span,
		})
		if tok.Kind == token.EOF {
			break
		}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
