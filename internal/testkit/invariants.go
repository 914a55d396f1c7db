package testkit

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"fortio.org/safecast"

	"letcalc/internal/source"
	"letcalc/internal/token"
)

// CheckTokenInvariants runs the scanner invariants on a full token stream
// (EOF included):
// 1) every span belongs to the file, is within bounds and non-empty (except EOF)
// 2) spans are ordered and do not overlap
// 3) gaps between tokens contain only whitespace
// 4) Text equals the source slice under the span
// 5) the stream ends with exactly one EOF, positioned at the end of content
func CheckTokenInvariants(sf *source.File, tokens []token.Token) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	if len(tokens) == 0 {
		return fmt.Errorf("empty token stream")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	var prevEnd uint32
	for i, tok := range tokens {
		sp := tok.Span
		if sp.File != sf.ID {
			return fmt.Errorf("token %d: span file mismatch: got=%d want=%d", i, sp.File, sf.ID)
		}
		if sp.End > lenContent || sp.Start > sp.End {
			return fmt.Errorf("token %d: span %v out of bounds (len=%d)", i, sp, lenContent)
		}
		if sp.Start < prevEnd {
			return fmt.Errorf("token %d: span %v overlaps previous end %d", i, sp, prevEnd)
		}
		if gap := sf.Content[prevEnd:sp.Start]; !onlySpace(gap) {
			return fmt.Errorf("token %d: non-whitespace bytes %q skipped before %v", i, gap, sp)
		}

		last := i == len(tokens)-1
		if tok.Kind == token.EOF {
			if !last {
				return fmt.Errorf("token %d: EOF before end of stream", i)
			}
			if tok.Text != "" || !sp.Empty() {
				return fmt.Errorf("EOF must be empty, got %q at %v", tok.Text, sp)
			}
			if sp.Start != lenContent {
				return fmt.Errorf("EOF at %d, content ends at %d", sp.Start, lenContent)
			}
			return nil
		}
		if last {
			return fmt.Errorf("stream does not end with EOF")
		}
		if sp.Empty() {
			return fmt.Errorf("token %d: empty span for %v", i, tok.Kind)
		}
		if got := string(sf.Content[sp.Start:sp.End]); got != tok.Text {
			return fmt.Errorf("token %d: text %q does not match source %q", i, tok.Text, got)
		}
		prevEnd = sp.End
	}
	return nil
}

func onlySpace(b []byte) bool {
	for len(b) > 0 {
		r, sz := utf8.DecodeRune(b)
		if r == utf8.RuneError && sz <= 1 {
			return false
		}
		if r != '\uFEFF' && !unicode.IsSpace(r) {
			return false
		}
		b = b[sz:]
	}
	return true
}
