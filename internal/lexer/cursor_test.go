package lexer

import (
	"testing"

	"letcalc/internal/source"
)

// helper function to create a file
func createFile(content string) *source.File {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.calc", []byte(content))
	return fs.Get(id)
}

// TestSequentialReading проверяет последовательное чтение: "a\nb" → a, \n, b, EOF
func TestSequentialReading(t *testing.T) {
	file := createFile("a\nb")
	cursor := NewCursor(file)

	for _, want := range []byte{'a', '\n', 'b'} {
		if cursor.EOF() {
			t.Fatalf("unexpected EOF before %q", want)
		}
		if got := cursor.Peek(); got != want {
			t.Fatalf("Peek() = %q, want %q", got, want)
		}
		if got := cursor.Bump(); got != want {
			t.Fatalf("Bump() = %q, want %q", got, want)
		}
	}
	if !cursor.EOF() {
		t.Fatalf("expected EOF after reading all bytes")
	}
	if cursor.Peek() != 0 || cursor.Bump() != 0 {
		t.Fatalf("Peek/Bump past the end must return 0")
	}
	if cursor.Off != 3 {
		t.Fatalf("offset moved past the end: %d", cursor.Off)
	}
}

func TestSpanFrom(t *testing.T) {
	file := createFile("let abc")
	cursor := NewCursor(file)
	cursor.Advance(4)
	m := cursor.Mark()
	cursor.Advance(3)

	sp := cursor.SpanFrom(m)
	if sp.Start != 4 || sp.End != 7 || sp.File != file.ID {
		t.Fatalf("unexpected span %v", sp)
	}
	if got := string(file.Content[sp.Start:sp.End]); got != "abc" {
		t.Fatalf("span text = %q", got)
	}
}

func TestAdvanceClampsAtEnd(t *testing.T) {
	cursor := NewCursor(createFile("ab"))
	cursor.Advance(10)
	if !cursor.EOF() || cursor.Off != 2 {
		t.Fatalf("Advance must stop at the end, off=%d", cursor.Off)
	}
}
