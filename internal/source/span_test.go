package source

import "testing"

func TestSpanCover(t *testing.T) {
	tests := []struct {
		name string
		a, b Span
		want Span
	}{
		{"disjoint", Span{File: 1, Start: 2, End: 4}, Span{File: 1, Start: 8, End: 9}, Span{File: 1, Start: 2, End: 9}},
		{"nested", Span{File: 1, Start: 0, End: 10}, Span{File: 1, Start: 3, End: 4}, Span{File: 1, Start: 0, End: 10}},
		{"other file ignored", Span{File: 1, Start: 2, End: 4}, Span{File: 2, Start: 0, End: 9}, Span{File: 1, Start: 2, End: 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Cover(tt.b); got != tt.want {
				t.Fatalf("Cover = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSpanContainsAndLen(t *testing.T) {
	outer := Span{File: 0, Start: 5, End: 15}
	if !outer.Contains(Span{File: 0, Start: 5, End: 15}) {
		t.Fatalf("span must contain itself")
	}
	if outer.Contains(Span{File: 0, Start: 4, End: 6}) {
		t.Fatalf("overlapping span is not contained")
	}
	if outer.Len() != 10 || outer.Empty() {
		t.Fatalf("Len/Empty mismatch for %v", outer)
	}
	if !At(0, 7).Empty() {
		t.Fatalf("At must produce an empty span")
	}
}
