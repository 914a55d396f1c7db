package diag

import (
	"testing"

	"letcalc/internal/source"
)

func TestBagLimitAndErrors(t *testing.T) {
	bag := NewBag(2)
	if !bag.Add(New(SevWarning, SynInfo, source.Span{}, "w")) {
		t.Fatalf("first add must succeed")
	}
	if bag.HasErrors() || !bag.HasWarnings() {
		t.Fatalf("warning-only bag misclassified")
	}
	bag.Add(NewError(LexUnknownChar, source.Span{Start: 1, End: 2}, "e"))
	if bag.Add(NewError(LexUnknownChar, source.Span{Start: 3, End: 4}, "dropped")) {
		t.Fatalf("add past the limit must be rejected")
	}
	if bag.Len() != 2 || !bag.HasErrors() {
		t.Fatalf("unexpected bag state: len=%d", bag.Len())
	}
}

func TestBagSortAndDedup(t *testing.T) {
	bag := NewBag(0)
	bag.Add(NewError(SynUnexpectedToken, source.Span{Start: 9, End: 10}, "late"))
	bag.Add(NewError(LexUnknownChar, source.Span{Start: 2, End: 3}, "early"))
	bag.Add(NewError(LexUnknownChar, source.Span{Start: 2, End: 3}, "early again"))
	bag.Sort()
	bag.Dedup()

	items := bag.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 items after dedup, got %d", len(items))
	}
	if items[0].Message != "early" || items[1].Message != "late" {
		t.Fatalf("unexpected order: %q, %q", items[0].Message, items[1].Message)
	}
}

func TestCodeID(t *testing.T) {
	cases := map[Code]string{
		LexUnknownChar:     "LEX1001",
		SynExpectSemicolon: "SYN2012",
		EvalDivisionByZero: "EVL3002",
		IOLoadFileError:    "IO4001",
		UnknownCode:        "E0000",
	}
	for code, want := range cases {
		if got := code.ID(); got != want {
			t.Errorf("ID() = %q, want %q", got, want)
		}
	}
	if EvalUndefinedVariable.Title() != "Undefined variable" {
		t.Errorf("unexpected title %q", EvalUndefinedVariable.Title())
	}
}

func TestDedupReporter(t *testing.T) {
	bag := NewBag(10)
	r := NewDedupReporter(BagReporter{Bag: bag})
	sp := source.Span{Start: 4, End: 5}
	r.Report(LexUnknownChar, SevError, sp, "unknown character '@'", nil)
	r.Report(LexUnknownChar, SevError, sp, "unknown character '@' (again)", nil)
	r.Report(SynUnexpectedToken, SevError, sp, "other code passes", nil)
	if bag.Len() != 2 {
		t.Fatalf("expected 2 diagnostics, got %d", bag.Len())
	}
}

func TestReportBuilderEmitsOnce(t *testing.T) {
	bag := NewBag(10)
	b := ReportError(BagReporter{Bag: bag}, SynUnclosedParen, source.Span{Start: 5, End: 6}, "expected ')'").
		WithNote(source.Span{Start: 0, End: 1}, "'(' opened here")
	b.Emit()
	b.Emit()
	if bag.Len() != 1 {
		t.Fatalf("expected single emission, got %d", bag.Len())
	}
	if notes := bag.Items()[0].Notes; len(notes) != 1 {
		t.Fatalf("expected note to be attached, got %v", notes)
	}
}

func TestBagMergeGrowsLimit(t *testing.T) {
	a := NewBag(1)
	a.Add(NewError(EvalUndefinedVariable, source.Span{Start: 1, End: 2}, "a"))
	b := NewBag(2)
	b.Add(NewError(LexUnknownChar, source.Span{Start: 0, End: 1}, "b1"))
	b.Add(New(SevWarning, SynInfo, source.Span{}, "b2"))

	a.Merge(b)
	a.Merge(nil)
	if a.Len() != 3 || a.Cap() != 3 {
		t.Fatalf("expected 3 diagnostics with cap 3, got %d/%d", a.Len(), a.Cap())
	}
	if a.Items()[1].Message != "b1" || b.Len() != 2 {
		t.Fatalf("merge must append in order and leave the source intact")
	}
}
