package observ

import (
	"strings"
	"testing"
	"time"
)

func TestTimerReport(t *testing.T) {
	tm := NewTimer()
	idx := tm.Begin("load")
	tm.End(idx, "1 file")
	tm.Add("eval", 2*time.Millisecond, "3 statements")
	tm.End(42, "ignored")

	report := tm.Report()
	if len(report.Phases) != 2 {
		t.Fatalf("expected 2 phases, got %d", len(report.Phases))
	}
	if report.Phases[1].Name != "eval" || report.Phases[1].DurationMS != 2 {
		t.Fatalf("unexpected eval phase %+v", report.Phases[1])
	}
	if report.TotalMS < 2 {
		t.Fatalf("total must include every phase, got %v", report.TotalMS)
	}

	summary := tm.Summary()
	for _, want := range []string{"timings:", "load", "// 1 file", "eval", "total"} {
		if !strings.Contains(summary, want) {
			t.Errorf("summary misses %q:\n%s", want, summary)
		}
	}
}

func TestNilTimerIsSafe(t *testing.T) {
	var tm *Timer
	tm.End(tm.Begin("x"), "")
	tm.Add("y", time.Second, "")
	if len(tm.Report().Phases) != 0 {
		t.Fatalf("nil timer must report nothing")
	}
}
