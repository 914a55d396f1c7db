package driver

import (
	"context"
	"errors"
	"maps"
	"path/filepath"
	"testing"

	"letcalc/internal/eval"
)

func TestRunDirSamplePrograms(t *testing.T) {
	dir := filepath.Join("..", "..", "testdata", "programs")
	expected := map[string]struct {
		vars map[string]int64
		code string
	}{
		"basic.calc":        {vars: map[string]int64{"x": 33, "y": 35}},
		"precedence.calc":   {vars: map[string]int64{"a": 14, "b": 20, "c": 5, "d": -3, "e": 14}},
		"undefined.calc":    {vars: map[string]int64{"total": 10}, code: "EVL3001"},
		"div_zero.calc":     {vars: map[string]int64{"n": 4}, code: "EVL3002"},
		"unclosed.calc":     {vars: map[string]int64{}, code: "SYN2006"},
		"unknown_char.calc": {vars: map[string]int64{}, code: "LEX1001"},
	}

	_, results, err := RunDir(context.Background(), dir, DirOptions{RunOptions: RunOptions{MaxDepth: eval.DefaultMaxDepth, MaxDiagnostics: 8}})
	if err != nil {
		t.Fatalf("RunDir: %v", err)
	}
	if len(results) != len(expected) {
		t.Fatalf("got %d results, want %d", len(results), len(expected))
	}
	for _, res := range results {
		name := filepath.Base(res.Path)
		want, ok := expected[name]
		if !ok {
			t.Errorf("unexpected sample %s", name)
			continue
		}
		got := res.Vars
		if got == nil {
			got = map[string]int64{}
		}
		if !maps.Equal(got, want.vars) {
			t.Errorf("%s: vars = %v, want %v", name, got, want.vars)
		}
		if want.code == "" {
			if res.Failed() {
				t.Errorf("%s: unexpected failure %v", name, res.Err)
			}
			continue
		}
		var evErr *eval.Error
		if !errors.As(res.Err, &evErr) || evErr.Code.ID() != want.code {
			t.Errorf("%s: error = %v, want %s", name, res.Err, want.code)
		}
	}
}
