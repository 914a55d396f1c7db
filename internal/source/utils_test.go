package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNormalizeKeepsRunesIntact(t *testing.T) {
	cases := []string{
		"let x = 5\u037e",  // GREEK QUESTION MARK
		"let \u212a = 5;",  // KELVIN SIGN
		"let e\u0301 = 1;", // combining acute accent
	}
	for _, in := range cases {
		out, flags := Normalize([]byte(in))
		if flags != 0 {
			t.Errorf("%q: unexpected flags %b", in, flags)
		}
		if string(out) != in {
			t.Errorf("%q: content rewritten to %q", in, out)
		}
	}

	out, flags := Normalize([]byte("\xef\xbb\xbflet x = 1;\r\n"))
	if flags != FileHadBOM|FileNormalizedCRLF || string(out) != "let x = 1;\n" {
		t.Fatalf("got %q flags=%b", out, flags)
	}
}

func TestNormalizeCRLFKeepsLoneCR(t *testing.T) {
	out, changed := normalizeCRLF([]byte("a\rb\r\nc"))
	if !changed || string(out) != "a\rb\nc" {
		t.Fatalf("got %q changed=%v", out, changed)
	}
}

func TestRelativePathOutsideBaseFallsBackToAbsolute(t *testing.T) {
	tmp := t.TempDir()
	baseDir := filepath.Join(tmp, "base")
	otherDir := filepath.Join(tmp, "other")
	for _, d := range []string{baseDir, otherDir} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", d, err)
		}
	}
	target := filepath.Join(otherDir, "file.calc")

	got, err := RelativePath(target, baseDir)
	if err != nil {
		t.Fatalf("RelativePath returned error: %v", err)
	}
	if want := normalizePath(target); got != want {
		t.Fatalf("expected absolute fallback %q, got %q", want, got)
	}
}

func TestRelativePathInsideBaseStaysRelative(t *testing.T) {
	baseDir := t.TempDir()
	target := filepath.Join(baseDir, "nested", "file.calc")

	got, err := RelativePath(target, baseDir)
	if err != nil {
		t.Fatalf("RelativePath returned error: %v", err)
	}
	if want := "nested/file.calc"; got != want {
		t.Fatalf("expected relative path %q, got %q", want, got)
	}
}
