package version

import (
	"testing"

	"github.com/fatih/color"
)

func TestVersion_DefaultValues(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
}

func TestSummary(t *testing.T) {
	origVersion, origCommit, origDate := Version, GitCommit, BuildDate
	defer func() { Version, GitCommit, BuildDate = origVersion, origCommit, origDate }()

	Version = "1.2.3"
	GitCommit = "1234567890abcdef1234567890abcdef12345678"
	BuildDate = "2024-01-15T10:30:00Z"

	want := "letcalc 1.2.3 (1234567890ab) built 2024-01-15T10:30:00Z"
	if got := Summary(false); got != want {
		t.Errorf("Summary() = %q, want %q", got, want)
	}

	GitCommit, BuildDate = "", ""
	if got := Summary(false); got != "letcalc 1.2.3" {
		t.Errorf("Summary() = %q", got)
	}
}

func TestColored(t *testing.T) {
	origVersion := Version
	defer func() { Version = origVersion }()
	origNoColor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = origNoColor }()

	for _, v := range []string{"0.1.0", "2.0.0-alpha", "1.2.3-rc.1+build.123", "dev"} {
		Version = v
		if got := Colored(); got != v {
			t.Errorf("Colored() with colors off = %q, want %q", got, v)
		}
	}
}
