package version

import (
	"testing"

	"github.com/fatih/color"
)

func TestColoredWithoutColor(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	tests := []struct {
		version string
		want    string
	}{
		{"0.1.0-dev", "0.1.0-dev"},
		{"1.2.3", "1.2.3"},
		{"1.0.0-rc.1", "1.0.0-rc.1"},
		{"nightly", "nightly"},
	}
	orig := Version
	t.Cleanup(func() { Version = orig })
	for _, tt := range tests {
		Version = tt.version
		if got := Colored(); got != tt.want {
			t.Errorf("Colored() with %q = %q, want %q", tt.version, got, tt.want)
		}
	}
}

func TestLong(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	origV, origC, origD := Version, GitCommit, BuildDate
	t.Cleanup(func() {
		color.NoColor = prev
		Version, GitCommit, BuildDate = origV, origC, origD
	})

	Version, GitCommit, BuildDate = "1.2.3", "abc123", "2024-01-15"
	if got := Long(); got != "asm09 1.2.3 (abc123) built 2024-01-15" {
		t.Fatalf("unexpected %q", got)
	}
	GitCommit, BuildDate = "", ""
	if got := Long(); got != "asm09 1.2.3" {
		t.Fatalf("unexpected %q", got)
	}
}
