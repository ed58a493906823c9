package ui

import (
	"strings"
	"testing"

	"asm09/internal/workspace"
)

func TestProgressTracksFiles(t *testing.T) {
	m := NewProgressModel("index", nil).(*progressModel)
	m.applyEvent(workspace.ScanEvent{Files: []string{"file:///a.asm", "file:///b.asm"}})
	m.applyEvent(workspace.ScanEvent{URI: "file:///a.asm", Status: workspace.StatusDone})
	m.applyEvent(workspace.ScanEvent{URI: "file:///unknown.asm", Status: workspace.StatusDone})

	if got := m.percent(); got != 0.5 {
		t.Fatalf("expected 0.5, got %v", got)
	}
	view := m.View()
	if !strings.Contains(view, "(2 files)") || !strings.Contains(view, "file:///b.asm") {
		t.Fatalf("unexpected view:\n%s", view)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"abcdefghij", 8, "abcde..."},
		{"abcdef", 2, "ab"},
		{"abc", 0, "abc"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}
