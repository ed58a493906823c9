package diagfmt

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"asm09/internal/document"
	"asm09/internal/lexer"
	"asm09/internal/parser"
	"asm09/internal/source"
	"asm09/internal/symbols"
)

func TestFormatTokensPretty(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatTokensPretty(&buf, 0, lexer.Tokenize("start lda #1"), PrettyOpts{}); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 rows, got %d:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "  1: label") || !strings.Contains(lines[0], `"start"`) || !strings.Contains(lines[0], "1:0-5") {
		t.Fatalf("unexpected first row %q", lines[0])
	}
	if strings.Contains(buf.String(), "\x1b[") {
		t.Fatalf("colour codes without Color")
	}
}

func TestLineOutputJSON(t *testing.T) {
	st := parser.NewState()
	line := parser.ParseLine("file:///w/a.asm", "SCREEN equ $0400 ; text", st, 3)
	var buf bytes.Buffer
	if err := FormatLinesJSON(&buf, []LineJSON{LineOutput(line, false)}); err != nil {
		t.Fatal(err)
	}
	var got []LineJSON
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	l := got[0]
	if l.Line != 3 || l.OpCode != "equ" || l.Operand != "$0400" || l.Comment != "; text" {
		t.Fatalf("unexpected line %+v", l)
	}
	if l.Label == nil || l.Label.Value != "$0400" || len(l.Label.Modifiers) != 2 {
		t.Fatalf("unexpected label %+v", l.Label)
	}
}

func TestFormatDocumentPretty(t *testing.T) {
	ov := source.NewOverlay(nil)
	ov.Open("file:///w/src/a.asm", "start jsr missing\n\nloop bra loop\n include \"b.inc\"\n")
	mgr := symbols.NewManager()
	doc := document.Create(context.Background(), "file:///w/src/a.asm", ov, mgr)
	if doc == nil {
		t.Fatal("expected document")
	}

	var buf bytes.Buffer
	FormatDocumentPretty(&buf, doc, mgr, PrettyOpts{PathMode: PathModeRelative, BaseDir: "/w"})
	out := buf.String()
	for _, want := range []string{"src/a.asm  4 lines", "definitions:", "loop", "1 unresolved", "includes src/b.inc (line 4)"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestDisplayPath(t *testing.T) {
	tests := []struct {
		mode PathMode
		want string
	}{
		{PathModeAbsolute, "/w/src/a.asm"},
		{PathModeBasename, "a.asm"},
		{PathModeRelative, "src/a.asm"},
	}
	for _, tt := range tests {
		opts := PrettyOpts{PathMode: tt.mode, BaseDir: "/w"}
		if got := opts.DisplayPath("file:///w/src/a.asm"); got != tt.want {
			t.Errorf("mode %d: got %q, want %q", tt.mode, got, tt.want)
		}
	}
}
