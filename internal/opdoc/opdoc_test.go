package opdoc_test

import (
	"context"
	"strings"
	"testing"

	"asm09/internal/dialect"
	"asm09/internal/opdoc"
	"asm09/internal/trace"
)

func TestDefaultTableIsClean(t *testing.T) {
	ring := trace.NewRingTracer(64, trace.LevelTrace)
	ctx := trace.WithTracer(context.Background(), ring)
	tbl := opdoc.Default(ctx)
	if n := len(ring.Named("opdoc.row")); n != 0 {
		t.Fatalf("builtin table has %d bad rows: %+v", n, ring.Named("opdoc.row"))
	}
	if tbl.Len() < 50 {
		t.Fatalf("builtin table too small: %d", tbl.Len())
	}
	e, ok := tbl.Lookup("LDQ")
	if !ok || e.Processor != dialect.Processor6309 || e.Class != dialect.ClassOperand {
		t.Fatalf("unexpected ldq entry %+v", e)
	}
}

func TestMalformedRowsAreLoggedPerRow(t *testing.T) {
	src := strings.Join([]string{
		"# comment",
		"",
		"lda\t6809\toperand\tLoad A\tLoads A.",
		"bogus\t6502\toperand\tWrong cpu",
		"only\ttwo",
		"nop\t6809\tpseudo\tWrong class",
		"mymac\tasm\tpseudo\tUser macro",
	}, "\n")
	ring := trace.NewRingTracer(64, trace.LevelTrace)
	ctx := trace.WithTracer(context.Background(), ring)

	tbl, err := opdoc.Parse(ctx, strings.NewReader(src), "custom.tsv")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := strings.Join(tbl.Names(), ","); got != "lda,mymac" {
		t.Fatalf("unexpected names %s", got)
	}
	rows := ring.Named("opdoc.row")
	if len(rows) != 3 {
		t.Fatalf("expected 3 row warnings, got %d", len(rows))
	}
	wantLines := []string{"4", "5", "6"}
	for i, ev := range rows {
		if ev.Level != trace.LevelWarn || ev.Extra["origin"] != "custom.tsv" || ev.Extra["line"] != wantLines[i] {
			t.Errorf("row %d: unexpected event %+v", i, ev)
		}
	}
}

func TestMergeAndMarkdown(t *testing.T) {
	ctx := context.Background()
	base := opdoc.Default(ctx)
	extra, _ := opdoc.Parse(ctx, strings.NewReader("nop\t6809\tinherent\tDo nothing"), "x")
	base.Merge(extra)

	e, _ := base.Lookup("nop")
	if e.Summary != "Do nothing" || e.Description != "" {
		t.Fatalf("merge did not override: %+v", e)
	}
	if got := e.Markdown(); got != "**NOP** (6809, inherent)\n\nDo nothing" {
		t.Fatalf("unexpected markdown %q", got)
	}
}
