package document_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"asm09/internal/document"
	"asm09/internal/source"
	"asm09/internal/symbols"
	"asm09/internal/token"
	"asm09/internal/trace"
)

const helloASM = ` org $1000
 include "hello.inc"
start ldx #message
 jsr loop

loop lda ,x+
 beq done
 jsr PUTCHR
 bra loop

done rts

message fcc /Hello, world!/
 fcb 0
`

const structASM = `things struct
one rmb 1
two rmb 1
 ends
test things
 lda #test.one
`

func setup(t *testing.T, files map[string]string) (context.Context, *source.Overlay, *symbols.Manager, *trace.RingTracer) {
	t.Helper()
	ov := source.NewOverlay(nil)
	for uri, text := range files {
		ov.Open(uri, text)
	}
	ring := trace.NewRingTracer(256, trace.LevelTrace)
	ctx := trace.WithTracer(context.Background(), ring)
	return ctx, ov, symbols.NewManager(), ring
}

// expiringContext reports cancellation once Err has been polled more than
// left times.
type expiringContext struct {
	context.Context
	left int
}

func (c *expiringContext) Err() error {
	if c.left <= 0 {
		return context.Canceled
	}
	c.left--
	return nil
}

func names(list []*symbols.Symbol) []string {
	out := make([]string, len(list))
	for i, s := range list {
		out[i] = s.Text
	}
	return out
}

func TestHelloBlocksAndImplementations(t *testing.T) {
	uri := "file:///work/hello.asm"
	ctx, ov, mgr, _ := setup(t, map[string]string{uri: helloASM})

	doc := document.Create(ctx, uri, ov, mgr)
	if doc == nil {
		t.Fatal("expected document")
	}
	if len(doc.Blocks) != 4 {
		t.Fatalf("expected 4 blocks, got %d", len(doc.Blocks))
	}
	got := strings.Join(names(mgr.Implementations()), ",")
	if got != "start,loop,done,message" {
		t.Fatalf("unexpected implementations %s", got)
	}

	blocks := doc.SortedBlocks()
	wantLabels := []string{"start", "loop", "done", "message"}
	for i, b := range blocks {
		if b.Label == nil || b.Label.Text != wantLabels[i] {
			t.Fatalf("block %d: unexpected label %+v", i, b.Label)
		}
	}
	if blocks[1].StartLine != 4 || blocks[1].EndLine != 8 {
		t.Fatalf("loop block spans %d..%d", blocks[1].StartLine, blocks[1].EndLine)
	}

	// forward reference resolved once message is defined
	for _, ref := range mgr.ReferencesIn(uri) {
		switch ref.Text {
		case "message", "loop", "done":
			if ref.Definition == nil || ref.Definition.Text != ref.Text {
				t.Errorf("reference %s on line %d unresolved", ref.Text, ref.LineNumber)
			}
		case "PUTCHR":
			if ref.Definition != nil {
				t.Errorf("PUTCHR should stay unresolved")
			}
		}
	}
}

func TestStructProperties(t *testing.T) {
	uri := "file:///work/struct.asm"
	ctx, ov, mgr, _ := setup(t, map[string]string{uri: structASM})

	doc := document.Create(ctx, uri, ov, mgr)
	if doc == nil {
		t.Fatal("expected document")
	}
	impls := mgr.Implementations()
	if got := strings.Join(names(impls), ","); got != "things,one,two,test" {
		t.Fatalf("unexpected implementations %s", got)
	}
	things, test := impls[0], impls[3]
	for _, member := range impls[1:3] {
		if member.Type != token.TypeProperty || member.Parent != things {
			t.Fatalf("member %s should be a property of things, got %s", member.Text, member.Type)
		}
	}
	if things.Type != token.TypeStruct {
		t.Fatalf("things should be a struct, got %s", things.Type)
	}
	if got := strings.Join(names(things.Properties), ","); got != "one,two" {
		t.Fatalf("unexpected properties %s", got)
	}
	if test.Type != token.TypeVariable {
		t.Fatalf("test should be a variable, got %s", test.Type)
	}

	use := doc.Line(5)
	if len(use.References) != 1 || use.References[0].Text != "test" {
		t.Fatalf("unexpected references on use line")
	}
	ref := use.References[0]
	if ref.Definition != test {
		t.Fatalf("reference test not bound to its definition")
	}
	if len(ref.Children) != 1 || ref.Children[0].Text != "one" {
		t.Fatalf("one should be a child of test")
	}
	one := ref.Children[0]
	if one.Parent != ref || one.Definition != things.Properties[0] {
		t.Fatalf("property one not resolved to struct member")
	}
	if one.Type != token.TypeProperty {
		t.Fatalf("property type %s", one.Type)
	}
}

func TestLocalScopes(t *testing.T) {
	uri := "file:///work/scope.asm"
	text := "global nop\nloop@ bra loop@\n\nloop@ bra loop@\n bra global\n"
	ctx, ov, mgr, _ := setup(t, map[string]string{uri: text})

	doc := document.Create(ctx, uri, ov, mgr)
	if doc == nil {
		t.Fatal("expected document")
	}
	defs := mgr.Find("loop@")
	if len(defs) != 2 || defs[0].BlockNumber == defs[1].BlockNumber {
		t.Fatalf("expected two distinct local definitions")
	}
	first, second := doc.Line(1).References[0], doc.Line(3).References[0]
	if first.Definition != defs[0] || second.Definition != defs[1] {
		t.Fatalf("local references bound across blocks")
	}
	if g := doc.Line(4).References[0]; g.Definition == nil || g.Definition.Text != "global" {
		t.Fatalf("global reference unresolved")
	}
	if doc.Line(3).BlockNumber != doc.Line(2).BlockNumber || doc.Line(2).BlockNumber != doc.Line(1).BlockNumber+1 {
		t.Fatalf("blank line must advance the block by one")
	}
}

func TestIncludeReference(t *testing.T) {
	uri := "file:///work/src/main.asm"
	text := " include \"X.inc\"\n include \"X.inc\"\n use ../lib/io.asm\n"
	ctx, ov, mgr, _ := setup(t, map[string]string{uri: text})

	doc := document.Create(ctx, uri, ov, mgr)
	if doc == nil {
		t.Fatal("expected document")
	}
	refs := doc.ReferencedDocuments
	if len(refs) != 2 {
		t.Fatalf("expected 2 deduplicated references, got %d", len(refs))
	}
	if refs[0].URI != "file:///work/src/X.inc" || refs[1].URI != "file:///work/lib/io.asm" {
		t.Fatalf("unexpected uris %v", doc.ReferencedURIs())
	}
	if refs[0].Range.Start.Line != 0 || refs[0].Range.Start.Character != 9 {
		t.Fatalf("unexpected range %+v", refs[0].Range)
	}
	if doc.ReferenceKey() != "file:///work/lib/io.asm\nfile:///work/src/X.inc" {
		t.Fatalf("unexpected key %q", doc.ReferenceKey())
	}
}

func TestReparseReplacesSymbols(t *testing.T) {
	uri := "file:///work/hello.asm"
	other := "file:///work/other.asm"
	ctx, ov, mgr, _ := setup(t, map[string]string{uri: helloASM, other: "shared nop\n"})

	document.Create(ctx, other, ov, mgr)
	document.Create(ctx, uri, ov, mgr)
	document.Create(ctx, uri, ov, mgr)
	if got := len(mgr.ImplementationsIn(uri)); got != 4 {
		t.Fatalf("expected 4 definitions after re-parse, got %d", got)
	}
	if got := len(mgr.ImplementationsIn(other)); got != 1 {
		t.Fatalf("other document lost its definitions")
	}

	ov.Open(uri, "only nop\n")
	document.Create(ctx, uri, ov, mgr)
	if got := names(mgr.ImplementationsIn(uri)); len(got) != 1 || got[0] != "only" {
		t.Fatalf("stale definitions survived: %v", got)
	}
}

func TestReadFailureIsLogged(t *testing.T) {
	ctx, ov, mgr, ring := setup(t, nil)
	if doc := document.Create(ctx, "file:///work/missing.asm", ov, mgr); doc != nil {
		t.Fatal("expected nil document")
	}
	events := ring.Named("document.read")
	if len(events) != 1 {
		t.Fatalf("expected one read error, got %d", len(events))
	}
	ev := events[0]
	if ev.Level != trace.LevelError || ev.Extra["uri"] != "file:///work/missing.asm" || ev.Extra["reason"] != "not-found" {
		t.Fatalf("unexpected event %+v", ev)
	}
}

func TestCancelledCreateIsSilent(t *testing.T) {
	uri := "file:///work/hello.asm"
	ctx, ov, mgr, ring := setup(t, map[string]string{uri: helloASM})
	cancelled, cancel := context.WithCancel(ctx)
	cancel()

	if doc := document.Create(cancelled, uri, ov, mgr); doc != nil {
		t.Fatal("expected nil document")
	}
	if impls, refs := mgr.Len(); impls != 0 || refs != 0 {
		t.Fatalf("cancelled parse published %d/%d symbols", impls, refs)
	}
	if n := len(ring.Snapshot()); n != 0 {
		t.Fatalf("cancellation must not log, got %d events", n)
	}
}

func TestDocumentationFromComments(t *testing.T) {
	uri := "file:///work/doc.asm"
	text := "PUTCHR ; print a character\n* A holds the character\n lda #1\n"
	ctx, ov, mgr, _ := setup(t, map[string]string{uri: text})
	document.Create(ctx, uri, ov, mgr)
	defs := mgr.Find("PUTCHR")
	if len(defs) != 1 || defs[0].Documentation != "print a character\nA holds the character" {
		t.Fatalf("unexpected documentation %+v", defs)
	}
}

func TestCancelledMidParsePublishesNothing(t *testing.T) {
	uri := "file:///work/long.asm"
	var b strings.Builder
	for i := range 2000 {
		fmt.Fprintf(&b, "l%04d nop\n", i)
	}
	ctx, _, mgr, ring := setup(t, nil)
	file := source.NewFile(uri, []byte(b.String()), source.FileVirtual)

	// the first poll happens on entry, the second inside the line loop
	cancelled := &expiringContext{Context: ctx, left: 1}
	if doc := document.Parse(cancelled, file, mgr); doc != nil {
		t.Fatal("expected nil document")
	}
	if impls, refs := mgr.Len(); impls != 0 || refs != 0 {
		t.Fatalf("cancelled parse published %d/%d symbols", impls, refs)
	}
	for _, ev := range ring.Snapshot() {
		if ev.Name != "document.parse" {
			t.Fatalf("cancellation logged %q", ev.Name)
		}
	}

	if doc := document.Parse(ctx, file, mgr); doc == nil || len(mgr.ImplementationsIn(uri)) != 2000 {
		t.Fatal("uncancelled parse should publish every label")
	}
}

func TestScopeChangesAreTraced(t *testing.T) {
	uri := "file:///work/struct.asm"
	ctx, ov, mgr, ring := setup(t, map[string]string{uri: structASM + "mac macro\n nop\n endm\n"})
	if document.Create(ctx, uri, ov, mgr) == nil {
		t.Fatal("expected document")
	}
	var got []string
	for _, ev := range ring.Named("line.scope") {
		if ev.Scope != trace.ScopeLine || ev.Level != trace.LevelTrace {
			t.Fatalf("unexpected event %+v", ev)
		}
		got = append(got, ev.Detail)
	}
	want := []string{
		"line 1: struct things opened",
		"line 4: struct things closed",
		"line 7: macro mac opened",
		"line 9: macro mac closed",
	}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("scope events = %q, want %q", got, want)
	}
}
