package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"off": LevelOff, "ERROR": LevelError, "warn": LevelWarn, "warning": LevelWarn,
		"Info": LevelInfo, "debug": LevelDebug, "trace": LevelTrace,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Errorf("%s: got %v, %v", in, got, err)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatal("expected error")
	}
}

func TestLevelFiltering(t *testing.T) {
	ring := NewRingTracer(16, LevelInfo)
	Errorf(ring, ScopeFolder, "a", "x")
	Infof(ring, ScopeFolder, "b", "y")
	Debugf(ring, ScopeFolder, "c", "z")
	Tracef(ring, ScopeLine, "d", "w")

	events := ring.Snapshot()
	if len(events) != 2 || events[0].Name != "a" || events[1].Name != "b" {
		t.Fatalf("unexpected events %+v", events)
	}
	if events[0].Seq >= events[1].Seq {
		t.Fatalf("sequence numbers must increase")
	}
}

func TestRingWrapAndNamed(t *testing.T) {
	ring := NewRingTracer(3, LevelTrace)
	for _, name := range []string{"one", "two", "three", "four"} {
		Log(ring, LevelDebug, ScopeDocument, name, "", "uri", "file:///a.asm")
	}
	events := ring.Snapshot()
	if len(events) != 3 || events[0].Name != "two" || events[2].Name != "four" {
		t.Fatalf("unexpected ring contents %+v", events)
	}
	got := ring.Named("three")
	if len(got) != 1 || got[0].Extra["uri"] != "file:///a.asm" {
		t.Fatalf("Named: %+v", got)
	}
	ring.Reset()
	if len(ring.Snapshot()) != 0 {
		t.Fatal("reset left events")
	}
}

func TestStreamFormats(t *testing.T) {
	var buf bytes.Buffer
	st := NewStreamTracer(&buf, LevelDebug, FormatText)
	Log(st, LevelWarn, ScopeFolder, "opdoc.row", "bad row", "row", "3", "file", "x.tsv")
	if got := buf.String(); got != "WARN  folder opdoc.row: bad row {file=x.tsv, row=3}\n" {
		t.Fatalf("unexpected text %q", got)
	}

	buf.Reset()
	js := NewStreamTracer(&buf, LevelDebug, FormatNDJSON)
	Infof(js, ScopeDriver, "index", "%d documents", 4)
	var decoded map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &decoded); err != nil {
		t.Fatalf("ndjson: %v", err)
	}
	if decoded["level"] != "info" || decoded["detail"] != "4 documents" || decoded["scope"] != "driver" {
		t.Fatalf("unexpected json %v", decoded)
	}
}

func TestSpansRespectScopeLevel(t *testing.T) {
	ring := NewRingTracer(16, LevelInfo)
	Begin(ring, ScopeDocument, "parse", 0).End("")
	if len(ring.Snapshot()) != 0 {
		t.Fatal("document spans are debug level")
	}
	sp := Begin(ring, ScopeDriver, "index", 0)
	sp.WithExtra("docs", "2").End("done")
	events := ring.Snapshot()
	if len(events) != 2 || events[0].Kind != KindSpanBegin || events[1].Kind != KindSpanEnd {
		t.Fatalf("unexpected span events %+v", events)
	}
	if events[1].Extra["docs"] != "2" || events[1].Extra["elapsed"] == "" {
		t.Fatalf("missing extras %+v", events[1].Extra)
	}
}

func TestContextAndMulti(t *testing.T) {
	if FromContext(context.Background()) != Nop {
		t.Fatal("expected Nop")
	}
	a, b := NewRingTracer(4, LevelTrace), NewRingTracer(4, LevelError)
	multi := NewMultiTracer(LevelTrace, a, b)
	ctx := WithTracer(context.Background(), multi)
	tr := FromContext(ctx)
	Debugf(tr, ScopeFolder, "x", "")
	Errorf(tr, ScopeFolder, "y", "")
	if len(a.Snapshot()) != 2 || len(b.Snapshot()) != 1 {
		t.Fatalf("fan-out mismatch %d/%d", len(a.Snapshot()), len(b.Snapshot()))
	}
}

func TestNewConfig(t *testing.T) {
	tr, err := New(Config{Level: LevelOff})
	if err != nil || tr.Enabled() {
		t.Fatalf("off level should give nop")
	}
	var buf bytes.Buffer
	tr, err = New(Config{Level: LevelInfo, Mode: ModeBoth, Output: &buf})
	if err != nil {
		t.Fatal(err)
	}
	Infof(tr, ScopeDriver, "hello", "")
	if !strings.Contains(buf.String(), "hello") {
		t.Fatalf("stream side missing: %q", buf.String())
	}
	if _, err := ParseMode("disk"); err == nil {
		t.Fatal("expected mode error")
	}
}
