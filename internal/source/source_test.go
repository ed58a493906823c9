package source

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestNormalize(t *testing.T) {
	raw := []byte("\xEF\xBB\xBFstart nop\r\n lda #1\r\n")
	got, flags := Normalize(raw)
	if string(got) != "start nop\n lda #1\n" {
		t.Fatalf("unexpected content %q", got)
	}
	if flags&FileHadBOM == 0 || flags&FileNormalizedCRLF == 0 {
		t.Fatalf("expected BOM and CRLF flags, got %b", flags)
	}

	// e + combining acute folds to a single code point
	got, _ = Normalize([]byte("; cafe\u0301"))
	if string(got) != "; caf\u00e9" {
		t.Fatalf("expected NFC form, got %q", got)
	}
}

func TestFileLines(t *testing.T) {
	f := NewFile("file:///x.asm", []byte("a\n\nb\n"), FileVirtual)
	lines := f.Lines()
	if len(lines) != 3 || lines[0] != "a" || lines[1] != "" || lines[2] != "b" {
		t.Fatalf("unexpected lines %q", lines)
	}
	if len(NewFile("file:///y.asm", nil, 0).Lines()) != 0 {
		t.Fatalf("empty file should have no lines")
	}
}

func TestURIRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "with space.asm")
	uri := PathToURI(path)
	if back := URIToPath(uri); back != path {
		t.Fatalf("round trip: %q -> %q -> %q", path, uri, back)
	}
	if URIToPath("untitled:Untitled-1") != "" {
		t.Fatalf("non-file scheme should map to empty path")
	}
}

func TestResolveInclude(t *testing.T) {
	dir := t.TempDir()
	from := PathToURI(filepath.Join(dir, "src", "main.asm"))
	want := PathToURI(filepath.Join(dir, "src", "defs", "X.inc"))
	for _, operand := range []string{`"defs/X.inc"`, "defs/X.inc", "<defs/X.inc>", "'defs/X.inc'"} {
		got, ok := ResolveInclude(from, operand)
		if !ok || got != want {
			t.Errorf("%s: expected %s, got %s", operand, want, got)
		}
	}
	if _, ok := ResolveInclude(from, `""`); ok {
		t.Fatalf("empty operand should not resolve")
	}
}

func TestDiskReaderErrors(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	_, err := DiskReader{}.Read(ctx, PathToURI(filepath.Join(dir, "missing.asm")))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	_, err = DiskReader{}.Read(ctx, "https://example.com/a.asm")
	if !errors.Is(err, ErrUnsupportedURI) {
		t.Fatalf("expected ErrUnsupportedURI, got %v", err)
	}

	if runtime.GOOS != "windows" && os.Geteuid() != 0 {
		locked := filepath.Join(dir, "locked.asm")
		if err := os.WriteFile(locked, []byte("x"), 0o000); err != nil {
			t.Fatal(err)
		}
		_, err = DiskReader{}.Read(ctx, PathToURI(locked))
		if !errors.Is(err, ErrPermission) {
			t.Fatalf("expected ErrPermission, got %v", err)
		}
	}

	ok := filepath.Join(dir, "ok.asm")
	if err := os.WriteFile(ok, []byte("start nop\r\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	f, err := DiskReader{}.Read(ctx, PathToURI(ok))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(f.Content) != "start nop\n" || f.Path != ok {
		t.Fatalf("unexpected file %+v", f)
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if _, err := (DiskReader{}).Read(cancelled, PathToURI(ok)); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestOverlay(t *testing.T) {
	ctx := context.Background()
	o := NewOverlay(nil)
	uri := "file:///virtual/a.asm"
	if _, err := o.Read(ctx, uri); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	o.Open(uri, "one\r\ntwo")
	if !o.IsOpen(uri) {
		t.Fatal("expected open buffer")
	}
	f, err := o.Read(ctx, uri)
	if err != nil || string(f.Content) != "one\ntwo" || f.Flags&FileVirtual == 0 {
		t.Fatalf("unexpected read %+v %v", f, err)
	}
	o.Close(uri)
	if o.IsOpen(uri) {
		t.Fatal("buffer should be closed")
	}
}
