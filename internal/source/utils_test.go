package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRelativePathOutsideBaseFallsBackToAbsolute(t *testing.T) {
	tmp := t.TempDir()

	baseDir := filepath.Join(tmp, "base")
	otherDir := filepath.Join(tmp, "other")

	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		t.Fatalf("failed to create base dir: %v", err)
	}
	if err := os.MkdirAll(otherDir, 0o755); err != nil {
		t.Fatalf("failed to create other dir: %v", err)
	}

	target := filepath.Join(otherDir, "file.asm")

	got, err := RelativePath(target, baseDir)
	if err != nil {
		t.Fatalf("RelativePath returned error: %v", err)
	}

	want := normalizePath(target)
	if got != want {
		t.Fatalf("expected absolute fallback %q, got %q", want, got)
	}
}

func TestRelativePathInsideBaseStaysRelative(t *testing.T) {
	tmp := t.TempDir()

	baseDir := filepath.Join(tmp, "base")
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		t.Fatalf("failed to create base dir: %v", err)
	}

	target := filepath.Join(baseDir, "nested", "file.asm")
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		t.Fatalf("failed to create nested dir: %v", err)
	}

	got, err := RelativePath(target, baseDir)
	if err != nil {
		t.Fatalf("RelativePath returned error: %v", err)
	}

	want := normalizePath(filepath.Join("nested", "file.asm"))
	if got != want {
		t.Fatalf("expected relative path %q, got %q", want, got)
	}
}

func TestRelativePathOfResolvedInclude(t *testing.T) {
	baseDir := t.TempDir()
	from := PathToURI(filepath.Join(baseDir, "src", "main.asm"))

	cases := []struct {
		operand string
		want    string
	}{
		{`"defs.inc"`, "src/defs.inc"},
		{`"../inc/io.inc"`, "inc/io.inc"},
		{"<sub/macros.def>", "src/sub/macros.def"},
		{"'./sub/../hw.inc'", "src/hw.inc"},
	}
	for _, tc := range cases {
		uri, ok := ResolveInclude(from, tc.operand)
		if !ok {
			t.Fatalf("ResolveInclude(%q) failed", tc.operand)
		}
		got, err := RelativePath(URIToPath(uri), baseDir)
		if err != nil {
			t.Fatalf("RelativePath returned error: %v", err)
		}
		if got != tc.want {
			t.Fatalf("include %s: expected %q, got %q", tc.operand, tc.want, got)
		}
	}

	outside, ok := ResolveInclude(from, `"../../shared.inc"`)
	if !ok {
		t.Fatal("ResolveInclude failed for a path outside the base")
	}
	got, err := RelativePath(URIToPath(outside), baseDir)
	if err != nil {
		t.Fatalf("RelativePath returned error: %v", err)
	}
	if want := normalizePath(filepath.Join(filepath.Dir(baseDir), "shared.inc")); got != want {
		t.Fatalf("expected absolute fallback %q, got %q", want, got)
	}

	if _, ok := ResolveInclude("untitled:stdin", `"defs.inc"`); ok {
		t.Fatal("relative include from a non-file document should not resolve")
	}
}
