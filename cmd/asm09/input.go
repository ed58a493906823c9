package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"asm09/internal/source"
)

const stdinURI = "untitled:stdin"

// readInput loads a source file named on the command line; "-" reads stdin.
func readInput(ctx context.Context, arg string) (*source.File, error) {
	if arg == "-" {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		content, flags := source.Normalize(raw)
		return source.NewFile(stdinURI, content, flags|source.FileVirtual), nil
	}
	return source.DiskReader{}.Read(ctx, source.PathToURI(arg))
}
