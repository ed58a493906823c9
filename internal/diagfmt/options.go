// Package diagfmt prints tokens, parsed lines and documents for the CLI.
package diagfmt

import (
	"fmt"

	"github.com/fatih/color"

	"asm09/internal/source"
)

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAuto uses a path relative to BaseDir when one is set.
	PathModeAuto PathMode = iota
	PathModeAbsolute
	PathModeRelative
	PathModeBasename
)

// PrettyOpts configures the human-readable printers.
type PrettyOpts struct {
	Color    bool
	PathMode PathMode
	BaseDir  string
	Width    int // text column width, 0 means unlimited
}

// DisplayPath renders uri according to the path mode.
func (o PrettyOpts) DisplayPath(uri string) string {
	path := source.URIToPath(uri)
	if path == "" {
		return uri
	}
	switch o.PathMode {
	case PathModeAbsolute:
		return path
	case PathModeBasename:
		return source.BaseName(path)
	case PathModeRelative, PathModeAuto:
		if o.BaseDir == "" {
			return path
		}
		if rel, err := source.RelativePath(path, o.BaseDir); err == nil {
			return rel
		}
	}
	return path
}

// paint returns a sprint function that colours only when enabled.
func (o PrettyOpts) paint(attrs ...color.Attribute) func(a ...any) string {
	if !o.Color {
		return fmt.Sprint
	}
	c := color.New(attrs...)
	c.EnableColor()
	return c.Sprint
}
