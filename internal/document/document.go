// Package document builds the parsed model of one assembly source file and
// publishes its symbols to a folder's symbols.Manager.
package document

import (
	"slices"
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"asm09/internal/parser"
	"asm09/internal/symbols"
)

// FileReference is an include link found in a document.
type FileReference struct {
	URI   protocol.DocumentUri
	Range protocol.Range
}

// Block is a contiguous local-label scope region.
type Block struct {
	Number    int
	StartLine int
	EndLine   int
	// Label is the first label defined in the block, if any.
	Label   *symbols.Symbol
	Symbols []*symbols.Symbol
}

// Lines returns the number of lines the block spans.
func (b *Block) Lines() int { return b.EndLine - b.StartLine + 1 }

// Document is an immutable parse of one version of a file. Edits produce a
// new Document.
type Document struct {
	URI                 protocol.DocumentUri
	Hash                [32]byte
	Lines               []*parser.Line
	Blocks              map[int]*Block
	ReferencedDocuments []FileReference
}

// Line returns line n, or nil when out of range.
func (d *Document) Line(n int) *parser.Line {
	if n < 0 || n >= len(d.Lines) {
		return nil
	}
	return d.Lines[n]
}

// SortedBlocks returns the blocks ordered by start line.
func (d *Document) SortedBlocks() []*Block {
	out := make([]*Block, 0, len(d.Blocks))
	for _, b := range d.Blocks {
		out = append(out, b)
	}
	slices.SortFunc(out, func(a, b *Block) int { return a.StartLine - b.StartLine })
	return out
}

// ReferencedURIs returns the include targets in discovery order.
func (d *Document) ReferencedURIs() []protocol.DocumentUri {
	out := make([]protocol.DocumentUri, len(d.ReferencedDocuments))
	for i, ref := range d.ReferencedDocuments {
		out[i] = ref.URI
	}
	return out
}

// ReferenceKey serializes the referenced set: sorted uris, one per line.
// Two versions with the same key include the same documents.
func (d *Document) ReferenceKey() string {
	if d == nil {
		return ""
	}
	uris := d.ReferencedURIs()
	slices.Sort(uris)
	return strings.Join(slices.Compact(uris), "\n")
}

// BlockAt returns the recorded block containing line n, or nil.
func (d *Document) BlockAt(n int) *Block {
	for _, b := range d.Blocks {
		if n >= b.StartLine && n <= b.EndLine {
			return b
		}
	}
	return nil
}
