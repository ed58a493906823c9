// Package export serializes a folder's index for tools outside the process.
package export

import (
	"encoding/hex"

	"asm09/internal/document"
	"asm09/internal/observ"
	"asm09/internal/symbols"
	"asm09/internal/workspace"
)

// SchemaVersion is bumped whenever Snapshot changes shape.
const SchemaVersion uint16 = 1

// Snapshot is the serializable index of one folder.
type Snapshot struct {
	Schema     uint16           `json:"schema" msgpack:"schema"`
	Root       string           `json:"root" msgpack:"root"`
	Documents  []DocumentEntry  `json:"documents" msgpack:"documents"`
	Symbols    []SymbolEntry    `json:"symbols" msgpack:"symbols"`
	References []ReferenceEntry `json:"references" msgpack:"references"`
	Timing     *observ.Report   `json:"timing,omitempty" msgpack:"timing,omitempty"`
}

type DocumentEntry struct {
	URI      string       `json:"uri" msgpack:"uri"`
	Hash     string       `json:"hash" msgpack:"hash"`
	Lines    int          `json:"lines" msgpack:"lines"`
	Blocks   []BlockEntry `json:"blocks,omitempty" msgpack:"blocks,omitempty"`
	Includes []string     `json:"includes,omitempty" msgpack:"includes,omitempty"`
}

type BlockEntry struct {
	Number int    `json:"number" msgpack:"number"`
	Start  int    `json:"start" msgpack:"start"`
	End    int    `json:"end" msgpack:"end"`
	Label  string `json:"label,omitempty" msgpack:"label,omitempty"`
}

// Location is a zero-based position in a document.
type Location struct {
	URI    string `json:"uri" msgpack:"uri"`
	Line   int    `json:"line" msgpack:"line"`
	Column int    `json:"column" msgpack:"column"`
}

type SymbolEntry struct {
	Name          string   `json:"name" msgpack:"name"`
	Location      Location `json:"location" msgpack:"location"`
	Length        int      `json:"length" msgpack:"length"`
	Block         int      `json:"block" msgpack:"block"`
	Type          string   `json:"type" msgpack:"type"`
	Modifiers     []string `json:"modifiers,omitempty" msgpack:"modifiers,omitempty"`
	Documentation string   `json:"documentation,omitempty" msgpack:"documentation,omitempty"`
	Value         string   `json:"value,omitempty" msgpack:"value,omitempty"`
	Properties    []string `json:"properties,omitempty" msgpack:"properties,omitempty"`
}

type ReferenceEntry struct {
	Name       string    `json:"name" msgpack:"name"`
	Location   Location  `json:"location" msgpack:"location"`
	Definition *Location `json:"definition,omitempty" msgpack:"definition,omitempty"`
}

// Build captures the current state of f.
func Build(f *workspace.Folder, timing *observ.Report) *Snapshot {
	snap := &Snapshot{
		Schema: SchemaVersion,
		Root:   f.Root(),
		Timing: timing,
	}
	for _, doc := range f.Documents() {
		snap.Documents = append(snap.Documents, documentEntry(doc))
	}
	mgr := f.Symbols()
	for _, s := range symbols.Sorted(mgr.Implementations()) {
		snap.Symbols = append(snap.Symbols, symbolEntry(s))
	}
	for _, s := range symbols.Sorted(mgr.References()) {
		ref := ReferenceEntry{Name: s.Text, Location: location(s)}
		if s.Definition != nil {
			def := location(s.Definition)
			ref.Definition = &def
		}
		snap.References = append(snap.References, ref)
	}
	return snap
}

func documentEntry(doc *document.Document) DocumentEntry {
	e := DocumentEntry{
		URI:      doc.URI,
		Hash:     hex.EncodeToString(doc.Hash[:]),
		Lines:    len(doc.Lines),
		Includes: doc.ReferencedURIs(),
	}
	for _, b := range doc.SortedBlocks() {
		be := BlockEntry{Number: b.Number, Start: b.StartLine, End: b.EndLine}
		if b.Label != nil {
			be.Label = b.Label.Text
		}
		e.Blocks = append(e.Blocks, be)
	}
	return e
}

func symbolEntry(s *symbols.Symbol) SymbolEntry {
	e := SymbolEntry{
		Name:          s.Text,
		Location:      location(s),
		Length:        s.Length,
		Block:         s.BlockNumber,
		Type:          s.Type.String(),
		Modifiers:     s.Modifiers.Strings(),
		Documentation: s.Documentation,
		Value:         s.Value,
	}
	for _, p := range s.Properties {
		e.Properties = append(e.Properties, p.Text)
	}
	return e
}

func location(s *symbols.Symbol) Location {
	return Location{URI: s.DocumentURI, Line: s.LineNumber, Column: s.Column}
}
