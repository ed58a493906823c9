package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"asm09/internal/document"
	"asm09/internal/parser"
	"asm09/internal/symbols"
)

// FormatLinePretty prints the fields the line model derived from one line.
// Blank and comment-only lines print only their header.
func FormatLinePretty(w io.Writer, line *parser.Line, opts PrettyOpts) {
	head := opts.paint(color.Bold)
	label := opts.paint(color.FgYellow)
	ref := opts.paint(color.FgGreen)

	fmt.Fprintf(w, "%s block %d  %q\n", head(fmt.Sprintf("%4d", line.LineNumber+1)), line.BlockNumber, line.Text)
	if l := line.Label; l != nil {
		fmt.Fprintf(w, "      label    %s %s\n", label(l.Text), describe(l))
	}
	if op := line.OpCode; op != nil {
		fmt.Fprintf(w, "      opcode   %s (%s)\n", op.Text, op.Kind)
	}
	if line.Operand != "" {
		fmt.Fprintf(w, "      operand  %s\n", line.Operand)
	}
	if f := line.File; f != nil {
		fmt.Fprintf(w, "      file     %s\n", f.Text)
	}
	for _, r := range line.References {
		fmt.Fprintf(w, "      ref      %s %s\n", ref(chain(r)), describe(r))
	}
	if c := line.Comment; c != nil {
		fmt.Fprintf(w, "      comment  %s\n", c.Text)
	}
}

// FormatDocumentPretty prints a document's blocks, definitions and includes.
func FormatDocumentPretty(w io.Writer, doc *document.Document, mgr *symbols.Manager, opts PrettyOpts) {
	head := opts.paint(color.Bold, color.FgCyan)
	label := opts.paint(color.FgYellow)
	warn := opts.paint(color.FgRed)

	fmt.Fprintf(w, "%s  %d lines\n", head(opts.DisplayPath(doc.URI)), len(doc.Lines))

	if blocks := doc.SortedBlocks(); len(blocks) > 0 {
		fmt.Fprintln(w, "blocks:")
		for _, b := range blocks {
			name := ""
			if b.Label != nil {
				name = label(b.Label.Text)
			}
			fmt.Fprintf(w, "  #%-4d %4d-%-4d %s\n", b.Number, b.StartLine+1, b.EndLine+1, name)
		}
	}

	if defs := symbols.Sorted(mgr.ImplementationsIn(doc.URI)); len(defs) > 0 {
		fmt.Fprintln(w, "definitions:")
		for _, s := range defs {
			fmt.Fprintf(w, "  %-24s %4d:%-3d %s\n", label(s.Text), s.LineNumber+1, s.Column, describe(s))
			if s.Documentation != "" {
				for _, line := range strings.Split(s.Documentation, "\n") {
					fmt.Fprintf(w, "      ; %s\n", line)
				}
			}
		}
	}

	refs := mgr.ReferencesIn(doc.URI)
	unresolved := 0
	for _, r := range refs {
		if r.Definition == nil {
			unresolved++
		}
	}
	fmt.Fprintf(w, "references: %d", len(refs))
	if unresolved > 0 {
		fmt.Fprintf(w, " (%s)", warn(fmt.Sprintf("%d unresolved", unresolved)))
	}
	fmt.Fprintln(w)

	for _, inc := range doc.ReferencedDocuments {
		fmt.Fprintf(w, "includes %s (line %d)\n", opts.DisplayPath(inc.URI), inc.Range.Start.Line+1)
	}
}

// describe renders the semantic class of a symbol, e.g. "variable [readonly|definition] = $10".
func describe(s *symbols.Symbol) string {
	var b strings.Builder
	b.WriteString(s.Type.String())
	if mods := s.Modifiers.String(); mods != "" {
		b.WriteString(" [" + mods + "]")
	}
	if s.Local {
		fmt.Fprintf(&b, " local@%d", s.BlockNumber)
	}
	if s.Value != "" {
		b.WriteString(" = " + s.Value)
	}
	if s.Instance != nil {
		b.WriteString(" of " + s.Instance.Text)
	}
	if len(s.Properties) > 0 {
		names := make([]string, len(s.Properties))
		for i, p := range s.Properties {
			names[i] = p.Text
		}
		b.WriteString(" {" + strings.Join(names, ", ") + "}")
	}
	if s.Kind.IsSymbolic() && s.Definition != nil {
		fmt.Fprintf(&b, " -> %d:%d", s.Definition.LineNumber+1, s.Definition.Column)
	}
	return b.String()
}

// chain renders a reference with its dotted properties.
func chain(s *symbols.Symbol) string {
	parts := []string{s.Text}
	for len(s.Children) > 0 {
		s = s.Children[0]
		parts = append(parts, s.Text)
	}
	return strings.Join(parts, ".")
}
