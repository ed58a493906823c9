package document

import (
	"context"
	"errors"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"asm09/internal/dialect"
	"asm09/internal/parser"
	"asm09/internal/source"
	"asm09/internal/symbols"
	"asm09/internal/trace"
)

// cancelCheckInterval is how many lines are parsed between context polls.
const cancelCheckInterval = 512

// Create reads uri through reader and parses it. A read failure is logged as
// "document.read" and yields nil; cancellation yields nil without a log.
func Create(ctx context.Context, uri protocol.DocumentUri, reader source.Reader, mgr *symbols.Manager) *Document {
	if ctx.Err() != nil {
		return nil
	}
	file, err := reader.Read(ctx, uri)
	if err != nil {
		if isCancel(err) {
			return nil
		}
		trace.Log(trace.FromContext(ctx), trace.LevelError, trace.ScopeDocument, "document.read",
			err.Error(), "uri", uri, "reason", ReadFailure(err))
		return nil
	}
	return Parse(ctx, file, mgr)
}

// ReadFailure names the class of a content source error.
func ReadFailure(err error) string {
	switch {
	case errors.Is(err, source.ErrNotFound):
		return "not-found"
	case errors.Is(err, source.ErrPermission):
		return "permission-denied"
	case errors.Is(err, source.ErrUnsupportedURI):
		return "unsupported-uri"
	default:
		return "other"
	}
}

func isCancel(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// Parse builds a Document from already loaded content and replaces the
// symbols of file.URI in mgr. Nothing is published when ctx is cancelled
// before parsing completes.
func Parse(ctx context.Context, file *source.File, mgr *symbols.Manager) *Document {
	if ctx.Err() != nil {
		return nil
	}
	trace.Log(trace.FromContext(ctx), trace.LevelDebug, trace.ScopeDocument, "document.parse",
		"parsing document", "uri", file.URI)

	b := newBuilder(file.URI)
	b.tr = trace.FromContext(ctx)
	for i, text := range file.Lines() {
		if i > 0 && i%cancelCheckInterval == 0 && ctx.Err() != nil {
			return nil
		}
		b.add(parser.ParseLine(file.URI, text, b.state, i))
	}
	doc := b.finish()
	doc.Hash = file.Hash

	if ctx.Err() != nil {
		return nil
	}
	mgr.ReplaceDocument(file.URI, b.impls, b.refs)
	return doc
}

// builder accumulates one document's model before it is published.
type builder struct {
	doc   *Document
	state *parser.State
	block *Block
	tr    trace.Tracer

	openStruct *symbols.Symbol
	openMacro  *symbols.Symbol

	impls      []*symbols.Symbol
	refs       []*symbols.Symbol
	unresolved []*symbols.Symbol
	props      []*symbols.Symbol
	seen       map[protocol.DocumentUri]struct{}
}

func newBuilder(uri protocol.DocumentUri) *builder {
	st := parser.NewState()
	return &builder{
		doc: &Document{
			URI:    uri,
			Blocks: make(map[int]*Block),
		},
		state: st,
		block: &Block{Number: st.BlockNumber},
		seen:  make(map[protocol.DocumentUri]struct{}),
	}
}

func (b *builder) add(line *parser.Line) {
	b.doc.Lines = append(b.doc.Lines, line)
	if line.BlockNumber != b.block.Number {
		b.closeBlock(line.LineNumber - 1)
		b.block = &Block{Number: line.BlockNumber, StartLine: line.LineNumber}
	}

	if label := line.Label; label != nil {
		b.define(label)
	}
	for _, ref := range line.References {
		b.reference(ref)
	}
	for _, prop := range line.Properties {
		b.refs = append(b.refs, prop)
		b.props = append(b.props, prop)
	}
	if line.File != nil && line.OpCode != nil && dialect.RoleOf(line.OpCode.Text) == dialect.RoleInclude {
		b.include(line)
	}
	b.openStruct = b.traceScope(line.LineNumber, "struct", b.openStruct, b.state.OpenStruct)
	b.openMacro = b.traceScope(line.LineNumber, "macro", b.openMacro, b.state.OpenMacro)
}

// traceScope logs a struct or macro scope opening or closing on line n and
// returns the scope now open.
func (b *builder) traceScope(n int, kind string, was, now *symbols.Symbol) *symbols.Symbol {
	switch {
	case was == now:
	case now != nil:
		trace.Tracef(b.tr, trace.ScopeLine, "line.scope", "line %d: %s %s opened", n+1, kind, now.Text)
	default:
		trace.Tracef(b.tr, trace.ScopeLine, "line.scope", "line %d: %s %s closed", n+1, kind, was.Text)
	}
	return now
}

// define records a label and binds any earlier reference waiting for it.
// Struct members are recorded but only resolve through their struct.
func (b *builder) define(label *symbols.Symbol) {
	b.block.Symbols = append(b.block.Symbols, label)
	if b.block.Label == nil {
		b.block.Label = label
	}
	b.impls = append(b.impls, label)
	if label.Parent != nil {
		return
	}

	pending := b.unresolved[:0]
	for _, ref := range b.unresolved {
		if ref.Matches(label) {
			ref.Resolve(label)
			continue
		}
		pending = append(pending, ref)
	}
	b.unresolved = pending
}

func (b *builder) reference(ref *symbols.Symbol) {
	b.refs = append(b.refs, ref)
	if def := lookup(b.impls, ref); def != nil {
		ref.Resolve(def)
		return
	}
	b.unresolved = append(b.unresolved, ref)
}

// lookup prefers a definition in the reference's own block over a global one.
func lookup(defs []*symbols.Symbol, ref *symbols.Symbol) *symbols.Symbol {
	var global *symbols.Symbol
	for _, def := range defs {
		if def.Parent != nil || !ref.Matches(def) {
			continue
		}
		if def.BlockNumber == ref.BlockNumber {
			return def
		}
		if global == nil {
			global = def
		}
	}
	return global
}

func (b *builder) include(line *parser.Line) {
	target, ok := source.ResolveInclude(b.doc.URI, line.File.Text)
	if !ok {
		return
	}
	if _, dup := b.seen[target]; dup {
		return
	}
	b.seen[target] = struct{}{}
	ref := symbols.New(*line.File, b.doc.URI, line.LineNumber)
	b.doc.ReferencedDocuments = append(b.doc.ReferencedDocuments, FileReference{
		URI:   target,
		Range: ref.Range,
	})
}

// closeBlock records the current block unless it covers a single line.
func (b *builder) closeBlock(end int) {
	b.block.EndLine = end
	if b.block.EndLine > b.block.StartLine {
		b.doc.Blocks[b.block.Number] = b.block
	}
}

func (b *builder) finish() *Document {
	b.closeBlock(len(b.doc.Lines) - 1)
	for _, prop := range b.props {
		resolveProperty(prop)
	}
	return b.doc
}

// resolveProperty binds a dotted member access to the struct member it names.
func resolveProperty(prop *symbols.Symbol) {
	if prop.Parent == nil {
		return
	}
	st := prop.Parent.Struct()
	if st == nil {
		return
	}
	if member := st.Property(prop.Text); member != nil {
		prop.Resolve(member)
	}
}
