// Package workspace indexes folders of assembly documents: it owns the
// document tables and symbol registries and follows include links.
package workspace

import (
	"context"
	"slices"
	"strings"
	"sync"

	difflib "github.com/pmezard/go-difflib/difflib"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"asm09/internal/document"
	"asm09/internal/source"
	"asm09/internal/symbols"
	"asm09/internal/trace"
)

// Folder is one parse and index domain: a workspace root, or the synthetic
// folder for documents outside every root (Root == "").
type Folder struct {
	root    protocol.DocumentUri
	reader  source.Reader
	symbols *symbols.Manager

	mu        sync.Mutex
	documents map[protocol.DocumentUri]*document.Document
	inflight  map[protocol.DocumentUri]struct{}
}

// NewFolder creates an empty folder reading content through reader.
func NewFolder(root protocol.DocumentUri, reader source.Reader) *Folder {
	return &Folder{
		root:      root,
		reader:    reader,
		symbols:   symbols.NewManager(),
		documents: make(map[protocol.DocumentUri]*document.Document),
		inflight:  make(map[protocol.DocumentUri]struct{}),
	}
}

// Root returns the folder root uri, "" for the synthetic folder.
func (f *Folder) Root() protocol.DocumentUri { return f.root }

// Symbols returns the folder's symbol registry.
func (f *Folder) Symbols() *symbols.Manager { return f.symbols }

// Set parses uri and registers the result. When the document's referenced
// set changed (or it is new), referenced documents not yet in the folder are
// parsed too, breadth first. It returns nil when the document could not be
// read or ctx was cancelled.
func (f *Folder) Set(ctx context.Context, uri protocol.DocumentUri) *document.Document {
	prev, _ := f.Get(uri)
	doc := document.Create(ctx, uri, f.reader, f.symbols)
	if doc == nil {
		return nil
	}
	f.store(doc)
	f.afterUpdate(ctx, prev, doc)
	return doc
}

// SetFile is Set for content already in hand.
func (f *Folder) SetFile(ctx context.Context, file *source.File) *document.Document {
	prev, _ := f.Get(file.URI)
	doc := document.Parse(ctx, file, f.symbols)
	if doc == nil {
		return nil
	}
	f.store(doc)
	f.afterUpdate(ctx, prev, doc)
	return doc
}

func (f *Folder) afterUpdate(ctx context.Context, prev, doc *document.Document) {
	tr := trace.FromContext(ctx)
	if prev != nil {
		oldKey, newKey := prev.ReferenceKey(), doc.ReferenceKey()
		if oldKey == newKey {
			trace.Log(tr, trace.LevelDebug, trace.ScopeFolder, "folder.skip-references",
				"not updating references", "uri", doc.URI)
			return
		}
		if tr.Level().Allows(trace.LevelDebug) {
			trace.Log(tr, trace.LevelDebug, trace.ScopeFolder, "folder.references-changed",
				referenceDiff(oldKey, newKey), "uri", doc.URI)
		}
	}
	f.follow(ctx, doc)
}

// follow parses the documents reachable from root that the folder does not
// hold yet. Table membership is the cycle guard.
func (f *Folder) follow(ctx context.Context, root *document.Document) {
	tr := trace.FromContext(ctx)
	queue := root.ReferencedURIs()
	for len(queue) > 0 {
		uri := queue[0]
		queue = queue[1:]
		if !f.claim(uri) {
			continue
		}
		if ctx.Err() != nil {
			f.release(uri)
			return
		}
		trace.Log(tr, trace.LevelInfo, trace.ScopeFolder, "folder.scan-reference",
			"scanning referenced document", "uri", uri, "from", root.URI)
		doc := document.Create(ctx, uri, f.reader, f.symbols)
		if doc != nil {
			f.store(doc)
			queue = append(queue, doc.ReferencedURIs()...)
		}
		f.release(uri)
	}
}

// claim marks uri as being fetched. It fails when the folder already holds
// the document or another fetch is running.
func (f *Folder) claim(uri protocol.DocumentUri) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.documents[uri]; ok {
		return false
	}
	if _, ok := f.inflight[uri]; ok {
		return false
	}
	f.inflight[uri] = struct{}{}
	return true
}

func (f *Folder) release(uri protocol.DocumentUri) {
	f.mu.Lock()
	delete(f.inflight, uri)
	f.mu.Unlock()
}

func (f *Folder) store(doc *document.Document) {
	f.mu.Lock()
	f.documents[doc.URI] = doc
	f.mu.Unlock()
}

// Delete removes a document and its symbols.
func (f *Folder) Delete(uri protocol.DocumentUri) {
	f.mu.Lock()
	delete(f.documents, uri)
	f.mu.Unlock()
	f.symbols.ClearDocument(uri)
}

// Rename moves a document to a new uri by re-parsing it there.
func (f *Folder) Rename(ctx context.Context, from, to protocol.DocumentUri) *document.Document {
	f.Delete(from)
	return f.Set(ctx, to)
}

// Get returns the current document for uri.
func (f *Folder) Get(uri protocol.DocumentUri) (*document.Document, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	doc, ok := f.documents[uri]
	return doc, ok
}

// Has reports whether the folder holds uri.
func (f *Folder) Has(uri protocol.DocumentUri) bool {
	_, ok := f.Get(uri)
	return ok
}

// Documents returns the held documents ordered by uri.
func (f *Folder) Documents() []*document.Document {
	f.mu.Lock()
	out := make([]*document.Document, 0, len(f.documents))
	for _, doc := range f.documents {
		out = append(out, doc)
	}
	f.mu.Unlock()
	slices.SortFunc(out, func(a, b *document.Document) int { return strings.Compare(a.URI, b.URI) })
	return out
}

// Dispose drops every document and symbol.
func (f *Folder) Dispose() {
	f.mu.Lock()
	clear(f.documents)
	f.mu.Unlock()
	f.symbols.Dispose()
}

// Contains reports whether uri lies under the folder root. The synthetic
// folder contains nothing.
func (f *Folder) Contains(uri protocol.DocumentUri) bool {
	if f.root == "" {
		return false
	}
	root := strings.TrimSuffix(f.root, "/")
	return uri == root || strings.HasPrefix(uri, root+"/")
}

func referenceDiff(oldKey, newKey string) string {
	diff := difflib.UnifiedDiff{
		A:        splitKey(oldKey),
		B:        splitKey(newKey),
		FromFile: "previous",
		ToFile:   "current",
		Context:  1,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return err.Error()
	}
	return strings.TrimRight(text, "\n")
}

func splitKey(key string) []string {
	if key == "" {
		return nil
	}
	return difflib.SplitLines(key)
}
