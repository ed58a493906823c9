package workspace

import (
	"context"
	"slices"
	"strings"
	"sync"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"asm09/internal/document"
	"asm09/internal/source"
	"asm09/internal/trace"
)

// Workspace routes documents to the folder whose root contains them. Documents
// outside every root land in a synthetic folder.
type Workspace struct {
	reader source.Reader

	mu      sync.RWMutex
	folders []*Folder
	loose   *Folder
}

// New creates a workspace with no roots.
func New(reader source.Reader) *Workspace {
	return &Workspace{
		reader: reader,
		loose:  NewFolder("", reader),
	}
}

// AddFolder registers root and returns its folder. Adding an existing root
// returns the folder already registered.
func (w *Workspace) AddFolder(ctx context.Context, root protocol.DocumentUri) *Folder {
	root = strings.TrimSuffix(root, "/")
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, f := range w.folders {
		if f.root == root {
			return f
		}
	}
	f := NewFolder(root, w.reader)
	w.folders = append(w.folders, f)
	// longest root first so FolderFor picks the innermost match
	slices.SortFunc(w.folders, func(a, b *Folder) int {
		if d := len(b.root) - len(a.root); d != 0 {
			return d
		}
		return strings.Compare(a.root, b.root)
	})
	trace.Log(trace.FromContext(ctx), trace.LevelInfo, trace.ScopeFolder, "workspace.add-folder",
		"folder added", "root", root)
	return f
}

// RemoveFolder disposes the folder for root.
func (w *Workspace) RemoveFolder(ctx context.Context, root protocol.DocumentUri) bool {
	root = strings.TrimSuffix(root, "/")
	w.mu.Lock()
	idx := slices.IndexFunc(w.folders, func(f *Folder) bool { return f.root == root })
	if idx < 0 {
		w.mu.Unlock()
		return false
	}
	f := w.folders[idx]
	w.folders = slices.Delete(w.folders, idx, idx+1)
	w.mu.Unlock()

	f.Dispose()
	trace.Log(trace.FromContext(ctx), trace.LevelInfo, trace.ScopeFolder, "workspace.remove-folder",
		"folder removed", "root", root)
	return true
}

// FolderFor returns the innermost folder containing uri, or the synthetic
// folder.
func (w *Workspace) FolderFor(uri protocol.DocumentUri) *Folder {
	w.mu.RLock()
	defer w.mu.RUnlock()
	for _, f := range w.folders {
		if f.Contains(uri) {
			return f
		}
	}
	return w.loose
}

// Folders returns the registered roots' folders, innermost first.
func (w *Workspace) Folders() []*Folder {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return slices.Clone(w.folders)
}

// Loose returns the synthetic folder.
func (w *Workspace) Loose() *Folder { return w.loose }

// Set parses uri in its folder.
func (w *Workspace) Set(ctx context.Context, uri protocol.DocumentUri) *document.Document {
	return w.FolderFor(uri).Set(ctx, uri)
}

// Get looks uri up in its folder.
func (w *Workspace) Get(uri protocol.DocumentUri) (*document.Document, bool) {
	return w.FolderFor(uri).Get(uri)
}

// Delete removes uri from its folder.
func (w *Workspace) Delete(uri protocol.DocumentUri) {
	w.FolderFor(uri).Delete(uri)
}

// Dispose drops every folder.
func (w *Workspace) Dispose() {
	w.mu.Lock()
	folders := w.folders
	w.folders = nil
	w.mu.Unlock()
	for _, f := range folders {
		f.Dispose()
	}
	w.loose.Dispose()
}
