package source

import (
	"context"
	"fmt"
	"os"
	"sync"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// Reader supplies document content by uri. Errors wrap ErrNotFound,
// ErrPermission or ErrUnsupportedURI where they apply.
type Reader interface {
	Read(ctx context.Context, uri protocol.DocumentUri) (*File, error)
}

// DiskReader reads file:// documents from the local filesystem.
type DiskReader struct{}

// Read loads and normalizes the file behind uri.
func (DiskReader) Read(ctx context.Context, uri protocol.DocumentUri) (*File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path := URIToPath(uri)
	if path == "" {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedURI, uri)
	}
	// #nosec G304 -- path comes from a workspace uri
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", uri, classify(err))
	}
	content, flags := Normalize(raw)
	return NewFile(uri, content, flags), nil
}

// Overlay serves open editor buffers and falls back to another Reader for
// everything else.
type Overlay struct {
	mu       sync.RWMutex
	buffers  map[protocol.DocumentUri][]byte
	fallback Reader
}

// NewOverlay layers open buffers over fallback. A nil fallback makes every
// unknown uri ErrNotFound.
func NewOverlay(fallback Reader) *Overlay {
	return &Overlay{
		buffers:  make(map[protocol.DocumentUri][]byte),
		fallback: fallback,
	}
}

// Open records the buffer text for uri, replacing any previous version.
func (o *Overlay) Open(uri protocol.DocumentUri, text string) {
	content, _ := Normalize([]byte(text))
	o.mu.Lock()
	o.buffers[uri] = content
	o.mu.Unlock()
}

// Close forgets the buffer for uri.
func (o *Overlay) Close(uri protocol.DocumentUri) {
	o.mu.Lock()
	delete(o.buffers, uri)
	o.mu.Unlock()
}

// IsOpen reports whether uri has a buffer.
func (o *Overlay) IsOpen(uri protocol.DocumentUri) bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	_, ok := o.buffers[uri]
	return ok
}

// Read returns the open buffer for uri, or defers to the fallback.
func (o *Overlay) Read(ctx context.Context, uri protocol.DocumentUri) (*File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	o.mu.RLock()
	content, ok := o.buffers[uri]
	o.mu.RUnlock()
	if ok {
		return NewFile(uri, content, FileVirtual), nil
	}
	if o.fallback == nil {
		return nil, fmt.Errorf("read %s: %w", uri, ErrNotFound)
	}
	return o.fallback.Read(ctx, uri)
}
