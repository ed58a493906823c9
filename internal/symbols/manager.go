package symbols

import (
	"cmp"
	"slices"
	"sync"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// Manager is the per-folder registry of definitions and references.
// Entries keep insertion order and are attributable to their document.
// All mutation goes through its methods.
type Manager struct {
	mu              sync.RWMutex
	implementations []*Symbol
	references      []*Symbol
}

// NewManager returns an empty registry.
func NewManager() *Manager {
	return &Manager{}
}

// AddImplementation appends a definition.
func (m *Manager) AddImplementation(s *Symbol) {
	m.mu.Lock()
	m.implementations = append(m.implementations, s)
	m.mu.Unlock()
}

// AddReference appends a reference.
func (m *Manager) AddReference(s *Symbol) {
	m.mu.Lock()
	m.references = append(m.references, s)
	m.mu.Unlock()
}

// ClearDocument drops every entry originating from uri. Clearing an unknown
// uri is a no-op.
func (m *Manager) ClearDocument(uri protocol.DocumentUri) {
	m.mu.Lock()
	m.clearLocked(uri)
	m.mu.Unlock()
}

// ReplaceDocument swaps all entries of uri for the given ones in one step,
// so readers never see a half-populated table for that uri.
func (m *Manager) ReplaceDocument(uri protocol.DocumentUri, impls, refs []*Symbol) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clearLocked(uri)
	m.implementations = append(m.implementations, impls...)
	m.references = append(m.references, refs...)
}

func (m *Manager) clearLocked(uri protocol.DocumentUri) {
	fromURI := func(s *Symbol) bool { return s.DocumentURI == uri }
	m.implementations = slices.DeleteFunc(m.implementations, fromURI)
	m.references = slices.DeleteFunc(m.references, fromURI)
}

// Dispose clears everything.
func (m *Manager) Dispose() {
	m.mu.Lock()
	m.implementations = nil
	m.references = nil
	m.mu.Unlock()
}

// Implementations returns a snapshot of all definitions in insertion order.
func (m *Manager) Implementations() []*Symbol {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.implementations)
}

// References returns a snapshot of all references in insertion order.
func (m *Manager) References() []*Symbol {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.references)
}

// Len returns the number of definitions and references.
func (m *Manager) Len() (impls, refs int) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.implementations), len(m.references)
}

// Find returns the definitions named name across all documents.
func (m *Manager) Find(name string) []*Symbol {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*Symbol
	for _, s := range m.implementations {
		if s.Text == name {
			out = append(out, s)
		}
	}
	return out
}

// ImplementationsIn returns the definitions of one document.
func (m *Manager) ImplementationsIn(uri protocol.DocumentUri) []*Symbol {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return filter(m.implementations, func(s *Symbol) bool { return s.DocumentURI == uri })
}

// ReferencesIn returns the references of one document.
func (m *Manager) ReferencesIn(uri protocol.DocumentUri) []*Symbol {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return filter(m.references, func(s *Symbol) bool { return s.DocumentURI == uri })
}

// ReferencesTo returns the references bound to def.
func (m *Manager) ReferencesTo(def *Symbol) []*Symbol {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return filter(m.references, func(s *Symbol) bool { return s.Definition == def })
}

func filter(in []*Symbol, keep func(*Symbol) bool) []*Symbol {
	var out []*Symbol
	for _, s := range in {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
}

// Sorted returns a copy of list ordered by name, then location.
func Sorted(list []*Symbol) []*Symbol {
	out := slices.Clone(list)
	slices.SortStableFunc(out, func(a, b *Symbol) int {
		return cmp.Or(
			cmp.Compare(a.Text, b.Text),
			cmp.Compare(a.DocumentURI, b.DocumentURI),
			cmp.Compare(a.LineNumber, b.LineNumber),
			cmp.Compare(a.Column, b.Column),
		)
	})
	return out
}
