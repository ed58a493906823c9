package symbols

import (
	"fortio.org/safecast"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"asm09/internal/token"
)

// GlobalBlock is the block number of symbols visible document-wide.
const GlobalBlock = 0

// Symbol is a positioned occurrence of an identifier: a definition, a reference
// or a property access. The embedded token carries the text and classification.
type Symbol struct {
	token.Token

	DocumentURI protocol.DocumentUri
	LineNumber  int
	BlockNumber int
	Range       protocol.Range

	// Parent is the struct owning a property, or the reference a dotted
	// access hangs off.
	Parent     *Symbol
	Properties []*Symbol
	Children   []*Symbol

	// Definition links a reference to the label it resolves to.
	Definition *Symbol
	// Instance links a label declared by a struct invocation ("var things")
	// to the reference naming its struct.
	Instance *Symbol

	Documentation string
	Value         string
}

// New wraps tok as a symbol on line lineNumber of uri.
func New(tok token.Token, uri protocol.DocumentUri, lineNumber int) *Symbol {
	return &Symbol{
		Token:       tok,
		DocumentURI: uri,
		LineNumber:  lineNumber,
		Range: protocol.Range{
			Start: position(lineNumber, tok.Column),
			End:   position(lineNumber, tok.End()),
		},
	}
}

func position(line, col int) protocol.Position {
	l, err := safecast.Conv[protocol.UInteger](line)
	if err != nil {
		l = 0
	}
	c, err := safecast.Conv[protocol.UInteger](col)
	if err != nil {
		c = 0
	}
	return protocol.Position{Line: l, Character: c}
}

// Name returns the identifier text.
func (s *Symbol) Name() string { return s.Text }

// IsGlobal reports whether the symbol lives in the document-wide scope.
func (s *Symbol) IsGlobal() bool { return s.BlockNumber == GlobalBlock }

// VisibleFrom reports whether a definition s can satisfy a reference made in block.
func (s *Symbol) VisibleFrom(block int) bool {
	return s.BlockNumber == GlobalBlock || s.BlockNumber == block
}

// Matches reports whether def is a definition this reference may bind to.
func (s *Symbol) Matches(def *Symbol) bool {
	return def != nil && def.Text == s.Text && def.DocumentURI == s.DocumentURI && def.VisibleFrom(s.BlockNumber)
}

// Resolve binds s to def and takes over its classification.
func (s *Symbol) Resolve(def *Symbol) {
	s.Definition = def
	s.Type = def.Type
	if def.Modifiers.Has(token.ModReadonly) {
		s.Modifiers |= token.ModReadonly
	}
}

// AddProperty appends a struct member and sets its parent.
func (s *Symbol) AddProperty(p *Symbol) {
	p.Parent = s
	s.Properties = append(s.Properties, p)
}

// AddChild appends a dotted-access child reference and sets its parent.
func (s *Symbol) AddChild(c *Symbol) {
	c.Parent = s
	s.Children = append(s.Children, c)
}

// Property returns the member called name, or nil.
func (s *Symbol) Property(name string) *Symbol {
	for _, p := range s.Properties {
		if p.Text == name {
			return p
		}
	}
	return nil
}

// Struct returns the struct definition whose members a dotted access on s
// selects: s itself, its definition, or the struct s was declared as.
func (s *Symbol) Struct() *Symbol {
	for cur, depth := s, 0; cur != nil && depth < 8; depth++ {
		if cur.Type == token.TypeStruct && cur.Definition == nil {
			return cur
		}
		switch {
		case cur.Instance != nil:
			cur = cur.Instance
		case cur.Definition != nil && cur.Definition != cur:
			cur = cur.Definition
		default:
			return nil
		}
	}
	return nil
}
