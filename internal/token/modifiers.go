package token

import (
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// Modifiers is a bitmask of semantic modifiers.
type Modifiers uint8

const (
	ModDefinition Modifiers = 1 << iota
	ModDeclaration
	ModReadonly
	ModStatic
)

// Has reports whether all bits of m2 are set.
func (m Modifiers) Has(m2 Modifiers) bool { return m&m2 == m2 }

// Strings returns a slice of textual modifier labels.
func (m Modifiers) Strings() []string {
	if m == 0 {
		return nil
	}
	labels := make([]string, 0, 4)
	if m&ModDefinition != 0 {
		labels = append(labels, "definition")
	}
	if m&ModDeclaration != 0 {
		labels = append(labels, "declaration")
	}
	if m&ModReadonly != 0 {
		labels = append(labels, "readonly")
	}
	if m&ModStatic != 0 {
		labels = append(labels, "static")
	}
	return labels
}

func (m Modifiers) String() string {
	return strings.Join(m.Strings(), "|")
}

// SemanticTokenModifiers maps the set bits onto editor legend names.
func (m Modifiers) SemanticTokenModifiers() []protocol.SemanticTokenModifier {
	out := make([]protocol.SemanticTokenModifier, 0, 4)
	if m&ModDefinition != 0 {
		out = append(out, protocol.SemanticTokenModifierDefinition)
	}
	if m&ModDeclaration != 0 {
		out = append(out, protocol.SemanticTokenModifierDeclaration)
	}
	if m&ModReadonly != 0 {
		out = append(out, protocol.SemanticTokenModifierReadonly)
	}
	if m&ModStatic != 0 {
		out = append(out, protocol.SemanticTokenModifierStatic)
	}
	return out
}
