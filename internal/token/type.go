package token

import (
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// Type classifies how a token is presented and what it denotes.
type Type uint8

const (
	TypeClass Type = iota
	TypeFunction
	TypeStruct
	TypeVariable
	TypeLabel
	TypeProperty
	TypeMacro
	TypeString
	TypeComment
	TypeKeyword
	TypeNumber
	TypeOperator
	TypeType
	TypeParameter
	TypeNamespace
)

var typeNames = [...]string{
	TypeClass:     "class",
	TypeFunction:  "function",
	TypeStruct:    "struct",
	TypeVariable:  "variable",
	TypeLabel:     "label",
	TypeProperty:  "property",
	TypeMacro:     "macro",
	TypeString:    "string",
	TypeComment:   "comment",
	TypeKeyword:   "keyword",
	TypeNumber:    "number",
	TypeOperator:  "operator",
	TypeType:      "type",
	TypeParameter: "parameter",
	TypeNamespace: "namespace",
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "unknown"
}

// SemanticTokenType maps the type onto the editor legend name.
// "label" is not part of the 3.16 predefined set, so it is passed through as a custom type.
func (t Type) SemanticTokenType() protocol.SemanticTokenType {
	switch t {
	case TypeClass:
		return protocol.SemanticTokenTypeClass
	case TypeFunction:
		return protocol.SemanticTokenTypeFunction
	case TypeStruct:
		return protocol.SemanticTokenTypeStruct
	case TypeVariable:
		return protocol.SemanticTokenTypeVariable
	case TypeProperty:
		return protocol.SemanticTokenTypeProperty
	case TypeMacro:
		return protocol.SemanticTokenTypeMacro
	case TypeString:
		return protocol.SemanticTokenTypeString
	case TypeComment:
		return protocol.SemanticTokenTypeComment
	case TypeKeyword:
		return protocol.SemanticTokenTypeKeyword
	case TypeNumber:
		return protocol.SemanticTokenTypeNumber
	case TypeOperator:
		return protocol.SemanticTokenTypeOperator
	case TypeType:
		return protocol.SemanticTokenTypeType
	case TypeParameter:
		return protocol.SemanticTokenTypeParameter
	case TypeNamespace:
		return protocol.SemanticTokenTypeNamespace
	default:
		return protocol.SemanticTokenType(t.String())
	}
}

// Legend lists every type in index order, as advertised to editors.
func Legend() []string {
	out := make([]string, len(typeNames))
	copy(out, typeNames[:])
	return out
}
