package token

// Kind classifies the role of a token on its line.
type Kind uint8

const (
	// Ignore marks tokens with no symbolic role (line numbers, separators, operators).
	Ignore Kind = iota
	// Label is the identifier in the label field.
	Label
	// OpCode is a recognized instruction or pseudo-op.
	OpCode
	// Operand is a literal or register inside the operand field.
	Operand
	// Reference is an identifier used inside an operand expression.
	Reference
	// Comment is a comment, either a full line or trailing.
	Comment
	// File is an include path operand.
	File
	// Parameter is one entry of a pragma list.
	Parameter
	// Property is a dotted member access following a reference.
	Property
	// MacroOrStruct is an unknown word in the opcode field, presumed to invoke a macro or struct.
	MacroOrStruct
)

func (k Kind) String() string {
	switch k {
	case Ignore:
		return "ignore"
	case Label:
		return "label"
	case OpCode:
		return "opCode"
	case Operand:
		return "operand"
	case Reference:
		return "reference"
	case Comment:
		return "comment"
	case File:
		return "file"
	case Parameter:
		return "parameter"
	case Property:
		return "property"
	case MacroOrStruct:
		return "macroOrStruct"
	default:
		return "unknown"
	}
}

// IsSymbolic reports whether tokens of this kind name something that
// the line model turns into a Symbol.
func (k Kind) IsSymbolic() bool {
	switch k {
	case Label, Reference, Property, MacroOrStruct:
		return true
	default:
		return false
	}
}
