package dialect

import "fmt"

// Processor names the instruction set an entry belongs to.
type Processor uint8

const (
	ProcessorNone Processor = iota
	Processor6809
	Processor6309
	ProcessorAssembler // pseudo-ops
)

func (p Processor) String() string {
	switch p {
	case Processor6809:
		return "6809"
	case Processor6309:
		return "6309"
	case ProcessorAssembler:
		return "assembler"
	default:
		return "none"
	}
}

// ParseProcessor converts a documentation-table spelling into a Processor.
func ParseProcessor(s string) (Processor, error) {
	switch s {
	case "6809":
		return Processor6809, nil
	case "6309":
		return Processor6309, nil
	case "asm", "assembler", "pseudo":
		return ProcessorAssembler, nil
	default:
		return ProcessorNone, fmt.Errorf("unknown processor %q (expected: 6809|6309|asm)", s)
	}
}

// OpClass is the membership class of a word in the opcode field.
type OpClass uint8

const (
	// ClassUnknown is any word outside the tables; the lexer presumes a macro or struct invocation.
	ClassUnknown OpClass = iota
	// ClassInherent is an instruction that takes no operand.
	ClassInherent
	// ClassOperand is an instruction that requires an operand.
	ClassOperand
	// ClassInherentPseudo is a directive that takes no operand.
	ClassInherentPseudo
	// ClassPseudo is a directive with an operand.
	ClassPseudo
)

func (c OpClass) String() string {
	switch c {
	case ClassInherent:
		return "inherent"
	case ClassOperand:
		return "operand"
	case ClassInherentPseudo:
		return "inherent-pseudo"
	case ClassPseudo:
		return "pseudo"
	default:
		return "unknown"
	}
}

// ParseClass is the inverse of OpClass.String for the known classes.
func ParseClass(s string) (OpClass, error) {
	for _, c := range []OpClass{ClassInherent, ClassOperand, ClassInherentPseudo, ClassPseudo} {
		if c.String() == s {
			return c, nil
		}
	}
	return ClassUnknown, fmt.Errorf("unknown class %q (expected: inherent|operand|inherent-pseudo|pseudo)", s)
}

// Known reports whether the class comes from one of the tables.
func (c OpClass) Known() bool { return c != ClassUnknown }

// OperandMode selects the operand grammar the lexer applies after an opcode.
type OperandMode uint8

const (
	// OperandNone: nothing is lexed as operand; trailing text is a comment.
	OperandNone OperandMode = iota
	// OperandExpression: left-to-right expression tokens.
	OperandExpression
	// OperandDelimited: a (delim)...(delim) string.
	OperandDelimited
	// OperandPragma: comma-separated parameter list.
	OperandPragma
	// OperandFile: an include path.
	OperandFile
	// OperandText: the rest of the line as one string.
	OperandText
)

func (m OperandMode) String() string {
	switch m {
	case OperandExpression:
		return "expression"
	case OperandDelimited:
		return "delimited"
	case OperandPragma:
		return "pragma"
	case OperandFile:
		return "file"
	case OperandText:
		return "text"
	default:
		return "none"
	}
}

// Role tags the pseudo-ops whose presence changes how the line model treats a label.
type Role uint8

const (
	RoleNone Role = iota
	RoleConstant
	RoleStorage
	RoleData
	RoleMacroOpen
	RoleMacroClose
	RoleStructOpen
	RoleStructClose
	RoleExternal
	RoleInclude
)

func (r Role) String() string {
	switch r {
	case RoleConstant:
		return "constant"
	case RoleStorage:
		return "storage"
	case RoleData:
		return "data"
	case RoleMacroOpen:
		return "macro-open"
	case RoleMacroClose:
		return "macro-close"
	case RoleStructOpen:
		return "struct-open"
	case RoleStructClose:
		return "struct-close"
	case RoleExternal:
		return "external"
	case RoleInclude:
		return "include"
	default:
		return "none"
	}
}

// Entry is one row of the classification tables.
type Entry struct {
	Name      string
	Class     OpClass
	Mode      OperandMode
	Role      Role
	Processor Processor
}
