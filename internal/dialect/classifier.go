package dialect

import "strings"

var (
	entries  map[string]Entry
	regIndex map[string]struct{}
)

func init() {
	entries = make(map[string]Entry, 256)
	addOpcodes(inherent6809, ClassInherent, OperandNone, Processor6809)
	addOpcodes(inherent6309, ClassInherent, OperandNone, Processor6309)
	addOpcodes(operand6809, ClassOperand, OperandExpression, Processor6809)
	addOpcodes(operand6309, ClassOperand, OperandExpression, Processor6309)
	addPseudo(inherentPseudo, ClassInherentPseudo)
	addPseudo(pseudo, ClassPseudo)

	regIndex = make(map[string]struct{}, len(registers))
	for _, r := range registers {
		regIndex[r] = struct{}{}
	}
}

func addOpcodes(names []string, class OpClass, mode OperandMode, cpu Processor) {
	for _, name := range names {
		entries[name] = Entry{Name: name, Class: class, Mode: mode, Processor: cpu}
	}
}

func addPseudo(rows []pseudoRow, class OpClass) {
	for _, row := range rows {
		entries[row.name] = Entry{
			Name:      row.name,
			Class:     class,
			Mode:      row.mode,
			Role:      row.role,
			Processor: ProcessorAssembler,
		}
	}
}

// Lookup returns the table entry for an opcode-field word. Case is ignored.
func Lookup(name string) (Entry, bool) {
	e, ok := entries[strings.ToLower(name)]
	return e, ok
}

// Classify returns the membership class of an opcode-field word.
func Classify(name string) OpClass {
	if e, ok := Lookup(name); ok {
		return e.Class
	}
	return ClassUnknown
}

// ModeOf returns the operand grammar for a word. Unknown words are treated as
// macro or struct invocations whose arguments are expressions.
func ModeOf(name string) OperandMode {
	if e, ok := Lookup(name); ok {
		return e.Mode
	}
	return OperandExpression
}

// RoleOf returns the label-affecting role of a word.
func RoleOf(name string) Role {
	if e, ok := Lookup(name); ok {
		return e.Role
	}
	return RoleNone
}

// IsRegister reports whether an identifier names a CPU register.
func IsRegister(name string) bool {
	_, ok := regIndex[strings.ToLower(name)]
	return ok
}

// Names returns every table entry name of the given class, unordered.
func Names(class OpClass) []string {
	out := make([]string, 0, 64)
	for name, e := range entries {
		if e.Class == class {
			out = append(out, name)
		}
	}
	return out
}
