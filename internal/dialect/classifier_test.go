package dialect

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		want OpClass
	}{
		{"rts", ClassInherent},
		{"RTS", ClassInherent},
		{"sexw", ClassInherent},
		{"lda", ClassOperand},
		{"LdQ", ClassOperand},
		{"endm", ClassInherentPseudo},
		{"struct", ClassInherentPseudo},
		{"equ", ClassPseudo},
		{"include", ClassPseudo},
		{"*pragma", ClassPseudo},
		{"things", ClassUnknown},
		{"", ClassUnknown},
	}
	for _, tc := range tests {
		if got := Classify(tc.name); got != tc.want {
			t.Errorf("Classify(%q) = %v; want %v", tc.name, got, tc.want)
		}
	}
}

func TestModeAndRole(t *testing.T) {
	tests := []struct {
		name string
		mode OperandMode
		role Role
	}{
		{"fcc", OperandDelimited, RoleData},
		{"pragma", OperandPragma, RoleNone},
		{"include", OperandFile, RoleInclude},
		{"nam", OperandText, RoleNone},
		{"rmb", OperandExpression, RoleStorage},
		{"equ", OperandExpression, RoleConstant},
		{"set", OperandExpression, RoleConstant},
		{"macro", OperandNone, RoleMacroOpen},
		{"ends", OperandNone, RoleStructClose},
		{"export", OperandExpression, RoleExternal},
		{"nop", OperandNone, RoleNone},
		{"mymacro", OperandExpression, RoleNone},
	}
	for _, tc := range tests {
		if got := ModeOf(tc.name); got != tc.mode {
			t.Errorf("ModeOf(%q) = %v; want %v", tc.name, got, tc.mode)
		}
		if got := RoleOf(tc.name); got != tc.role {
			t.Errorf("RoleOf(%q) = %v; want %v", tc.name, got, tc.role)
		}
	}
}

func TestIsRegister(t *testing.T) {
	for _, r := range []string{"a", "B", "pcr", "DP", "w", "md"} {
		if !IsRegister(r) {
			t.Errorf("%q should be a register", r)
		}
	}
	for _, r := range []string{"ab", "test", "pcx", ""} {
		if IsRegister(r) {
			t.Errorf("%q must not be a register", r)
		}
	}
}

func TestProcessorOfEntries(t *testing.T) {
	if e, ok := Lookup("ldq"); !ok || e.Processor != Processor6309 {
		t.Fatalf("ldq should be a 6309 opcode: %+v", e)
	}
	if e, ok := Lookup("lda"); !ok || e.Processor != Processor6809 {
		t.Fatalf("lda should be a 6809 opcode: %+v", e)
	}
	if e, ok := Lookup("fcb"); !ok || e.Processor != ProcessorAssembler {
		t.Fatalf("fcb should be a pseudo-op: %+v", e)
	}
	if _, err := ParseProcessor("z80"); err == nil {
		t.Fatalf("expected error for unknown processor")
	}
}

func TestNamesNonEmpty(t *testing.T) {
	for _, c := range []OpClass{ClassInherent, ClassOperand, ClassInherentPseudo, ClassPseudo} {
		if len(Names(c)) == 0 {
			t.Errorf("no names for class %v", c)
		}
	}
}
