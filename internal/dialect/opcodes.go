package dialect

var inherent6809 = []string{
	"abx", "asla", "aslb", "asra", "asrb", "clra", "clrb", "coma", "comb",
	"daa", "deca", "decb", "inca", "incb", "lsla", "lslb", "lsra", "lsrb",
	"mul", "nega", "negb", "nop", "rola", "rolb", "rora", "rorb", "rti",
	"rts", "sex", "swi", "swi2", "swi3", "sync", "tsta", "tstb",
}

var inherent6309 = []string{
	"asld", "clrd", "clre", "clrf", "clrw", "comd", "come", "comf", "comw",
	"decd", "dece", "decf", "decw", "incd", "ince", "incf", "incw", "lsld",
	"lsrd", "lsrw", "negd", "pshsw", "pshuw", "pulsw", "puluw", "rold",
	"rolw", "rord", "rorw", "sexw", "tstd", "tste", "tstf", "tstw",
}

var operand6809 = []string{
	"adca", "adcb", "adda", "addb", "addd", "anda", "andb", "andcc", "asl",
	"asr", "bcc", "bcs", "beq", "bge", "bgt", "bhi", "bhs", "bita", "bitb",
	"ble", "blo", "bls", "blt", "bmi", "bne", "bpl", "bra", "brn", "bsr",
	"bvc", "bvs", "clr", "cmpa", "cmpb", "cmpd", "cmps", "cmpu", "cmpx",
	"cmpy", "com", "cwai", "dec", "eora", "eorb", "exg", "inc", "jmp",
	"jsr", "lbcc", "lbcs", "lbeq", "lbge", "lbgt", "lbhi", "lbhs", "lble",
	"lblo", "lbls", "lblt", "lbmi", "lbne", "lbpl", "lbra", "lbrn", "lbsr",
	"lbvc", "lbvs", "lda", "ldb", "ldd", "lds", "ldu", "ldx", "ldy", "leas",
	"leau", "leax", "leay", "lsl", "lsr", "neg", "ora", "orb", "orcc",
	"pshs", "pshu", "puls", "pulu", "rol", "ror", "sbca", "sbcb", "sta",
	"stb", "std", "sts", "stu", "stx", "sty", "suba", "subb", "subd", "tfr",
	"tst",
}

var operand6309 = []string{
	"adcd", "adcr", "adde", "addf", "addr", "addw", "aim", "andd", "andr",
	"band", "beor", "biand", "bieor", "bior", "bitd", "bitmd", "bor",
	"cmpe", "cmpf", "cmpr", "cmpw", "divd", "divq", "eim", "eord", "eorr",
	"lde", "ldf", "ldw", "ldbt", "ldmd", "ldq", "muld", "oim", "ord", "orr",
	"sbcd", "sbcr", "ste", "stf", "stw", "stbt", "stq", "sube", "subf",
	"subr", "subw", "tfm", "tim",
}

type pseudoRow struct {
	name string
	mode OperandMode
	role Role
}

var inherentPseudo = []pseudoRow{
	{"else", OperandNone, RoleNone},
	{"endc", OperandNone, RoleNone},
	{"endif", OperandNone, RoleNone},
	{"endm", OperandNone, RoleMacroClose},
	{"endmacro", OperandNone, RoleMacroClose},
	{"ends", OperandNone, RoleStructClose},
	{"endstruct", OperandNone, RoleStructClose},
	{"endsect", OperandNone, RoleNone},
	{"endsection", OperandNone, RoleNone},
	{"macro", OperandNone, RoleMacroOpen},
	{"struct", OperandNone, RoleStructOpen},
	{"reorg", OperandNone, RoleNone},
	{"emod", OperandNone, RoleNone},
	// label-form "sym export"; a symbol list operand is also accepted
	{"export", OperandExpression, RoleExternal},
	{"extern", OperandExpression, RoleExternal},
	{"external", OperandExpression, RoleExternal},
	{"extdep", OperandExpression, RoleExternal},
	{"import", OperandExpression, RoleExternal},
}

var pseudo = []pseudoRow{
	{"org", OperandExpression, RoleNone},
	{"equ", OperandExpression, RoleConstant},
	{"set", OperandExpression, RoleConstant},
	{"fcb", OperandExpression, RoleData},
	{"fdb", OperandExpression, RoleData},
	{"fqb", OperandExpression, RoleData},
	{".byte", OperandExpression, RoleData},
	{".word", OperandExpression, RoleData},
	{"fill", OperandExpression, RoleData},
	{"rmb", OperandExpression, RoleStorage},
	{"rmd", OperandExpression, RoleStorage},
	{"rmq", OperandExpression, RoleStorage},
	{"zmb", OperandExpression, RoleStorage},
	{"zmd", OperandExpression, RoleStorage},
	{"zmq", OperandExpression, RoleStorage},
	{"rzb", OperandExpression, RoleStorage},
	{"align", OperandExpression, RoleNone},
	{"setdp", OperandExpression, RoleNone},
	{"end", OperandExpression, RoleNone},
	{"mod", OperandExpression, RoleNone},
	{"os9", OperandExpression, RoleNone},
	{"if", OperandExpression, RoleNone},
	{"ifeq", OperandExpression, RoleNone},
	{"ifne", OperandExpression, RoleNone},
	{"ifgt", OperandExpression, RoleNone},
	{"ifge", OperandExpression, RoleNone},
	{"iflt", OperandExpression, RoleNone},
	{"ifle", OperandExpression, RoleNone},
	{"ifdef", OperandExpression, RoleNone},
	{"ifndef", OperandExpression, RoleNone},
	{"ifpragma", OperandPragma, RoleNone},
	{"fcc", OperandDelimited, RoleData},
	{"fcn", OperandDelimited, RoleData},
	{"fcs", OperandDelimited, RoleData},
	{"pragma", OperandPragma, RoleNone},
	{"*pragma", OperandPragma, RoleNone},
	{"*pragmapush", OperandPragma, RoleNone},
	{"*pragmapop", OperandPragma, RoleNone},
	{"opt", OperandPragma, RoleNone},
	{"include", OperandFile, RoleInclude},
	{"use", OperandFile, RoleInclude},
	{"includebin", OperandFile, RoleInclude},
	{"nam", OperandText, RoleNone},
	{"ttl", OperandText, RoleNone},
	{"title", OperandText, RoleNone},
	{"error", OperandText, RoleNone},
	{"warning", OperandText, RoleNone},
	{"section", OperandText, RoleNone},
	{"sect", OperandText, RoleNone},
}

var registers = []string{
	"a", "b", "cc", "d", "dp", "e", "f", "md", "pc", "pcr", "q", "s", "u",
	"v", "w", "x", "y", "z",
}
