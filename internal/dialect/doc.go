// Package dialect holds the classification tables of the 6809/6309 assembly
// dialect: inherent opcodes, operand opcodes, pseudo-ops and registers.
//
// Lookups are case-insensitive and return tagged values (OpClass, OperandMode)
// rather than relying on any per-opcode behavior.
package dialect
