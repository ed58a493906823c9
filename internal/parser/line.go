package parser

import (
	"asm09/internal/symbols"
	"asm09/internal/token"
)

// Line is the semantic record of one source line.
type Line struct {
	LineNumber  int
	BlockNumber int
	Text        string
	Tokens      []token.Token

	Label   *symbols.Symbol
	OpCode  *token.Token
	Operand string
	Comment *token.Token
	File    *token.Token

	// References holds reference-kind symbols in operand order, including a
	// macro or struct invocation named in the opcode field.
	References []*symbols.Symbol
	// Properties holds dotted-access members; each has its owner as Parent.
	Properties []*symbols.Symbol
}

// IsBlank reports whether the line had no tokens at all.
func (l *Line) IsBlank() bool { return len(l.Tokens) == 0 }

// IsCommentOnly reports whether the line carries a comment and nothing else
// apart from a line number.
func (l *Line) IsCommentOnly() bool {
	if l.Comment == nil {
		return false
	}
	for _, tok := range l.Tokens {
		if tok.Kind != token.Comment && tok.Kind != token.Ignore {
			return false
		}
	}
	return true
}

// Symbols returns the label, references and properties of the line.
func (l *Line) Symbols() []*symbols.Symbol {
	out := make([]*symbols.Symbol, 0, 1+len(l.References)+len(l.Properties))
	if l.Label != nil {
		out = append(out, l.Label)
	}
	out = append(out, l.References...)
	return append(out, l.Properties...)
}
