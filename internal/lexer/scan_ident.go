package lexer

import (
	"asm09/internal/dialect"
	"asm09/internal/token"
)

// scanExpression tokenizes an operand expression up to the first blank.
func (lx *Lexer) scanExpression() {
	for !lx.cursor.EOF() && !isSpace(lx.cursor.Peek()) {
		switch {
		case lx.scanCharLiteral():
		case lx.scanNumber():
		case lx.scanIdent():
		default:
			lx.scanOperator()
		}
	}
}

// scanIdent reads a reference, register or property name.
func (lx *Lexer) scanIdent() bool {
	if !isIdentStartByte(lx.cursor.Peek()) {
		return false
	}
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	name := lx.cursor.From(start)
	if len(name) == 1 && !isLetterOrUnderscore(name[0]) {
		// a bare marker such as '$' or '@' is not a name
		lx.cursor.Reset(start)
		return false
	}

	afterDot := lx.followsDot(int(start))
	var tok *token.Token
	switch {
	case afterDot:
		tok = lx.emitSpan(start, token.Property, token.TypeProperty, true)
	case dialect.IsRegister(name):
		tok = lx.emitSpan(start, token.Operand, token.TypeVariable, true)
		tok.Modifiers = token.ModStatic
	default:
		tok = lx.emitSpan(start, token.Reference, token.TypeVariable, true)
	}
	tok.Local = token.IsLocalName(name)
	return true
}

// followsDot reports whether the previous token is a '.' operator ending at col
// that itself follows a name.
func (lx *Lexer) followsDot(col int) bool {
	n := len(lx.out)
	if n < 2 {
		return false
	}
	dot := lx.out[n-1]
	if dot.Text != "." || dot.End() != col {
		return false
	}
	owner := lx.out[n-2]
	if owner.End() != dot.Column {
		return false
	}
	return owner.Kind == token.Reference || owner.Kind == token.Property
}

func isLetterOrUnderscore(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}
