package lexer

import (
	"asm09/internal/token"
)

// Supported literal forms:
//
//	hex      $7F80  0x7F80  7F80H  0FFH
//	octal    @755   755o    755q
//	binary   %1010  1010b
//	decimal  42     &42
//	char     'A     "AB
//
// A literal must not run into identifier characters ("$ab_x" is an identifier).

// scanCharLiteral handles 'x and "xy.
func (lx *Lexer) scanCharLiteral() bool {
	var width int
	switch lx.cursor.Peek() {
	case '\'':
		width = 2
	case '"':
		width = 3
	default:
		return false
	}
	start := lx.cursor.Mark()
	avail := len(lx.cursor.Line) - lx.cursor.Off
	valid := avail >= width
	if !valid {
		width = avail
	}
	lx.cursor.Advance(width)
	lx.emitSpan(start, token.Operand, token.TypeNumber, valid)
	return true
}

func (lx *Lexer) scanNumber() bool {
	switch {
	case lx.scanPrefixed('$', 1, isHex),
		lx.scanHexC(),
		lx.scanSuffixed(isHex, "hH", true),
		lx.scanPrefixed('@', 1, isOct),
		lx.scanSuffixed(isOct, "oOqQ", false),
		lx.scanPrefixed('%', 1, isBin),
		lx.scanSuffixed(isBin, "bB", false),
		lx.scanPrefixed('&', 1, isDec),
		lx.scanDecimal():
		return true
	}
	if isDec(lx.cursor.Peek()) {
		// digits running into letters that fit no literal form
		start := lx.cursor.Mark()
		for isIdentContinueByte(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		lx.emitSpan(start, token.Operand, token.TypeNumber, false)
		return true
	}
	return false
}

// scanPrefixed matches prefix followed by at least one digit of the class.
func (lx *Lexer) scanPrefixed(prefix byte, prefixLen int, digit func(byte) bool) bool {
	if lx.cursor.Peek() != prefix {
		return false
	}
	start := lx.cursor.Mark()
	lx.cursor.Advance(prefixLen)
	n := 0
	for digit(lx.cursor.Peek()) {
		lx.cursor.Bump()
		n++
	}
	if n == 0 || isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Reset(start)
		return false
	}
	lx.emitSpan(start, token.Operand, token.TypeNumber, true)
	return true
}

func (lx *Lexer) scanHexC() bool {
	b0, b1, ok := lx.cursor.Peek2()
	if !ok || b0 != '0' || (b1 != 'x' && b1 != 'X') {
		return false
	}
	start := lx.cursor.Mark()
	lx.cursor.Advance(2)
	n := 0
	for isHex(lx.cursor.Peek()) {
		lx.cursor.Bump()
		n++
	}
	if n == 0 || isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Reset(start)
		return false
	}
	lx.emitSpan(start, token.Operand, token.TypeNumber, true)
	return true
}

// scanSuffixed matches a digit run closed by one of the suffix bytes.
// Hex runs must start with a decimal digit so that "FFh" stays an identifier.
func (lx *Lexer) scanSuffixed(digit func(byte) bool, suffixes string, decimalLead bool) bool {
	first := lx.cursor.Peek()
	if !digit(first) || (decimalLead && !isDec(first)) {
		return false
	}
	start := lx.cursor.Mark()
	for digit(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	if !hasByte(suffixes, lx.cursor.Peek()) {
		lx.cursor.Reset(start)
		return false
	}
	lx.cursor.Bump()
	if isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Reset(start)
		return false
	}
	lx.emitSpan(start, token.Operand, token.TypeNumber, true)
	return true
}

func (lx *Lexer) scanDecimal() bool {
	if !isDec(lx.cursor.Peek()) {
		return false
	}
	start := lx.cursor.Mark()
	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	if isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Reset(start)
		return false
	}
	lx.emitSpan(start, token.Operand, token.TypeNumber, true)
	return true
}

func hasByte(set string, b byte) bool {
	if b == 0 {
		return false
	}
	for i := 0; i < len(set); i++ {
		if set[i] == b {
			return true
		}
	}
	return false
}
