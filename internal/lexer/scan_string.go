package lexer

import "asm09/internal/token"

// scanDelimited reads a /text/ style operand where the first byte is the delimiter.
func (lx *Lexer) scanDelimited() {
	start := lx.cursor.Mark()
	delim := lx.cursor.Bump()
	closed := false
	for !lx.cursor.EOF() {
		if lx.cursor.Bump() == delim {
			closed = true
			break
		}
	}
	if !closed {
		lx.cursor.Off = trimmedEnd(lx.cursor.Line, int(start)+1)
	}
	lx.emitSpan(start, token.Operand, token.TypeString, closed)
	if !closed {
		lx.cursor.Off = len(lx.cursor.Line)
	}
}

// scanPragmaList splits a comma separated option list.
func (lx *Lexer) scanPragmaList() {
	for !lx.cursor.EOF() && !isSpace(lx.cursor.Peek()) {
		if lx.cursor.Peek() == ',' {
			comma := lx.cursor.Mark()
			lx.cursor.Bump()
			lx.emitSpan(comma, token.Ignore, token.TypeOperator, true)
			continue
		}
		start := lx.cursor.Mark()
		for !lx.cursor.EOF() {
			b := lx.cursor.Peek()
			if b == ',' || isSpace(b) {
				break
			}
			lx.cursor.Bump()
		}
		lx.emitSpan(start, token.Parameter, token.TypeParameter, true)
	}
}

// scanFilePath reads an include path. A quoted path ends at its closing quote,
// a bare one at the first blank.
func (lx *Lexer) scanFilePath() {
	start := lx.cursor.Mark()
	q := lx.cursor.Peek()
	if q == '"' || q == '\'' || q == '<' {
		if q == '<' {
			q = '>'
		}
		lx.cursor.Bump()
		closed := false
		for !lx.cursor.EOF() {
			if lx.cursor.Bump() == q {
				closed = true
				break
			}
		}
		if !closed {
			lx.cursor.Off = trimmedEnd(lx.cursor.Line, int(start)+1)
		}
		lx.emitSpan(start, token.File, token.TypeString, closed)
		return
	}
	lx.cursor.SkipWord()
	lx.emitSpan(start, token.File, token.TypeString, true)
}

// scanText takes the rest of the line verbatim, right-trimmed.
func (lx *Lexer) scanText() {
	start := lx.cursor.Off
	end := trimmedEnd(lx.cursor.Line, start)
	if end == start {
		return
	}
	lx.cursor.Off = end
	lx.emitSpan(Mark(start), token.Operand, token.TypeString, true)
	lx.cursor.Off = len(lx.cursor.Line)
}
