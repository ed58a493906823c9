package lexer

import (
	"strings"

	"asm09/internal/dialect"
	"asm09/internal/token"
)

// Lexer tokenizes one line. It holds no state between lines.
type Lexer struct {
	cursor Cursor
	out    []token.Token
}

// Tokenize converts one source line into its ordered token stream.
// The grammar is [linenumber] [label[:]] [ws opcode [ws operand]] [ws comment];
// each step below may end the line.
func Tokenize(line string) []token.Token {
	if strings.TrimSpace(line) == "" {
		return nil
	}
	lx := &Lexer{
		cursor: NewCursor(line),
		out:    make([]token.Token, 0, 8),
	}
	lx.run()
	return lx.out
}

func (lx *Lexer) run() {
	if !lx.scanLineNumber() {
		return
	}
	if lx.scanCommentLine() {
		return
	}
	if !lx.scanLabel() {
		return
	}

	lx.cursor.SkipSpace()
	if lx.cursor.EOF() {
		return
	}
	if isCommentMarker(lx.cursor.Peek()) && !lx.atStarPseudo() {
		lx.emitRestAsComment()
		return
	}

	op := lx.scanOpcode()
	lx.cursor.SkipSpace()
	if lx.cursor.EOF() {
		return
	}

	switch dialect.ModeOf(op) {
	case dialect.OperandNone:
		lx.emitRestAsComment()
		return
	case dialect.OperandText:
		lx.scanText()
		return
	case dialect.OperandDelimited:
		lx.scanDelimited()
	case dialect.OperandPragma:
		lx.scanPragmaList()
	case dialect.OperandFile:
		lx.scanFilePath()
	case dialect.OperandExpression:
		if lx.cursor.Peek() == ';' {
			lx.emitRestAsComment()
			return
		}
		lx.scanExpression()
	}
	lx.scanTrailingComment()
}

// emitSpan appends a token covering [start, cursor).
func (lx *Lexer) emitSpan(start Mark, kind token.Kind, typ token.Type, valid bool) *token.Token {
	text := lx.cursor.From(start)
	lx.out = append(lx.out, token.Token{
		Text:   text,
		Column: int(start),
		Length: len(text),
		Kind:   kind,
		Type:   typ,
		Valid:  valid,
	})
	return &lx.out[len(lx.out)-1]
}

// scanLineNumber consumes an optional leading decimal line number and one separator.
// It reports false when nothing but whitespace follows.
func (lx *Lexer) scanLineNumber() bool {
	if !isDec(lx.cursor.Peek()) {
		return true
	}
	start := lx.cursor.Mark()
	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	if !lx.cursor.EOF() && !isSpace(lx.cursor.Peek()) {
		// "10abc" is a (malformed) label, not a line number
		lx.cursor.Reset(start)
		return true
	}
	lx.emitSpan(start, token.Ignore, token.TypeLabel, true)
	if lx.cursor.AtBlankRest() {
		return false
	}
	lx.cursor.Bump()
	return true
}

// scanCommentLine handles lines whose first non-blank byte is '*' or ';'.
func (lx *Lexer) scanCommentLine() bool {
	start := lx.cursor.Mark()
	lx.cursor.SkipSpace()
	if !isCommentMarker(lx.cursor.Peek()) {
		lx.cursor.Reset(start)
		return false
	}
	if lx.cursor.Mark() != start && lx.atStarPseudo() {
		lx.cursor.Reset(start)
		return false
	}
	lx.emitRestAsComment()
	return true
}

// atStarPseudo reports whether the cursor sits on "*pragma"-style pseudo-op.
func (lx *Lexer) atStarPseudo() bool {
	if lx.cursor.Peek() != '*' {
		return false
	}
	m := lx.cursor.Mark()
	lx.cursor.SkipWord()
	word := lx.cursor.From(m)
	lx.cursor.Reset(m)
	return dialect.Classify(word).Known()
}

// scanLabel reads the label field. It reports false when the line ends after it.
func (lx *Lexer) scanLabel() bool {
	if lx.cursor.EOF() || isSpace(lx.cursor.Peek()) {
		return true
	}
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if isSpace(b) || b == ':' {
			break
		}
		lx.cursor.Bump()
	}
	name := lx.cursor.From(start)
	tok := lx.emitSpan(start, token.Label, token.TypeLabel, name != "" && isValidLabel(name))
	tok.Local = token.IsLocalName(name)
	tok.Modifiers = token.ModDefinition

	if lx.cursor.Peek() == ':' {
		colon := lx.cursor.Mark()
		lx.cursor.Bump()
		lx.emitSpan(colon, token.Ignore, token.TypeOperator, true)
	}
	return !lx.cursor.AtBlankRest()
}

// scanOpcode reads the opcode field and returns its text.
func (lx *Lexer) scanOpcode() string {
	start := lx.cursor.Mark()
	lx.cursor.SkipWord()
	word := lx.cursor.From(start)
	if dialect.Classify(word).Known() {
		lx.emitSpan(start, token.OpCode, token.TypeKeyword, true)
		return word
	}
	lx.emitSpan(start, token.MacroOrStruct, token.TypeMacro, isValidLabel(word))
	return word
}

// emitRestAsComment emits the remainder of the line, right-trimmed, as a comment.
func (lx *Lexer) emitRestAsComment() {
	start := lx.cursor.Off
	end := trimmedEnd(lx.cursor.Line, start)
	if end == start {
		lx.cursor.Off = len(lx.cursor.Line)
		return
	}
	lx.cursor.Off = end
	lx.emitSpan(Mark(start), token.Comment, token.TypeComment, true)
	lx.cursor.Off = len(lx.cursor.Line)
}

// scanTrailingComment turns anything left after the operand into a comment.
func (lx *Lexer) scanTrailingComment() {
	lx.cursor.SkipSpace()
	if lx.cursor.EOF() {
		return
	}
	lx.emitRestAsComment()
}
