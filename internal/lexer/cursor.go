package lexer

// Cursor is a byte position inside a single source line.
type Cursor struct {
	Line string
	Off  int
}

// NewCursor creates a cursor at the start of line.
func NewCursor(line string) Cursor {
	return Cursor{Line: line}
}

// EOF reports whether the cursor is past the last byte.
func (c *Cursor) EOF() bool {
	return c.Off >= len(c.Line)
}

// Peek returns the current byte, or 0 at EOF.
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.Line[c.Off]
}

// PeekAt returns the byte n positions ahead, or 0 past the end.
func (c *Cursor) PeekAt(n int) byte {
	if c.Off+n >= len(c.Line) || c.Off+n < 0 {
		return 0
	}
	return c.Line[c.Off+n]
}

// Peek2 returns the current and next byte if both exist.
func (c *Cursor) Peek2() (b0, b1 byte, ok bool) {
	if c.Off+1 >= len(c.Line) {
		return 0, 0, false
	}
	return c.Line[c.Off], c.Line[c.Off+1], true
}

// Bump advances one byte and returns it.
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.Line[c.Off]
	c.Off++
	return b
}

// Advance moves the cursor n bytes forward, clamped to the line end.
func (c *Cursor) Advance(n int) {
	c.Off += n
	if c.Off > len(c.Line) {
		c.Off = len(c.Line)
	}
}

// Eat consumes the next byte if it matches b.
func (c *Cursor) Eat(b byte) bool {
	if !c.EOF() && c.Line[c.Off] == b {
		c.Off++
		return true
	}
	return false
}

// Mark is a saved cursor position.
type Mark int

// Mark saves the current position.
func (c *Cursor) Mark() Mark { return Mark(c.Off) }

// Reset moves the cursor back to m.
func (c *Cursor) Reset(m Mark) { c.Off = int(m) }

// From returns the text between m and the cursor.
func (c *Cursor) From(m Mark) string { return c.Line[int(m):c.Off] }

// Rest returns the unread part of the line.
func (c *Cursor) Rest() string {
	if c.EOF() {
		return ""
	}
	return c.Line[c.Off:]
}

// SkipSpace consumes blanks and tabs.
func (c *Cursor) SkipSpace() {
	for !c.EOF() && isSpace(c.Line[c.Off]) {
		c.Off++
	}
}

// AtBlankRest reports whether only whitespace remains.
func (c *Cursor) AtBlankRest() bool {
	for i := c.Off; i < len(c.Line); i++ {
		if !isSpace(c.Line[i]) {
			return false
		}
	}
	return true
}

// SkipWord consumes a run of non-whitespace bytes.
func (c *Cursor) SkipWord() {
	for !c.EOF() && !isSpace(c.Line[c.Off]) {
		c.Off++
	}
}
