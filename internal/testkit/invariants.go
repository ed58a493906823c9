package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"asm09/internal/token"
)

// CheckTokens runs the span invariants on one tokenized line:
// 1) every valid token is non-empty and every token ends within the line
// 2) token text equals the line slice it claims to cover
// 3) tokens are ordered and never overlap
func CheckTokens(line string, toks []token.Token) error {
	lenLine, err := safecast.Conv[uint32](len(line))
	if err != nil {
		return fmt.Errorf("line length overflow: %w", err)
	}
	prevEnd := 0
	for i, tok := range toks {
		if tok.Length < 0 || (tok.Length == 0 && tok.Valid) {
			return fmt.Errorf("token %d %q: empty span", i, tok.Text)
		}
		end, err := safecast.Conv[uint32](tok.Column + tok.Length)
		if err != nil {
			return fmt.Errorf("token %d %q: %w", i, tok.Text, err)
		}
		if tok.Column < 0 || end > lenLine {
			return fmt.Errorf("token %d %q: span [%d,%d) beyond line length %d", i, tok.Text, tok.Column, end, lenLine)
		}
		if got := line[tok.Column:tok.End()]; got != tok.Text {
			return fmt.Errorf("token %d: text %q does not match line slice %q", i, tok.Text, got)
		}
		if tok.Column < prevEnd {
			return fmt.Errorf("token %d %q starts at %d inside previous token ending at %d", i, tok.Text, tok.Column, prevEnd)
		}
		prevEnd = tok.End()
	}
	return nil
}
