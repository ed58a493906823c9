package lexer

import "asm09/internal/token"

var twoCharOps = [...]string{"&&", "||", "++", "--"}

// scanOperator emits a two-character operator when one matches, otherwise
// a single byte. Operators never fail.
func (lx *Lexer) scanOperator() {
	start := lx.cursor.Mark()
	if b0, b1, ok := lx.cursor.Peek2(); ok {
		pair := string([]byte{b0, b1})
		for _, op := range twoCharOps {
			if pair == op {
				lx.cursor.Advance(2)
				lx.emitSpan(start, token.Ignore, token.TypeOperator, true)
				return
			}
		}
	}
	lx.cursor.Bump()
	lx.emitSpan(start, token.Ignore, token.TypeOperator, true)
}
