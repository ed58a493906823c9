// Package token defines the token model for 6809/6309 assembly source lines.
// Invariants:
//   - Token.Column and Token.Length are byte offsets into the original line,
//     and Column+Length never exceeds the line length.
//   - Token.Text is exactly line[Column:Column+Length].
//   - Kind describes the role a token plays on its line; Type describes how it
//     is presented (and what it means once resolved). The two are independent.
//   - Malformed input never aborts tokenization: it yields tokens with Valid=false.
package token
