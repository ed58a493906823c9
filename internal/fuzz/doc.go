// Package fuzztests holds Go fuzz harnesses for the tokenizer, the line
// model and the document model. They check that arbitrary input never
// panics or hangs and that token geometry stays inside the line.
package fuzztests
