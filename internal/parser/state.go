package parser

import "asm09/internal/symbols"

// FirstBlock is the block number a document starts in. Zero is reserved for
// the global scope.
const FirstBlock = 1

// State is the cross-line parsing context. The caller threads one State
// through the lines of a document in source order.
type State struct {
	BlockNumber int
	// LonelyLabels holds labels seen without an opcode on the previous line,
	// waiting for a documentation comment on the next one.
	LonelyLabels []*symbols.Symbol
	OpenStruct   *symbols.Symbol
	OpenMacro    *symbols.Symbol
}

// NewState returns the state for the first line of a document.
func NewState() *State {
	return &State{BlockNumber: FirstBlock}
}

// takeLonely returns the pending backlog and empties it.
func (st *State) takeLonely() []*symbols.Symbol {
	pending := st.LonelyLabels
	st.LonelyLabels = nil
	return pending
}
