package diagfmt

import (
	"encoding/json"
	"io"

	"asm09/internal/parser"
	"asm09/internal/symbols"
)

// SymbolJSON is the JSON form of a line symbol.
type SymbolJSON struct {
	Name       string       `json:"name"`
	Column     int          `json:"column"`
	Type       string       `json:"type"`
	Modifiers  []string     `json:"modifiers,omitempty"`
	Block      int          `json:"block"`
	Value      string       `json:"value,omitempty"`
	Doc        string       `json:"documentation,omitempty"`
	Properties []SymbolJSON `json:"properties,omitempty"`
}

// LineJSON is the JSON form of a parsed line.
type LineJSON struct {
	Line       int           `json:"line"`
	Block      int           `json:"block"`
	Text       string        `json:"text"`
	Label      *SymbolJSON   `json:"label,omitempty"`
	OpCode     string        `json:"opcode,omitempty"`
	Operand    string        `json:"operand,omitempty"`
	Comment    string        `json:"comment,omitempty"`
	File       string        `json:"file,omitempty"`
	References []SymbolJSON  `json:"references,omitempty"`
	Tokens     []TokenOutput `json:"tokens,omitempty"`
}

// LineOutput converts a parsed line. Tokens are included when withTokens is set.
func LineOutput(line *parser.Line, withTokens bool) LineJSON {
	out := LineJSON{
		Line:    line.LineNumber,
		Block:   line.BlockNumber,
		Text:    line.Text,
		Operand: line.Operand,
	}
	if line.Label != nil {
		l := symbolJSON(line.Label)
		out.Label = &l
	}
	if line.OpCode != nil {
		out.OpCode = line.OpCode.Text
	}
	if line.Comment != nil {
		out.Comment = line.Comment.Text
	}
	if line.File != nil {
		out.File = line.File.Text
	}
	for _, r := range line.References {
		out.References = append(out.References, symbolJSON(r))
	}
	if withTokens {
		out.Tokens = TokensOutput(line.Tokens)
	}
	return out
}

func symbolJSON(s *symbols.Symbol) SymbolJSON {
	out := SymbolJSON{
		Name:      s.Text,
		Column:    s.Column,
		Type:      s.Type.String(),
		Modifiers: s.Modifiers.Strings(),
		Block:     s.BlockNumber,
		Value:     s.Value,
		Doc:       s.Documentation,
	}
	for _, p := range s.Properties {
		out.Properties = append(out.Properties, symbolJSON(p))
	}
	for _, c := range s.Children {
		out.Properties = append(out.Properties, symbolJSON(c))
	}
	return out
}

// FormatLinesJSON writes parsed lines as a JSON array.
func FormatLinesJSON(w io.Writer, lines []LineJSON) error {
	if lines == nil {
		lines = []LineJSON{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(lines)
}
