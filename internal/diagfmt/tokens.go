package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"asm09/internal/token"
)

type TokenOutput struct {
	Kind      string   `json:"kind"`
	Type      string   `json:"type"`
	Modifiers []string `json:"modifiers,omitempty"`
	Text      string   `json:"text"`
	Column    int      `json:"column"`
	Length    int      `json:"length"`
	Valid     bool     `json:"valid"`
	Local     bool     `json:"local,omitempty"`
}

// LineTokensOutput groups the tokens of one source line.
type LineTokensOutput struct {
	Line   int           `json:"line"`
	Text   string        `json:"text"`
	Tokens []TokenOutput `json:"tokens"`
}

// FormatTokensPretty prints one row per token of a line:
//
//	  1: Label         label       0-5    "start"
func FormatTokensPretty(w io.Writer, lineNumber int, toks []token.Token, opts PrettyOpts) error {
	kind := opts.paint(color.FgCyan)
	bad := opts.paint(color.FgRed, color.Bold)
	dim := opts.paint(color.Faint)

	textWidth := 0
	for _, tok := range toks {
		textWidth = max(textWidth, runewidth.StringWidth(strconv.Quote(tok.Text)))
	}
	if opts.Width > 0 {
		textWidth = min(textWidth, opts.Width)
	}

	for i, tok := range toks {
		text := strconv.Quote(tok.Text)
		if opts.Width > 0 {
			text = runewidth.Truncate(text, opts.Width, "...")
		}
		text = runewidth.FillRight(text, textWidth)
		if !tok.Valid {
			text = bad(text)
		}
		span := fmt.Sprintf("%d:%d-%d", lineNumber+1, tok.Column, tok.End())
		if _, err := fmt.Fprintf(w, "%3d: %s %-9s %-10s %s", i+1,
			kind(fmt.Sprintf("%-13s", tok.Kind)), tok.Type, span, text); err != nil {
			return err
		}
		if mods := tok.Modifiers.String(); mods != "" {
			fmt.Fprintf(w, " %s", dim("["+mods+"]"))
		}
		if tok.Local {
			fmt.Fprintf(w, " %s", dim("local"))
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// TokensOutput converts tokens to their JSON form.
func TokensOutput(toks []token.Token) []TokenOutput {
	out := make([]TokenOutput, 0, len(toks))
	for _, tok := range toks {
		out = append(out, TokenOutput{
			Kind:      tok.Kind.String(),
			Type:      tok.Type.String(),
			Modifiers: tok.Modifiers.Strings(),
			Text:      tok.Text,
			Column:    tok.Column,
			Length:    tok.Length,
			Valid:     tok.Valid,
			Local:     tok.Local,
		})
	}
	return out
}

// FormatTokensJSON writes the tokens of several lines as one JSON array.
func FormatTokensJSON(w io.Writer, lines []LineTokensOutput) error {
	if lines == nil {
		lines = []LineTokensOutput{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(lines)
}
