package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"asm09/internal/diagfmt"
	"asm09/internal/lexer"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.asm",
	Short: "Tokenize an assembly source file",
	Long:  `Tokenize prints the tokens of every line of a source file ("-" reads stdin)`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	tokenizeCmd.Flags().Int("line", 0, "only tokenize this 1-based line")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	only, err := cmd.Flags().GetInt("line")
	if err != nil {
		return fmt.Errorf("failed to get line flag: %w", err)
	}

	file, err := readInput(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}
	lines := file.Lines()
	if only < 0 || only > len(lines) {
		return fmt.Errorf("line %d out of range (file has %d lines)", only, len(lines))
	}

	out := cmd.OutOrStdout()
	opts := diagfmt.PrettyOpts{Color: useColor(cmd, os.Stdout)}
	var collected []diagfmt.LineTokensOutput
	for i, text := range lines {
		if only > 0 && i != only-1 {
			continue
		}
		toks := lexer.Tokenize(text)
		switch format {
		case "pretty":
			if len(toks) == 0 {
				continue
			}
			fmt.Fprintf(out, "line %d: %q\n", i+1, text)
			if err := diagfmt.FormatTokensPretty(out, i, toks, opts); err != nil {
				return err
			}
		case "json":
			collected = append(collected, diagfmt.LineTokensOutput{
				Line:   i,
				Text:   text,
				Tokens: diagfmt.TokensOutput(toks),
			})
		default:
			return fmt.Errorf("unknown format: %s", format)
		}
	}
	if format == "json" {
		return diagfmt.FormatTokensJSON(out, collected)
	}
	return nil
}
