package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"asm09/internal/diagfmt"
	"asm09/internal/document"
	"asm09/internal/symbols"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.asm",
	Short: "Parse an assembly source file",
	Long:  `Parse builds the line and document model of one file ("-" reads stdin) without following includes`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	parseCmd.Flags().Bool("summary", false, "print blocks and definitions instead of every line")
	parseCmd.Flags().Bool("tokens", false, "include tokens in JSON output")
}

func runParse(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	summary, err := cmd.Flags().GetBool("summary")
	if err != nil {
		return fmt.Errorf("failed to get summary flag: %w", err)
	}
	withTokens, err := cmd.Flags().GetBool("tokens")
	if err != nil {
		return fmt.Errorf("failed to get tokens flag: %w", err)
	}

	file, err := readInput(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}
	mgr := symbols.NewManager()
	doc := document.Parse(cmd.Context(), file, mgr)
	if doc == nil {
		return cmd.Context().Err()
	}

	out := cmd.OutOrStdout()
	opts := diagfmt.PrettyOpts{Color: useColor(cmd, os.Stdout)}
	if wd, err := os.Getwd(); err == nil {
		opts.BaseDir = wd
	}
	switch format {
	case "pretty":
		if summary {
			diagfmt.FormatDocumentPretty(out, doc, mgr, opts)
			return nil
		}
		for _, line := range doc.Lines {
			if line.IsBlank() {
				continue
			}
			diagfmt.FormatLinePretty(out, line, opts)
		}
		return nil
	case "json":
		lines := make([]diagfmt.LineJSON, 0, len(doc.Lines))
		for _, line := range doc.Lines {
			lines = append(lines, diagfmt.LineOutput(line, withTokens))
		}
		return diagfmt.FormatLinesJSON(out, lines)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
