package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"asm09/internal/dialect"
	"asm09/internal/opdoc"
)

var opcodeCmd = &cobra.Command{
	Use:   "opcode [flags] [name...]",
	Short: "Show documentation for opcodes and pseudo-ops",
	Long:  `Opcode prints the documentation rows for the given names, or lists every documented name`,
	RunE:  runOpcode,
}

func init() {
	opcodeCmd.Flags().String("table", "", "extra documentation table (tab-separated) merged over the built-in one")
}

// loadOpcodeTable merges the --table flag (or [opcodes].table) over the
// built-in table. Bad rows are logged and skipped.
func loadOpcodeTable(cmd *cobra.Command) (*opdoc.Table, error) {
	tbl := opdoc.Default(cmd.Context())
	path := resolveOpcodeTable()
	if f := cmd.Flags().Lookup("table"); f != nil && f.Changed {
		path = f.Value.String()
	}
	if path == "" {
		return tbl, nil
	}
	// #nosec G304 -- path is supplied by the user
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opcode table: %w", err)
	}
	defer f.Close()
	extra, err := opdoc.Parse(cmd.Context(), f, path)
	if err != nil {
		return nil, err
	}
	tbl.Merge(extra)
	return tbl, nil
}

func runOpcode(cmd *cobra.Command, args []string) error {
	tbl, err := loadOpcodeTable(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(args) == 0 {
		for _, name := range tbl.Names() {
			e, _ := tbl.Lookup(name)
			fmt.Fprintf(out, "%-10s %-9s %-15s %s\n", name, e.Processor, e.Class, e.Summary)
		}
		return nil
	}
	var missing []string
	for i, name := range args {
		if i > 0 {
			fmt.Fprintln(out)
		}
		e, ok := tbl.Lookup(name)
		if !ok {
			if class := dialect.Classify(name); class.Known() {
				fmt.Fprintf(out, "%s: %s (undocumented)\n", strings.ToUpper(name), class)
				continue
			}
			missing = append(missing, name)
			continue
		}
		fmt.Fprintln(out, e.Markdown())
	}
	if len(missing) > 0 {
		return fmt.Errorf("unknown opcode(s): %s", strings.Join(missing, ", "))
	}
	return nil
}
