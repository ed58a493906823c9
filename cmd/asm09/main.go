package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"asm09/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "asm09",
	Short: "6809/6309 assembly source indexer",
	Long: `asm09 tokenizes and parses 6809/6309 assembly sources, follows their
include links and indexes labels, references and scopes.`,
	SilenceUsage: true,
}

// main registers subcommands and persistent flags, then executes the root
// command. A failed command exits with status 1.
func main() {
	rootCmd.Version = version.Version
	rootCmd.PersistentPreRunE = setupCommand
	rootCmd.PersistentPostRunE = teardownCommand

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(indexCmd)
	rootCmd.AddCommand(graphCmd)
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(opcodeCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().String("config", "", "path to asm09.toml (default: search upwards from the working directory)")
	rootCmd.PersistentFlags().Int("jobs", 0, "parallel reads during a scan (0 = GOMAXPROCS)")
	rootCmd.PersistentFlags().String("trace", "", "trace output file (\"-\" for stderr, .ndjson for NDJSON)")
	rootCmd.PersistentFlags().String("trace-level", "error", "trace level (off|error|warn|info|debug|trace)")
	rootCmd.PersistentFlags().String("trace-mode", "stream", "trace storage mode (stream|ring|both)")
	rootCmd.PersistentFlags().Int("trace-ring-size", 4096, "events kept in ring mode")
	rootCmd.PersistentFlags().String("cpu-profile", "", "write a CPU profile to file")
	rootCmd.PersistentFlags().String("mem-profile", "", "write a heap profile to file on exit")
	rootCmd.PersistentFlags().String("runtime-trace", "", "write a Go runtime trace to file")

	err := rootCmd.Execute()
	cleanupProfiling()
	cleanupTracing()
	if err != nil {
		os.Exit(1)
	}
}

// setupCommand loads the project configuration, installs the tracer and
// starts any requested profilers.
func setupCommand(cmd *cobra.Command, _ []string) error {
	if err := loadCommandConfig(cmd); err != nil {
		return err
	}
	if err := setupTracing(cmd); err != nil {
		return err
	}
	return setupProfiling(cmd)
}

func teardownCommand(_ *cobra.Command, _ []string) error {
	cleanupProfiling()
	cleanupTracing()
	return nil
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor resolves the --color flag against the output stream.
func useColor(cmd *cobra.Command, f *os.File) bool {
	mode, _ := cmd.Root().PersistentFlags().GetString("color")
	switch mode {
	case "on", "always":
		return true
	case "off", "never":
		return false
	default:
		return isTerminal(f)
	}
}
