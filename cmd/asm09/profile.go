package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"asm09/internal/prof"
)

var activeProfile *prof.Session

// setupProfiling starts the profilers named by --cpu-profile, --mem-profile
// and --runtime-trace.
func setupProfiling(cmd *cobra.Command) error {
	flags := cmd.Root().PersistentFlags()
	var opts prof.Options
	var err error
	if opts.CPU, err = flags.GetString("cpu-profile"); err != nil {
		return fmt.Errorf("failed to get cpu-profile flag: %w", err)
	}
	if opts.Heap, err = flags.GetString("mem-profile"); err != nil {
		return fmt.Errorf("failed to get mem-profile flag: %w", err)
	}
	if opts.Trace, err = flags.GetString("runtime-trace"); err != nil {
		return fmt.Errorf("failed to get runtime-trace flag: %w", err)
	}
	if !opts.Enabled() {
		return nil
	}
	s, err := prof.Start(opts)
	if err != nil {
		return err
	}
	activeProfile = s
	return nil
}

func cleanupProfiling() {
	s := activeProfile
	activeProfile = nil
	if err := s.Stop(); err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "profile: %v\n", err)
	}
}
