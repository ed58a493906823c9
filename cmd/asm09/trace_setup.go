package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"asm09/internal/trace"
)

var activeTracer trace.Tracer

// setupTracing reads the trace flags (falling back to [trace] in asm09.toml)
// and attaches a tracer to the command context.
func setupTracing(cmd *cobra.Command) error {
	flags := cmd.Root().PersistentFlags()

	output, err := flags.GetString("trace")
	if err != nil {
		return fmt.Errorf("failed to get trace flag: %w", err)
	}
	levelStr, err := flags.GetString("trace-level")
	if err != nil {
		return fmt.Errorf("failed to get trace-level flag: %w", err)
	}
	modeStr, err := flags.GetString("trace-mode")
	if err != nil {
		return fmt.Errorf("failed to get trace-mode flag: %w", err)
	}
	ringSize, err := flags.GetInt("trace-ring-size")
	if err != nil {
		return fmt.Errorf("failed to get trace-ring-size flag: %w", err)
	}

	if cfg := commandConfig; cfg != nil {
		if !flags.Changed("trace-level") && cfg.Trace.Level != "" {
			levelStr = cfg.Trace.Level
		}
		if !flags.Changed("trace") && cfg.Trace.Output != "" {
			output = cfg.Trace.Output
		}
	}

	level, err := trace.ParseLevel(levelStr)
	if err != nil {
		return fmt.Errorf("invalid trace level: %w", err)
	}
	mode, err := trace.ParseMode(modeStr)
	if err != nil {
		return fmt.Errorf("invalid trace mode: %w", err)
	}

	tracer, err := trace.New(trace.Config{
		Level:      level,
		Mode:       mode,
		Format:     trace.FormatText,
		OutputPath: output,
		RingSize:   ringSize,
	})
	if err != nil {
		return fmt.Errorf("failed to create tracer: %w", err)
	}
	activeTracer = tracer

	if m := commandManifest; m != nil {
		trace.Debugf(tracer, trace.ScopeDriver, "config.loaded", "using %s", m.Path)
	}

	ctx := trace.WithTracer(cmd.Context(), tracer)
	cmd.SetContext(ctx)
	cmd.Root().SetContext(ctx)
	return nil
}

// cleanupTracing flushes and closes the tracer once.
func cleanupTracing() {
	t := activeTracer
	if t == nil {
		return
	}
	activeTracer = nil
	if err := t.Flush(); err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "trace: flush error: %v\n", err)
	}
	if err := t.Close(); err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "trace: close error: %v\n", err)
	}
}
