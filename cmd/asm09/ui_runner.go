package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"asm09/internal/ui"
	"asm09/internal/workspace"
)

type scanOutcome struct {
	result *workspace.ScanResult
	err    error
}

// runScanWithUI runs folder.Scan while a progress view renders its events on
// stderr.
func runScanWithUI(ctx context.Context, title string, folder *workspace.Folder, opts workspace.ScanOptions) (*workspace.ScanResult, error) {
	events := make(chan workspace.ScanEvent, 256)
	outcomeCh := make(chan scanOutcome, 1)

	go func() {
		opts.Progress = events
		res, err := folder.Scan(ctx, opts)
		outcomeCh <- scanOutcome{result: res, err: err}
		close(events)
	}()

	program := tea.NewProgram(ui.NewProgressModel(title, events), tea.WithOutput(os.Stderr))
	_, uiErr := program.Run()
	// keep the scan unblocked once the view is gone
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.result, uiErr
	}
	return outcome.result, outcome.err
}
