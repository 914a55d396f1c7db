package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"letcalc/internal/driver"
	"letcalc/internal/source"
	"letcalc/internal/ui"
)

type dirOutcome struct {
	fileSet *source.FileSet
	results []*driver.RunResult
	err     error
}

// runDirWithUI runs RunDir in the background and renders its progress
// events until the run finishes.
func runDirWithUI(ctx context.Context, title, dir string, files []string, opts driver.DirOptions) (*source.FileSet, []*driver.RunResult, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan dirOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = driver.ChannelSink{Ch: events}
		fs, results, err := driver.RunDir(ctx, dir, optsCopy)
		outcomeCh <- dirOutcome{fileSet: fs, results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stderr))
	_, uiErr := program.Run()
	// модель могла выйти раньше (ctrl+c): дочитываем канал, чтобы воркеры не встали
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.fileSet, outcome.results, uiErr
	}
	return outcome.fileSet, outcome.results, outcome.err
}
