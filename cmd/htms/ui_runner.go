package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"htms/internal/driver"
	"htms/internal/source"
	"htms/internal/ui"
)

type compileOutcome struct {
	fs      *source.FileSet
	results []driver.FileResult
	err     error
}

// runCompileWithUI builds dir while a Bubble Tea program renders progress.
// files must be the list driver.ListFiles returns for dir. Leaving the UI
// early (ctrl+c) cancels the build.
func runCompileWithUI(ctx context.Context, title, dir string, files []string, opts driver.Options) (*source.FileSet, []driver.FileResult, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan driver.Event, 256)
	outcomeCh := make(chan compileOutcome, 1)

	go func() {
		dirOpts := opts
		dirOpts.Progress = driver.ChannelSink{Ch: events}
		fs, results, err := driver.CompileDir(ctx, dir, driver.ModeBuild, dirOpts)
		outcomeCh <- compileOutcome{fs: fs, results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, dir, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout), tea.WithContext(ctx))
	_, uiErr := program.Run()

	// После выхода из UI события никто не читает: отменяем и дочитываем.
	cancel()
	go func() {
		for range events {
		}
	}()

	outcome := <-outcomeCh
	if outcome.err == nil && uiErr != nil {
		return outcome.fs, outcome.results, uiErr
	}
	return outcome.fs, outcome.results, outcome.err
}
