// Package tui hosts the interactive terminal application: a root model that
// routes between the trip wizard and the results screen.
package tui

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
)

// App wraps the Bubbletea program
type App struct {
	program *tea.Program
	model   Model
}

// New creates a new TUI application
func New(ctx context.Context, opts Options) *App {
	return &App{model: NewModel(ctx, opts)}
}

// Run starts the TUI application and blocks until it exits.
func (a *App) Run() error {
	a.program = tea.NewProgram(
		a.model,
		tea.WithAltScreen(),
	)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigChan)

	go func() {
		if _, ok := <-sigChan; ok && a.program != nil {
			a.program.Send(tea.Quit())
		}
	}()

	_, err := a.program.Run()
	return err
}
