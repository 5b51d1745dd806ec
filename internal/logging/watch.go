package logging

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cognitive-engineering-lab/depot/internal/tui/watch"
)

// WatchLogger is a full-screen TUI bound to the terminal, bubbletea-driven.
// Register is a no-op: the watch model pre-allocates the fixed pane set
// for every known package up front.
type WatchLogger struct {
	program *tea.Program
	done    chan struct{}
}

// NewWatchLogger builds a WatchLogger over packages (in workspace order),
// with roots determining the initially visible package per the
// single-package-run invariant.
func NewWatchLogger(packages []string, roots []string) *WatchLogger {
	model := watch.NewModel(packages, roots)
	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	return &WatchLogger{program: program, done: make(chan struct{})}
}

func (w *WatchLogger) Register(pkg, pane string) {
	// Panes for every known package are pre-registered by NewModel.
}

func (w *WatchLogger) Log(pkg, pane string, data []byte) {
	w.program.Send(watch.LogEvent(pkg, pane, data))
}

func (w *WatchLogger) Start() error {
	go func() {
		defer close(w.done)
		_, _ = w.program.Run()
	}()
	return nil
}

func (w *WatchLogger) End() error {
	w.program.Quit()
	<-w.done
	return nil
}
