package cliapp

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/cognitive-engineering-lab/depot/internal/depotconfig"
	"github.com/cognitive-engineering-lab/depot/internal/logging"
	"github.com/cognitive-engineering-lab/depot/internal/scheduler"
	"github.com/cognitive-engineering-lab/depot/internal/workspace"
)

// errInterrupted signals that a run was canceled by SIGINT, so Execute can
// map it to exit code 130 rather than the generic failure code.
var errInterrupted = errors.New("interrupted")

func isInterrupted(err error) (int, bool) {
	if errors.Is(err, errInterrupted) {
		return 130, true
	}
	return 0, false
}

// runFlags are the flags common to every verb that drives the scheduler.
type runFlags struct {
	watch   bool
	release bool
	pkgs    []string
}

// loadWorkspaceAndConfig discovers the workspace and depot's own config in
// one step, since almost every command needs both.
func loadWorkspaceAndConfig() (*workspace.Workspace, *depotconfig.Config, error) {
	ws, err := workspace.Load()
	if err != nil {
		return nil, nil, err
	}
	cfg, err := depotconfig.Load(ws.Root)
	if err != nil {
		return nil, nil, err
	}
	return ws, cfg, nil
}

// newLogger selects WatchLogger under -w, else OnceLogger dumping to
// stdout at the end of the run.
func newLogger(watch bool, ws *workspace.Workspace, roots []string) logging.Logger {
	if watch {
		return logging.NewWatchLogger(ws.AllNames(), roots)
	}
	return logging.NewOnceLogger(os.Stdout)
}

// runWithInterrupt drives the scheduler under a context canceled on
// SIGINT, translating a canceled run into errInterrupted so Execute can
// report exit code 130.
func runWithInterrupt(cmd scheduler.Command, ws *workspace.Workspace, roots []string) (bool, error) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ok, err := scheduler.Run(ctx, cmd, ws, roots)
	if ctx.Err() != nil {
		return false, errInterrupted
	}
	return ok, err
}

// finish runs the logger lifecycle around fn and maps its result to a
// command error, so each cobra RunE body stays a thin wrapper.
func finish(logger logging.Logger, fn func() (bool, error)) error {
	if err := logger.Start(); err != nil {
		return err
	}

	ok, err := fn()

	if endErr := logger.End(); endErr != nil && err == nil {
		err = endErr
	}
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("failed")
	}
	return nil
}
