package cliapp

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/cognitive-engineering-lab/depot/internal/build"
	"github.com/cognitive-engineering-lab/depot/internal/lockfile"
	"github.com/cognitive-engineering-lab/depot/internal/logging"
)

// newCommitCheckCmd runs clean, init, build, and test in sequence, each as
// its own scheduler pass, stopping at the first failure — the single
// command a pre-commit hook or CI step runs end to end.
func newCommitCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "commit-check",
		Short: "clean, init, build, and test, stopping at the first failure",
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, cfg, err := loadWorkspaceAndConfig()
			if err != nil {
				return err
			}

			lock, err := lockfile.Acquire(ws.Root)
			if err != nil {
				return err
			}

			cleanLogger := logging.NewOnceLogger(os.Stdout)
			if err := finish(cleanLogger, func() (bool, error) {
				return runWithInterrupt(&cleanCommand{}, ws, nil)
			}); err != nil {
				lock.Unlock()
				return err
			}

			initLogger := logging.NewOnceLogger(os.Stdout)
			initLogger.Register("", "init")
			if err := finish(initLogger, func() (bool, error) {
				return runWithInterrupt(&initCommand{logger: initLogger}, ws, nil)
			}); err != nil {
				lock.Unlock()
				return err
			}
			lock.Unlock()

			buildLogger := logging.NewOnceLogger(os.Stdout)
			orch := &build.Orchestrator{Logger: buildLogger, Config: cfg}
			if err := finish(buildLogger, func() (bool, error) {
				return runWithInterrupt(orch, ws, nil)
			}); err != nil {
				return err
			}

			testLogger := logging.NewOnceLogger(os.Stdout)
			testLogger.Register("", "test")
			return finish(testLogger, func() (bool, error) {
				return runWithInterrupt(&testCommand{logger: testLogger}, ws, nil)
			})
		},
	}
}

// newPrepareCmd runs init followed by a release build — the sequence a
// publish pipeline needs before packaging dist output.
func newPrepareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prepare",
		Short: "init, then a release build",
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, cfg, err := loadWorkspaceAndConfig()
			if err != nil {
				return err
			}

			lock, err := lockfile.Acquire(ws.Root)
			if err != nil {
				return err
			}

			initLogger := logging.NewOnceLogger(os.Stdout)
			initLogger.Register("", "init")
			if err := finish(initLogger, func() (bool, error) {
				return runWithInterrupt(&initCommand{logger: initLogger}, ws, nil)
			}); err != nil {
				lock.Unlock()
				return err
			}
			lock.Unlock()

			buildLogger := logging.NewOnceLogger(os.Stdout)
			orch := &build.Orchestrator{Logger: buildLogger, Config: cfg, Release: true}
			return finish(buildLogger, func() (bool, error) {
				return runWithInterrupt(orch, ws, nil)
			})
		},
	}
}
