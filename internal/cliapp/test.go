package cliapp

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cognitive-engineering-lab/depot/internal/logging"
	"github.com/cognitive-engineering-lab/depot/internal/process"
	"github.com/cognitive-engineering-lab/depot/internal/scheduler"
	"github.com/cognitive-engineering-lab/depot/internal/workspace"
)

const testRunnerBinary = "vitest"

// testConfigNames are checked, in order, at the workspace root; if none is
// present, test is a no-op success rather than an error, matching a
// workspace that simply has no tests configured yet.
var testConfigNames = []string{"vitest.config.ts", "vitest.config.js"}

// testCommand invokes the external test runner once for the whole
// workspace, only when a test config file exists at the root.
type testCommand struct {
	logger logging.Logger
}

func (c *testCommand) Name() string { return "test" }

func (c *testCommand) RunWorkspace(ctx context.Context, ws *workspace.Workspace) scheduler.Result {
	if !hasTestConfig(ws.Root) {
		return scheduler.Result{Success: true}
	}

	res, err := process.Run(process.Spec{
		Script: testRunnerBinary,
		Dir:    ws.Root,
	}, func(data []byte) {
		c.logger.Log("", "test", data)
	})
	if err != nil {
		return scheduler.Result{Err: err}
	}
	return scheduler.Result{Success: res.Success}
}

func hasTestConfig(root string) bool {
	for _, name := range testConfigNames {
		if _, err := os.Stat(filepath.Join(root, name)); err == nil {
			return true
		}
	}
	return false
}

func newTestCmd() *cobra.Command {
	var pkgs []string

	cmd := &cobra.Command{
		Use:   "test",
		Short: "run the workspace test suite, if configured",
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, _, err := loadWorkspaceAndConfig()
			if err != nil {
				return err
			}

			logger := logging.NewOnceLogger(os.Stdout)
			logger.Register("", "test")
			tc := &testCommand{logger: logger}

			return finish(logger, func() (bool, error) {
				return runWithInterrupt(tc, ws, pkgs)
			})
		},
	}

	cmd.Flags().StringArrayVarP(&pkgs, "package", "p", nil, "limit to this package (repeatable; ignored — test runs once for the whole workspace)")
	return cmd
}
