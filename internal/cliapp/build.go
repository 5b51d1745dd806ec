package cliapp

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/cognitive-engineering-lab/depot/internal/build"
)

func newBuildCmd() *cobra.Command {
	var flags runFlags

	cmd := &cobra.Command{
		Use:   "build",
		Short: "check, bundle, lint, and (optionally) serve packages",
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, cfg, err := loadWorkspaceAndConfig()
			if err != nil {
				return err
			}

			logger := newLogger(flags.watch, ws, flags.pkgs)
			orch := &build.Orchestrator{
				Logger:  logger,
				Config:  cfg,
				Watch:   flags.watch,
				Release: flags.release,
			}

			return finish(logger, func() (bool, error) {
				ok, err := runWithInterrupt(orch, ws, flags.pkgs)
				orch.Shutdown(context.Background())
				return ok, err
			})
		},
	}

	addRunFlags(cmd, &flags)
	return cmd
}

// addRunFlags registers the -w/-r/-p flags shared by every scheduler-backed
// verb onto cmd, populating flags.
func addRunFlags(cmd *cobra.Command, flags *runFlags) {
	cmd.Flags().BoolVarP(&flags.watch, "watch", "w", false, "re-run on file changes and show the live multi-pane view")
	cmd.Flags().BoolVarP(&flags.release, "release", "r", false, "produce a minified, sourcemap-free build")
	cmd.Flags().StringArrayVarP(&flags.pkgs, "package", "p", nil, "limit to this package (repeatable); default is every package")
}
