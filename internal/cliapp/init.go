package cliapp

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cognitive-engineering-lab/depot/internal/gitignore"
	"github.com/cognitive-engineering-lab/depot/internal/lockfile"
	"github.com/cognitive-engineering-lab/depot/internal/logging"
	"github.com/cognitive-engineering-lab/depot/internal/process"
	"github.com/cognitive-engineering-lab/depot/internal/scheduler"
	"github.com/cognitive-engineering-lab/depot/internal/workspace"
)

const installerBinary = "npm"

// managedGitignoreEntries are regenerated into the workspace root's
// .gitignore by init, below the fence line.
var managedGitignoreEntries = []string{"dist", "node_modules", lockfile.LockName}

// initCommand runs the package installer once for the whole workspace,
// then links each package's shared asset config files into place and
// refreshes the managed .gitignore section.
type initCommand struct {
	logger logging.Logger
}

func (c *initCommand) Name() string { return "init" }

func (c *initCommand) RunWorkspace(ctx context.Context, ws *workspace.Workspace) scheduler.Result {
	res, err := process.Run(process.Spec{
		Script: installerBinary,
		Args:   []string{"install"},
		Dir:    ws.Root,
	}, func(data []byte) {
		c.logger.Log("", "init", data)
	})
	if err != nil {
		return scheduler.Result{Err: err}
	}
	if !res.Success {
		return scheduler.Result{Success: false}
	}

	if err := gitignore.Rewrite(filepath.Join(ws.Root, ".gitignore"), managedGitignoreEntries); err != nil {
		return scheduler.Result{Err: err}
	}
	for _, pkg := range ws.Packages {
		if err := linkAssetConfigs(pkg); err != nil {
			return scheduler.Result{Err: err}
		}
	}

	return scheduler.Result{Success: true}
}

// linkAssetConfigs symlinks depot's shared config files into pkg so a
// package never carries its own stale copy of tsconfig/eslint/prettier
// settings. A package that already has a real (non-symlink) file of the
// same name is left untouched — init never clobbers user authorship.
func linkAssetConfigs(pkg *workspace.Package) error {
	assetsDir := filepath.Join(filepath.Dir(pkg.Dir), ".depot-assets")
	for _, name := range assetConfigFiles {
		src := filepath.Join(assetsDir, name)
		if _, err := os.Stat(src); err != nil {
			continue // no shared asset of this name to link
		}

		dst := pkg.Path(name)
		if info, err := os.Lstat(dst); err == nil && info.Mode()&os.ModeSymlink == 0 {
			continue // user-authored file present; don't overwrite
		}
		_ = os.Remove(dst)
		if err := os.Symlink(src, dst); err != nil {
			return err
		}
	}
	return nil
}

func newInitCmd() *cobra.Command {
	var pkgs []string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "install dependencies and link shared asset configs",
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, _, err := loadWorkspaceAndConfig()
			if err != nil {
				return err
			}

			lock, err := lockfile.Acquire(ws.Root)
			if err != nil {
				return err
			}
			defer lock.Unlock()

			logger := logging.NewOnceLogger(os.Stdout)
			logger.Register("", "init")
			ic := &initCommand{logger: logger}

			return finish(logger, func() (bool, error) {
				return runWithInterrupt(ic, ws, pkgs)
			})
		},
	}

	cmd.Flags().StringArrayVarP(&pkgs, "package", "p", nil, "limit to this package (repeatable; ignored — init runs once for the whole workspace)")
	return cmd
}
