package cliapp

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cognitive-engineering-lab/depot/internal/lockfile"
	"github.com/cognitive-engineering-lab/depot/internal/logging"
	"github.com/cognitive-engineering-lab/depot/internal/scheduler"
	"github.com/cognitive-engineering-lab/depot/internal/workspace"
)

// assetConfigFiles are the config files clean -a removes when they are
// symlinks into depot's asset directory, rather than user-authored files.
var assetConfigFiles = []string{"tsconfig.json", ".eslintrc.json", ".prettierrc.json"}

// cleanCommand removes per-package build artifacts and, under -a, asset
// symlinks maintained by init.
type cleanCommand struct {
	all bool
}

func (c *cleanCommand) Name() string   { return "clean" }
func (c *cleanCommand) Parallel() bool { return true }

func (c *cleanCommand) RunPackage(ctx context.Context, pkg *workspace.Package) scheduler.Result {
	if err := os.RemoveAll(pkg.Path("dist")); err != nil {
		return scheduler.Result{Err: err}
	}
	if err := os.RemoveAll(pkg.Path("node_modules")); err != nil {
		return scheduler.Result{Err: err}
	}

	if c.all {
		for _, name := range assetConfigFiles {
			path := pkg.Path(name)
			if isAssetSymlink(path) {
				if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
					return scheduler.Result{Err: err}
				}
			}
		}
	}

	return scheduler.Result{Success: true}
}

func (c *cleanCommand) RunWorkspace(ctx context.Context, ws *workspace.Workspace) scheduler.Result {
	if ws.Monorepo {
		if err := os.RemoveAll(filepath.Join(ws.Root, "node_modules")); err != nil {
			return scheduler.Result{Err: err}
		}
	}
	return scheduler.Result{Success: true}
}

// isAssetSymlink reports whether path is a symlink into a .depot-assets
// directory (regardless of target liveness); clean -a only removes config
// files depot itself would have linked in during init, never user-authored
// regular files or symlinks pointing elsewhere.
func isAssetSymlink(path string) bool {
	info, err := os.Lstat(path)
	if err != nil || info.Mode()&os.ModeSymlink == 0 {
		return false
	}
	target, err := os.Readlink(path)
	if err != nil {
		return false
	}
	return filepath.Base(filepath.Dir(target)) == ".depot-assets"
}

func newCleanCmd() *cobra.Command {
	var pkgs []string
	var all bool

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "remove build artifacts",
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
			cc := &cleanCommand{all: all}

			return finish(logger, func() (bool, error) {
				return runWithInterrupt(cc, ws, pkgs)
			})
		},
	}

	cmd.Flags().StringArrayVarP(&pkgs, "package", "p", nil, "limit to this package (repeatable)")
	cmd.Flags().BoolVarP(&all, "all", "a", false, "also remove asset-symlinked config files")
	return cmd
}
