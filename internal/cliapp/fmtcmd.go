package cliapp

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/cognitive-engineering-lab/depot/internal/logging"
	"github.com/cognitive-engineering-lab/depot/internal/scheduler"
	"github.com/cognitive-engineering-lab/depot/internal/workspace"
)

const formatterBinary = "prettier"

// panefmt is the only pane fmt writes to — it has no build-style
// multi-subordinate fan-out, just one external tool invocation per package.
const panefmt = "fmt"

// fmtCommand runs the external formatter over a package's src and tests
// trees. Package runs are order-independent, so it always runs in parallel.
type fmtCommand struct {
	logger logging.Logger
}

func (c *fmtCommand) Name() string   { return "fmt" }
func (c *fmtCommand) Parallel() bool { return true }

func (c *fmtCommand) RunPackage(ctx context.Context, pkg *workspace.Package) scheduler.Result {
	c.logger.Register(pkg.Name, panefmt)

	res, err := pkg.Spawn([]string{
		formatterBinary, "--write",
		pkg.Path("src") + "/**/*.{ts,tsx}",
		pkg.Path("tests") + "/**/*.{ts,tsx}",
	}, func(data []byte) {
		c.logger.Log(pkg.Name, panefmt, data)
	})
	if err != nil {
		return scheduler.Result{Err: err}
	}
	return scheduler.Result{Success: res.Success}
}

func newFmtCmd() *cobra.Command {
	var pkgs []string

	cmd := &cobra.Command{
		Use:   "fmt",
		Short: "format every package's sources",
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, _, err := loadWorkspaceAndConfig()
			if err != nil {
				return err
			}

			logger := logging.NewOnceLogger(os.Stdout)
			fc := &fmtCommand{logger: logger}

			return finish(logger, func() (bool, error) {
				return runWithInterrupt(fc, ws, pkgs)
			})
		},
	}

	cmd.Flags().StringArrayVarP(&pkgs, "package", "p", nil, "limit to this package (repeatable)")
	return cmd
}
