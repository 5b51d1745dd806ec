package cliapp

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cognitive-engineering-lab/depot/internal/process"
)

// newPassthroughCmd builds a thin forwarding command for a verb the
// installer itself already understands (add, update, link) — scaffolding
// and dependency resolution for these stay the installer's job; depot only
// locates the workspace root so the installer runs with the right cwd.
func newPassthroughCmd(verb string) *cobra.Command {
	return &cobra.Command{
		Use:                verb + " [args...]",
		Short:              fmt.Sprintf("forward to the installer's %s command", verb),
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, _, err := loadWorkspaceAndConfig()
			if err != nil {
				return err
			}

			res, err := process.Run(process.Spec{
				Script: installerBinary,
				Args:   append([]string{verb}, args...),
				Dir:    ws.Root,
			}, func(data []byte) {
				os.Stdout.Write(data)
			})
			if err != nil {
				return err
			}
			if !res.Success {
				return fmt.Errorf("%s %s failed", installerBinary, verb)
			}
			return nil
		},
	}
}

// newNewCmd is a stub: scaffolding new packages is out of scope for depot
// itself, but the verb is kept so a user's muscle memory gets a clear
// pointer rather than "unknown command".
func newNewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new <name>",
		Short: "scaffold a new package (not implemented by depot)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return fmt.Errorf("depot new is not implemented; scaffold the package directory by hand and run '%s init'", rootCmd.Use)
		},
	}
}
