// Package cliapp wires depot's cobra command tree to the workspace loader,
// scheduler, and the two logging variants.
package cliapp

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "depot", // overwritten in init() from commandName()
	Short: "depot orchestrates building, checking, linting, and serving a package workspace",
	Long:  "",
}

// commandName returns the name depot's own help text should call itself,
// honoring DEPOT_COMMAND so a workspace that installs the binary under an
// alias (e.g. a monorepo-local wrapper script) doesn't get stale --help
// output naming the wrong command.
func commandName() string {
	if name := os.Getenv("DEPOT_COMMAND"); name != "" {
		return name
	}
	return "depot"
}

func init() {
	cmdName := commandName()
	rootCmd.Use = cmdName
	rootCmd.Long = fmt.Sprintf(`depot (%s) builds, type-checks, lints, and serves a workspace of
node and browser packages, running each package's subordinates
concurrently and scheduling cross-package work in dependency order.`, cmdName)

	rootCmd.AddCommand(newBuildCmd())
	rootCmd.AddCommand(newFmtCmd())
	rootCmd.AddCommand(newCleanCmd())
	rootCmd.AddCommand(newTestCmd())
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newNewCmd())
	rootCmd.AddCommand(newPassthroughCmd("add"))
	rootCmd.AddCommand(newPassthroughCmd("update"))
	rootCmd.AddCommand(newPassthroughCmd("link"))
	rootCmd.AddCommand(newCommitCheckCmd())
	rootCmd.AddCommand(newPrepareCmd())
}

// Execute runs the root command and returns the process exit code: 0 on
// success, 1 on any command failure, 130 on interrupt (SIGINT), matching
// the convention of 128+signal.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		if code, ok := isInterrupted(err); ok {
			return code
		}
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
