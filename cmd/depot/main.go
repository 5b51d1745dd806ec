// Command depot is the entrypoint binary: it delegates entirely to
// internal/cliapp's cobra command tree and translates the result into a
// process exit code.
package main

import (
	"os"

	"github.com/cognitive-engineering-lab/depot/internal/cliapp"
)

func main() {
	os.Exit(cliapp.Execute())
}
