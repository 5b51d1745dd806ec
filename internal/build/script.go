package build

import (
	"context"
	"os"

	"github.com/cognitive-engineering-lab/depot/internal/workspace"
)

const buildScriptName = "build.mjs"
const nodeBinary = "node"

// runScript executes a package's optional build.mjs, if present, tagged to
// pane "script". A package without one trivially succeeds.
func (o *Orchestrator) runScript(ctx context.Context, pkg *workspace.Package) (bool, error) {
	scriptPath := pkg.Path(buildScriptName)
	if _, err := os.Stat(scriptPath); os.IsNotExist(err) {
		return true, nil
	}

	args := []string{nodeBinary, buildScriptName}
	if o.Watch {
		args = append(args, "-w")
	}

	res, err := pkg.Spawn(args, func(data []byte) {
		o.Logger.Log(pkg.Name, PaneScript, data)
	})
	if err != nil {
		return false, err
	}
	return res.Success, nil
}
