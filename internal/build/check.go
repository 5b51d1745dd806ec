package build

import (
	"context"

	"github.com/cognitive-engineering-lab/depot/internal/process"
	"github.com/cognitive-engineering-lab/depot/internal/workspace"
)

// checkBinary is the external type checker depot drives.
const checkBinary = "tsc"

func (o *Orchestrator) runCheck(ctx context.Context, pkg *workspace.Package) (bool, error) {
	args := []string{checkBinary, "--emitDeclarationOnly"}
	if o.Watch {
		args = append(args, "-w")
	}

	res, err := pkg.Spawn(args, func(data []byte) {
		o.Logger.Log(pkg.Name, PaneCheck, data)
	})
	if err != nil {
		return false, err
	}
	return res.Success, nil
}
