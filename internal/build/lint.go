package build

import (
	"context"

	"github.com/cognitive-engineering-lab/depot/internal/watch"
	"github.com/cognitive-engineering-lab/depot/internal/workspace"
)

const lintBinary = "eslint"

var lintExtensions = map[string]struct{}{"js": {}, "ts": {}, "tsx": {}}

// runLint invokes the linter once over src. Under watch mode, depot drives
// its own re-invocation via internal/watch rather than the linter's own
// --watch flag, so a single file-watching strategy covers every subordinate.
func (o *Orchestrator) runLint(ctx context.Context, pkg *workspace.Package) (bool, error) {
	run := func() {
		_, _ = pkg.Spawn([]string{lintBinary, pkg.Path("src")}, func(data []byte) {
			o.Logger.Log(pkg.Name, PaneLint, data)
		})
	}

	if !o.Watch {
		run()
		return true, nil
	}

	w, err := watch.Watch(pkg.Path("src"), lintExtensions, run)
	if err != nil {
		return false, err
	}
	defer w.Close()

	run()
	<-ctx.Done()
	return true, nil
}
