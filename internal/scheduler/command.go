// Package scheduler drives a Command across a workspace's packages, either
// in parallel or in dependency-ordered waves, and aggregates success.
package scheduler

import (
	"context"

	"github.com/cognitive-engineering-lab/depot/internal/workspace"
)

// Result is the outcome of running a command against one package or the
// whole workspace.
type Result struct {
	Success bool
	Err     error
}

// Command is the capability set a top-level verb (build, fmt, clean, test,
// init) implements. A command may satisfy PerPackage, PerWorkspace, or
// both; both run in sequence when both are implemented. A command that also
// implements ParallelHinter reports whether PerPackage invocations are
// order-independent (true) or must respect the dependency graph (false,
// also the default when ParallelHinter is not implemented).
type Command interface {
	Name() string
}

// PerPackage is implemented by commands that run once per package in the
// dependency closure of the scheduler's roots.
type PerPackage interface {
	Command
	RunPackage(ctx context.Context, pkg *workspace.Package) Result
}

// PerWorkspace is implemented by commands that run exactly once against
// the whole workspace.
type PerWorkspace interface {
	Command
	RunWorkspace(ctx context.Context, ws *workspace.Workspace) Result
}

// ParallelHinter is implemented by PerPackage commands whose package runs
// are order-independent (e.g. build --watch, fmt). Absent this interface,
// the scheduler runs a dependency-ordered wave.
type ParallelHinter interface {
	Parallel() bool
}

// isParallel reports whether cmd's per-package runs may all start at once.
func isParallel(cmd Command) bool {
	if h, ok := cmd.(ParallelHinter); ok {
		return h.Parallel()
	}
	return false
}
