// Package build implements the per-package build orchestrator: running the
// type checker, bundler, linter, optional user script, and optional dev
// server concurrently and aggregating their success.
package build

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/cognitive-engineering-lab/depot/internal/depotconfig"
	"github.com/cognitive-engineering-lab/depot/internal/logging"
	"github.com/cognitive-engineering-lab/depot/internal/scheduler"
	"github.com/cognitive-engineering-lab/depot/internal/workspace"
)

// Panes depot emits build output to, registered before any subordinate
// starts so an unregistered-pane panic catches a wiring bug rather than a
// silently dropped log line.
const (
	PaneBuild  = "build"
	PaneCheck  = "check"
	PaneLint   = "lint"
	PaneScript = "script"
)

// Orchestrator drives one package's build.
type Orchestrator struct {
	Logger  logging.Logger
	Config  *depotconfig.Config
	Watch   bool
	Release bool

	// servers tracks live static-file servers so Shutdown can tear them
	// down on cancellation; keyed by package name.
	servers serverRegistry
}

func (o *Orchestrator) Name() string { return "build" }

// Parallel reports that builds are order-independent under watch mode — so
// the UI comes up live for every package at once — and dependency-ordered
// otherwise.
func (o *Orchestrator) Parallel() bool { return o.Watch }

// RunPackage runs check, compile, lint, script, and (conditionally) serve
// concurrently for pkg and ANDs their results.
func (o *Orchestrator) RunPackage(ctx context.Context, pkg *workspace.Package) scheduler.Result {
	o.Logger.Register(pkg.Name, PaneBuild)
	o.Logger.Register(pkg.Name, PaneCheck)
	o.Logger.Register(pkg.Name, PaneLint)
	o.Logger.Register(pkg.Name, PaneScript)

	distDir := pkg.Path("dist")
	if err := os.MkdirAll(distDir, 0755); err != nil {
		return scheduler.Result{Err: fmt.Errorf("ensuring dist dir for %s: %w", pkg.Name, err)}
	}

	g, gctx := errgroup.WithContext(ctx)

	checkOK := new(bool)
	g.Go(func() error {
		ok, err := o.runCheck(gctx, pkg)
		*checkOK = ok
		return err
	})

	compileOK := new(bool)
	g.Go(func() error {
		ok, err := o.runCompile(gctx, pkg)
		*compileOK = ok
		return err
	})

	g.Go(func() error {
		// Lint's own exit code is ignored for success determination; its
		// output still reaches the lint pane (see DESIGN.md, Open Question
		// decisions).
		_, err := o.runLint(gctx, pkg)
		return err
	})

	scriptOK := new(bool)
	g.Go(func() error {
		ok, err := o.runScript(gctx, pkg)
		*scriptOK = ok
		return err
	})

	if o.shouldServe(pkg) {
		g.Go(func() error {
			return o.runServe(gctx, pkg)
		})
	}

	if err := g.Wait(); err != nil {
		return scheduler.Result{Err: err}
	}

	return scheduler.Result{Success: *checkOK && *compileOK && *scriptOK}
}

func (o *Orchestrator) shouldServe(pkg *workspace.Package) bool {
	return pkg.Platform == workspace.PlatformBrowser && pkg.Target == workspace.TargetBin && o.Watch
}

// Shutdown tears down any live resources (static servers) this orchestrator
// started, so cancellation leaves nothing running.
func (o *Orchestrator) Shutdown(ctx context.Context) {
	o.servers.shutdownAll(ctx)
}
