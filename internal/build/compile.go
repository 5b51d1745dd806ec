package build

import (
	"context"
	"fmt"

	"github.com/evanw/esbuild/pkg/api"

	"github.com/cognitive-engineering-lab/depot/internal/workspace"
)

// runCompile dispatches to the node (in-process esbuild) or browser
// (external site-builder subprocess) compile strategy depending on the
// package's platform.
func (o *Orchestrator) runCompile(ctx context.Context, pkg *workspace.Package) (bool, error) {
	switch pkg.Platform {
	case workspace.PlatformNode:
		return o.compileNode(ctx, pkg)
	case workspace.PlatformBrowser:
		return o.compileBrowser(ctx, pkg)
	default:
		return false, fmt.Errorf("package %s: unknown platform %q", pkg.Name, pkg.Platform)
	}
}

// compileNode invokes esbuild in-process via a build context. External
// modules are the union of peerDependencies and dependencies so the bundle
// does not vendor runtime-provided packages. Output is ESM to dist/,
// sourcemap unless releasing, minified only when releasing.
func (o *Orchestrator) compileNode(ctx context.Context, pkg *workspace.Package) (bool, error) {
	plugins := []api.Plugin{
		stylesheetPlugin(),
		filesPlugin(pkg),
		loggingPlugin(o.Logger, pkg.Name),
	}

	buildCtx, ctxErr := api.Context(api.BuildOptions{
		EntryPoints:       []string{pkg.EntryPoint},
		Bundle:            true,
		Outdir:            pkg.Path("dist"),
		Format:            api.FormatESModule,
		Sourcemap:         sourcemapSetting(o.Release),
		MinifyWhitespace:  o.Release,
		MinifyIdentifiers: o.Release,
		MinifySyntax:      o.Release,
		Write:             true,
		External:          pkg.Manifest.ExternalNames(),
		Plugins:           plugins,
	})
	if ctxErr != nil {
		for _, msg := range ctxErr.Errors {
			o.Logger.Log(pkg.Name, PaneBuild, []byte(formatEsbuildMessage(msg)))
		}
		return false, nil
	}
	defer buildCtx.Dispose()

	if o.Watch {
		if err := buildCtx.Watch(api.WatchOptions{}); err != nil {
			return false, fmt.Errorf("starting esbuild watch for %s: %w", pkg.Name, err)
		}
		<-ctx.Done() // esbuild's own watcher drives rebuilds until the package's task is canceled
		return true, nil
	}

	result := buildCtx.Rebuild()
	for _, msg := range result.Errors {
		o.Logger.Log(pkg.Name, PaneBuild, []byte(formatEsbuildMessage(msg)))
	}
	return len(result.Errors) == 0, nil
}

func sourcemapSetting(release bool) api.SourceMap {
	if release {
		return api.SourceMapNone
	}
	return api.SourceMapLinked
}

// formatEsbuildMessage prefixes a red cross glyph and includes file:line:col
// when esbuild attached a source location.
func formatEsbuildMessage(msg api.Message) string {
	if msg.Location == nil {
		return fmt.Sprintf("✖ %s\n", msg.Text)
	}
	loc := msg.Location
	return fmt.Sprintf("✖ %s:%d:%d: %s\n", loc.File, loc.Line, loc.Column, msg.Text)
}

// compileBrowser invokes the external website builder.
func (o *Orchestrator) compileBrowser(ctx context.Context, pkg *workspace.Package) (bool, error) {
	args := []string{siteBuilderBinary, "build", "--minify=false"}
	if o.Watch {
		args = append(args, "-w")
	}

	res, err := pkg.Spawn(args, func(data []byte) {
		o.Logger.Log(pkg.Name, PaneBuild, data)
	})
	if err != nil {
		return false, err
	}
	return res.Success, nil
}

const siteBuilderBinary = "site-builder"
