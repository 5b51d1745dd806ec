package build

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/google/uuid"

	"github.com/cognitive-engineering-lab/depot/internal/logging"
	"github.com/cognitive-engineering-lab/depot/internal/workspace"
)

// stylesheetPlugin lets a JS/TS entry point `import` a .css file directly.
// depot does no CSS processing of its own (no autoprefixing) — it reads the
// file and hands its raw content to esbuild's own CSS loader, which emits
// it as a separate CSS output.
func stylesheetPlugin() api.Plugin {
	return api.Plugin{
		Name: "depot-stylesheet",
		Setup: func(build api.PluginBuild) {
			build.OnLoad(api.OnLoadOptions{Filter: `\.css$`}, func(args api.OnLoadArgs) (api.OnLoadResult, error) {
				contents, err := os.ReadFile(args.Path)
				if err != nil {
					return api.OnLoadResult{}, fmt.Errorf("reading stylesheet %s: %w", args.Path, err)
				}
				c := string(contents)
				return api.OnLoadResult{
					Contents: &c,
					Loader:   api.LoaderCSS,
				}, nil
			})
		},
	}
}

// filesPlugin recognizes two import-suffix conventions: `?url`, which
// copies the referenced file into dist and resolves to a module exporting
// its final URL, and `?raw`, which inlines the file's contents as a string
// module. Neither suffix reaches esbuild's own loaders.
func filesPlugin(pkg *workspace.Package) api.Plugin {
	return api.Plugin{
		Name: "depot-files",
		Setup: func(build api.PluginBuild) {
			build.OnResolve(api.OnResolveOptions{Filter: `\?(url|raw)$`}, func(args api.OnResolveArgs) (api.OnResolveResult, error) {
				sep := strings.LastIndex(args.Path, "?")
				kind := args.Path[sep+1:]
				rawPath := args.Path[:sep]

				resolved := rawPath
				if !filepath.IsAbs(resolved) {
					resolved = filepath.Join(args.ResolveDir, rawPath)
				}
				return api.OnResolveResult{
					Path:      resolved,
					Namespace: "depot-file-" + kind,
				}, nil
			})

			build.OnLoad(api.OnLoadOptions{Filter: `.*`, Namespace: "depot-file-url"}, func(args api.OnLoadArgs) (api.OnLoadResult, error) {
				data, err := os.ReadFile(args.Path)
				if err != nil {
					return api.OnLoadResult{}, fmt.Errorf("reading asset %s: %w", args.Path, err)
				}
				outName := uuid.New().String() + filepath.Ext(args.Path)
				outPath := pkg.Path(filepath.Join("dist", outName))
				if err := os.WriteFile(outPath, data, 0644); err != nil {
					return api.OnLoadResult{}, fmt.Errorf("writing asset %s: %w", outPath, err)
				}
				contents := fmt.Sprintf("export default %q;", "/"+outName)
				return api.OnLoadResult{Contents: &contents, Loader: api.LoaderJS}, nil
			})

			build.OnLoad(api.OnLoadOptions{Filter: `.*`, Namespace: "depot-file-raw"}, func(args api.OnLoadArgs) (api.OnLoadResult, error) {
				data, err := os.ReadFile(args.Path)
				if err != nil {
					return api.OnLoadResult{}, fmt.Errorf("reading asset %s: %w", args.Path, err)
				}
				contents := fmt.Sprintf("export default %q;", string(data))
				return api.OnLoadResult{Contents: &contents, Loader: api.LoaderJS}, nil
			})
		},
	}
}

// loggingPlugin writes build start/end/error events to pane "build", the
// only visibility an in-process esbuild build otherwise has under watch
// mode (esbuild's own Watch API is silent between rebuilds).
func loggingPlugin(logger logging.Logger, pkgName string) api.Plugin {
	return api.Plugin{
		Name: "depot-logging",
		Setup: func(build api.PluginBuild) {
			build.OnStart(func() (api.OnStartResult, error) {
				logger.Log(pkgName, PaneBuild, []byte("building...\n"))
				return api.OnStartResult{}, nil
			})

			build.OnEnd(func(result *api.BuildResult) (api.OnEndResult, error) {
				if len(result.Errors) == 0 {
					logger.Log(pkgName, PaneBuild, []byte("build OK\n"))
				}
				for _, msg := range result.Errors {
					logger.Log(pkgName, PaneBuild, []byte(formatEsbuildMessage(msg)))
				}
				return api.OnEndResult{}, nil
			})
		},
	}
}
