package workspace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/cognitive-engineering-lab/depot/internal/vcs"
)

// ErrNoWorkspace means no workspace root could be located.
var ErrNoWorkspace = errors.New("no workspace found (no package.json above this directory)")

// Load discovers the workspace root from the current working directory,
// loads every package concurrently, and builds the dependency graph.
func Load() (*Workspace, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}
	return LoadFrom(cwd)
}

// LoadFrom is Load with an explicit starting directory, split out for tests.
func LoadFrom(cwd string) (*Workspace, error) {
	root, err := findRoot(cwd)
	if err != nil {
		return nil, err
	}

	monorepo := isDir(filepath.Join(root, "packages"))

	dirs, err := packageDirs(root, monorepo)
	if err != nil {
		return nil, err
	}

	pkgs, err := loadAll(dirs)
	if err != nil {
		return nil, err
	}

	pkgMap := make(map[string]*Package, len(pkgs))
	for _, p := range pkgs {
		pkgMap[p.Name] = p
	}

	depGraph, err := buildDepGraph(pkgs, pkgMap)
	if err != nil {
		return nil, err
	}

	return &Workspace{
		Root:     root,
		Monorepo: monorepo,
		Packages: pkgs,
		PkgMap:   pkgMap,
		DepGraph: depGraph,
	}, nil
}

// findRoot locates the workspace root. It invokes git to find the
// repository root, then walks from cwd upward (never past the repository
// root) looking for the first directory containing a package.json. If cwd
// is not inside a git repository, cwd itself is the root iff it has a
// package.json.
func findRoot(cwd string) (string, error) {
	repoRoot, err := vcs.RepoRoot(cwd)
	if err != nil {
		if fileExists(filepath.Join(cwd, "package.json")) {
			return cwd, nil
		}
		return "", ErrNoWorkspace
	}

	dir := cwd
	for {
		if fileExists(filepath.Join(dir, "package.json")) {
			return dir, nil
		}
		if dir == repoRoot {
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", ErrNoWorkspace
}

func packageDirs(root string, monorepo bool) ([]string, error) {
	if !monorepo {
		return []string{root}, nil
	}

	entries, err := os.ReadDir(filepath.Join(root, "packages"))
	if err != nil {
		return nil, fmt.Errorf("reading packages directory: %w", err)
	}

	var dirs []string
	for _, e := range entries {
		if e.IsDir() {
			dirs = append(dirs, filepath.Join(root, "packages", e.Name()))
		}
	}
	sort.Strings(dirs)
	return dirs, nil
}

// loadAll loads every package directory concurrently, preserving dirs'
// order in the returned slice regardless of completion order.
func loadAll(dirs []string) ([]*Package, error) {
	pkgs := make([]*Package, len(dirs))
	errs := make([]error, len(dirs))

	var wg sync.WaitGroup
	for i, dir := range dirs {
		wg.Add(1)
		go func(i int, dir string) {
			defer wg.Done()
			p, err := LoadPackage(dir)
			pkgs[i] = p
			errs[i] = err
		}(i, dir)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return pkgs, nil
}

// buildDepGraph computes, for each package, the set of workspace-local
// names in its manifest's dependencies/devDependencies/peerDependencies,
// then closes it transitively: in each pass, union every node's set with
// its current dependencies' sets, halting when no set grows.
func buildDepGraph(pkgs []*Package, pkgMap map[string]*Package) (map[string]map[string]struct{}, error) {
	graph := make(map[string]map[string]struct{}, len(pkgs))
	for _, p := range pkgs {
		direct := make(map[string]struct{})
		for _, dep := range p.Manifest.DependencyNames() {
			if _, ok := pkgMap[dep]; ok {
				direct[dep] = struct{}{}
			}
		}
		graph[p.Name] = direct
	}

	for {
		grew := false
		for _, deps := range graph {
			for dep := range deps {
				for transitive := range graph[dep] {
					if _, ok := deps[transitive]; !ok {
						deps[transitive] = struct{}{}
						grew = true
					}
				}
			}
		}
		if !grew {
			break
		}
	}

	for name, deps := range graph {
		if _, ok := deps[name]; ok {
			return nil, fmt.Errorf("dependency cycle detected involving %q", name)
		}
	}

	return graph, nil
}

// DependencyClosure returns the packages reachable from roots through
// DepGraph, in deterministic (name-sorted) order, including the roots
// themselves.
func (w *Workspace) DependencyClosure(roots []string) ([]*Package, error) {
	seen := make(map[string]struct{})
	for _, name := range roots {
		if _, ok := w.PkgMap[name]; !ok {
			return nil, fmt.Errorf("unknown package %q", name)
		}
		seen[name] = struct{}{}
		for dep := range w.DepGraph[name] {
			seen[dep] = struct{}{}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	pkgs := make([]*Package, 0, len(names))
	for _, name := range names {
		pkgs = append(pkgs, w.PkgMap[name])
	}
	return pkgs, nil
}

// AllNames returns every package name in the workspace, sorted.
func (w *Workspace) AllNames() []string {
	names := make([]string, 0, len(w.Packages))
	for _, p := range w.Packages {
		names = append(names, p.Name)
	}
	sort.Strings(names)
	return names
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
