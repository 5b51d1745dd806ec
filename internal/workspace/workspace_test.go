package workspace

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadFromSinglePackage(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "package.json"), `{"name":"foo"}`)
	writeFile(t, filepath.Join(root, "src", "lib.ts"), "export let foo = 'bar';\n")

	ws, err := LoadFrom(root)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if ws.Monorepo {
		t.Fatal("expected non-monorepo workspace")
	}
	if len(ws.Packages) != 1 {
		t.Fatalf("expected 1 package, got %d", len(ws.Packages))
	}
	p := ws.Packages[0]
	if p.Name != "foo" {
		t.Errorf("expected name foo, got %s", p.Name)
	}
	if p.Platform != PlatformNode || p.Target != TargetLib {
		t.Errorf("expected (node, lib), got (%s, %s)", p.Platform, p.Target)
	}
}

func TestLoadFromMissingEntryPoint(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "package.json"), `{"name":"foo"}`)

	_, err := LoadFrom(root)
	if err == nil {
		t.Fatal("expected an error for a package with no entry point")
	}
}

func TestDepGraphTransitiveClosure(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "package.json"), `{"name":"root-ws","workspaces":["packages/*"]}`)

	writeFile(t, filepath.Join(root, "packages", "a", "package.json"), `{"name":"a"}`)
	writeFile(t, filepath.Join(root, "packages", "a", "src", "lib.ts"), "export let a = 1;\n")

	writeFile(t, filepath.Join(root, "packages", "b", "package.json"), `{"name":"b","dependencies":{"a":"0.0.1"}}`)
	writeFile(t, filepath.Join(root, "packages", "b", "src", "lib.ts"), "export let b = 1;\n")

	writeFile(t, filepath.Join(root, "packages", "c", "package.json"), `{"name":"c","dependencies":{"b":"0.0.1"}}`)
	writeFile(t, filepath.Join(root, "packages", "c", "src", "lib.ts"), "export let c = 1;\n")

	ws, err := LoadFrom(root)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if !ws.Monorepo {
		t.Fatal("expected monorepo workspace")
	}
	if len(ws.Packages) != 3 {
		t.Fatalf("expected 3 packages, got %d", len(ws.Packages))
	}

	// c depends transitively on a, via b.
	if _, ok := ws.DepGraph["c"]["a"]; !ok {
		t.Errorf("expected c's dep graph to transitively include a, got %v", ws.DepGraph["c"])
	}

	closure, err := ws.DependencyClosure([]string{"c"})
	if err != nil {
		t.Fatalf("DependencyClosure: %v", err)
	}
	names := make([]string, 0, len(closure))
	for _, p := range closure {
		names = append(names, p.Name)
	}
	if len(names) != 3 {
		t.Fatalf("expected closure of c to include all 3 packages, got %v", names)
	}
}

func TestDependencyClosureSingleRootExcludesSiblings(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "package.json"), `{"name":"root-ws"}`)

	writeFile(t, filepath.Join(root, "packages", "a", "package.json"), `{"name":"a"}`)
	writeFile(t, filepath.Join(root, "packages", "a", "src", "lib.ts"), "export let a = 1;\n")

	writeFile(t, filepath.Join(root, "packages", "b", "package.json"), `{"name":"b"}`)
	writeFile(t, filepath.Join(root, "packages", "b", "src", "lib.ts"), "export let b = 1;\n")

	ws, err := LoadFrom(root)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}

	closure, err := ws.DependencyClosure([]string{"a"})
	if err != nil {
		t.Fatalf("DependencyClosure: %v", err)
	}
	if len(closure) != 1 || closure[0].Name != "a" {
		t.Fatalf("expected closure of {a} to be just [a], got %v", closure)
	}
}
