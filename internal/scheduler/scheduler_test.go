package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/cognitive-engineering-lab/depot/internal/workspace"
)

type fakeCommand struct {
	name     string
	parallel bool
	order    *[]string
	mu       *sync.Mutex
	delay    map[string]time.Duration
	fail     map[string]bool
}

func (f *fakeCommand) Name() string   { return f.name }
func (f *fakeCommand) Parallel() bool { return f.parallel }

func (f *fakeCommand) RunPackage(ctx context.Context, pkg *workspace.Package) Result {
	if d, ok := f.delay[pkg.Name]; ok {
		time.Sleep(d)
	}
	f.mu.Lock()
	*f.order = append(*f.order, pkg.Name)
	f.mu.Unlock()
	return Result{Success: !f.fail[pkg.Name]}
}

func ws(names []string, deps map[string][]string) *workspace.Workspace {
	pkgMap := make(map[string]*workspace.Package, len(names))
	depGraph := make(map[string]map[string]struct{}, len(names))
	var pkgs []*workspace.Package
	for _, n := range names {
		p := &workspace.Package{Name: n, Dir: "/tmp/" + n}
		pkgMap[n] = p
		pkgs = append(pkgs, p)
		set := make(map[string]struct{})
		for _, d := range deps[n] {
			set[d] = struct{}{}
		}
		depGraph[n] = set
	}
	return &workspace.Workspace{Packages: pkgs, PkgMap: pkgMap, DepGraph: depGraph}
}

func TestWaveSchedulerRespectsDependencyOrder(t *testing.T) {
	w := ws([]string{"foo", "bar"}, map[string][]string{"bar": {"foo"}})

	var order []string
	var mu sync.Mutex
	cmd := &fakeCommand{name: "build", order: &order, mu: &mu,
		delay: map[string]time.Duration{"foo": 20 * time.Millisecond}}

	ok, err := Run(context.Background(), cmd, w, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !ok {
		t.Fatal("expected overall success")
	}
	if len(order) != 2 || order[0] != "foo" || order[1] != "bar" {
		t.Fatalf("expected foo before bar, got %v", order)
	}
}

func TestWaveSchedulerFailureStillRunsRemaining(t *testing.T) {
	w := ws([]string{"foo", "bar"}, map[string][]string{"bar": {"foo"}})

	var order []string
	var mu sync.Mutex
	cmd := &fakeCommand{name: "build", order: &order, mu: &mu,
		fail: map[string]bool{"foo": true}}

	ok, err := Run(context.Background(), cmd, w, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if ok {
		t.Fatal("expected overall failure")
	}
	if len(order) != 2 {
		t.Fatalf("expected both tasks to still run, got %v", order)
	}
}

func TestParallelScopedToRootsClosure(t *testing.T) {
	w := ws([]string{"foo", "bar", "baz"}, map[string][]string{"bar": {"foo"}})

	var order []string
	var mu sync.Mutex
	cmd := &fakeCommand{name: "fmt", parallel: true, order: &order, mu: &mu}

	ok, err := Run(context.Background(), cmd, w, []string{"foo"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !ok {
		t.Fatal("expected success")
	}
	if len(order) != 1 || order[0] != "foo" {
		t.Fatalf("expected only foo to run, got %v", order)
	}
}
