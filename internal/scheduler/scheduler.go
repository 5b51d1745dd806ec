package scheduler

import (
	"context"
	"sync"

	"github.com/cognitive-engineering-lab/depot/internal/workspace"
)

// Run drives cmd across ws. roots, if non-empty, scopes the per-package run
// to the dependency closure of those package names; an empty roots means
// every package in the workspace.
//
// Overall success is the logical AND of the per-package phase (if any) and
// the per-workspace phase (if any); per-package failures never stop other
// packages from running to completion — no zombie tasks survive a failure.
func Run(ctx context.Context, cmd Command, ws *workspace.Workspace, roots []string) (bool, error) {
	success := true

	if pp, ok := cmd.(PerPackage); ok {
		if len(roots) == 0 {
			roots = ws.AllNames()
		}
		pkgs, err := ws.DependencyClosure(roots)
		if err != nil {
			return false, err
		}

		var ok bool
		var err2 error
		if isParallel(cmd) {
			ok, err2 = runParallel(ctx, pp, pkgs)
		} else {
			ok, err2 = runWave(ctx, pp, ws, pkgs)
		}
		if err2 != nil {
			return false, err2
		}
		success = success && ok
	}

	if pw, ok := cmd.(PerWorkspace); ok {
		res := pw.RunWorkspace(ctx, ws)
		if res.Err != nil {
			return false, res.Err
		}
		success = success && res.Success
	}

	return success, nil
}

// runParallel launches cmd.RunPackage for every package concurrently and
// ANDs the results. No ordering is promised among concurrent tasks.
func runParallel(ctx context.Context, cmd PerPackage, pkgs []*workspace.Package) (bool, error) {
	results := make([]Result, len(pkgs))

	var wg sync.WaitGroup
	for i, p := range pkgs {
		wg.Add(1)
		go func(i int, p *workspace.Package) {
			defer wg.Done()
			results[i] = cmd.RunPackage(ctx, p)
		}(i, p)
	}
	wg.Wait()

	return andResults(results)
}

// runWave implements the wave scheduler: a package starts once every
// package it depends on (within the given set) has finished. Eligible
// packages at each tick launch concurrently; the scheduler re-evaluates
// eligibility as each task finishes until every package is Finished.
func runWave(ctx context.Context, cmd PerPackage, ws *workspace.Workspace, pkgs []*workspace.Package) (bool, error) {
	inScope := make(map[string]struct{}, len(pkgs))
	byName := make(map[string]*workspace.Package, len(pkgs))
	for _, p := range pkgs {
		inScope[p.Name] = struct{}{}
		byName[p.Name] = p
	}

	status := make(map[string]workspace.TaskStatus, len(pkgs))
	for name := range inScope {
		status[name] = workspace.Queued
	}

	var mu sync.Mutex
	done := make(chan string, len(pkgs))
	results := make(map[string]Result, len(pkgs))

	started := 0
	tick := func() {
		mu.Lock()
		defer mu.Unlock()
		for name, st := range status {
			if st != workspace.Queued {
				continue
			}
			if !depsFinished(ws.DepGraph[name], inScope, status) {
				continue
			}
			status[name] = workspace.Running
			started++
			go func(name string) {
				res := cmd.RunPackage(ctx, byName[name])
				mu.Lock()
				results[name] = res
				status[name] = workspace.Finished
				mu.Unlock()
				done <- name
			}(name)
		}
	}

	tick()
	for i := 0; i < len(pkgs); i++ {
		<-done
		tick()
	}

	finalResults := make([]Result, 0, len(pkgs))
	for _, r := range results {
		finalResults = append(finalResults, r)
	}
	return andResults(finalResults)
}

// depsFinished reports whether every dependency of name that is also in
// scope has finished. Dependencies outside the requested closure are
// assumed satisfied (they were not asked to run).
func depsFinished(deps map[string]struct{}, inScope map[string]struct{}, status map[string]workspace.TaskStatus) bool {
	for dep := range deps {
		if _, scoped := inScope[dep]; !scoped {
			continue
		}
		if status[dep] != workspace.Finished {
			return false
		}
	}
	return true
}

func andResults(results []Result) (bool, error) {
	ok := true
	for _, r := range results {
		if r.Err != nil {
			return false, r.Err
		}
		if !r.Success {
			ok = false
		}
	}
	return ok, nil
}
