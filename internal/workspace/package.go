package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cognitive-engineering-lab/depot/internal/manifest"
	"github.com/cognitive-engineering-lab/depot/internal/process"
)

// entryCandidate pairs a basename with the (platform, target) it implies.
type entryCandidate struct {
	basename string
	platform Platform
	target   Target
}

// entryCandidates is precedence-ordered: first match wins.
var entryCandidates = []entryCandidate{
	{"lib", PlatformNode, TargetLib},
	{"main", PlatformNode, TargetBin},
	{"index", PlatformBrowser, TargetBin},
}

var entryExtensions = []string{"tsx", "ts", "js"}

// ErrNoEntryPoint is returned when none of src/{lib,main,index}.{tsx,ts,js}
// exist in a package directory.
type ErrNoEntryPoint struct {
	Dir string
}

func (e *ErrNoEntryPoint) Error() string {
	return fmt.Sprintf("%s: no entry point found (expected one of src/{lib,main,index}.{tsx,ts,js})", e.Dir)
}

// LoadPackage reads dir's manifest and discovers its entry point.
func LoadPackage(dir string) (*Package, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving package dir: %w", err)
	}

	m, err := manifest.Load(abs)
	if err != nil {
		return nil, err
	}

	name := m.Name
	if name == "" {
		name = filepath.Base(abs)
	}

	entry, platform, target, err := discoverEntryPoint(abs)
	if err != nil {
		return nil, err
	}

	return &Package{
		Dir:        abs,
		Manifest:   m,
		Name:       name,
		Platform:   platform,
		Target:     target,
		EntryPoint: entry,
	}, nil
}

// discoverEntryPoint walks entryCandidates x entryExtensions in precedence
// order and returns the first file that exists on disk.
func discoverEntryPoint(dir string) (path string, platform Platform, target Target, err error) {
	for _, cand := range entryCandidates {
		for _, ext := range entryExtensions {
			p := filepath.Join(dir, "src", cand.basename+"."+ext)
			if fileExists(p) {
				return p, cand.platform, cand.target, nil
			}
		}
	}
	return "", "", "", &ErrNoEntryPoint{Dir: dir}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// Spawn runs args as a subprocess with cwd fixed to the package directory.
func (p *Package) Spawn(args []string, onData func([]byte)) (*process.Result, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("spawn: no command given")
	}
	return process.Run(process.Spec{
		Script: args[0],
		Args:   args[1:],
		Dir:    p.Dir,
	}, onData)
}
