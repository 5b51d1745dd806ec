// Package manifest parses a package's package.json manifest.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Manifest is the subset of package.json fields depot reads.
type Manifest struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Private         bool              `json:"private"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
	PeerDependencies map[string]string `json:"peerDependencies"`

	// Depot is the tool-specific section, keyed "depot" in package.json,
	// kept as undecoded JSON values per key. No depot code reads it.
	Depot map[string]json.RawMessage `json:"depot"`
}

// Load reads and parses the package.json manifest at <dir>/package.json.
func Load(dir string) (*Manifest, error) {
	path := filepath.Join(dir, "package.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing %s:\n\t%s", path, indent(err.Error()))
	}
	return &m, nil
}

func indent(s string) string {
	return strings.ReplaceAll(s, "\n", "\n\t")
}

// DependencyNames returns the union of keys across dependencies,
// devDependencies, and peerDependencies.
func (m *Manifest) DependencyNames() []string {
	seen := make(map[string]struct{})
	for name := range m.Dependencies {
		seen[name] = struct{}{}
	}
	for name := range m.DevDependencies {
		seen[name] = struct{}{}
	}
	for name := range m.PeerDependencies {
		seen[name] = struct{}{}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	return names
}

// ExternalNames returns the union of dependencies and peerDependencies —
// the set the build orchestrator marks external when bundling a node
// package so the bundle does not vendor runtime-provided modules.
func (m *Manifest) ExternalNames() []string {
	seen := make(map[string]struct{})
	for name := range m.Dependencies {
		seen[name] = struct{}{}
	}
	for name := range m.PeerDependencies {
		seen[name] = struct{}{}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	return names
}
