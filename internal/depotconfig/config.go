// Package depotconfig loads depot's own orchestrator-level settings from an
// optional depot.toml at the workspace root.
package depotconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is depot's orchestrator-level configuration. Every field has a
// usable zero value, so an absent depot.toml is not an error.
type Config struct {
	// ServePort is the port the build orchestrator's serve subordinate
	// binds to. Default 8000.
	ServePort int `toml:"serve_port"`

	// NodePathExtra is parsed from node_path_extra. Nothing reads it: spawned
	// children's module resolution path does not include these directories.
	NodePathExtra []string `toml:"node_path_extra"`

	Log LogConfig `toml:"log"`
}

// LogConfig holds the [log] table of depot.toml.
type LogConfig struct {
	// Color is parsed from log.color. Nothing reads it: OnceLogger's dump
	// always emits its bold pane headers regardless of this value.
	Color string `toml:"color"`
}

const defaultServePort = 8000

// Default returns the zero-config defaults.
func Default() *Config {
	return &Config{ServePort: defaultServePort}
}

// Load reads <root>/depot.toml if present. A missing file is not an error
// and yields Default(); a malformed file is a fatal startup error.
func Load(root string) (*Config, error) {
	path := filepath.Join(root, "depot.toml")
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	cfg := Default()
	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if cfg.ServePort == 0 {
		cfg.ServePort = defaultServePort
	}
	return cfg, nil
}
