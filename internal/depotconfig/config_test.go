package depotconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ServePort != defaultServePort {
		t.Errorf("expected default serve port %d, got %d", defaultServePort, cfg.ServePort)
	}
}

func TestLoadParsesTOML(t *testing.T) {
	root := t.TempDir()
	content := "serve_port = 9000\nnode_path_extra = [\"vendor/helpers\"]\n\n[log]\ncolor = \"always\"\n"
	if err := os.WriteFile(filepath.Join(root, "depot.toml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(root)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ServePort != 9000 {
		t.Errorf("expected serve port 9000, got %d", cfg.ServePort)
	}
	if len(cfg.NodePathExtra) != 1 || cfg.NodePathExtra[0] != "vendor/helpers" {
		t.Errorf("expected node_path_extra [vendor/helpers], got %v", cfg.NodePathExtra)
	}
	if cfg.Log.Color != "always" {
		t.Errorf("expected log.color always, got %q", cfg.Log.Color)
	}
}

func TestLoadMalformedTOMLIsFatal(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "depot.toml"), []byte("this is not [ valid toml"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(root); err == nil {
		t.Fatal("expected an error for malformed depot.toml")
	}
}
