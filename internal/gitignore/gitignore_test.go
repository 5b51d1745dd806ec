package gitignore

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRewritePreservesUserSectionAndRegeneratesManaged(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".gitignore")
	initial := "# my own notes\n*.log\n"
	if err := os.WriteFile(path, []byte(initial), 0644); err != nil {
		t.Fatal(err)
	}

	if err := Rewrite(path, []string{"dist", "node_modules"}); err != nil {
		t.Fatalf("Rewrite: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "# my own notes\n*.log\n" + Fence + "\ndist\nnode_modules\n"
	if string(got) != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestRewriteIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".gitignore")

	if err := Rewrite(path, []string{"b", "a", "a"}); err != nil {
		t.Fatalf("first Rewrite: %v", err)
	}
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if err := Rewrite(path, []string{"a", "b"}); err != nil {
		t.Fatalf("second Rewrite: %v", err)
	}
	second, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if string(first) != string(second) {
		t.Errorf("expected idempotent output, got:\n%s\nthen:\n%s", first, second)
	}
}

func TestRewriteMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".gitignore")

	if err := Rewrite(path, []string{"dist"}); err != nil {
		t.Fatalf("Rewrite on absent file: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := Fence + "\ndist\n"
	if string(got) != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
