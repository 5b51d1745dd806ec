package cliapp

import "testing"

func TestRootCommandRegistersEveryVerb(t *testing.T) {
	want := []string{"build", "fmt", "clean", "test", "init", "new", "add", "update", "link", "commit-check", "prepare"}
	for _, name := range want {
		if cmd, _, err := rootCmd.Find([]string{name}); err != nil || cmd.Name() != name {
			t.Errorf("expected %q to be registered as a subcommand, err=%v", name, err)
		}
	}
}

func TestPassthroughCommandsDisableFlagParsing(t *testing.T) {
	cmd, _, err := rootCmd.Find([]string{"add"})
	if err != nil {
		t.Fatalf("Find add: %v", err)
	}
	if !cmd.DisableFlagParsing {
		t.Fatal("expected the add passthrough to disable flag parsing so args forward verbatim")
	}
}
