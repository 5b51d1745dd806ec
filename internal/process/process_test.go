package process

import (
	"errors"
	"strings"
	"testing"
)

func TestRunSuccess(t *testing.T) {
	var out strings.Builder
	res, err := Run(Spec{Script: "echo", Args: []string{"hello"}}, func(b []byte) {
		out.Write(b)
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !res.Success || res.ExitCode != 0 {
		t.Fatalf("expected success, got %+v", res)
	}
	if !strings.Contains(out.String(), "hello") {
		t.Fatalf("expected output to contain %q, got %q", "hello", out.String())
	}
}

func TestRunNonZeroExit(t *testing.T) {
	res, err := Run(Spec{Script: "sh", Args: []string{"-c", "exit 3"}}, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Success {
		t.Fatalf("expected failure result")
	}
	if res.ExitCode != 3 {
		t.Fatalf("expected exit code 3, got %d", res.ExitCode)
	}
}

func TestRunMissingBinary(t *testing.T) {
	_, err := Run(Spec{Script: "depot-definitely-not-a-real-binary"}, nil)
	if err == nil {
		t.Fatal("expected an error for a missing binary")
	}
	var spawnErr *SpawnError
	if !errors.As(err, &spawnErr) {
		t.Fatalf("expected *SpawnError, got %T: %v", err, err)
	}
}
