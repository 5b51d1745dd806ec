// Package vcs locates the version-control root of the current directory.
package vcs

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// ErrNotARepo means the current directory is not inside a git repository.
var ErrNotARepo = errors.New("not a git repository")

// GitError contains raw output from a failed git invocation.
type GitError struct {
	Args   []string
	Stderr string
	Err    error
}

func (e *GitError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("git %s: %s", strings.Join(e.Args, " "), e.Stderr)
	}
	return fmt.Sprintf("git %s: %v", strings.Join(e.Args, " "), e.Err)
}

func (e *GitError) Unwrap() error {
	return e.Err
}

// RepoRoot returns the top-level directory of the git repository containing
// dir, or ErrNotARepo if dir is not inside one.
func RepoRoot(dir string) (string, error) {
	cmd := exec.Command("git", "-C", dir, "rev-parse", "--show-toplevel")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", ErrNotARepo
		}
		return "", &GitError{Args: cmd.Args[1:], Stderr: stderr.String(), Err: err}
	}
	return filepath.Clean(strings.TrimSpace(string(out))), nil
}
