// Package lockfile guards workspace-mutating commands (init, clean)
// against concurrent invocations against the same workspace.
package lockfile

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrLocked means another depot command already holds the workspace lock.
var ErrLocked = errors.New("another depot command is already running in this workspace")

// LockName is the advisory lockfile's basename, relative to the workspace
// root. It is listed in the managed .gitignore section.
const LockName = ".depot.lock"

// Lock is a held advisory lock; release it with Unlock.
type Lock struct {
	fl *flock.Flock
}

// Acquire takes a non-blocking advisory lock on <root>/.depot.lock. It
// returns ErrLocked, rather than blocking, if the lock is already held.
func Acquire(root string) (*Lock, error) {
	fl := flock.New(filepath.Join(root, LockName))
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquiring workspace lock: %w", err)
	}
	if !ok {
		return nil, ErrLocked
	}
	return &Lock{fl: fl}, nil
}

// Unlock releases the lock. Safe to call on a nil *Lock.
func (l *Lock) Unlock() error {
	if l == nil || l.fl == nil {
		return nil
	}
	return l.fl.Unlock()
}
