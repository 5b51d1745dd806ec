package lockfile

import (
	"errors"
	"testing"
)

func TestAcquireThenContention(t *testing.T) {
	root := t.TempDir()

	lock, err := Acquire(root)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	defer lock.Unlock()

	if _, err := Acquire(root); !errors.Is(err, ErrLocked) {
		t.Fatalf("expected ErrLocked on contended acquire, got %v", err)
	}
}

func TestAcquireAfterUnlockSucceeds(t *testing.T) {
	root := t.TempDir()

	lock, err := Acquire(root)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	if err := lock.Unlock(); err != nil {
		t.Fatalf("Unlock: %v", err)
	}

	second, err := Acquire(root)
	if err != nil {
		t.Fatalf("expected Acquire to succeed after Unlock, got %v", err)
	}
	second.Unlock()
}

func TestUnlockNilIsSafe(t *testing.T) {
	var lock *Lock
	if err := lock.Unlock(); err != nil {
		t.Fatalf("expected nil Lock.Unlock to be a no-op, got %v", err)
	}
}
