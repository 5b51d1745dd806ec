// Package util holds small filesystem helpers shared across depot's
// packages.
package util

import (
	"fmt"
	"os"
)

// AtomicWriteFile writes data to path atomically: it writes to a sibling
// temp file first, then renames it over path, so a crash mid-write never
// leaves a truncated file behind. The rename is atomic on POSIX systems.
func AtomicWriteFile(path string, data []byte, perm os.FileMode) error {
	tmpFile := path + ".tmp"

	if err := os.WriteFile(tmpFile, data, perm); err != nil {
		return fmt.Errorf("writing temp file for %s: %w", path, err)
	}

	if err := os.Rename(tmpFile, path); err != nil {
		_ = os.Remove(tmpFile)
		return fmt.Errorf("renaming temp file into %s: %w", path, err)
	}

	return nil
}
