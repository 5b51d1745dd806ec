// Package gitignore maintains the managed section of a .gitignore file:
// everything above the fence line is user-authored and left untouched;
// everything below is regenerated from the current managed set on every
// invocation.
package gitignore

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/cognitive-engineering-lab/depot/internal/util"
)

// Fence is the line that partitions user-authored entries (above) from
// depot-managed ones (below).
const Fence = "# Managed by depot"

// Rewrite updates path so everything above Fence is preserved verbatim and
// everything below is regenerated (sorted, de-duplicated) from managed.
// The write is atomic. Calling Rewrite twice with the same managed set on
// an unchanged file produces byte-identical output.
func Rewrite(path string, managed []string) error {
	existing, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	userSection := userSectionOf(string(existing))

	sorted := append([]string(nil), managed...)
	sort.Strings(sorted)
	sorted = dedup(sorted)

	var b strings.Builder
	if userSection != "" {
		b.WriteString(userSection)
		if !strings.HasSuffix(userSection, "\n") {
			b.WriteString("\n")
		}
	}
	b.WriteString(Fence)
	b.WriteString("\n")
	for _, entry := range sorted {
		b.WriteString(entry)
		b.WriteString("\n")
	}

	return util.AtomicWriteFile(path, []byte(b.String()), 0644)
}

// userSectionOf returns everything before Fence in content, or all of
// content if Fence is absent.
func userSectionOf(content string) string {
	idx := strings.Index(content, Fence)
	if idx == -1 {
		return content
	}
	return content[:idx]
}

func dedup(sorted []string) []string {
	out := sorted[:0]
	var prev string
	for i, s := range sorted {
		if i > 0 && s == prev {
			continue
		}
		out = append(out, s)
		prev = s
	}
	return out
}
