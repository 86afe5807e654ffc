// Package fs selects input files with doublestar glob patterns.
package fs

import (
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// Glob returns the regular files under dir matching pattern, joined with
// dir, in walk order. Patterns support ** for recursive matching.
func Glob(dir, pattern string) ([]string, error) {
	if pattern == "" {
		return nil, fmt.Errorf("pattern is required")
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid glob pattern: %s", pattern)
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("access %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	var matches []string
	err = doublestar.GlobWalk(os.DirFS(dir), pattern, func(path string, d iofs.DirEntry) error {
		if d.IsDir() {
			return nil
		}
		matches = append(matches, filepath.Join(dir, filepath.FromSlash(path)))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("match %s: %w", pattern, err)
	}
	return matches, nil
}
