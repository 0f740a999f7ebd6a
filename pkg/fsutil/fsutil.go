// Package fsutil provides small file system helpers for jshintmate: atomic
// writes for sentinel files and existence checks.
package fsutil

import (
	"errors"
	"fmt"
	"os"
)

// DefaultDirMode is the permission mode for directories created by jshintmate.
const DefaultDirMode os.FileMode = 0o755

// ErrNotDirectory indicates the path exists but is not a directory.
var ErrNotDirectory = errors.New("path is not a directory")

// FileExists returns true if the path exists and is not a directory.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// EnsureDir creates dir and any missing parents. It reports whether this call
// created dir. Callers racing on a missing dir may all report created, since
// os.MkdirAll succeeds when the directory already exists.
func EnsureDir(dir string) (bool, error) {
	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return false, fmt.Errorf("%w: %s", ErrNotDirectory, dir)
		}
		return false, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("stat %s: %w", dir, err)
	}

	if err := os.MkdirAll(dir, DefaultDirMode); err != nil {
		return false, fmt.Errorf("create %s: %w", dir, err)
	}
	return true, nil
}
