package engine

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
)

const pathVar = "PATH"

// AugmentPath returns a copy of environ whose PATH has every directory in extra
// appended, unless it is already present. Order of existing entries is kept.
func AugmentPath(environ []string, extra []string) []string {
	result := make([]string, 0, len(environ)+1)
	found := false

	for _, entry := range environ {
		name, value, ok := strings.Cut(entry, "=")
		if ok && name == pathVar {
			found = true
			entry = pathVar + "=" + appendDirs(value, extra)
		}
		result = append(result, entry)
	}

	if !found && len(extra) > 0 {
		result = append(result, pathVar+"="+appendDirs("", extra))
	}
	return result
}

func appendDirs(value string, extra []string) string {
	var dirs []string
	if value != "" {
		dirs = filepath.SplitList(value)
	}
	for _, dir := range extra {
		if dir == "" || slices.Contains(dirs, dir) {
			continue
		}
		dirs = append(dirs, dir)
	}
	return strings.Join(dirs, string(os.PathListSeparator))
}

// envValue returns the value of name in environ, or "".
func envValue(environ []string, name string) string {
	for _, entry := range environ {
		key, value, ok := strings.Cut(entry, "=")
		if ok && key == name {
			return value
		}
	}
	return ""
}

// isExecutable reports whether path is a regular file with an execute bit set.
func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	return info.Mode().Perm()&0o111 != 0
}
