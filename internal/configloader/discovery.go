package configloader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// appDirName is the directory name used under system and user config roots.
const appDirName = "jshintmate"

// ConfigPaths represents discovered configuration file paths.
type ConfigPaths struct {
	// System is the system-wide config path (e.g., /etc/jshintmate/config.yaml).
	System string

	// User is the user-level config path (e.g., ~/.config/jshintmate/config.yaml).
	User string

	// Explicit is a config path provided via --config flag.
	Explicit string
}

// DiscoverPaths finds configuration files in standard locations.
// It searches for:
//   - System config at /etc/jshintmate/config.{yaml,yml}
//   - User config at $XDG_CONFIG_HOME/jshintmate/config.{yaml,yml}
//
// Missing files are represented as empty strings (not errors).
func DiscoverPaths(ctx context.Context, lookup LookupFunc) (*ConfigPaths, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("context cancelled: %w", ctx.Err())
	default:
	}

	if lookup == nil {
		lookup = os.LookupEnv
	}

	return &ConfigPaths{
		System: findSystemConfig(lookup),
		User:   findUserConfig(lookup),
	}, nil
}

// findSystemConfig returns the path to the system-wide config file, if it exists.
func findSystemConfig(lookup LookupFunc) string {
	if runtime.GOOS == "windows" {
		programData, _ := lookup("ProgramData")
		if programData == "" {
			programData = `C:\ProgramData`
		}
		return findConfigInDir(filepath.Join(programData, appDirName))
	}

	return findConfigInDir(filepath.Join("/etc", appDirName))
}

// findUserConfig returns the path to the user-level config file, if it exists.
func findUserConfig(lookup LookupFunc) string {
	configHome, _ := lookup("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := lookup("HOME")
		if home == "" {
			var err error
			home, err = os.UserHomeDir()
			if err != nil {
				return ""
			}
		}
		configHome = filepath.Join(home, ".config")
	}

	return findConfigInDir(filepath.Join(configHome, appDirName))
}

// findConfigInDir looks for config files in the given directory.
// Returns the path to the first found file, or empty string if none.
func findConfigInDir(dir string) string {
	for _, name := range []string{"config.yaml", "config.yml"} {
		path := filepath.Join(dir, name)
		if fileExists(path) {
			return path
		}
	}
	return ""
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// UserConfigPath returns where the user-level config file lives, whether or
// not it exists yet.
func UserConfigPath(lookup LookupFunc) (string, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	configHome, _ := lookup("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}

	return filepath.Join(configHome, appDirName, "config.yaml"), nil
}
