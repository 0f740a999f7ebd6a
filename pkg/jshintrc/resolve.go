// Package jshintrc locates the lint configuration that applies to a buffer.
//
// Candidates, first hit wins:
//  1. The file named by the override key of the nearest package.json.
//  2. The nearest .jshintrc in the start directory or any ancestor.
//  3. ~/.jshintrc.
package jshintrc

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yaklabco/jshintmate/internal/logging"
	"github.com/yaklabco/jshintmate/pkg/config"
)

// ErrInvalidConfig marks a config file that exists but does not parse.
var ErrInvalidConfig = errors.New("invalid configuration file")

// Reference is the outcome of config resolution.
type Reference struct {
	// Path is the resolved config file, empty when none was found.
	Path string

	// Valid is true only when Path parses as comment-tolerant JSON.
	Valid bool
}

// Found reports whether a config file was located.
func (r Reference) Found() bool {
	return r.Path != ""
}

// Usable reports whether the config may be handed to the engine.
func (r Reference) Usable() bool {
	return r.Path != "" && r.Valid
}

// Options controls resolution.
type Options struct {
	// StartDir is the directory of the buffer, empty for unsaved buffers.
	StartDir string

	// HomeDir overrides the user's home directory. Defaults to os.UserHomeDir.
	HomeDir string

	// MaxDepth bounds each ancestor walk. Defaults to 30.
	MaxDepth int

	// PackageFile is the descriptor file name. Defaults to package.json.
	PackageFile string

	// PackageKey is the descriptor key naming an override config.
	PackageKey string

	// RCFileName is the dotfile name. Defaults to .jshintrc.
	RCFileName string
}

// OptionsFromSettings builds resolver options from invocation settings.
func OptionsFromSettings(settings *config.Settings) Options {
	return Options{
		StartDir:   settings.Directory,
		MaxDepth:   settings.MaxSearchDepth,
		PackageKey: settings.PackageConfigKey,
		RCFileName: settings.RCFileName,
	}
}

func (o Options) withDefaults() Options {
	if o.MaxDepth <= 0 {
		o.MaxDepth = config.DefaultMaxSearchDepth
	}
	if o.PackageFile == "" {
		o.PackageFile = config.DefaultPackageFile
	}
	if o.PackageKey == "" {
		o.PackageKey = config.DefaultPackageConfigKey
	}
	if o.RCFileName == "" {
		o.RCFileName = config.DefaultRCFileName
	}
	if o.HomeDir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			o.HomeDir = home
		}
	}
	return o
}

// Resolve returns the most relevant config reference for opts.StartDir.
// A file that is found but does not parse is returned with Valid false.
// Resolution never fails on malformed files; only context cancellation is an error.
func Resolve(ctx context.Context, opts Options) (Reference, error) {
	opts = opts.withDefaults()
	logger := logging.FromContext(ctx)

	path, err := locate(ctx, opts)
	if err != nil {
		return Reference{}, err
	}
	if path == "" {
		logger.Debug("no jshint configuration found", logging.FieldDirectory, opts.StartDir)
		return Reference{}, nil
	}

	ref := Reference{Path: path, Valid: true}
	if err := Validate(path); err != nil {
		logger.Debug("configuration does not parse", logging.FieldPath, path, logging.FieldError, err)
		ref.Valid = false
	}

	logger.Debug("resolved jshint configuration", logging.FieldPath, ref.Path, logging.FieldValid, ref.Valid)
	return ref, nil
}

func locate(ctx context.Context, opts Options) (string, error) {
	if opts.StartDir != "" {
		override, err := findPackageOverride(ctx, opts)
		if err != nil {
			return "", err
		}
		if override != "" {
			return override, nil
		}

		rc, err := FindUp(ctx, opts.StartDir, opts.RCFileName, opts.MaxDepth)
		if err != nil {
			return "", err
		}
		if rc != "" {
			return rc, nil
		}
	}

	if opts.HomeDir != "" {
		homeRC := filepath.Join(opts.HomeDir, opts.RCFileName)
		if fileExists(homeRC) {
			return homeRC, nil
		}
	}

	return "", nil
}

// findPackageOverride reads the nearest descriptor and follows its override key.
// A malformed descriptor is treated as having no override key.
func findPackageOverride(ctx context.Context, opts Options) (string, error) {
	descriptor, err := FindUp(ctx, opts.StartDir, opts.PackageFile, opts.MaxDepth)
	if err != nil || descriptor == "" {
		return "", err
	}

	content, err := os.ReadFile(descriptor)
	if err != nil {
		return "", nil
	}

	var pkg map[string]any
	if err := ParseJSONC(content, &pkg); err != nil {
		logging.FromContext(ctx).Debug("skipping malformed package descriptor",
			logging.FieldPath, descriptor, logging.FieldError, err)
		return "", nil
	}

	value, ok := pkg[opts.PackageKey].(string)
	if !ok || value == "" {
		return "", nil
	}

	target := value
	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(descriptor), target)
	}
	target, err = filepath.Abs(target)
	if err != nil {
		return "", nil
	}

	if !fileExists(target) {
		return "", nil
	}
	return target, nil
}

// FindUp searches startDir and its ancestors for a regular file called name.
// At most maxDepth directories are examined; the walk stops at the filesystem root.
// Returns an empty string when nothing is found.
func FindUp(ctx context.Context, startDir, name string, maxDepth int) (string, error) {
	currentDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}

	for depth := maxDepth; depth > 0; depth-- {
		select {
		case <-ctx.Done():
			return "", fmt.Errorf("context cancelled: %w", ctx.Err())
		default:
		}

		path := filepath.Join(currentDir, name)
		if fileExists(path) {
			return path, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", nil
		}
		currentDir = parentDir
	}

	return "", nil
}

// fileExists returns true if the path exists and is not a directory.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
