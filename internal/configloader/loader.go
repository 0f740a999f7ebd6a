// Package configloader provides configuration loading and resolution.
// It implements XDG-compliant settings discovery, hierarchical merging, and
// the editor's environment variable contract.
package configloader

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/jshintmate/internal/logging"
	"github.com/yaklabco/jshintmate/pkg/config"
)

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// ExplicitPath is an explicit settings file path (from --config flag).
	ExplicitPath string

	// IgnoreSystemConfig skips loading system-level configuration.
	IgnoreSystemConfig bool

	// IgnoreUserConfig skips loading user-level configuration.
	IgnoreUserConfig bool

	// IgnoreEnv skips loading environment variables, including TM_*.
	IgnoreEnv bool

	// Lookup reads environment variables. Defaults to os.LookupEnv.
	Lookup LookupFunc

	// CLIConfig contains settings from CLI flags.
	// These take highest precedence.
	CLIConfig *config.Settings
}

// LoadResult contains the resolved settings and metadata.
type LoadResult struct {
	// Settings is the final merged configuration.
	Settings *config.Settings

	// Paths contains the discovered configuration file paths.
	Paths *ConfigPaths

	// LoadedFrom lists the files that were actually loaded (in order).
	LoadedFrom []string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string
}

// Load resolves the final settings by merging all sources.
// Precedence (highest to lowest):
//  1. CLI flags (opts.CLIConfig)
//  2. Editor variables (TM_*)
//  3. Environment overrides (JSHINTMATE_*)
//  4. Explicit settings file (opts.ExplicitPath)
//  5. User config ($XDG_CONFIG_HOME/jshintmate/config.yaml)
//  6. System config (/etc/jshintmate/config.yaml)
//  7. Defaults
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	logger := logging.FromContext(ctx)

	paths, err := DiscoverPaths(ctx, opts.Lookup)
	if err != nil {
		return nil, fmt.Errorf("discover paths: %w", err)
	}
	paths.Explicit = opts.ExplicitPath

	result := &LoadResult{Paths: paths}
	settings := config.NewSettings()

	layers := []struct {
		name   string
		path   string
		ignore bool
	}{
		{name: "system", path: paths.System, ignore: opts.IgnoreSystemConfig},
		{name: "user", path: paths.User, ignore: opts.IgnoreUserConfig},
		{name: "explicit", path: paths.Explicit},
	}

	for _, layer := range layers {
		if layer.ignore || layer.path == "" {
			continue
		}

		overlay, err := loadConfigFile(layer.path)
		if err != nil {
			return nil, fmt.Errorf("load %s config: %w", layer.name, err)
		}
		settings = config.Merge(settings, overlay)
		result.LoadedFrom = append(result.LoadedFrom, layer.path)
		logger.Debug("loaded settings file", logging.FieldSource, layer.name, logging.FieldPath, layer.path)
	}

	if !opts.IgnoreEnv {
		if err := LoadFromEnv(settings, opts.Lookup); err != nil {
			return nil, fmt.Errorf("load environment: %w", err)
		}
	}

	if opts.CLIConfig != nil {
		settings = config.Merge(settings, opts.CLIConfig)
		settings.Quiet = settings.Quiet || opts.CLIConfig.Quiet
	}

	validation := Validate(settings)
	if !validation.Valid() {
		return nil, &validation.Errors[0]
	}

	for _, w := range validation.Warnings {
		result.Warnings = append(result.Warnings, w.Error())
	}

	result.Settings = settings
	return result, nil
}

// loadConfigFile loads persistent settings from a YAML file.
func loadConfigFile(path string) (*config.Settings, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	settings := &config.Settings{}
	if err := yaml.Unmarshal(content, settings); err != nil {
		return nil, &ValidationError{
			FilePath: path,
			Message:  fmt.Sprintf("parse YAML: %v", err),
		}
	}

	return settings, nil
}
