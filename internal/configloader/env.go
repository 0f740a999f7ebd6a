package configloader

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/yaklabco/jshintmate/pkg/config"
)

// LookupFunc reads an environment variable. It matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Editor-provided environment variables.
const (
	EnvFilePath       = "TM_FILEPATH"
	EnvDirectory      = "TM_DIRECTORY"
	EnvScope          = "TM_SCOPE"
	EnvInputStartLine = "TM_INPUT_START_LINE"
	EnvBundleSupport  = "TM_BUNDLE_SUPPORT"
	EnvEngine         = "TM_JSHINT"
)

// envVarPrefix is the prefix for jshintmate's own environment variables.
const envVarPrefix = "JSHINTMATE_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeInt
	envTypePathList
)

// envMapping defines environment variable to settings field mappings.
type envMapping struct {
	field string
	typ   envFieldType
}

// envMappings maps environment variable names (without prefix) to settings fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"ENGINE":           {field: "engine", typ: envTypeString},
	"REPORTER":         {field: "reporter", typ: envTypeString},
	"FORMAT":           {field: "format", typ: envTypeString},
	"LOG_LEVEL":        {field: "log_level", typ: envTypeString},
	"MARKER_ROOT":      {field: "marker_root", typ: envTypeString},
	"MAX_SEARCH_DEPTH": {field: "max_search_depth", typ: envTypeInt},
	"EXTRA_PATH":       {field: "extra_path", typ: envTypePathList},
}

// LoadFromEnv applies JSHINTMATE_* overrides and then the editor's TM_*
// variables to the settings. TM_JSHINT wins over JSHINTMATE_ENGINE.
func LoadFromEnv(settings *config.Settings, lookup LookupFunc) error {
	if settings == nil {
		return nil
	}
	if lookup == nil {
		lookup = os.LookupEnv
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value, ok := lookup(envVar)
		if !ok || value == "" {
			continue
		}

		if err := applyEnvValue(settings, mapping, value, envVar); err != nil {
			return err
		}
	}

	return loadEditorEnv(settings, lookup)
}

// loadEditorEnv populates the target buffer fields.
func loadEditorEnv(settings *config.Settings, lookup LookupFunc) error {
	get := func(key string) string {
		value, _ := lookup(key)
		return value
	}

	settings.FilePath = get(EnvFilePath)
	settings.Directory = get(EnvDirectory)
	if settings.Directory == "" && settings.FilePath != "" {
		settings.Directory = filepath.Dir(settings.FilePath)
	}
	settings.Scope = get(EnvScope)
	settings.BundleSupport = get(EnvBundleSupport)

	if engine := get(EnvEngine); engine != "" {
		settings.Engine = engine
	}

	if raw := strings.TrimSpace(get(EnvInputStartLine)); raw != "" {
		line, err := strconv.Atoi(raw)
		if err != nil || line < 0 {
			return &ValidationError{
				Field:   EnvInputStartLine,
				Value:   raw,
				Message: "must be a non-negative integer",
			}
		}
		settings.InputStartLine = line
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the settings.
func applyEnvValue(settings *config.Settings, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(settings, mapping.field, value)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		return setIntField(settings, mapping.field, i)
	case envTypePathList:
		return setPathListField(settings, mapping.field, parsePathList(value))
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// parsePathList splits a PATH-style list. Empty elements are dropped.
func parsePathList(value string) []string {
	parts := filepath.SplitList(value)
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func setStringField(settings *config.Settings, field, value string) error {
	switch field {
	case "engine":
		settings.Engine = value
	case "reporter":
		settings.Reporter = value
	case "format":
		settings.Format = config.OutputFormat(strings.ToLower(value))
	case "log_level":
		settings.LogLevel = value
	case "marker_root":
		settings.MarkerRoot = value
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

func setIntField(settings *config.Settings, field string, value int) error {
	switch field {
	case "max_search_depth":
		settings.MaxSearchDepth = value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

func setPathListField(settings *config.Settings, field string, value []string) error {
	switch field {
	case "extra_path":
		settings.ExtraPath = value
	default:
		return fmt.Errorf("unknown path list field: %s", field)
	}
	return nil
}

// ListEnvVars returns all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	return map[string]string{
		EnvFilePath:                   "Path of the file being validated (set by the editor)",
		EnvDirectory:                  "Directory of the file being validated (set by the editor)",
		EnvScope:                      "Scope of the buffer, e.g. source.js or text.html.basic",
		EnvInputStartLine:             "Line where the input starts when validating a selection",
		EnvBundleSupport:              "Bundle support directory for the HTML report",
		EnvEngine:                     "Lint engine executable (overrides JSHINTMATE_ENGINE)",
		"JSHINTMATE_ENGINE":           "Lint engine executable (default jshint)",
		"JSHINTMATE_REPORTER":         "Engine reporter: auto, jslint, or a reporter script path",
		"JSHINTMATE_FORMAT":           "Output format: html, text, or auto",
		"JSHINTMATE_LOG_LEVEL":        "Log level for stderr: debug, info, warn, or error",
		"JSHINTMATE_MARKER_ROOT":      "Directory holding date-partitioned marker files",
		"JSHINTMATE_MAX_SEARCH_DEPTH": "Maximum ancestor directories searched for config",
		"JSHINTMATE_EXTRA_PATH":       "Extra directories appended to the engine PATH",
	}
}
