package configloader

import (
	"fmt"
	"strings"

	"github.com/yaklabco/jshintmate/pkg/config"
	"github.com/yaklabco/jshintmate/pkg/fsutil"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "format" or "TM_INPUT_START_LINE").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string

	// Line is the line number in the config file (if known).
	Line int
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		if e.Line > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", e.FilePath, e.Line))
		} else {
			parts = append(parts, e.FilePath)
		}
	}

	if e.Field != "" {
		parts = append(parts, e.Field)
	}

	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues (e.g., unknown fields).
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AllMessages returns all error and warning messages combined.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

// knownLogLevels lists valid log level values.
//
//nolint:gochecknoglobals // Read-only lookup table.
var knownLogLevels = map[string]bool{
	"debug":   true,
	"info":    true,
	"warn":    true,
	"warning": true,
	"error":   true,
}

// Validate checks settings for errors and warnings.
func Validate(settings *config.Settings) *ValidationResult {
	if settings == nil {
		return &ValidationResult{}
	}

	result := &ValidationResult{}

	if !settings.Format.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "format",
			Value:   settings.Format,
			Message: fmt.Sprintf("invalid format %q; must be one of: html, text, auto", settings.Format),
		})
	}

	if strings.TrimSpace(settings.Engine) == "" {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "engine",
			Message: "engine must not be empty",
		})
	}

	if settings.MaxSearchDepth <= 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "max_search_depth",
			Value:   settings.MaxSearchDepth,
			Message: "max_search_depth must be > 0",
		})
	}

	if settings.MarkerRoot == "" {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "marker_root",
			Message: "marker_root must not be empty",
		})
	}

	if settings.LogLevel != "" && !knownLogLevels[strings.ToLower(settings.LogLevel)] {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   "log_level",
			Value:   settings.LogLevel,
			Message: fmt.Sprintf("unknown log level %q; using info", settings.LogLevel),
		})
	}

	reporter := settings.Reporter
	if reporter != "" && reporter != config.ReporterAuto && reporter != config.ReporterJSLint &&
		!fsutil.FileExists(reporter) {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   "reporter",
			Value:   reporter,
			Message: fmt.Sprintf("reporter script %q not found", reporter),
		})
	}

	return result
}
