// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError     = "error"
	FieldPath      = "path"
	FieldDirectory = "directory"
	FieldInput     = "input"
	FieldOutput    = "output"

	// Configuration fields.
	FieldScope    = "scope"
	FieldFormat   = "format"
	FieldReporter = "reporter"
	FieldQuiet    = "quiet"
	FieldOffset   = "line_offset"
	FieldValid    = "valid"
	FieldSource   = "source"

	// Engine fields.
	FieldEngine   = "engine"
	FieldArgs     = "args"
	FieldFindings = "findings"
	FieldExtract  = "extract"

	// Result fields.
	FieldErrors   = "errors"
	FieldWarnings = "warnings"
	FieldMarker   = "marker"
	FieldDecision = "decision"

	// Version fields.
	FieldDescription = "description"

	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
