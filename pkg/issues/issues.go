// Package issues turns raw engine findings into report issues: whole-buffer
// line numbers, editor navigation URLs, and severity tallies.
package issues

import (
	"fmt"
	"path/filepath"

	"github.com/yaklabco/jshintmate/pkg/engine"
)

// Severity classes, taken from the first character of a finding's code.
const (
	SeverityError   = "E"
	SeverityWarning = "W"
)

// UnsavedFilename labels buffers that have no file on disk.
const UnsavedFilename = "(current unsaved file)"

// Issue is a normalized finding. Field names follow the report context consumed
// by the HTML templates.
type Issue struct {
	Line     int    `json:"line"`
	Char     int    `json:"char"`
	Reason   string `json:"reason"`
	Code     string `json:"code"`
	Severity string `json:"severity"`
	URL      string `json:"url"`
}

// IsError reports whether the issue counts as an error.
func (i Issue) IsError() bool {
	return i.Severity == SeverityError
}

// IsWarning reports whether the issue counts as a warning.
func (i Issue) IsWarning() bool {
	return i.Severity == SeverityWarning
}

// Target identifies the buffer being validated.
type Target struct {
	// FilePath is the absolute path of the file, empty for unsaved buffers.
	FilePath string
}

// FileURL is the editor URL opening the target. It also serves as the
// target's identity for marker files.
func (t Target) FileURL() string {
	if t.FilePath == "" {
		return "txmt://open?line=1&column=0"
	}
	return "txmt://open?url=file://" + t.FilePath
}

// Filename is the display name of the target.
func (t Target) Filename() string {
	if t.FilePath == "" {
		return UnsavedFilename
	}
	return filepath.Base(t.FilePath)
}

// LocationURL is the editor URL jumping to line and column in the target.
func (t Target) LocationURL(line, column int) string {
	if t.FilePath == "" {
		return fmt.Sprintf("txmt://open?line=%d&column=%d", line, column)
	}
	return fmt.Sprintf("txmt://open?url=file://%s&line=%d&column=%d", t.FilePath, line, column)
}

// Result holds normalized issues in engine order with their tallies.
type Result struct {
	Issues       []Issue
	ErrorCount   int
	WarningCount int
}

// Clean reports whether there are no errors and no warnings.
func (r Result) Clean() bool {
	return r.ErrorCount == 0 && r.WarningCount == 0
}

// Normalize converts findings to issues. lineOffset is added to every line to
// turn engine-relative numbers into whole-buffer numbers. Order is preserved.
func Normalize(findings []engine.Finding, target Target, lineOffset int) Result {
	result := Result{Issues: make([]Issue, 0, len(findings))}

	for _, finding := range findings {
		line := finding.Line + lineOffset
		issue := Issue{
			Line:     line,
			Char:     finding.Character,
			Reason:   finding.Reason,
			Code:     finding.Code,
			Severity: Classify(finding.Code),
			URL:      target.LocationURL(line, finding.Character),
		}

		switch {
		case issue.IsError():
			result.ErrorCount++
		case issue.IsWarning():
			result.WarningCount++
		}

		result.Issues = append(result.Issues, issue)
	}

	return result
}

// Classify returns the severity class of an engine code: its first character.
func Classify(code string) string {
	if code == "" {
		return ""
	}
	return code[:1]
}
