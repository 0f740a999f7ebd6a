package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/jshintmate/pkg/issues"
)

// FormatIssue formats a single issue for terminal output.
func (s *Styles) FormatIssue(filename string, issue issues.Issue) string {
	var builder strings.Builder

	location := fmt.Sprintf("%s:%d:%d",
		s.FilePath.Render(filename),
		issue.Line,
		issue.Char,
	)

	// Main line: location  severity  message  (code)
	builder.WriteString(fmt.Sprintf("  %s  %s  %s",
		location,
		s.FormatSeverity(issue.Severity),
		s.Message.Render(issue.Reason),
	))
	if issue.Code != "" {
		builder.WriteString("  " + s.Code.Render("("+issue.Code+")"))
	}
	builder.WriteString("\n")

	return builder.String()
}

// FormatSeverity returns a styled severity word for a severity class.
func (s *Styles) FormatSeverity(severity string) string {
	switch severity {
	case issues.SeverityError:
		return s.Error.Render("error")
	case issues.SeverityWarning:
		return s.Warning.Render("warning")
	default:
		return s.Info.Render("info")
	}
}

// FormatFileHeader formats the report header for a target.
func (s *Styles) FormatFileHeader(filename string, issueCount int) string {
	header := s.FilePath.Render(filename)
	if issueCount > 0 {
		header += s.Dim.Render(fmt.Sprintf(" (%d issues)", issueCount))
	}
	return header
}
