package pretty

import (
	"fmt"
	"strings"
)

// FormatSummaryOneLine formats tallies as a single line.
// Example: "3 issues (2 errors, 1 warning)".
func (s *Styles) FormatSummaryOneLine(total, errorCount, warningCount int) string {
	if total == 0 {
		return s.Success.Render("No issues found") + "\n"
	}

	var severityParts []string
	if errorCount > 0 {
		severityParts = append(severityParts, s.Error.Render(plural(errorCount, "error")))
	}
	if warningCount > 0 {
		severityParts = append(severityParts, s.Warning.Render(plural(warningCount, "warning")))
	}
	if other := total - errorCount - warningCount; other > 0 {
		severityParts = append(severityParts, s.Info.Render(fmt.Sprintf("%d info", other)))
	}

	return fmt.Sprintf("%s (%s)\n", plural(total, "issue"), strings.Join(severityParts, ", "))
}

// FormatConfigLine describes the configuration used for a run.
func (s *Styles) FormatConfigLine(path string, valid bool) string {
	switch {
	case path == "":
		return s.Dim.Render("No .jshintrc found, using engine defaults") + "\n"
	case !valid:
		return s.Failure.Render("Ignoring invalid configuration: ") + s.FilePath.Render(path) + "\n"
	default:
		return s.Dim.Render("Using configuration: ") + s.FilePath.Render(path) + "\n"
	}
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
