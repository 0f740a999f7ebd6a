package pretty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/jshintmate/internal/ui/pretty"
	"github.com/yaklabco/jshintmate/pkg/issues"
)

func TestFormatIssue_NoColor(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	issue := issues.Issue{Line: 12, Char: 4, Reason: "Missing semicolon.", Code: "W033", Severity: "W"}

	got := styles.FormatIssue("app.js", issue)
	assert.Equal(t, "  app.js:12:4  warning  Missing semicolon.  (W033)\n", got)
}

func TestFormatIssue_NoCode(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	issue := issues.Issue{Line: 1, Char: 1, Reason: "Bad thing.", Severity: "E"}

	assert.Equal(t, "  x.js:1:1  error  Bad thing.\n", styles.FormatIssue("x.js", issue))
}

func TestFormatSeverity(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	assert.Equal(t, "error", styles.FormatSeverity("E"))
	assert.Equal(t, "warning", styles.FormatSeverity("W"))
	assert.Equal(t, "info", styles.FormatSeverity("I"))
}

func TestFormatSummaryOneLine(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	tests := []struct {
		name                 string
		total, errors, warns int
		want                 string
	}{
		{"clean", 0, 0, 0, "No issues found\n"},
		{"single error", 1, 1, 0, "1 issue (1 error)\n"},
		{"mixed", 4, 2, 1, "4 issues (2 errors, 1 warning, 1 info)\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, styles.FormatSummaryOneLine(tt.total, tt.errors, tt.warns))
		})
	}
}

func TestFormatConfigLine(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	assert.Contains(t, styles.FormatConfigLine("", false), "No .jshintrc found")
	assert.Contains(t, styles.FormatConfigLine("/a/.jshintrc", false), "Ignoring invalid configuration: /a/.jshintrc")
	assert.Equal(t, "Using configuration: /a/.jshintrc\n", styles.FormatConfigLine("/a/.jshintrc", true))
}

func TestFormatFileHeader(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	assert.Equal(t, "app.js (3 issues)", styles.FormatFileHeader("app.js", 3))
	assert.Equal(t, "app.js", styles.FormatFileHeader("app.js", 0))
}
