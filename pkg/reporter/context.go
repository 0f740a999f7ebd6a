package reporter

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/yaklabco/jshintmate/pkg/issues"
	"github.com/yaklabco/jshintmate/pkg/jshintrc"
)

// TimestampLayout matches the C locale's %c representation.
const TimestampLayout = "Mon Jan _2 15:04:05 2006"

// Context is the data handed to the report template.
type Context struct {
	JSHintRC       *string        `json:"jshintrc"`
	JSHintRCValid  bool           `json:"jshintrcValid"`
	Issues         []issues.Issue `json:"issues"`
	Timestamp      string         `json:"timestamp"`
	FileURL        string         `json:"fileUrl"`
	TargetFilename string         `json:"targetFilename"`
	MarkerFile     string         `json:"markerFile"`
	ErrorCount     int            `json:"errorCount"`
	WarningCount   int            `json:"warningCount"`
}

// NewContext assembles a report context.
func NewContext(ref jshintrc.Reference, target issues.Target, result issues.Result, markerFile string, now time.Time) *Context {
	report := &Context{
		JSHintRCValid:  ref.Valid,
		Issues:         result.Issues,
		Timestamp:      now.Format(TimestampLayout),
		FileURL:        target.FileURL(),
		TargetFilename: target.Filename(),
		MarkerFile:     markerFile,
		ErrorCount:     result.ErrorCount,
		WarningCount:   result.WarningCount,
	}
	if ref.Found() {
		path := ref.Path
		report.JSHintRC = &path
	}
	if report.Issues == nil {
		report.Issues = []issues.Issue{}
	}
	return report
}

// ConfigPath returns the config path or an empty string.
func (c *Context) ConfigPath() string {
	if c == nil || c.JSHintRC == nil {
		return ""
	}
	return *c.JSHintRC
}

// DecodeContext reads a serialized Context.
func DecodeContext(data []byte) (*Context, error) {
	var report Context
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("decode context: %w", err)
	}
	return &report, nil
}

// ErrorContext is the data handed to the diagnostic template.
type ErrorContext struct {
	// Message is sanitized HTML.
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`

	// Source is the Markdown Message was rendered from.
	Source string `json:"-"`
}
