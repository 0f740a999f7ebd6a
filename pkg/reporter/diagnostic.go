package reporter

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

// NewErrorContext renders a Markdown diagnostic message to sanitized HTML.
func NewErrorContext(markdown string, now time.Time) (*ErrorContext, error) {
	message, err := renderMarkdown(markdown)
	if err != nil {
		return nil, err
	}
	return &ErrorContext{
		Message:   message,
		Timestamp: now.Format(TimestampLayout),
		Source:    markdown,
	}, nil
}

// renderMarkdown converts Markdown to HTML and strips anything unsafe, so
// error text echoed from the environment cannot inject markup.
func renderMarkdown(content string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(content), &buf); err != nil {
		return "", fmt.Errorf("convert diagnostic: %w", err)
	}

	policy := bluemonday.UGCPolicy()
	return strings.TrimSpace(policy.Sanitize(buf.String())), nil
}
