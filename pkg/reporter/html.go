package reporter

import (
	"bufio"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"strings"
)

// Placeholders in the HTML shell.
const (
	placeholderSupport  = "{{ TM_BUNDLE_SUPPORT }}"
	placeholderTemplate = "{{ EJS_TEMPLATE }}"
	placeholderContext  = "{{ CONTEXT }}"
)

//go:embed templates/template.html
var shellTemplate string

//go:embed templates/content.ejs
var contentTemplate string

//go:embed templates/error.ejs
var errorTemplate string

// HTMLReporter writes the editor's HTML report.
type HTMLReporter struct {
	opts Options
}

// NewHTMLReporter creates a new HTML reporter.
func NewHTMLReporter(opts Options) *HTMLReporter {
	return &HTMLReporter{opts: opts}
}

// Report implements Reporter.
func (r *HTMLReporter) Report(_ context.Context, report *Context) error {
	return r.write(contentTemplate, report)
}

// ReportError implements Reporter.
func (r *HTMLReporter) ReportError(_ context.Context, diag *ErrorContext) error {
	return r.write(errorTemplate, diag)
}

func (r *HTMLReporter) write(subTemplate string, data any) (err error) {
	page, err := RenderPage(r.opts.BundleSupport, subTemplate, data)
	if err != nil {
		return err
	}

	bw := bufio.NewWriterSize(r.opts.Writer, bufWriterSize)
	defer func() {
		if flushErr := bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if _, err := io.WriteString(bw, page); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// RenderPage fills the HTML shell. The sub-template and data are embedded as
// JSON; encoding/json escapes '<', '>' and '&', so neither can close the
// surrounding script element.
func RenderPage(bundleSupport, subTemplate string, data any) (string, error) {
	templateJSON, err := json.Marshal(subTemplate)
	if err != nil {
		return "", fmt.Errorf("encode template: %w", err)
	}

	contextJSON, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("encode context: %w", err)
	}

	replacer := strings.NewReplacer(
		placeholderSupport, html.EscapeString(bundleSupport),
		placeholderTemplate, string(templateJSON),
		placeholderContext, string(contextJSON),
	)
	return replacer.Replace(shellTemplate) + "\n", nil
}
