package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/jshintmate/internal/ui/pretty"
)

// TextReporter formats reports as styled terminal output.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, report *Context) (err error) {
	bw := bufio.NewWriterSize(r.opts.Writer, bufWriterSize)
	defer func() {
		if flushErr := bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	fmt.Fprintln(bw, r.styles.FormatFileHeader(report.TargetFilename, len(report.Issues)))
	fmt.Fprint(bw, r.styles.FormatConfigLine(report.ConfigPath(), report.JSHintRCValid))

	for _, issue := range report.Issues {
		fmt.Fprint(bw, r.styles.FormatIssue(report.TargetFilename, issue))
	}

	fmt.Fprint(bw, r.styles.FormatSummaryOneLine(len(report.Issues), report.ErrorCount, report.WarningCount))
	return nil
}

// ReportError implements Reporter.
func (r *TextReporter) ReportError(_ context.Context, diag *ErrorContext) (err error) {
	bw := bufio.NewWriterSize(r.opts.Writer, bufWriterSize)
	defer func() {
		if flushErr := bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	message := diag.Source
	if message == "" {
		message = diag.Message
	}
	fmt.Fprintln(bw, r.styles.Failure.Render("JSHint could not run"))
	fmt.Fprintln(bw, message)
	return nil
}
