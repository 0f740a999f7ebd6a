// Package reporter renders validation results for the editor.
//
// The HTML reporter substitutes a serialized Context and a client-side EJS
// sub-template into a fixed HTML shell; the shell's scripts render the page.
// The text reporter prints the same Context for terminals.
package reporter

import (
	"context"
	"fmt"
)

// Compile-time interface checks.
var (
	_ Reporter = (*HTMLReporter)(nil)
	_ Reporter = (*TextReporter)(nil)
)

// Reporter formats and writes reports.
type Reporter interface {
	// Report writes a validation report.
	Report(ctx context.Context, report *Context) error

	// ReportError writes a diagnostic document explaining why validation could not run.
	ReportError(ctx context.Context, diag *ErrorContext) error
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}

	format := opts.Format
	if format == "" {
		format = FormatHTML
	}

	switch format {
	case FormatHTML:
		return NewHTMLReporter(opts), nil
	case FormatText:
		return NewTextReporter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}
