package reporter

import (
	"io"
	"os"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stdout).
	Writer io.Writer

	// Format specifies the output format.
	Format Format

	// Color controls colorized text output.
	// Values: "auto" (default), "always", "never"
	Color string

	// BundleSupport is the editor bundle's support directory, referenced by
	// the HTML shell for its scripts and stylesheet.
	BundleSupport string
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer: os.Stdout,
		Format: FormatHTML,
		Color:  "auto",
	}
}
