package cli

import (
	"errors"

	"github.com/yaklabco/jshintmate/internal/configloader"
	"github.com/yaklabco/jshintmate/pkg/engine"
)

// Exit codes for jshintmate.
const (
	// ExitSuccess indicates the run completed, whether or not issues were found.
	ExitSuccess = 0

	// ExitOutputParse indicates the engine's output could not be parsed.
	ExitOutputParse = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates invalid settings.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70
)

// UsageError wraps command-line parsing failures.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// ExitCode maps an error returned by the root command to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var usageErr *UsageError
	var validationErr *configloader.ValidationError

	switch {
	case errors.Is(err, engine.ErrParseOutput):
		return ExitOutputParse
	case errors.As(err, &usageErr):
		return ExitInvalidUsage
	case errors.As(err, &validationErr):
		return ExitConfigError
	default:
		return ExitInternalError
	}
}
