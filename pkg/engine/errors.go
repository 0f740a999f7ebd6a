package engine

import (
	"errors"
	"fmt"
)

// Sentinel errors for engine failures.
var (
	// ErrLaunch indicates the engine executable could not be started.
	ErrLaunch = errors.New("could not run engine")

	// ErrParseOutput indicates the engine produced output in an unexpected format.
	ErrParseOutput = errors.New("could not parse engine output")
)

// LaunchError reports an engine that could not be started.
type LaunchError struct {
	Engine string
	Err    error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("could not run %s: %v", e.Engine, e.Err)
}

func (e *LaunchError) Unwrap() []error {
	return []error{ErrLaunch, e.Err}
}

// ParseError reports engine output that is neither a JSON finding list nor a
// jslint XML document.
type ParseError struct {
	Engine string
	Output []byte
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse data returned from %s: %v", e.Engine, e.Err)
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrParseOutput, e.Err}
}
