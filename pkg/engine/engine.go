// Package engine runs the external lint engine and decodes its findings.
//
// The engine is driven in two phases: the whole input is written to its stdin
// line by line and stdin is closed, and only then is stdout read to completion.
// This relies on the engine consuming all input before it writes a report.
package engine

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/yaklabco/jshintmate/internal/logging"
	"github.com/yaklabco/jshintmate/pkg/config"
)

// StdinArg tells the engine to read source text from standard input.
const StdinArg = "-"

// Request describes one engine run.
type Request struct {
	// Input is streamed to the engine's stdin.
	Input io.Reader

	// ConfigPath is passed as --config when non-empty. Callers must only set
	// it for configs that validated.
	ConfigPath string

	// Reporter is passed as --reporter. Defaults to the built-in jslint reporter.
	Reporter string
}

// Invoker spawns the engine executable.
type Invoker struct {
	engine string
	env    []string
	dir    string
}

// Option configures an Invoker.
type Option func(*Invoker)

// WithEnv sets the engine's environment. Defaults to os.Environ.
func WithEnv(env []string) Option {
	return func(inv *Invoker) {
		inv.env = env
	}
}

// WithExtraPath appends search directories to the engine's PATH when missing.
func WithExtraPath(dirs []string) Option {
	return func(inv *Invoker) {
		inv.env = AugmentPath(inv.env, dirs)
	}
}

// WithDir sets the engine's working directory.
func WithDir(dir string) Option {
	return func(inv *Invoker) {
		inv.dir = dir
	}
}

// New creates an Invoker for the named engine executable.
func New(engine string, opts ...Option) *Invoker {
	if engine == "" {
		engine = config.DefaultEngine
	}
	inv := &Invoker{
		engine: engine,
		env:    os.Environ(),
	}
	for _, opt := range opts {
		opt(inv)
	}
	return inv
}

// Engine returns the configured executable name.
func (inv *Invoker) Engine() string {
	return inv.engine
}

// Args builds the engine argument list for req.
func (inv *Invoker) Args(req Request) []string {
	reporter := req.Reporter
	if reporter == "" {
		reporter = config.ReporterJSLint
	}

	args := []string{"--reporter=" + reporter}
	if req.ConfigPath != "" {
		args = append(args, "--config="+req.ConfigPath)
	}
	return append(args, StdinArg)
}

// Run executes the engine for req and returns its findings in report order.
// A non-zero engine exit status is expected when issues are found and is not
// treated as an error; only launch failures and unparseable output are.
func (inv *Invoker) Run(ctx context.Context, req Request) ([]Finding, error) {
	logger := logging.FromContext(ctx)

	args := inv.Args(req)
	cmd := exec.CommandContext(ctx, inv.executable(), args...)
	cmd.Env = inv.lookupEnv()
	cmd.Dir = inv.dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("create stdin pipe: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("create stdout pipe: %w", err)
	}

	logger.Debug("starting engine", logging.FieldEngine, inv.engine, logging.FieldArgs, args)

	if err := cmd.Start(); err != nil {
		return nil, &LaunchError{Engine: inv.engine, Err: err}
	}

	writeErr := writeLines(stdin, req.Input)
	if closeErr := stdin.Close(); writeErr == nil && !isClosedPipe(closeErr) {
		writeErr = closeErr
	}

	output, readErr := io.ReadAll(stdout)
	waitErr := cmd.Wait()

	if stderr.Len() > 0 {
		logger.Debug("engine stderr", logging.FieldEngine, inv.engine, logging.FieldOutput, stderr.String())
	}

	var exitErr *exec.ExitError
	if waitErr != nil && !errors.As(waitErr, &exitErr) {
		return nil, fmt.Errorf("wait for %s: %w", inv.engine, waitErr)
	}
	if readErr != nil {
		return nil, fmt.Errorf("read %s output: %w", inv.engine, readErr)
	}
	if writeErr != nil {
		logger.Debug("engine stopped reading input", logging.FieldEngine, inv.engine, logging.FieldError, writeErr)
	}

	findings, err := ParseOutput(output)
	if err != nil {
		return nil, &ParseError{Engine: inv.engine, Output: output, Err: err}
	}

	logger.Debug("engine finished", logging.FieldEngine, inv.engine, logging.FieldFindings, len(findings))
	return findings, nil
}

// executable resolves a bare engine name against the PATH of the engine's
// environment, which may include directories the parent's PATH lacks.
// Names containing a separator, and names not found, are returned as is so
// exec reports the failure.
func (inv *Invoker) executable() string {
	if strings.ContainsRune(inv.engine, '/') || strings.ContainsRune(inv.engine, filepath.Separator) {
		return inv.engine
	}

	for _, dir := range filepath.SplitList(envValue(inv.env, pathVar)) {
		if dir == "" {
			continue
		}
		candidate := filepath.Join(dir, inv.engine)
		if isExecutable(candidate) {
			return candidate
		}
	}
	return inv.engine
}

// lookupEnv returns the configured environment; a nil slice would make
// exec inherit the parent's unmodified environment.
func (inv *Invoker) lookupEnv() []string {
	if inv.env == nil {
		return []string{}
	}
	return inv.env
}

// writeLines streams src to dst one line at a time.
func writeLines(dst io.Writer, src io.Reader) error {
	if src == nil {
		return nil
	}

	reader := bufio.NewReader(src)
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			if _, werr := io.WriteString(dst, line); werr != nil {
				if isClosedPipe(werr) {
					return nil
				}
				return fmt.Errorf("write engine input: %w", werr)
			}
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
	}
}

// isClosedPipe reports errors caused by the engine exiting before reading all input.
func isClosedPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, os.ErrClosed))
}
