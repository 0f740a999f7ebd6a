package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/jshintmate/internal/configloader"
	"github.com/yaklabco/jshintmate/internal/logging"
	"github.com/yaklabco/jshintmate/pkg/config"
	"github.com/yaklabco/jshintmate/pkg/engine"
	"github.com/yaklabco/jshintmate/pkg/extract"
	"github.com/yaklabco/jshintmate/pkg/fsutil"
	"github.com/yaklabco/jshintmate/pkg/issues"
	"github.com/yaklabco/jshintmate/pkg/jshintrc"
	"github.com/yaklabco/jshintmate/pkg/langdetect"
	"github.com/yaklabco/jshintmate/pkg/marker"
	"github.com/yaklabco/jshintmate/pkg/reporter"
)

// ParseFailureMessage is printed to stdout when the engine output cannot be parsed.
const ParseFailureMessage = "could not parse data returned from jshint"

// bundleReporterName is the JSON reporter script shipped in the bundle support directory.
const bundleReporterName = "reporter.js"

// sniffSize is how much of the buffer is inspected to classify it.
const sniffSize = 512

// launchHelp explains how to fix a missing engine. %s is the launch error.
const launchHelp = "**Could not run jshint:** `%s`\n\n" +
	"Ensure jshint is installed (`npm install -g jshint`) and in the PATH, " +
	"or set `TM_JSHINT` to the full path of the executable."

func runValidate(ctx context.Context, cmd *cobra.Command, flags *rootFlags) error {
	cliSettings := &config.Settings{
		Format: config.OutputFormat(flags.format),
		Quiet:  flags.quiet,
	}
	if flags.debug {
		cliSettings.LogLevel = "debug"
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		ExplicitPath: flags.configPath,
		CLIConfig:    cliSettings,
	})
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	settings := loadResult.Settings
	logger := logging.NewWithWriter(cmd.ErrOrStderr(), settings.LogLevel)
	ctx = logging.WithLogger(ctx, logger)

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded settings", "files", loadResult.LoadedFrom)
	}

	pipeline := &Pipeline{
		Settings: settings,
		Stdin:    cmd.InOrStdin(),
		Stdout:   cmd.OutOrStdout(),
		Color:    flags.color,
	}
	return pipeline.Run(ctx)
}

// Pipeline validates one buffer: it resolves the JSHint configuration, runs
// the engine, decides whether to render, and writes the report.
type Pipeline struct {
	Settings *config.Settings
	Stdin    io.Reader
	Stdout   io.Writer

	// Color is the text reporter color mode.
	Color string

	// Now is the report clock. Defaults to time.Now.
	Now func() time.Time
}

// Run executes the pipeline. It returns an error wrapping engine.ErrParseOutput
// when the engine's output is unusable. An engine that cannot be launched is
// reported to the user and is not an error.
func (p *Pipeline) Run(ctx context.Context) error {
	settings := p.Settings
	logger := logging.FromContext(ctx)
	now := p.now()

	ref, err := jshintrc.Resolve(ctx, jshintrc.OptionsFromSettings(settings))
	if err != nil {
		return fmt.Errorf("resolve jshint configuration: %w", err)
	}

	format := ResolveFormat(settings.Format, p.Stdout, settings.BundleSupport)
	rep, err := reporter.New(reporter.Options{
		Writer:        p.Stdout,
		Format:        format,
		Color:         p.Color,
		BundleSupport: settings.BundleSupport,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	input := bufio.NewReader(p.Stdin)
	head, _ := input.Peek(sniffSize)
	kind := langdetect.Classify(settings.Scope, settings.FilePath, head)

	logger.Debug("validating buffer",
		logging.FieldPath, settings.FilePath,
		logging.FieldScope, settings.Scope,
		logging.FieldExtract, kind.NeedsExtraction(),
		logging.FieldOffset, settings.LineOffset(),
		logging.FieldFormat, format,
	)

	req := engine.Request{
		Input:    extract.Source(input, kind.NeedsExtraction()),
		Reporter: ResolveReporter(settings.Reporter, settings.BundleSupport),
	}
	if ref.Usable() {
		req.ConfigPath = ref.Path
	}

	invoker := engine.New(settings.Engine, p.engineOptions()...)
	findings, err := invoker.Run(ctx, req)
	if err != nil {
		return p.handleEngineError(ctx, rep, err, now)
	}

	target := issues.Target{FilePath: settings.FilePath}
	result := issues.Normalize(findings, target, settings.LineOffset())

	tracker := marker.New(settings.MarkerRoot)
	if _, err := tracker.EnsureDir(ctx); err != nil {
		logger.Warn("cannot create marker directory", logging.FieldError, err)
	}
	markerPath := tracker.PathFor(target.FileURL())

	decision := marker.Decide(result.Clean(), settings.Quiet, marker.Exists(markerPath))
	logger.Debug("render decision",
		logging.FieldDecision, decision,
		logging.FieldErrors, result.ErrorCount,
		logging.FieldWarnings, result.WarningCount,
		logging.FieldQuiet, settings.Quiet,
		logging.FieldMarker, markerPath,
	)
	if decision == marker.Skip {
		return nil
	}

	if err := marker.Touch(ctx, markerPath); err != nil {
		logger.Warn("cannot create marker", logging.FieldMarker, markerPath, logging.FieldError, err)
	}

	report := reporter.NewContext(ref, target, result, markerPath, now)
	if err := rep.Report(ctx, report); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func (p *Pipeline) handleEngineError(ctx context.Context, rep reporter.Reporter, err error, now time.Time) error {
	logger := logging.FromContext(ctx)

	var launchErr *engine.LaunchError
	if errors.As(err, &launchErr) {
		logger.Error("engine could not be launched", logging.FieldEngine, launchErr.Engine, logging.FieldError, launchErr.Err)

		diag, renderErr := reporter.NewErrorContext(fmt.Sprintf(launchHelp, launchErr.Error()), now)
		if renderErr != nil {
			return fmt.Errorf("render launch diagnostic: %w", renderErr)
		}
		if reportErr := rep.ReportError(ctx, diag); reportErr != nil {
			return fmt.Errorf("write launch diagnostic: %w", reportErr)
		}
		return nil
	}

	if errors.Is(err, engine.ErrParseOutput) {
		logger.Error("engine output could not be parsed", logging.FieldError, err)
		if _, writeErr := fmt.Fprintln(p.Stdout, ParseFailureMessage); writeErr != nil {
			logger.Debug("cannot write parse failure", logging.FieldError, writeErr)
		}
		return err
	}

	return fmt.Errorf("run engine: %w", err)
}

func (p *Pipeline) engineOptions() []engine.Option {
	opts := []engine.Option{engine.WithExtraPath(p.Settings.ExtraPath)}

	if dir := p.Settings.Directory; dir != "" {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			opts = append(opts, engine.WithDir(dir))
		}
	}
	return opts
}

func (p *Pipeline) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now()
}

// ResolveFormat picks the reporter format. Auto selects text only when the
// output is a terminal and no editor bundle is present.
func ResolveFormat(format config.OutputFormat, out io.Writer, bundleSupport string) reporter.Format {
	switch format {
	case config.FormatText:
		return reporter.FormatText
	case config.FormatAuto:
		if bundleSupport == "" && isTerminal(out) {
			return reporter.FormatText
		}
		return reporter.FormatHTML
	default:
		return reporter.FormatHTML
	}
}

// ResolveReporter picks the engine reporter argument. Auto selects the
// bundle's JSON reporter script when it exists, else the built-in jslint XML.
func ResolveReporter(choice, bundleSupport string) string {
	if choice != "" && choice != config.ReporterAuto {
		return choice
	}
	if bundleSupport != "" {
		script := filepath.Join(bundleSupport, bundleReporterName)
		if fsutil.FileExists(script) {
			return script
		}
	}
	return config.ReporterJSLint
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
