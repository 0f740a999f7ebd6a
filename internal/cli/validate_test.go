package cli_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/jshintmate/internal/cli"
	"github.com/yaklabco/jshintmate/pkg/config"
	"github.com/yaklabco/jshintmate/pkg/issues"
	"github.com/yaklabco/jshintmate/pkg/marker"
	"github.com/yaklabco/jshintmate/pkg/reporter"
)

//nolint:gochecknoglobals // Fixed test clock.
var fixedNow = time.Date(2026, time.October, 7, 9, 5, 3, 0, time.Local)

// fakeEngine writes a shell script that records its arguments and stdin next
// to itself and prints output.
func fakeEngine(t *testing.T, output string) (string, string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake engine requires a POSIX shell")
	}

	dir := t.TempDir()
	outputFile := filepath.Join(dir, "output.txt")
	require.NoError(t, os.WriteFile(outputFile, []byte(output), 0o644))

	script := "#!/bin/sh\n" +
		"printf '%s\\n' \"$@\" > \"" + filepath.Join(dir, "args.txt") + "\"\n" +
		"cat > \"" + filepath.Join(dir, "stdin.txt") + "\"\n" +
		"cat \"" + outputFile + "\"\n" +
		"exit 2\n"

	path := filepath.Join(dir, "jshint")
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path, dir
}

// project creates a source file in a fresh directory and returns its path.
func project(t *testing.T, rc string) string {
	t.Helper()

	dir := t.TempDir()
	if rc != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".jshintrc"), []byte(rc), 0o644))
	}
	file := filepath.Join(dir, "app.js")
	require.NoError(t, os.WriteFile(file, []byte("var a\n"), 0o644))
	return file
}

func newSettings(t *testing.T, enginePath, filePath string) *config.Settings {
	t.Helper()

	settings := config.NewSettings()
	settings.Engine = enginePath
	settings.FilePath = filePath
	settings.Directory = filepath.Dir(filePath)
	settings.MarkerRoot = t.TempDir()
	settings.ExtraPath = nil
	return settings
}

// decodeReport pulls the serialized context out of an HTML report.
func decodeReport(t *testing.T, page string) *reporter.Context {
	t.Helper()

	const prefix = "var context = "
	start := strings.Index(page, prefix)
	require.GreaterOrEqual(t, start, 0, "page has no context")
	rest := page[start+len(prefix):]
	end := strings.Index(rest, ";\n")
	require.Greater(t, end, 0)

	report, err := reporter.DecodeContext([]byte(rest[:end]))
	require.NoError(t, err)
	return report
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

const twoFindings = `[{"line":1,"character":6,"reason":"Missing semicolon.","code":"W033","evidence":"var a"},` +
	`{"line":2,"character":1,"reason":"Unmatched '{'.","code":"E019"}]`

func TestPipeline_ReportsFindings(t *testing.T) {
	t.Parallel()

	enginePath, engineDir := fakeEngine(t, twoFindings)
	file := project(t, `{ "undef": true /* strict */ }`)
	settings := newSettings(t, enginePath, file)
	settings.InputStartLine = 3

	var out bytes.Buffer
	pipeline := &cli.Pipeline{
		Settings: settings,
		Stdin:    strings.NewReader("var a\n{\n"),
		Stdout:   &out,
		Now:      func() time.Time { return fixedNow },
	}
	require.NoError(t, pipeline.Run(context.Background()))

	report := decodeReport(t, out.String())
	assert.Equal(t, 1, report.ErrorCount)
	assert.Equal(t, 1, report.WarningCount)
	require.Len(t, report.Issues, 2)

	assert.Equal(t, "W033", report.Issues[0].Code)
	assert.Equal(t, issues.SeverityWarning, report.Issues[0].Severity)
	assert.Equal(t, 3, report.Issues[0].Line)
	assert.Equal(t, "E019", report.Issues[1].Code)
	assert.Equal(t, issues.SeverityError, report.Issues[1].Severity)
	assert.Equal(t, 4, report.Issues[1].Line)

	assert.Equal(t, filepath.Join(filepath.Dir(file), ".jshintrc"), report.ConfigPath())
	assert.True(t, report.JSHintRCValid)
	assert.Equal(t, "app.js", report.TargetFilename)
	assert.Equal(t, "Wed Oct  7 09:05:03 2026", report.Timestamp)

	assert.True(t, marker.Exists(report.MarkerFile), "marker is created when rendering")
	assert.Equal(t, "var a\n{\n", readFile(t, filepath.Join(engineDir, "stdin.txt")))
	assert.Contains(t, readFile(t, filepath.Join(engineDir, "args.txt")), "--config="+report.ConfigPath())
}

func TestPipeline_InvalidConfigIsNotPassed(t *testing.T) {
	t.Parallel()

	enginePath, engineDir := fakeEngine(t, "[]")
	file := project(t, `{ "undef": true,, }`)
	settings := newSettings(t, enginePath, file)

	var out bytes.Buffer
	pipeline := &cli.Pipeline{Settings: settings, Stdin: strings.NewReader("var a;\n"), Stdout: &out}
	require.NoError(t, pipeline.Run(context.Background()))

	report := decodeReport(t, out.String())
	assert.NotEmpty(t, report.ConfigPath())
	assert.False(t, report.JSHintRCValid)
	assert.Empty(t, report.Issues)
	assert.NotContains(t, readFile(t, filepath.Join(engineDir, "args.txt")), "--config")
}

func TestPipeline_QuietCleanSkips(t *testing.T) {
	t.Parallel()

	enginePath, _ := fakeEngine(t, "[]")
	file := project(t, "")
	settings := newSettings(t, enginePath, file)
	settings.Quiet = true

	var out bytes.Buffer
	pipeline := &cli.Pipeline{Settings: settings, Stdin: strings.NewReader("var a;\n"), Stdout: &out}
	require.NoError(t, pipeline.Run(context.Background()))

	assert.Empty(t, out.String())

	markerPath := marker.New(settings.MarkerRoot).PathFor(issues.Target{FilePath: file}.FileURL())
	assert.False(t, marker.Exists(markerPath), "skip must not create a marker")
}

func TestPipeline_QuietCleanWithMarkerRenders(t *testing.T) {
	t.Parallel()

	enginePath, _ := fakeEngine(t, "[]")
	file := project(t, "")
	settings := newSettings(t, enginePath, file)
	settings.Quiet = true

	tracker := marker.New(settings.MarkerRoot)
	_, err := tracker.EnsureDir(context.Background())
	require.NoError(t, err)
	markerPath := tracker.PathFor(issues.Target{FilePath: file}.FileURL())
	require.NoError(t, marker.Touch(context.Background(), markerPath))

	var out bytes.Buffer
	pipeline := &cli.Pipeline{Settings: settings, Stdin: strings.NewReader("var a;\n"), Stdout: &out}
	require.NoError(t, pipeline.Run(context.Background()))

	report := decodeReport(t, out.String())
	assert.Empty(t, report.Issues)
	assert.Zero(t, report.ErrorCount)
	assert.Equal(t, markerPath, report.MarkerFile)
	assert.True(t, marker.Exists(markerPath))
}

func TestPipeline_LaunchFailureRendersDiagnostic(t *testing.T) {
	t.Parallel()

	file := project(t, "")
	settings := newSettings(t, filepath.Join(t.TempDir(), "no-such-jshint"), file)

	var out bytes.Buffer
	pipeline := &cli.Pipeline{Settings: settings, Stdin: strings.NewReader("var a;\n"), Stdout: &out}
	err := pipeline.Run(context.Background())
	require.NoError(t, err)

	page := out.String()
	assert.Contains(t, page, `"message":`)
	assert.Contains(t, page, "Could not run jshint")
	assert.Contains(t, page, "TM_JSHINT")
	assert.NotContains(t, page, `"issues"`)
}

func TestPipeline_ParseFailure(t *testing.T) {
	t.Parallel()

	enginePath, _ := fakeEngine(t, "Segmentation fault")
	file := project(t, "")
	settings := newSettings(t, enginePath, file)

	var out bytes.Buffer
	pipeline := &cli.Pipeline{Settings: settings, Stdin: strings.NewReader("var a;\n"), Stdout: &out}
	err := pipeline.Run(context.Background())
	require.Error(t, err)

	assert.Equal(t, cli.ExitOutputParse, cli.ExitCode(err))
	assert.Equal(t, cli.ParseFailureMessage+"\n", out.String())
}

func TestPipeline_ExtractsScriptFromMarkup(t *testing.T) {
	t.Parallel()

	enginePath, engineDir := fakeEngine(t, "[]")
	file := project(t, "")
	settings := newSettings(t, enginePath, file)
	settings.Scope = "text.html.basic"

	page := "<html>\n<body>\n<script>\nvar a = 1;\n</script>\n</body>\n</html>\n"

	var out bytes.Buffer
	pipeline := &cli.Pipeline{Settings: settings, Stdin: strings.NewReader(page), Stdout: &out}
	require.NoError(t, pipeline.Run(context.Background()))

	stdin := readFile(t, filepath.Join(engineDir, "stdin.txt"))
	assert.Contains(t, stdin, "var a = 1;")
	assert.NotContains(t, stdin, "<html>")
	assert.NotContains(t, stdin, "<body>")
	assert.Equal(t, strings.Count(page, "\n"), strings.Count(stdin, "\n"), "line count is preserved")
}

func TestPipeline_TextFormat(t *testing.T) {
	t.Parallel()

	enginePath, _ := fakeEngine(t, twoFindings)
	file := project(t, "")
	settings := newSettings(t, enginePath, file)
	settings.Format = config.FormatText

	var out bytes.Buffer
	pipeline := &cli.Pipeline{Settings: settings, Stdin: strings.NewReader("var a\n{\n"), Stdout: &out, Color: "never"}
	require.NoError(t, pipeline.Run(context.Background()))

	text := out.String()
	assert.Contains(t, text, "app.js")
	assert.Contains(t, text, "Missing semicolon.")
	assert.NotContains(t, text, "<!DOCTYPE html>")
}

func TestResolveReporter(t *testing.T) {
	t.Parallel()

	bundle := t.TempDir()
	script := filepath.Join(bundle, "reporter.js")
	require.NoError(t, os.WriteFile(script, []byte("module.exports = {};\n"), 0o644))

	assert.Equal(t, script, cli.ResolveReporter(config.ReporterAuto, bundle))
	assert.Equal(t, script, cli.ResolveReporter("", bundle))
	assert.Equal(t, config.ReporterJSLint, cli.ResolveReporter(config.ReporterAuto, t.TempDir()))
	assert.Equal(t, config.ReporterJSLint, cli.ResolveReporter(config.ReporterAuto, ""))
	assert.Equal(t, "/custom/reporter.js", cli.ResolveReporter("/custom/reporter.js", bundle))
}

func TestResolveFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	assert.Equal(t, reporter.FormatHTML, cli.ResolveFormat(config.FormatHTML, &buf, ""))
	assert.Equal(t, reporter.FormatText, cli.ResolveFormat(config.FormatText, &buf, "/bundle"))
	assert.Equal(t, reporter.FormatHTML, cli.ResolveFormat(config.FormatAuto, &buf, ""), "buffers are not terminals")
	assert.Equal(t, reporter.FormatHTML, cli.ResolveFormat(config.FormatAuto, &buf, "/bundle"))
}
