package engine_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/jshintmate/pkg/engine"
)

// fakeEngine writes an executable shell script that records its stdin and
// arguments next to itself and prints output.
func fakeEngine(t *testing.T, output string, exitCode int) (string, string) {
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
		"exit " + string(rune('0'+exitCode)) + "\n"

	path := filepath.Join(dir, "jshint")
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path, dir
}

const twoFindings = `[{"line":2,"character":5,"reason":"Missing semicolon.","code":"W033","evidence":"var a"},` +
	`null,{"line":3,"character":1,"reason":"Unmatched '{'.","code":"E019"}]`

func TestRun_StreamsInputAndParsesFindings(t *testing.T) {
	t.Parallel()

	path, dir := fakeEngine(t, twoFindings, 2)
	inv := engine.New(path)

	findings, err := inv.Run(context.Background(), engine.Request{
		Input:      strings.NewReader("var x = 1;\nvar a\n{\n"),
		ConfigPath: "/work/.jshintrc",
		Reporter:   "/bundle/Support/reporter.js",
	})
	require.NoError(t, err)
	require.Len(t, findings, 2)
	assert.Equal(t, "W033", findings[0].Code)
	assert.Equal(t, 2, findings[0].Line)
	assert.Equal(t, 5, findings[0].Character)
	assert.Equal(t, "E019", findings[1].Code)

	stdin, err := os.ReadFile(filepath.Join(dir, "stdin.txt"))
	require.NoError(t, err)
	assert.Equal(t, "var x = 1;\nvar a\n{\n", string(stdin))

	args, err := os.ReadFile(filepath.Join(dir, "args.txt"))
	require.NoError(t, err)
	assert.Equal(t, "--reporter=/bundle/Support/reporter.js\n--config=/work/.jshintrc\n-\n", string(args))
}

func TestRun_LaunchFailure(t *testing.T) {
	t.Parallel()

	inv := engine.New(filepath.Join(t.TempDir(), "no-such-jshint"))
	_, err := inv.Run(context.Background(), engine.Request{Input: strings.NewReader("x")})
	require.Error(t, err)

	assert.ErrorIs(t, err, engine.ErrLaunch)
	var launchErr *engine.LaunchError
	require.True(t, errors.As(err, &launchErr))
	assert.Contains(t, launchErr.Error(), "no-such-jshint")
}

func TestRun_UnparseableOutput(t *testing.T) {
	t.Parallel()

	path, _ := fakeEngine(t, "jshint: command crashed", 1)
	inv := engine.New(path)

	_, err := inv.Run(context.Background(), engine.Request{Input: strings.NewReader("x\n")})
	require.Error(t, err)
	assert.ErrorIs(t, err, engine.ErrParseOutput)

	var parseErr *engine.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "jshint: command crashed", string(parseErr.Output))
}

func TestArgs(t *testing.T) {
	t.Parallel()

	inv := engine.New("")
	assert.Equal(t, "jshint", inv.Engine())
	assert.Equal(t, []string{"--reporter=jslint", "-"}, inv.Args(engine.Request{}))
	assert.Equal(t,
		[]string{"--reporter=jslint", "--config=/a b/.jshintrc", "-"},
		inv.Args(engine.Request{ConfigPath: "/a b/.jshintrc"}),
	)
}

func TestRun_FindsEngineOnExtraPath(t *testing.T) {
	// Not parallel because it modifies PATH.
	_, dir := fakeEngine(t, "[]", 0)
	t.Setenv("PATH", "/nowhere")

	inv := engine.New("jshint",
		engine.WithEnv([]string{"PATH=/nowhere"}),
		engine.WithExtraPath([]string{dir, "/usr/bin", "/bin"}),
	)

	findings, err := inv.Run(context.Background(), engine.Request{Input: strings.NewReader("var a;\n")})
	require.NoError(t, err)
	assert.Empty(t, findings)

	stdin, err := os.ReadFile(filepath.Join(dir, "stdin.txt"))
	require.NoError(t, err)
	assert.Equal(t, "var a;\n", string(stdin))
}

func TestRun_BareEngineMissingFromPath(t *testing.T) {
	// Not parallel because it modifies PATH.
	_, dir := fakeEngine(t, "[]", 0)
	t.Setenv("PATH", "/nowhere")

	inv := engine.New("jshint", engine.WithEnv([]string{"PATH=/nowhere"}))

	_, err := inv.Run(context.Background(), engine.Request{Input: strings.NewReader("")})
	require.ErrorIs(t, err, engine.ErrLaunch)
	assert.NoFileExists(t, filepath.Join(dir, "stdin.txt"))
}
