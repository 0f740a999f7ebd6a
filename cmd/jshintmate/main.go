// Package main is the entry point for the jshintmate CLI.
package main

import (
	"errors"
	"os"

	"github.com/yaklabco/jshintmate/internal/cli"
	"github.com/yaklabco/jshintmate/internal/logging"
	"github.com/yaklabco/jshintmate/pkg/engine"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		// Parse failures were already reported on stdout.
		if !errors.Is(err, engine.ErrParseOutput) {
			logger := logging.Default()
			logger.Error("command failed", logging.FieldError, err)
		}
		return cli.ExitCode(err)
	}

	return cli.ExitSuccess
}
