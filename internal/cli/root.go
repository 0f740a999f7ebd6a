// Package cli provides the Cobra command structure for jshintmate.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/yaklabco/jshintmate/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// rootFlags holds the flags for the root command.
type rootFlags struct {
	debug      bool
	quiet      bool
	configPath string
	color      string
	format     string
}

// NewRootCommand creates the root jshintmate command with all subcommands.
// Running it without a subcommand validates the buffer on stdin.
func NewRootCommand(info BuildInfo) *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "jshintmate",
		Short: "Run JSHint on an editor buffer and render the report",
		Long: `jshintmate validates JavaScript from an editor buffer with JSHint.

It reads the buffer from standard input, finds the project's JSHint
configuration, extracts script regions from HTML documents, runs the
engine, and writes an HTML report to standard output. The editor
describes the buffer through TM_FILEPATH, TM_DIRECTORY, TM_SCOPE,
TM_INPUT_START_LINE and TM_BUNDLE_SUPPORT.

Examples:
  jshintmate < app.js              Validate a script and print the report
  jshintmate -q < app.js           Print nothing when the file is clean
  jshintmate --format text < app.js  Print a terminal report`,
		Args:    cobra.NoArgs,
		Version: info.Version,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if flags.debug {
				logging.SetLevel("debug")
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return runValidate(ctx, cmd, flags)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "path to settings file")
	rootCmd.PersistentFlags().StringVar(&flags.color, "color", "auto",
		"colorize text output: auto, always, never")

	// Validation flags.
	rootCmd.Flags().BoolVarP(&flags.quiet, "quiet", "q", false,
		"print nothing when there are no issues and no report window is open")
	rootCmd.Flags().StringVar(&flags.format, "format", "", "output format: html, text, auto")

	// Add subcommands.
	rootCmd.AddCommand(newEnvCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
