package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yaklabco/jshintmate/internal/configloader"
	"github.com/yaklabco/jshintmate/internal/logging"
	"github.com/yaklabco/jshintmate/pkg/config"
	"github.com/yaklabco/jshintmate/pkg/fsutil"
)

// configFilePermissions is the file mode for configuration files (world-readable).
const configFilePermissions = 0o644

// settingsHeader is prepended to generated settings files.
const settingsHeader = `# jshintmate settings
# Editor variables (TM_*) and JSHINTMATE_* environment variables override these.

`

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a settings file with the default values",
		Long: `Create the user settings file ($XDG_CONFIG_HOME/jshintmate/config.yaml)
populated with the default engine, reporter, search depth, and marker location.

Examples:
  jshintmate init                     Create the user settings file
  jshintmate init --output ./jm.yaml  Write to a custom file path`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			logger := log.NewWithOptions(cmd.ErrOrStderr(), log.Options{ReportTimestamp: false})
			return runInit(logging.WithLogger(ctx, logger), flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing settings file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file path (default: user settings file)")

	return cmd
}

func runInit(ctx context.Context, flags *initFlags) error {
	logger := logging.FromContext(ctx)

	outputPath := flags.output
	if outputPath == "" {
		var err error
		outputPath, err = configloader.UserConfigPath(nil)
		if err != nil {
			return err
		}
	}

	if fsutil.FileExists(outputPath) {
		if !flags.force {
			return fmt.Errorf("file %q already exists; use --force to overwrite", outputPath)
		}
		logger.Warn("overwriting existing file", logging.FieldPath, outputPath)
	}

	content, err := config.NewSettings().ToYAML()
	if err != nil {
		return fmt.Errorf("generate settings: %w", err)
	}

	if _, err := fsutil.EnsureDir(filepath.Dir(outputPath)); err != nil {
		return fmt.Errorf("create settings directory: %w", err)
	}

	if err := fsutil.WriteAtomic(ctx, outputPath, append([]byte(settingsHeader), content...), configFilePermissions); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	logger.Info("created settings file", logging.FieldPath, outputPath)
	return nil
}
