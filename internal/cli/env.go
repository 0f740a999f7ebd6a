package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yaklabco/jshintmate/internal/configloader"
	"github.com/yaklabco/jshintmate/internal/logging"
)

const formatJSON = "json"

// envVarInfo represents an environment variable in JSON output.
type envVarInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func newEnvCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "env",
		Short: "List the environment variables jshintmate reads",
		Long: `List the editor-provided TM_* variables and the JSHINTMATE_*
overrides that jshintmate reads, with a short description of each.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			vars := sortedEnvVars()

			if format == formatJSON {
				return outputEnvJSON(cmd.OutOrStdout(), vars)
			}

			logger := log.NewWithOptions(cmd.OutOrStdout(), log.Options{
				ReportTimestamp: false,
				ReportCaller:    false,
			})
			logger.SetLevel(log.InfoLevel)

			for _, v := range vars {
				logger.Info(v.Name, logging.FieldDescription, v.Description)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "output format: text, json")

	return cmd
}

func sortedEnvVars() []envVarInfo {
	all := configloader.ListEnvVars()
	vars := make([]envVarInfo, 0, len(all))
	for name, description := range all {
		vars = append(vars, envVarInfo{Name: name, Description: description})
	}
	sort.Slice(vars, func(i, j int) bool {
		return vars[i].Name < vars[j].Name
	})
	return vars
}

// outputEnvJSON outputs environment variables as a JSON array.
func outputEnvJSON(w io.Writer, vars []envVarInfo) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(vars); err != nil {
		return fmt.Errorf("encoding environment variables: %w", err)
	}
	return nil
}
