package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmezquita/workspacectl/internal/output"
	"github.com/dmezquita/workspacectl/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "workspacectl",
	Short: "Launch applications into declared window layouts",
	Long: `workspacectl opens a workspace: it launches the applications a YAML
template declares and arranges their windows across your monitors using
anchors, fractions and named positions.

Templates live in ~/.config/workspacectl/templates/.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "yaml", "Output format: yaml, json")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		format, _ := rootCmd.PersistentFlags().GetString("format")
		switch format {
		case "yaml":
			output.OutputFormat = output.FormatYAML
		case "json":
			output.OutputFormat = output.FormatJSON
		default:
			return fmt.Errorf("unsupported format: %s (use yaml or json)", format)
		}
		if pretty, err := cmd.Flags().GetBool("pretty"); err == nil && pretty {
			output.PrettyOutput = true
		}
		return nil
	}
}
