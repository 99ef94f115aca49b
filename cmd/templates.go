package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dmezquita/workspacectl/internal/output"
	"github.com/dmezquita/workspacectl/internal/template"
)

// TemplatesResult is the structured output of the templates command.
type TemplatesResult struct {
	Dir       string          `yaml:"dir"       json:"dir"`
	Templates []template.Info `yaml:"templates" json:"templates"`
}

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List available workspace templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		infos, err := template.List()
		if err != nil {
			return err
		}
		return output.Print(TemplatesResult{Dir: template.Dir(), Templates: infos})
	},
}

func init() {
	rootCmd.AddCommand(templatesCmd)
}
