package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dmezquita/workspacectl/internal/geometry"
	"github.com/dmezquita/workspacectl/internal/monitor"
	"github.com/dmezquita/workspacectl/internal/output"
	"github.com/dmezquita/workspacectl/internal/platform"
)

// MonitorInfo is one monitor in the monitors command output.
type MonitorInfo struct {
	Name    string        `yaml:"name"              json:"name"`
	Rect    geometry.Rect `yaml:"rect"              json:"rect"`
	Primary bool          `yaml:"primary,omitempty" json:"primary,omitempty"`
}

var monitorsCmd = &cobra.Command{
	Use:   "monitors",
	Short: "List detected monitors",
	Long: `List connected monitors with their pixel geometry. Use the names shown
here (or "primary") in a template's monitor field.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		provider, err := platform.NewProvider()
		if err != nil {
			return err
		}
		registry, err := monitor.Detect(provider.Monitors)
		if err != nil {
			return err
		}

		infos := make([]MonitorInfo, 0, len(registry.Names()))
		for _, name := range registry.Names() {
			infos = append(infos, MonitorInfo{
				Name:    name,
				Rect:    registry.Lookup(name),
				Primary: name == registry.Primary(),
			})
		}
		return output.Print(infos)
	},
}

func init() {
	rootCmd.AddCommand(monitorsCmd)
}
