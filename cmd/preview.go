package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmezquita/workspacectl/internal/geometry"
	"github.com/dmezquita/workspacectl/internal/monitor"
	"github.com/dmezquita/workspacectl/internal/output"
	"github.com/dmezquita/workspacectl/internal/platform"
	"github.com/dmezquita/workspacectl/internal/preview"
	"github.com/dmezquita/workspacectl/internal/template"
)

// PreviewResult is the structured output of the preview command.
type PreviewResult struct {
	Template string `yaml:"template" json:"template"`
	File     string `yaml:"file"     json:"file"`
	Windows  int    `yaml:"windows"  json:"windows"`
}

var previewCmd = &cobra.Command{
	Use:   "preview <template>",
	Short: "Render a template's layout to a PNG without launching anything",
	Long: `Resolve every window rectangle in a template against the detected
monitors and draw the result to an image. Nothing is launched; use this
to check a layout before running it.`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().StringP("output", "o", "layout.png", "Output PNG path")
}

func runPreview(cmd *cobra.Command, args []string) error {
	tpl, err := template.Load(args[0])
	if err != nil {
		return err
	}

	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}
	monitors, err := provider.Monitors.Enumerate()
	if err != nil {
		return err
	}
	registry, err := monitor.New(monitors)
	if err != nil {
		return err
	}

	boxes := make([]preview.Box, 0, len(tpl.Windows))
	for i, w := range tpl.Windows {
		rect, err := geometry.Resolve(w.Position.Spec, registry.Lookup(w.Monitor))
		if err != nil {
			return fmt.Errorf("windows[%d]: %w", i, err)
		}
		label := w.Title
		if label == "" {
			label = w.Command
		}
		boxes = append(boxes, preview.Box{Label: label, Rect: rect})
	}

	img, err := preview.Render(monitors, boxes)
	if err != nil {
		return err
	}

	path, _ := cmd.Flags().GetString("output")
	if err := preview.WritePNG(path, img); err != nil {
		return err
	}
	return output.Print(PreviewResult{Template: tpl.Name, File: path, Windows: len(boxes)})
}
