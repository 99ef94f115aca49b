package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/dmezquita/workspacectl/internal/geometry"
	"github.com/dmezquita/workspacectl/internal/monitor"
	"github.com/dmezquita/workspacectl/internal/output"
	"github.com/dmezquita/workspacectl/internal/platform"
)

// ResolveResult is the structured output of the resolve command.
type ResolveResult struct {
	Position string        `yaml:"position" json:"position"`
	Monitor  string        `yaml:"monitor"  json:"monitor"`
	Rect     geometry.Rect `yaml:"rect"     json:"rect"`
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <position>",
	Short: "Resolve a position spec to a pixel rectangle",
	Long: `Resolve a symbolic position spec against a detected monitor and print
the resulting rectangle. Useful for debugging template positions.

Examples:
  workspacectl resolve left-third
  workspacectl resolve "tr w:1/3 h:100%"
  workspacectl resolve "c w:50% h:50%" --monitor HDMI-0
  workspacectl resolve --shortcuts`,
	Args: cobra.MaximumNArgs(1),
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
	resolveCmd.Flags().String("monitor", "primary", "Monitor to resolve against")
	resolveCmd.Flags().Bool("shortcuts", false, "List the named position shortcuts and exit")
}

func runResolve(cmd *cobra.Command, args []string) error {
	if list, _ := cmd.Flags().GetBool("shortcuts"); list {
		names := geometry.ShortcutNames()
		sort.Strings(names)
		expansions := make(map[string]string, len(names))
		for _, name := range names {
			expansions[name] = geometry.Shortcuts[name]
		}
		return output.Print(expansions)
	}

	if len(args) == 0 {
		return fmt.Errorf("requires a position argument or --shortcuts")
	}

	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}
	registry, err := monitor.Detect(provider.Monitors)
	if err != nil {
		return err
	}

	monName, _ := cmd.Flags().GetString("monitor")
	rect, err := geometry.Resolve(geometry.Sym(args[0]), registry.Lookup(monName))
	if err != nil {
		return err
	}
	return output.Print(ResolveResult{Position: args[0], Monitor: monName, Rect: rect})
}
