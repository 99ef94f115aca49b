package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmezquita/workspacectl/internal/launcher"
	"github.com/dmezquita/workspacectl/internal/monitor"
	"github.com/dmezquita/workspacectl/internal/output"
	"github.com/dmezquita/workspacectl/internal/platform"
	"github.com/dmezquita/workspacectl/internal/template"
)

// LaunchResult is the structured output of a launch command.
type LaunchResult struct {
	Template string             `yaml:"template"          json:"template"`
	Windows  []launcher.Outcome `yaml:"windows"           json:"windows"`
	Failed   int                `yaml:"failed,omitempty"  json:"failed,omitempty"`
}

var launchCmd = &cobra.Command{
	Use:   "launch <template>",
	Short: "Launch a workspace template",
	Long: `Launch every window a template declares: detect monitors, start the
applications (independent windows in parallel, same-class windows one at
a time so they can be told apart), then move and resize each new window
to its resolved rectangle.

The exit status is non-zero when any window failed to launch or place.`,
	Args: cobra.ExactArgs(1),
	RunE: runLaunch,
}

func init() {
	rootCmd.AddCommand(launchCmd)
	launchCmd.Flags().Int("timeout", 5, "Max seconds to wait for each new window")
	launchCmd.Flags().Int("interval", 100, "Window discovery polling interval in milliseconds")
}

func runLaunch(cmd *cobra.Command, args []string) error {
	tpl, err := template.Load(args[0])
	if err != nil {
		return err
	}

	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}
	registry, err := monitor.Detect(provider.Monitors)
	if err != nil {
		return err
	}

	sched := launcher.New(provider, registry)
	timeoutSec, _ := cmd.Flags().GetInt("timeout")
	intervalMs, _ := cmd.Flags().GetInt("interval")
	if timeoutSec > 0 {
		sched.DiscoveryTimeout = time.Duration(timeoutSec) * time.Second
	}
	if intervalMs > 0 {
		sched.PollInterval = time.Duration(intervalMs) * time.Millisecond
	}

	fmt.Fprintf(os.Stderr, "Loading workspace: %s\n", tpl.Name)
	outcomes := sched.Run(tpl.Windows)

	result := LaunchResult{Template: tpl.Name, Windows: outcomes}
	for _, out := range outcomes {
		if out.OK {
			fmt.Fprintf(os.Stderr, "  ✓ %s\n", out.Label)
		} else {
			fmt.Fprintf(os.Stderr, "  ✗ %s: %s\n", out.Label, out.Reason)
			result.Failed++
		}
	}

	if err := output.Print(result); err != nil {
		return err
	}
	if result.Failed > 0 {
		return fmt.Errorf("%d of %d windows failed", result.Failed, len(outcomes))
	}
	return nil
}
