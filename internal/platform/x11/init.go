//go:build linux

package x11

import (
	"fmt"
	"os/exec"

	"github.com/dmezquita/workspacectl/internal/platform"
)

// requiredTools are the external commands the backend drives. Checked
// once at provider construction so a missing tool fails fast instead of
// mid-run.
var requiredTools = []string{"xrandr", "wmctrl", "xdotool", "xprop"}

func init() {
	platform.NewProviderFunc = newProvider
}

func newProvider() (*platform.Provider, error) {
	var missing []string
	for _, tool := range requiredTools {
		if _, err := exec.LookPath(tool); err != nil {
			missing = append(missing, tool)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required tools: %v (install them with your package manager)", missing)
	}

	return &platform.Provider{
		Monitors: &MonitorSource{},
		Windows:  &WindowQuerier{},
		Placer:   &WindowPlacer{},
		Spawner:  &Spawner{},
	}, nil
}
