//go:build linux

package x11

import (
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"strings"

	"github.com/dmezquita/workspacectl/internal/geometry"
	"github.com/dmezquita/workspacectl/internal/platform"
)

// MonitorSource enumerates connected outputs via xrandr.
type MonitorSource struct{}

// geomRe matches the xrandr geometry field: WxH+X+Y.
var geomRe = regexp.MustCompile(`(\d+)x(\d+)\+(\d+)\+(\d+)`)

func (s *MonitorSource) Enumerate() ([]platform.Monitor, error) {
	out, err := exec.Command("xrandr", "--query").Output()
	if err != nil {
		return nil, fmt.Errorf("xrandr --query: %w", err)
	}
	return parseXrandr(string(out)), nil
}

// parseXrandr extracts connected outputs from `xrandr --query` output.
// Lines look like:
//
//	DP-1 connected primary 2560x1440+0+0 (normal left ...) 597mm x 336mm
//	HDMI-0 connected 1920x1080+2560+0 (normal left ...) 527mm x 296mm
//
// Outputs that are connected but have no active geometry (no WxH+X+Y
// field) are skipped.
func parseXrandr(out string) []platform.Monitor {
	var monitors []platform.Monitor
	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(line, " connected") {
			continue
		}
		m := geomRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		w, _ := strconv.Atoi(m[1])
		h, _ := strconv.Atoi(m[2])
		x, _ := strconv.Atoi(m[3])
		y, _ := strconv.Atoi(m[4])

		fields := strings.Fields(line)
		primary := false
		for _, f := range fields {
			if f == "primary" {
				primary = true
				break
			}
		}

		monitors = append(monitors, platform.Monitor{
			Name:    fields[0],
			Rect:    geometry.Rect{X: x, Y: y, W: w, H: h},
			Primary: primary,
		})
	}
	return monitors
}
