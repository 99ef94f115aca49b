//go:build linux

package x11

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/dmezquita/workspacectl/internal/geometry"
	"github.com/dmezquita/workspacectl/internal/platform"
)

// WindowPlacer manipulates windows via wmctrl and xprop.
type WindowPlacer struct{}

func (p *WindowPlacer) AssignDesktop(id platform.WindowID, desktop int) error {
	// wmctrl desktops are 0-based; templates use 1-based numbers.
	out, err := exec.Command("wmctrl", "-i", "-r", string(id), "-t", strconv.Itoa(desktop-1)).CombinedOutput()
	if err != nil {
		return fmt.Errorf("wmctrl move to desktop %d: %w (%s)", desktop, err, strings.TrimSpace(string(out)))
	}
	return nil
}

func (p *WindowPlacer) ClearMaximized(id platform.WindowID) error {
	out, err := exec.Command("wmctrl", "-i", "-r", string(id),
		"-b", "remove,maximized_vert,maximized_horz").CombinedOutput()
	if err != nil {
		return fmt.Errorf("wmctrl unmaximize: %w (%s)", err, strings.TrimSpace(string(out)))
	}
	return nil
}

func (p *WindowPlacer) GetFrameExtents(id platform.WindowID) platform.FrameExtents {
	out, err := exec.Command("xprop", "-id", string(id), "_GTK_FRAME_EXTENTS").Output()
	if err != nil {
		return platform.FrameExtents{}
	}
	return parseFrameExtents(string(out))
}

// parseFrameExtents reads the xprop reply, e.g.
//
//	_GTK_FRAME_EXTENTS(CARDINAL) = 26, 26, 23, 29
//
// Missing property or any parse trouble yields zero extents.
func parseFrameExtents(out string) platform.FrameExtents {
	_, values, ok := strings.Cut(out, "=")
	if !ok {
		return platform.FrameExtents{}
	}
	parts := strings.Split(strings.TrimSpace(values), ",")
	if len(parts) != 4 {
		return platform.FrameExtents{}
	}
	nums := make([]int, 4)
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return platform.FrameExtents{}
		}
		nums[i] = n
	}
	return platform.FrameExtents{Left: nums[0], Right: nums[1], Top: nums[2], Bottom: nums[3]}
}

func (p *WindowPlacer) ApplyGeometry(id platform.WindowID, r geometry.Rect) error {
	geom := fmt.Sprintf("0,%d,%d,%d,%d", r.X, r.Y, r.W, r.H)
	out, err := exec.Command("wmctrl", "-i", "-r", string(id), "-e", geom).CombinedOutput()
	if err != nil {
		return fmt.Errorf("wmctrl -e %s: %w (%s)", geom, err, strings.TrimSpace(string(out)))
	}
	return nil
}
