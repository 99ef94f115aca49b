//go:build linux

package x11

import (
	"os/exec"
	"strings"

	"github.com/dmezquita/workspacectl/internal/platform"
)

// WindowQuerier searches windows via xdotool.
type WindowQuerier struct{}

func (q *WindowQuerier) FindByTitle(substr string) ([]platform.WindowID, error) {
	return search("--name", substr)
}

func (q *WindowQuerier) FindByClass(class string) ([]platform.WindowID, error) {
	return search("--class", class)
}

// search runs `xdotool search <mode> <pattern>` and returns the listed
// window ids. xdotool exits non-zero when nothing matches, which is a
// normal empty result here, not an error.
func search(mode, pattern string) ([]platform.WindowID, error) {
	out, err := exec.Command("xdotool", "search", mode, pattern).Output()
	text := strings.TrimSpace(string(out))
	if text == "" {
		if err != nil {
			if _, ok := err.(*exec.ExitError); ok {
				return nil, nil
			}
			return nil, err
		}
		return nil, nil
	}

	ids := make([]platform.WindowID, 0, 4)
	for _, field := range strings.Fields(text) {
		ids = append(ids, platform.WindowID(field))
	}
	return ids, nil
}
