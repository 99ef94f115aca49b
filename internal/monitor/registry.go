// Package monitor maintains the per-run table of detected monitors.
// The registry is a plain value built once at the start of a run and
// passed explicitly to whatever needs geometry; there is no process-wide
// monitor state.
package monitor

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dmezquita/workspacectl/internal/geometry"
	"github.com/dmezquita/workspacectl/internal/platform"
)

// ErrNoMonitors means detection found no connected monitors; nothing
// can be resolved and the run must abort before launching anything.
var ErrNoMonitors = errors.New("no monitors detected")

// Registry maps monitor names to their rectangles and designates one of
// them primary. Immutable after Detect.
type Registry struct {
	rects   map[string]geometry.Rect
	primary string
}

// Detect builds a Registry from the source's enumeration. The primary
// is the monitor the source marks primary or, absent any mark, the
// first enumerated one. Enumeration order comes straight from the
// source and is not guaranteed stable across runs.
func Detect(src platform.MonitorSource) (*Registry, error) {
	monitors, err := src.Enumerate()
	if err != nil {
		return nil, fmt.Errorf("monitor detection: %w", err)
	}
	return New(monitors)
}

// New builds a Registry from an already-enumerated monitor list, using
// the same primary-designation rule as Detect.
func New(monitors []platform.Monitor) (*Registry, error) {
	if len(monitors) == 0 {
		return nil, ErrNoMonitors
	}

	r := &Registry{rects: make(map[string]geometry.Rect, len(monitors))}
	for _, m := range monitors {
		r.rects[m.Name] = m.Rect
		if m.Primary && r.primary == "" {
			r.primary = m.Name
		}
	}
	if r.primary == "" {
		r.primary = monitors[0].Name
	}
	return r, nil
}

// Lookup resolves a monitor name to its rectangle. Unknown names (and
// the alias "primary") fall back to the primary monitor.
func (r *Registry) Lookup(name string) geometry.Rect {
	if rect, ok := r.rects[name]; ok && name != "" {
		return rect
	}
	return r.rects[r.primary]
}

// Primary returns the name of the primary monitor.
func (r *Registry) Primary() string {
	return r.primary
}

// Names returns all monitor names sorted for stable display.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.rects))
	for name := range r.rects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
