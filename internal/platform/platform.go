package platform

import "github.com/dmezquita/workspacectl/internal/geometry"

// WindowID is an opaque window-manager window identifier.
type WindowID string

// Monitor is one enumerated display output.
type Monitor struct {
	Name    string
	Rect    geometry.Rect
	Primary bool
}

// FrameExtents are the decoration margins (shadow/border) the display
// system adds around a window's content area.
type FrameExtents struct {
	Left, Right, Top, Bottom int
}

// MonitorSource enumerates connected monitors.
type MonitorSource interface {
	// Enumerate returns connected monitors in the order the underlying
	// source reports them. That order is not guaranteed stable across runs.
	Enumerate() ([]Monitor, error)
}

// WindowQuerier finds window ids in the window manager's live state.
// Result order follows the underlying enumeration and is not contractual.
type WindowQuerier interface {
	FindByTitle(substr string) ([]WindowID, error)
	FindByClass(class string) ([]WindowID, error)
}

// WindowPlacer manipulates a window already known by id.
type WindowPlacer interface {
	// AssignDesktop moves the window to a 1-based desktop number.
	AssignDesktop(id WindowID, desktop int) error
	// ClearMaximized removes vertical and horizontal maximization.
	ClearMaximized(id WindowID) error
	// GetFrameExtents reports decoration margins; zeros when the window
	// has none or the property is unreadable.
	GetFrameExtents(id WindowID) FrameExtents
	// ApplyGeometry moves/resizes the window to the given outer
	// rectangle. Frame-extent compensation is the caller's job.
	ApplyGeometry(id WindowID, r geometry.Rect) error
}

// Spawner launches a process detached from the caller's lifecycle.
type Spawner interface {
	Spawn(argv []string) error
}
