package platform

import (
	"fmt"
	"runtime"
)

// Provider bundles all platform backends for the current OS.
type Provider struct {
	Monitors MonitorSource
	Windows  WindowQuerier
	Placer   WindowPlacer
	Spawner  Spawner
}

// ErrUnsupported is returned on unsupported platforms.
var ErrUnsupported = fmt.Errorf("workspacectl is not supported on %s/%s; supported: linux with an X11 window manager", runtime.GOOS, runtime.GOARCH)

// NewProviderFunc is set by platform-specific packages via init().
// See internal/platform/x11/init.go for the X11 registration.
var NewProviderFunc func() (*Provider, error)

// NewProvider returns a Provider for the current OS.
func NewProvider() (*Provider, error) {
	if NewProviderFunc == nil {
		return nil, ErrUnsupported
	}
	return NewProviderFunc()
}
