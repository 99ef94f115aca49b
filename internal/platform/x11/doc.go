// Package x11 implements the platform interfaces for X11 window
// managers by shelling out to the standard tooling: xrandr for monitor
// enumeration, xdotool for window search, wmctrl for desktop assignment
// and geometry, and xprop for GTK frame extents.
package x11
