package preview

import (
	"image"
	"testing"

	"github.com/dmezquita/workspacectl/internal/geometry"
	"github.com/dmezquita/workspacectl/internal/platform"
)

func TestRender_ScalesToMaxWidth(t *testing.T) {
	monitors := []platform.Monitor{
		{Name: "DP-1", Rect: geometry.Rect{X: 0, Y: 0, W: 2560, H: 1440}, Primary: true},
		{Name: "HDMI-0", Rect: geometry.Rect{X: 2560, Y: 0, W: 1920, H: 1080}},
	}
	img, err := Render(monitors, []Box{
		{Label: "editor", Rect: geometry.Rect{X: 0, Y: 0, W: 1280, H: 1440}},
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != maxImageWidth {
		t.Errorf("width = %d, want %d", b.Dx(), maxImageWidth)
	}
	// 4480x1440 desktop scaled by 1600/4480.
	scale := float64(maxImageWidth) / 4480
	wantH := int(1440 * scale)
	if b.Dy() != wantH {
		t.Errorf("height = %d, want %d", b.Dy(), wantH)
	}
}

func TestRender_SmallDesktopUnscaled(t *testing.T) {
	monitors := []platform.Monitor{
		{Name: "eDP-1", Rect: geometry.Rect{X: 0, Y: 0, W: 1280, H: 800}, Primary: true},
	}
	img, err := Render(monitors, nil)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, 1280, 800) {
		t.Errorf("bounds = %v", img.Bounds())
	}
}

func TestRender_NoMonitors(t *testing.T) {
	if _, err := Render(nil, nil); err == nil {
		t.Error("expected error with no monitors")
	}
}

func TestRender_BoxOutsideCanvasIsClipped(t *testing.T) {
	monitors := []platform.Monitor{
		{Name: "DP-1", Rect: geometry.Rect{X: 0, Y: 0, W: 1000, H: 1000}, Primary: true},
	}
	// Geometry resolution does not clamp, so preview must tolerate
	// rectangles hanging off the desktop.
	_, err := Render(monitors, []Box{
		{Label: "offscreen", Rect: geometry.Rect{X: 900, Y: 900, W: 500, H: 500}},
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
}
