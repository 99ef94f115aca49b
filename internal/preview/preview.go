// Package preview renders a template's resolved window rectangles
// across the detected monitors into a PNG, so a layout can be checked
// without launching anything.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/dmezquita/workspacectl/internal/geometry"
	"github.com/dmezquita/workspacectl/internal/platform"
)

// Box is one labeled rectangle to draw.
type Box struct {
	Label string
	Rect  geometry.Rect
}

// maxImageWidth bounds the output image; desktop coordinates are scaled
// down to fit.
const maxImageWidth = 1600

var palette = []color.RGBA{
	{R: 66, G: 133, B: 244, A: 255},
	{R: 219, G: 68, B: 55, A: 255},
	{R: 244, G: 180, B: 0, A: 255},
	{R: 15, G: 157, B: 88, A: 255},
	{R: 171, G: 71, B: 188, A: 255},
	{R: 0, G: 172, B: 193, A: 255},
}

// Render draws monitor outlines and window boxes onto a scaled canvas.
func Render(monitors []platform.Monitor, boxes []Box) (image.Image, error) {
	if len(monitors) == 0 {
		return nil, fmt.Errorf("no monitors to render")
	}

	// Bounding box of the whole virtual desktop.
	minX, minY := monitors[0].Rect.X, monitors[0].Rect.Y
	maxX, maxY := minX, minY
	for _, m := range monitors {
		if m.Rect.X < minX {
			minX = m.Rect.X
		}
		if m.Rect.Y < minY {
			minY = m.Rect.Y
		}
		if x := m.Rect.X + m.Rect.W; x > maxX {
			maxX = x
		}
		if y := m.Rect.Y + m.Rect.H; y > maxY {
			maxY = y
		}
	}
	deskW, deskH := maxX-minX, maxY-minY
	if deskW <= 0 || deskH <= 0 {
		return nil, fmt.Errorf("degenerate desktop bounds %dx%d", deskW, deskH)
	}

	scale := 1.0
	if deskW > maxImageWidth {
		scale = float64(maxImageWidth) / float64(deskW)
	}
	imgW := int(float64(deskW) * scale)
	imgH := int(float64(deskH) * scale)

	img := image.NewRGBA(image.Rect(0, 0, imgW, imgH))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.RGBA{R: 24, G: 24, B: 28, A: 255}}, image.Point{}, draw.Src)

	toImg := func(r geometry.Rect) (x0, y0, x1, y1 int) {
		x0 = int(float64(r.X-minX) * scale)
		y0 = int(float64(r.Y-minY) * scale)
		x1 = int(float64(r.X-minX+r.W) * scale)
		y1 = int(float64(r.Y-minY+r.H) * scale)
		return
	}

	monitorEdge := color.RGBA{R: 110, G: 110, B: 120, A: 255}
	for _, m := range monitors {
		x0, y0, x1, y1 := toImg(m.Rect)
		drawRectangle(img, x0, y0, x1, y1, monitorEdge, 1)
		name := m.Name
		if m.Primary {
			name += " (primary)"
		}
		drawLabel(img, x0+4, y0+14, name, monitorEdge)
	}

	for i, b := range boxes {
		c := palette[i%len(palette)]
		x0, y0, x1, y1 := toImg(b.Rect)
		drawRectangle(img, x0, y0, x1, y1, c, 2)
		drawLabel(img, x0+4, y0+28, b.Label, c)
	}

	return img, nil
}

// WritePNG encodes img to path.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// drawRectangle draws the four edges of a rectangle with the given
// stroke thickness, clipped to the image.
func drawRectangle(img *image.RGBA, x0, y0, x1, y1 int, c color.Color, thickness int) {
	for t := 0; t < thickness; t++ {
		for x := x0; x <= x1; x++ {
			setPixel(img, x, y0+t, c)
			setPixel(img, x, y1-t, c)
		}
		for y := y0; y <= y1; y++ {
			setPixel(img, x0+t, y, c)
			setPixel(img, x1-t, y, c)
		}
	}
}

func setPixel(img *image.RGBA, x, y int, c color.Color) {
	if (image.Point{X: x, Y: y}).In(img.Bounds()) {
		img.Set(x, y, c)
	}
}

// drawLabel renders text at (x, y baseline) using the basic 7x13 face.
func drawLabel(img *image.RGBA, x, y int, text string, c color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}
