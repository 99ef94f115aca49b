// Package geometry resolves declarative window position specs into
// absolute pixel rectangles on a monitor.
//
// A spec is either an absolute record ({x, y, width, height}, missing
// fields defaulting to the monitor's own origin/size) or a symbolic
// string of whitespace-separated tokens: an optional anchor (tl, tr, bl,
// br, c) plus axis:value tokens for x, y, w and h. Values are
// percentages ("50%"), exact fractions ("1/3"), or bare integers.
// Tokens that are neither an anchor nor a known axis are ignored, so a
// typo'd template still resolves with the tl defaults.
//
// Note on bare integers: a bare integer in an axis token is divided by
// the monitor's dimension on that axis, so "w:800" means 800/monitorWidth
// of the monitor, not 800 literal pixels. This makes bare values
// resolution-dependent. It matches long-standing template behavior and is
// preserved as-is; prefer percentages or fractions in new templates.
package geometry

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// Rect is an absolute pixel rectangle, origin top-left.
type Rect struct {
	X int `yaml:"x" json:"x"`
	Y int `yaml:"y" json:"y"`
	W int `yaml:"w" json:"w"`
	H int `yaml:"h" json:"h"`
}

// Spec is a window position specification. Exactly one of the two
// variants is set; the choice is made at parse time, never re-inspected
// downstream.
type Spec struct {
	Absolute *AbsoluteSpec
	Symbolic string
}

// AbsoluteSpec positions a window at literal pixel coordinates. Nil
// fields default to the monitor's own origin and size. Anchor and
// shortcut logic never applies to this form.
type AbsoluteSpec struct {
	X      *int `yaml:"x"`
	Y      *int `yaml:"y"`
	Width  *int `yaml:"width"`
	Height *int `yaml:"height"`
}

// Sym returns a symbolic Spec.
func Sym(s string) Spec {
	return Spec{Symbolic: s}
}

// Abs returns an absolute Spec.
func Abs(a AbsoluteSpec) Spec {
	return Spec{Absolute: &a}
}

var anchors = map[string]bool{"tl": true, "tr": true, "bl": true, "br": true, "c": true}

// Resolve computes the absolute pixel rectangle for spec on mon. It is
// pure: no I/O, deterministic. Results are not clamped to the monitor;
// negative or out-of-bounds rectangles are the caller's problem.
func Resolve(spec Spec, mon Rect) (Rect, error) {
	if spec.Absolute != nil {
		return resolveAbsolute(*spec.Absolute, mon), nil
	}
	return resolveSymbolic(spec.Symbolic, mon)
}

func resolveAbsolute(a AbsoluteSpec, mon Rect) Rect {
	r := Rect{X: mon.X, Y: mon.Y, W: mon.W, H: mon.H}
	if a.X != nil {
		r.X = *a.X
	}
	if a.Y != nil {
		r.Y = *a.Y
	}
	if a.Width != nil {
		r.W = *a.Width
	}
	if a.Height != nil {
		r.H = *a.Height
	}
	return r
}

func resolveSymbolic(s string, mon Rect) (Rect, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		s = "full"
	}
	if canonical, ok := Shortcuts[s]; ok {
		s = canonical
	}

	var (
		xRel, yRel float64
		wRel       = 1.0
		hRel       = 1.0
		anchor     = "tl"
	)

	for _, token := range strings.Fields(s) {
		if anchors[token] {
			anchor = token
			continue
		}
		axis, val, ok := strings.Cut(token, ":")
		if !ok {
			// Not an anchor and not an axis token: ignore it, leaving
			// the tl defaults in place. A typo'd template still places
			// its window instead of failing the whole entry.
			continue
		}
		var dim int
		switch axis {
		case "x", "w":
			dim = mon.W
		case "y", "h":
			dim = mon.H
		default:
			continue
		}
		rel, err := parseValue(val, dim)
		if err != nil {
			return Rect{}, fmt.Errorf("invalid position token %q: %w", token, err)
		}
		switch axis {
		case "x":
			xRel = rel
		case "y":
			yRel = rel
		case "w":
			wRel = rel
		case "h":
			hRel = rel
		}
	}

	w := floorMul(mon.W, wRel)
	h := floorMul(mon.H, hRel)

	var x, y int
	switch anchor {
	case "tr":
		x = mon.X + mon.W - w - floorMul(mon.W, xRel)
		y = mon.Y + floorMul(mon.H, yRel)
	case "bl":
		x = mon.X + floorMul(mon.W, xRel)
		y = mon.Y + mon.H - h - floorMul(mon.H, yRel)
	case "br":
		x = mon.X + mon.W - w - floorMul(mon.W, xRel)
		y = mon.Y + mon.H - h - floorMul(mon.H, yRel)
	case "c":
		x = mon.X + floorHalf(mon.W-w) + floorMul(mon.W, xRel)
		y = mon.Y + floorHalf(mon.H-h) + floorMul(mon.H, yRel)
	default: // tl
		x = mon.X + floorMul(mon.W, xRel)
		y = mon.Y + floorMul(mon.H, yRel)
	}

	return Rect{X: x, Y: y, W: w, H: h}, nil
}

// parseValue converts a token value to a fraction of the monitor
// dimension: "50%" → 0.5, "1/3" → exact rational as float, bare integer
// → value/dim.
func parseValue(val string, dim int) (float64, error) {
	switch {
	case strings.HasSuffix(val, "%"):
		pct, err := strconv.ParseFloat(strings.TrimSuffix(val, "%"), 64)
		if err != nil {
			return 0, fmt.Errorf("bad percentage %q", val)
		}
		return pct / 100, nil
	case strings.Contains(val, "/"):
		rat, ok := new(big.Rat).SetString(val)
		if !ok {
			return 0, fmt.Errorf("bad fraction %q", val)
		}
		f, _ := rat.Float64()
		return f, nil
	default:
		n, err := strconv.Atoi(val)
		if err != nil {
			return 0, fmt.Errorf("bad value %q", val)
		}
		if dim == 0 {
			return 0, nil
		}
		return float64(n) / float64(dim), nil
	}
}

// floorMul computes floor(dim * rel) with the truncation-toward-negative
// semantics templates rely on.
func floorMul(dim int, rel float64) int {
	v := float64(dim) * rel
	n := int(v)
	if v < 0 && float64(n) != v {
		n--
	}
	return n
}

// floorHalf is floor(n / 2), rounding toward negative infinity so that
// centering a window larger than the monitor still floors.
func floorHalf(n int) int {
	if n < 0 && n%2 != 0 {
		return n/2 - 1
	}
	return n / 2
}
