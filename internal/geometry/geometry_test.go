package geometry

import "testing"

func intPtr(v int) *int { return &v }

func TestResolve_FullCoversMonitor(t *testing.T) {
	monitors := []Rect{
		{X: 0, Y: 0, W: 1920, H: 1080},
		{X: 1920, Y: 0, W: 2560, H: 1440},
		{X: -1920, Y: 200, W: 1280, H: 1024},
	}
	for _, mon := range monitors {
		got, err := Resolve(Sym("full"), mon)
		if err != nil {
			t.Fatalf("Resolve(full, %+v): %v", mon, err)
		}
		if got != mon {
			t.Errorf("Resolve(full, %+v) = %+v, want the monitor itself", mon, got)
		}
	}
}

func TestResolve_CenteredHalf(t *testing.T) {
	monitors := []Rect{
		{X: 0, Y: 0, W: 1920, H: 1080},
		{X: 2560, Y: 0, W: 1920, H: 1200},
		{X: 0, Y: 1080, W: 1366, H: 768},
	}
	for _, mon := range monitors {
		got, err := Resolve(Sym("c w:50% h:50%"), mon)
		if err != nil {
			t.Fatalf("Resolve: %v", err)
		}
		want := Rect{
			X: mon.X + (mon.W-mon.W/2)/2,
			Y: mon.Y + (mon.H-mon.H/2)/2,
			W: mon.W / 2,
			H: mon.H / 2,
		}
		if got != want {
			t.Errorf("centered half on %+v = %+v, want %+v", mon, got, want)
		}
	}
}

func TestResolve_TopRightThird(t *testing.T) {
	mon := Rect{X: 100, Y: 50, W: 1920, H: 1080}
	got, err := Resolve(Sym("tr w:1/3 h:100%"), mon)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	w := 1920 / 3
	want := Rect{X: mon.X + mon.W - w, Y: mon.Y, W: w, H: mon.H}
	if got != want {
		t.Errorf("tr w:1/3 h:100%% = %+v, want %+v", got, want)
	}
}

func TestResolve_AbsoluteIgnoresMonitor(t *testing.T) {
	spec := Abs(AbsoluteSpec{X: intPtr(10), Y: intPtr(20), Width: intPtr(300), Height: intPtr(400)})
	for _, mon := range []Rect{
		{X: 0, Y: 0, W: 1920, H: 1080},
		{X: 5000, Y: -200, W: 800, H: 600},
	} {
		got, err := Resolve(spec, mon)
		if err != nil {
			t.Fatalf("Resolve: %v", err)
		}
		want := Rect{X: 10, Y: 20, W: 300, H: 400}
		if got != want {
			t.Errorf("absolute on %+v = %+v, want %+v", mon, got, want)
		}
	}
}

func TestResolve_AbsoluteDefaultsToMonitor(t *testing.T) {
	mon := Rect{X: 1920, Y: 0, W: 2560, H: 1440}
	got, err := Resolve(Abs(AbsoluteSpec{Width: intPtr(500)}), mon)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	want := Rect{X: 1920, Y: 0, W: 500, H: 1440}
	if got != want {
		t.Errorf("partial absolute = %+v, want %+v", got, want)
	}
}

func TestResolve_Anchors(t *testing.T) {
	mon := Rect{X: 0, Y: 0, W: 1000, H: 800}
	tests := []struct {
		spec string
		want Rect
	}{
		{"tl w:50% h:50%", Rect{0, 0, 500, 400}},
		{"tr w:50% h:50%", Rect{500, 0, 500, 400}},
		{"bl w:50% h:50%", Rect{0, 400, 500, 400}},
		{"br w:50% h:50%", Rect{500, 400, 500, 400}},
		{"c w:50% h:50%", Rect{250, 200, 500, 400}},
		// Offsets from a corner anchor push inward.
		{"tr x:10% w:50% h:50%", Rect{400, 0, 500, 400}},
		{"bl y:10% w:50% h:50%", Rect{0, 320, 500, 400}},
	}
	for _, tt := range tests {
		got, err := Resolve(Sym(tt.spec), mon)
		if err != nil {
			t.Fatalf("Resolve(%q): %v", tt.spec, err)
		}
		if got != tt.want {
			t.Errorf("Resolve(%q) = %+v, want %+v", tt.spec, got, tt.want)
		}
	}
}

// Bare integers in axis tokens are divided by the monitor dimension,
// so they scale with resolution instead of being literal pixels. This
// pins the current (surprising) behavior.
func TestResolve_BarePixelsAreMonitorRelative(t *testing.T) {
	spec := Sym("w:800 h:600")

	small := Rect{X: 0, Y: 0, W: 1600, H: 1200}
	got, err := Resolve(spec, small)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got.W != 800 || got.H != 600 {
		t.Errorf("on 1600x1200 got %dx%d, want 800x600", got.W, got.H)
	}

	// Same spec on a bigger monitor resolves bigger: 800/1600 of 3200.
	big := Rect{X: 0, Y: 0, W: 3200, H: 2400}
	got, err = Resolve(spec, big)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got.W != 1600 || got.H != 1200 {
		t.Errorf("on 3200x2400 got %dx%d, want 1600x1200 (monitor-relative)", got.W, got.H)
	}
}

func TestResolve_Shortcuts(t *testing.T) {
	mon := Rect{X: 0, Y: 0, W: 1920, H: 1080}
	tests := []struct {
		name string
		want Rect
	}{
		{"left", Rect{0, 0, 960, 1080}},
		{"right", Rect{960, 0, 960, 1080}},
		{"left-third", Rect{0, 0, 640, 1080}},
		{"center-third", Rect{640, 0, 640, 1080}},
		{"right-third", Rect{1280, 0, 640, 1080}},
		{"bottom-right", Rect{960, 540, 960, 540}},
		{"middle-third", Rect{0, 360, 1920, 360}},
	}
	for _, tt := range tests {
		got, err := Resolve(Sym(tt.name), mon)
		if err != nil {
			t.Fatalf("Resolve(%q): %v", tt.name, err)
		}
		if got != tt.want {
			t.Errorf("Resolve(%q) = %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

// Tokens that are neither an anchor nor an x/y/w/h axis are ignored,
// leaving the tl defaults in place. A typo must not fail the entry.
func TestResolve_UnrecognizedTokensIgnored(t *testing.T) {
	mon := Rect{X: 0, Y: 0, W: 1000, H: 800}
	tests := []struct {
		spec string
		want Rect
	}{
		{"zz w:50% h:50%", Rect{0, 0, 500, 400}},
		{"q:50% w:50% h:50%", Rect{0, 0, 500, 400}},
		{"tr bogus w:50% h:50%", Rect{500, 0, 500, 400}},
		{"nonsense", Rect{0, 0, 1000, 800}},
	}
	for _, tt := range tests {
		got, err := Resolve(Sym(tt.spec), mon)
		if err != nil {
			t.Fatalf("Resolve(%q): %v", tt.spec, err)
		}
		if got != tt.want {
			t.Errorf("Resolve(%q) = %+v, want %+v", tt.spec, got, tt.want)
		}
	}
}

// A known axis with an unparseable value is still an error.
func TestResolve_BadValueRejected(t *testing.T) {
	mon := Rect{X: 0, Y: 0, W: 1000, H: 1000}
	for _, spec := range []string{"w:", "w:abc", "h:%%"} {
		if _, err := Resolve(Sym(spec), mon); err == nil {
			t.Errorf("Resolve(%q): expected error", spec)
		}
	}
}

func TestResolve_NoClamping(t *testing.T) {
	mon := Rect{X: 0, Y: 0, W: 1000, H: 1000}
	got, err := Resolve(Sym("x:150% w:50% h:50%"), mon)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got.X != 1500 {
		t.Errorf("x = %d, want 1500 (out-of-bounds results are not clamped)", got.X)
	}
}

func TestResolve_EmptySymbolicMeansFull(t *testing.T) {
	mon := Rect{X: 10, Y: 20, W: 640, H: 480}
	got, err := Resolve(Sym(""), mon)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != mon {
		t.Errorf("empty spec = %+v, want %+v", got, mon)
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		val  string
		dim  int
		want float64
	}{
		{"50%", 1000, 0.5},
		{"100%", 1000, 1.0},
		{"2/3", 1000, 2.0 / 3.0},
		{"500", 1000, 0.5},
		{"0", 1000, 0},
	}
	for _, tt := range tests {
		got, err := parseValue(tt.val, tt.dim)
		if err != nil {
			t.Fatalf("parseValue(%q): %v", tt.val, err)
		}
		if got != tt.want {
			t.Errorf("parseValue(%q, %d) = %v, want %v", tt.val, tt.dim, got, tt.want)
		}
	}

	for _, bad := range []string{"abc", "1/0x", "%%"} {
		if _, err := parseValue(bad, 1000); err == nil {
			t.Errorf("parseValue(%q): expected error", bad)
		}
	}
}
