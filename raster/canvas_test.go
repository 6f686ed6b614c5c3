package raster

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"honnef.co/go/casteljau"
)

var (
	red   = color.RGBA{0xff, 0x00, 0x00, 0xff}
	green = color.RGBA{0x00, 0xff, 0x00, 0xff}
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// near reports whether two colors differ by at most 2 in every 8-bit channel.
func near(a, b color.Color) bool {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	d := func(x, y uint32) bool {
		x >>= 8
		y >>= 8
		if x > y {
			return x-y <= 2
		}
		return y-x <= 2
	}
	return d(ar, br) && d(ag, bg) && d(ab, bb) && d(aa, ba)
}

func assertPixel(t *testing.T, c *Canvas, x, y int, want color.Color) {
	t.Helper()
	if got := c.Image().At(x, y); !near(got, want) {
		t.Errorf("pixel (%d, %d) = %v, want %v", x, y, got, want)
	}
}

func TestCanvasSize(t *testing.T) {
	c := New(400, 300, nil)
	diff(t, casteljau.Sz(400, 300), c.CanvasSize())
}

func TestDrawBackground(t *testing.T) {
	c := New(40, 30, &Options{Background: green})
	assertPixel(t, c, 5, 5, color.Transparent)
	c.DrawBackground()
	for _, p := range []image.Point{{0, 0}, {39, 29}, {20, 15}} {
		assertPixel(t, c, p.X, p.Y, green)
	}
	c.Clear()
	assertPixel(t, c, 20, 15, color.Transparent)
}

func TestDrawAxes(t *testing.T) {
	bg := color.RGBA{0xff, 0xff, 0xff, 0xff}
	c := New(400, 400, &Options{Background: bg, Axes: red})
	c.DrawBackground()
	c.DrawAxes()

	// On the axes, away from the labels.
	assertPixel(t, c, 100, 200, red)
	assertPixel(t, c, 300, 199, red)
	assertPixel(t, c, 200, 100, red)
	assertPixel(t, c, 199, 300, red)
	// Well inside the quadrants.
	assertPixel(t, c, 300, 100, bg)
	assertPixel(t, c, 100, 300, bg)
	// An arrow wing of the right arrow.
	assertPixel(t, c, 392, 192, red)
}

func TestDrawPoint(t *testing.T) {
	bg := color.RGBA{0xff, 0xff, 0xff, 0xff}
	c := New(100, 100, &Options{Background: bg})
	c.DrawBackground()
	c.DrawPoint(casteljau.Pt(50, 50), red)

	// Filled interior.
	assertPixel(t, c, 50, 50, color.Black)
	assertPixel(t, c, 52, 52, color.Black)
	// Outline around the radius.
	assertPixel(t, c, 56, 50, red)
	assertPixel(t, c, 43, 50, red)
	// Outside.
	assertPixel(t, c, 60, 50, bg)
}

func TestDrawPolyline(t *testing.T) {
	bg := color.RGBA{0xff, 0xff, 0xff, 0xff}
	c := New(100, 100, &Options{Background: bg})
	c.DrawBackground()
	pts := []casteljau.Point{casteljau.Pt(10, 20.5), casteljau.Pt(60.5, 20.5), casteljau.Pt(60.5, 80)}
	c.DrawPolyline(pts, red)

	assertPixel(t, c, 30, 20, red)
	assertPixel(t, c, 60, 50, red)
	assertPixel(t, c, 30, 30, bg)
	assertPixel(t, c, 5, 20, bg)

	// A single point has nothing to connect.
	d := New(10, 10, nil)
	d.DrawPolyline(pts[:1], red)
	assertPixel(t, d, 0, 0, color.Transparent)
}

func TestDrawCurveSamples(t *testing.T) {
	c := New(20, 20, nil)
	pts := []casteljau.Point{casteljau.Pt(3, 4), casteljau.Pt(10, 10)}
	c.DrawCurveSamples(slices.Values(pts), red)
	assertPixel(t, c, 3, 4, red)
	assertPixel(t, c, 10, 10, red)
	assertPixel(t, c, 5, 5, color.Transparent)
}

func TestCoordinatorOnCanvas(t *testing.T) {
	c := New(400, 400, nil)
	m := new(casteljau.Model)
	view := casteljau.NewCoordinator(m, c)
	ctrl := casteljau.NewController(m, view)

	ctrl.ToggleAdding()
	ctrl.Click(casteljau.Pt(250, 150))
	ctrl.Click(casteljau.Pt(300, 0))
	ctrl.Click(casteljau.Pt(350, 150))

	// The apex of the curve, far from the control polygon.
	assertPixel(t, c, 300, 75, casteljau.DefaultPalette.Curve)

	bg := c.opts.Background
	drawn := func() int {
		var n int
		for y := 220; y < 380; y++ {
			for x := 220; x < 360; x++ {
				if !near(c.Image().At(x, y), bg) {
					n++
				}
			}
		}
		return n
	}
	if n := drawn(); n != 0 {
		t.Fatalf("%d pixels drawn in the fourth quadrant without crossplot", n)
	}
	ctrl.ToggleCrossplot()
	if drawn() == 0 {
		t.Error("crossplot didn't draw x(t)")
	}
	if len(c.Notices()) != 0 {
		t.Errorf("got notices %v", c.Notices())
	}
}

func TestNotify(t *testing.T) {
	c := New(10, 10, nil)
	m := new(casteljau.Model)
	view := casteljau.NewCoordinator(m, c)
	if err := view.DrawPolygon(nil); err == nil {
		t.Fatal("expected an error")
	}
	diff(t, []error{casteljau.ErrNoControlPoints}, c.Notices(), cmp.Comparer(func(a, b error) bool { return a == b }))
}

func TestEncodePNG(t *testing.T) {
	c := New(32, 16, &Options{Background: green})
	c.DrawBackground()
	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, image.Rect(0, 0, 32, 16), img.Bounds())
	if !near(img.At(3, 3), green) {
		t.Errorf("decoded pixel = %v, want %v", img.At(3, 3), green)
	}
}
