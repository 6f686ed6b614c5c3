package casteljau

import (
	"fmt"
)

// Size describes the dimensions of the canvas, in canvas-local units.
//
// Canvas-local coordinates have their origin in the top left corner, with x
// growing to the right and y growing downwards.
type Size struct {
	Width  float64
	Height float64
}

// Sz returns the size w×h.
func Sz(w, h float64) Size {
	return Size{
		Width:  w,
		Height: h,
	}
}

func (sz Size) String() string {
	return fmt.Sprintf("%g×%g", sz.Width, sz.Height)
}

func (sz Size) Splat() (w float64, h float64) {
	return sz.Width, sz.Height
}

// IsEmpty reports whether the size has no area.
func (sz Size) IsEmpty() bool {
	return sz.Width <= 0 || sz.Height <= 0
}

// Bounds returns the rectangle covering the canvas.
func (sz Size) Bounds() Rect {
	return Rect{X0: 0, Y0: 0, X1: sz.Width, Y1: sz.Height}
}

// Center returns the canvas midpoint, which is the origin of the Cartesian
// coordinate system drawn on the canvas.
func (sz Size) Center() Point {
	return Pt(sz.Width/2, sz.Height/2)
}

// InputRegion returns the region in which control points may be placed: the
// closed first quadrant of the Cartesian system centered on the canvas,
// x ∈ [Width/2, Width] and y ∈ [0, Height/2] in canvas-local coordinates.
func (sz Size) InputRegion() Rect {
	return Rect{
		X0: sz.Width / 2,
		Y0: 0,
		X1: sz.Width,
		Y1: sz.Height / 2,
	}
}

// Axes returns the horizontal and vertical axes of the Cartesian system,
// spanning the whole canvas and crossing at its center.
func (sz Size) Axes() (x, y Line) {
	c := sz.Center()
	x = Line{P0: Pt(0, c.Y), P1: Pt(sz.Width, c.Y)}
	y = Line{P0: Pt(c.X, 0), P1: Pt(c.X, sz.Height)}
	return x, y
}

// Cartesian returns the transform from canvas-local coordinates to the
// Cartesian system centered on the canvas, with y pointing up. Use
// [Affine.Invert] to map back.
func (sz Size) Cartesian() Affine {
	c := sz.Center()
	return FlipY.Mul(Translate(Vec(-c.X, -c.Y)))
}
