package casteljau

import (
	"fmt"
	"math"
)

// Point is a position on the canvas. Points have no identity beyond their
// coordinates.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) Splat() (float64, float64) {
	return pt.X, pt.Y
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

func (pt Point) Translate(o Vec2) Point {
	return Point{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
	}
}

func (pt Point) Transform(aff Affine) Point {
	return Point{
		X: aff.N0*pt.X + aff.N2*pt.Y + aff.N4,
		Y: aff.N1*pt.X + aff.N3*pt.Y + aff.N5,
	}
}

// Sub computes pt−o.
func (pt Point) Sub(o Point) Vec2 {
	return Vec2{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
	}
}

// Lerp linearly interpolates between two points, returning pt for t = 0 and o
// for t = 1.
//
// The interpolation is computed as (1-t)·pt + t·o rather than pt + t·(o-pt),
// so that both endpoints are reproduced exactly.
func (pt Point) Lerp(o Point, t float64) Point {
	mt := 1 - t
	return Point{
		X: mt*pt.X + t*o.X,
		Y: mt*pt.Y + t*o.Y,
	}
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return math.Hypot(x, y)
}

// DistanceSquared returns the squared euclidean distance between two points.
func (pt Point) DistanceSquared(o Point) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return x*x + y*y
}

func (pt Point) IsInf() bool {
	return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0)
}

func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}

// WithinRadius reports whether b lies within the closed disk of the given
// radius around a. It compares squared distances and never takes a square
// root.
func WithinRadius(a, b Point, radius float64) bool {
	return a.DistanceSquared(b) <= radius*radius
}
