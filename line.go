package casteljau

import (
	"iter"
)

// Line represents a line segment.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// Eval evaluates the line at parameter t.
func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

func (l Line) Start() Point { return l.P0 }
func (l Line) End() Point   { return l.P1 }

func (l Line) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Line) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}

func (l Line) Translate(v Vec2) Line {
	return Line{
		P0: l.P0.Translate(v),
		P1: l.P1.Translate(v),
	}
}

func (l Line) BoundingBox() Rect {
	return NewRectFromPoints(l.P0, l.P1)
}

// Polygon returns the edges connecting consecutive points, in order. The
// polygon is open: no edge joins the last point to the first. Fewer than two
// points produce no edges.
func Polygon(pts []Point) iter.Seq[Line] {
	return func(yield func(Line) bool) {
		for i := 1; i < len(pts); i++ {
			if !yield(Line{P0: pts[i-1], P1: pts[i]}) {
				return
			}
		}
	}
}
