package casteljau

import "iter"

// ParametricCurve describes curves parametrized over [0, 1].
type ParametricCurve interface {
	// Eval evaluates the curve at parameter t.
	Eval(t float64) Point
	// Subdivide into halves at t = 0.5.
	SubdivideCurve() (ParametricCurve, ParametricCurve)
	Start() Point
	End() Point
}

var (
	_ ParametricCurve = Line{}
	_ ParametricCurve = Bezier{}
)

func (l Line) SubdivideCurve() (ParametricCurve, ParametricCurve) {
	mid := l.Eval(0.5)
	return Line{l.P0, mid}, Line{mid, l.P1}
}

func (b Bezier) SubdivideCurve() (ParametricCurve, ParametricCurve) {
	return b.Subdivide(0.5)
}

// SampleCurve evaluates c at every parameter of r, in increasing order. An
// invalid range yields nothing.
func SampleCurve(c ParametricCurve, r SampleRange) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for i := range r.Count() {
			if !yield(c.Eval(r.At(i))) {
				return
			}
		}
	}
}
