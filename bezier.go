package casteljau

import (
	"iter"
	"slices"
)

// Evaluator evaluates Bézier curves of arbitrary degree with De Casteljau's
// algorithm.
//
// Each round of the algorithm replaces the n points of the previous round
// with the n-1 points obtained by linearly interpolating every adjacent pair.
// After n-1 rounds, a single point remains, which is the point on the curve.
// Evaluating a single t costs O(n²) interpolations.
//
// The rounds alternate between two buffers owned by the Evaluator, so that
// repeated evaluation of the same curve, such as when sampling it, does not
// allocate. The zero value is ready to use. An Evaluator must not be used
// concurrently.
type Evaluator struct {
	front []Point
	back  []Point
}

// Eval evaluates the curve described by the control points pts at parameter
// t. It returns false, and does nothing, if pts is empty. A single control
// point is returned unchanged for any t.
func (e *Evaluator) Eval(t float64, pts []Point) (Point, bool) {
	switch len(pts) {
	case 0:
		return Point{}, false
	case 1:
		return pts[0], true
	}

	n := len(pts) - 1
	if cap(e.front) < n {
		e.front = make([]Point, n)
		e.back = make([]Point, n)
	}

	// The first round reads from the caller's points, so they never need to
	// be copied.
	cur := e.front[:n]
	for i := 1; i <= n; i++ {
		cur[i-1] = pts[i-1].Lerp(pts[i], t)
	}
	next := e.back[:n]
	for ; n > 1; n-- {
		for i := 1; i < n; i++ {
			next[i-1] = cur[i-1].Lerp(cur[i], t)
		}
		cur, next = next, cur
	}
	return cur[0], true
}

// Sample returns the points of the curve described by pts at each parameter
// of r, in increasing order of t. The sequence is empty if pts is empty or r
// is not valid.
//
// The returned sequence reuses e's buffers and may be iterated more than once,
// but not concurrently. pts is read anew on every iteration.
func (e *Evaluator) Sample(pts []Point, r SampleRange) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		if len(pts) == 0 {
			return
		}
		n := r.Count()
		for i := range n {
			pt, _ := e.Eval(r.At(i), pts)
			if !yield(pt) {
				return
			}
		}
	}
}

// Eval evaluates the curve described by the control points pts at parameter
// t. See [Evaluator.Eval].
func Eval(t float64, pts []Point) (Point, bool) {
	var e Evaluator
	return e.Eval(t, pts)
}

// Sample returns the points of the curve described by pts at each parameter
// of r. See [Evaluator.Sample].
func Sample(pts []Point, r SampleRange) iter.Seq[Point] {
	return new(Evaluator).Sample(pts, r)
}

// Bezier is a Bézier curve of arbitrary degree, described by its control
// points. The curve starts at the first control point and ends at the last.
//
// A Bezier with a single control point is a degenerate curve that evaluates to
// that point. The methods of an empty Bezier return zero values.
type Bezier []Point

// Degree returns the degree of the curve, which is one less than the number
// of control points.
func (b Bezier) Degree() int {
	return len(b) - 1
}

// Eval evaluates the curve at parameter t.
func (b Bezier) Eval(t float64) Point {
	pt, _ := Eval(t, b)
	return pt
}

func (b Bezier) Start() Point {
	if len(b) == 0 {
		return Point{}
	}
	return b[0]
}

func (b Bezier) End() Point {
	if len(b) == 0 {
		return Point{}
	}
	return b[len(b)-1]
}

// Subdivide splits the curve at t into two curves of the same degree. The
// first covers the parameter range [0, t] of b, the second [t, 1].
//
// The control points of the two halves are the outer edges of the De
// Casteljau triangle.
func (b Bezier) Subdivide(t float64) (Bezier, Bezier) {
	n := len(b)
	if n == 0 {
		return nil, nil
	}
	left := make(Bezier, n)
	right := make(Bezier, n)
	row := slices.Clone(b)
	for k := range n {
		left[k] = row[0]
		right[n-1-k] = row[len(row)-1]
		for i := 1; i < len(row); i++ {
			row[i-1] = row[i-1].Lerp(row[i], t)
		}
		row = row[:len(row)-1]
	}
	return left, right
}

// Transform returns the curve with each control point transformed by aff.
func (b Bezier) Transform(aff Affine) Bezier {
	out := make(Bezier, len(b))
	for i, pt := range b {
		out[i] = pt.Transform(aff)
	}
	return out
}

// ControlPolygon returns the edges of the open polygon connecting the control
// points.
func (b Bezier) ControlPolygon() iter.Seq[Line] {
	return Polygon(b)
}

// BoundingBox returns the bounding box of the control points. By the convex
// hull property of Bézier curves, it encloses the whole curve.
func (b Bezier) BoundingBox() Rect {
	if len(b) == 0 {
		return Rect{}
	}
	bbox := NewRectFromPoints(b[0], b[0])
	for _, pt := range b[1:] {
		bbox = bbox.UnionPoint(pt)
	}
	return bbox
}
