package casteljau

// The crossplot decomposes the curve into its x(t) and y(t) components. Each
// is drawn as its own Bézier curve, whose control points keep one coordinate
// of the corresponding control point and replace the other with an evenly
// spaced parameter axis.

// XProjection returns the control points of x(t) for a canvas of the given
// height.
//
// For n control points, the i-th projected point (1-based) has the x
// coordinate of the i-th control point and the y coordinate
// height/2 + i·(height/2)/(n+1). The points are thus evenly spaced strictly
// between the horizontal axis and the bottom edge of the canvas, and never
// touch either.
func XProjection(pts []Point, height float64) []Point {
	return appendXProjection(make([]Point, 0, len(pts)), pts, height)
}

// YProjection returns the control points of y(t) for a canvas of the given
// width.
//
// For n control points, the i-th projected point (1-based) has the x
// coordinate width/2 − i·(width/2)/(n+1) and the y coordinate of the i-th
// control point, placing the points strictly between the vertical axis and
// the left edge of the canvas.
func YProjection(pts []Point, width float64) []Point {
	return appendYProjection(make([]Point, 0, len(pts)), pts, width)
}

func appendXProjection(dst, pts []Point, height float64) []Point {
	mid := height / 2
	step := mid / float64(len(pts)+1)
	for i, pt := range pts {
		dst = append(dst, Pt(pt.X, mid+float64(i+1)*step))
	}
	return dst
}

func appendYProjection(dst, pts []Point, width float64) []Point {
	mid := width / 2
	step := mid / float64(len(pts)+1)
	for i, pt := range pts {
		dst = append(dst, Pt(mid-float64(i+1)*step, pt.Y))
	}
	return dst
}
