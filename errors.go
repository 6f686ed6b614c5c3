package casteljau

import "errors"

var (
	// ErrNoControlPoints is reported when drawing a control polygon that has
	// no points. The coordinator never draws an empty curve, so seeing it
	// means the model changed underneath a redraw.
	ErrNoControlPoints = errors.New("control points missing")

	// ErrIndexOutOfRange is returned when addressing a control point that
	// does not exist.
	ErrIndexOutOfRange = errors.New("control point index out of range")
)
