package casteljau

import (
	"fmt"
	"iter"
	"log/slog"
	"slices"
)

// DefaultRadius is the radius of a control point, used both for drawing it and
// for hit-testing pointer positions against it.
const DefaultRadius = 7

// Model holds the control points of the curve being edited, and the crossplot
// projections derived from them.
//
// The order of control points is significant; indices are their only
// identity. Removing a point shifts all later indices down by one.
//
// Model knows nothing about pixels or input devices. The zero value is an
// empty model ready for use.
type Model struct {
	points []Point

	// Derived from points; cleared on every mutation.
	xproj []Point
	yproj []Point
}

// Len returns the number of control points.
func (m *Model) Len() int { return len(m.points) }

// At returns the i-th control point. It panics if i is out of range.
func (m *Model) At(i int) Point { return m.points[i] }

// Points returns a copy of the control points.
func (m *Model) Points() []Point { return slices.Clone(m.points) }

// All returns an iterator over the indices and control points, in order.
func (m *Model) All() iter.Seq2[int, Point] { return slices.All(m.points) }

// Curve returns the current control points as a curve. The curve aliases the
// model's storage and is only valid until the next mutation.
func (m *Model) Curve() Bezier { return m.points }

// Add appends a control point. It does not check where the point lies; that is
// the caller's responsibility.
func (m *Model) Add(p Point) {
	m.points = append(m.points, p)
	m.invalidate()
	Logger().Debug("control point added", slog.Int("index", len(m.points)-1), slog.Any("point", p))
}

// FindNear returns the index of the first control point, in index order, that
// lies within radius of p.
func (m *Model) FindNear(p Point, radius float64) (int, bool) {
	for i, pt := range m.points {
		if WithinRadius(p, pt, radius) {
			return i, true
		}
	}
	return -1, false
}

// RemoveNear removes the first control point, in index order, that lies within
// radius of p. At most one point is removed, even if several qualify. It
// reports whether a point was removed.
func (m *Model) RemoveNear(p Point, radius float64) bool {
	i, ok := m.FindNear(p, radius)
	if !ok {
		return false
	}
	m.points = slices.Delete(m.points, i, i+1)
	m.invalidate()
	Logger().Debug("control point removed", slog.Int("index", i), slog.Any("near", p))
	return true
}

// Replace overwrites the i-th control point, keeping its position in the
// sequence.
func (m *Model) Replace(i int, p Point) error {
	if i < 0 || i >= len(m.points) {
		return fmt.Errorf("replace %d of %d: %w", i, len(m.points), ErrIndexOutOfRange)
	}
	m.points[i] = p
	m.invalidate()
	return nil
}

// Clear removes all control points and both projections.
func (m *Model) Clear() {
	m.points = m.points[:0]
	m.invalidate()
}

// ComputeXProjection recomputes the x(t) projection for a canvas of the given
// height and returns it. See [XProjection].
//
// The previous projection is discarded, never appended to, so that repeated
// redraws don't accumulate duplicates.
func (m *Model) ComputeXProjection(height float64) []Point {
	m.xproj = appendXProjection(m.xproj[:0], m.points, height)
	return m.xproj
}

// ComputeYProjection recomputes the y(t) projection for a canvas of the given
// width and returns it. See [YProjection].
func (m *Model) ComputeYProjection(width float64) []Point {
	m.yproj = appendYProjection(m.yproj[:0], m.points, width)
	return m.yproj
}

// Projections returns the most recently computed projections. Both are empty
// if the control points changed since they were last computed.
func (m *Model) Projections() (x, y []Point) {
	return m.xproj, m.yproj
}

func (m *Model) invalidate() {
	m.xproj = m.xproj[:0]
	m.yproj = m.yproj[:0]
}
