// Package casteljau is the engine of an interactive Bézier curve editor. The
// user places, moves and removes control points on a canvas, and the engine
// redraws the resulting curve, evaluated with De Casteljau's algorithm, after
// every change.
//
// The engine doesn't draw pixels or read input devices itself. Drawing is
// delegated to a [Renderer]; pointer events and button presses are fed to a
// [Controller] by whatever hosts the editor. Package
// honnef.co/go/casteljau/raster provides a software Renderer.
//
// # Components
//
// [Model] holds the ordered control points. Their order defines the curve and
// its control polygon, and indices are their only identity.
//
// [Evaluator] computes points on the curve. [Sample] and [Evaluator.Sample]
// yield the curve at evenly spaced parameters, as described by a
// [SampleRange].
//
// [Controller] is a state machine over the [Mode]s [Idle], [Adding] and
// [Removing]. In Adding mode, clicks add control points; in Removing mode,
// clicks remove them; in Idle mode, control points can be dragged.
//
// [Coordinator] redraws the canvas from the model: background, axes, control
// points, the sampled curve, the control polygon and, optionally, the
// crossplot.
//
// # Coordinate system
//
// All positions are canvas-local: the origin is the top left corner of the
// canvas and y grows downwards. The canvas shows a Cartesian system centered
// on its midpoint (see [Size.Cartesian]). Control points live in its first
// quadrant, the top right quarter of the canvas (see [Size.InputRegion]).
//
// # Crossplot
//
// The crossplot shows the components x(t) and y(t) of the curve. x(t) is drawn
// in the bottom right quadrant, with the parameter growing downwards; y(t) in
// the top left quadrant, with the parameter growing to the left. Both are
// Bézier curves of their own, whose control points are computed by
// [XProjection] and [YProjection].
//
// # Concurrency
//
// The engine is single-threaded. Each call to a [Controller] runs to
// completion, including any redraw it triggers, before returning.
//
// # Literature
//
//   - [A Primer on Bézier Curves]
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
package casteljau
