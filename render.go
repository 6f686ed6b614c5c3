package casteljau

import (
	"image/color"
	"iter"
	"log/slog"
)

// Renderer draws onto the canvas. The engine never touches pixels itself.
//
// All coordinates are canvas-local.
type Renderer interface {
	// DrawBackground fills the whole canvas with the background.
	DrawBackground()
	// DrawAxes decorates the canvas with the axes of the Cartesian system
	// centered on the canvas.
	DrawAxes()
	// DrawPoint draws a control point, stroking its outline with stroke.
	DrawPoint(pt Point, stroke color.Color)
	// DrawPolyline connects consecutive points with straight lines.
	DrawPolyline(pts []Point, c color.Color)
	// DrawCurveSamples plots every point of samples.
	DrawCurveSamples(samples iter.Seq[Point], c color.Color)
	// CanvasSize returns the current dimensions of the canvas.
	CanvasSize() Size
}

// Clearer is an optional interface implemented by renderers that need to
// discard their previous contents before the background is drawn.
type Clearer interface {
	Clear()
}

// Notifier is an optional interface implemented by renderers that can show a
// notice to the user. Renderers that don't implement it have notices logged
// instead.
type Notifier interface {
	Notify(err error)
}

// Palette holds the colors used for drawing curves.
type Palette struct {
	// Point strokes the outline of control points.
	Point color.Color
	// Polygon connects the control points.
	Polygon color.Color
	// Curve is the color of the edited curve.
	Curve color.Color
	// Crossplot is the color of the x(t) and y(t) curves.
	Crossplot color.Color
}

// DefaultPalette draws purple control points and polygons, a black curve and a
// grey crossplot.
var DefaultPalette = Palette{
	Point:     color.RGBA{0x80, 0x00, 0x80, 0xff},
	Polygon:   color.RGBA{0x80, 0x00, 0x80, 0xff},
	Curve:     color.Black,
	Crossplot: color.RGBA{0x80, 0x80, 0x80, 0xff},
}

// Coordinator redraws the canvas from a [Model], delegating the drawing to a
// [Renderer]. It implements [View].
type Coordinator struct {
	Palette  Palette
	Sampling SampleRange

	model     *Model
	renderer  Renderer
	eval      Evaluator
	crossplot bool
}

var _ View = (*Coordinator)(nil)

// NewCoordinator returns a coordinator that draws m with r, using
// [DefaultPalette] and [DefaultSampleRange]. The crossplot is initially
// hidden.
func NewCoordinator(m *Model, r Renderer) *Coordinator {
	return &Coordinator{
		Palette:  DefaultPalette,
		Sampling: DefaultSampleRange,
		model:    m,
		renderer: r,
	}
}

func (c *Coordinator) CanvasSize() Size { return c.renderer.CanvasSize() }

func (c *Coordinator) Crossplot() bool { return c.crossplot }

func (c *Coordinator) SetCrossplot(visible bool) { c.crossplot = visible }

// Redraw clears the canvas and draws the background, the axes and, if there
// are any control points, the curve with its control polygon. If the crossplot
// is visible, both projections are recomputed and drawn as curves of their
// own.
func (c *Coordinator) Redraw() {
	c.clear()

	pts := c.model.Curve()
	if len(pts) == 0 {
		return
	}
	c.drawCurve(pts, c.Palette.Curve)

	if c.crossplot {
		sz := c.renderer.CanvasSize()
		c.drawCurve(c.model.ComputeXProjection(sz.Height), c.Palette.Crossplot)
		c.drawCurve(c.model.ComputeYProjection(sz.Width), c.Palette.Crossplot)
	}
}

// FullReset removes all control points and draws only the background and the
// axes.
func (c *Coordinator) FullReset() {
	c.model.Clear()
	c.clear()
}

// DrawPolygon connects the control points pts. An empty pts is reported to the
// user as [ErrNoControlPoints] and returned.
func (c *Coordinator) DrawPolygon(pts []Point) error {
	if len(pts) == 0 {
		c.notify(ErrNoControlPoints)
		return ErrNoControlPoints
	}
	c.renderer.DrawPolyline(pts, c.Palette.Polygon)
	return nil
}

func (c *Coordinator) clear() {
	if cl, ok := c.renderer.(Clearer); ok {
		cl.Clear()
	}
	c.model.invalidate()
	c.renderer.DrawBackground()
	c.renderer.DrawAxes()
}

func (c *Coordinator) drawCurve(pts []Point, col color.Color) {
	if len(pts) == 0 {
		return
	}
	for _, pt := range pts {
		c.renderer.DrawPoint(pt, c.Palette.Point)
	}
	c.renderer.DrawCurveSamples(c.eval.Sample(pts, c.Sampling), col)
	_ = c.DrawPolygon(pts)
}

func (c *Coordinator) notify(err error) {
	if n, ok := c.renderer.(Notifier); ok {
		n.Notify(err)
		return
	}
	Logger().Warn("cannot draw control polygon", slog.Any("err", err))
}
