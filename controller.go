package casteljau

import (
	"log/slog"
)

// View is what a [Controller] drives after mutating the model. [Coordinator]
// implements it.
type View interface {
	// Redraw redraws the canvas from the current model.
	Redraw()
	// FullReset clears the model and redraws an empty canvas.
	FullReset()
	// Crossplot reports whether the crossplot is visible.
	Crossplot() bool
	// SetCrossplot shows or hides the crossplot without redrawing.
	SetCrossplot(visible bool)
	// CanvasSize returns the current dimensions of the canvas.
	CanvasSize() Size
}

const noDrag = -1

// Controller translates toggle actions and pointer events into mutations of a
// [Model], and asks its [View] to redraw afterwards.
//
// Control points can only be placed and moved inside the canvas's input
// region, see [Size.InputRegion]. Input outside of it is ignored.
//
// A Controller is meant to be driven from a single event loop. Every method
// completes the model mutation before triggering a redraw, and the redraw
// completes before the method returns.
type Controller struct {
	// Radius is the hit radius of control points. It defaults to
	// [DefaultRadius].
	Radius float64

	model *Model
	view  View
	mode  Mode
	drag  int
}

// NewController returns a controller in [Idle] mode that edits m and redraws
// v.
func NewController(m *Model, v View) *Controller {
	return &Controller{
		Radius: DefaultRadius,
		model:  m,
		view:   v,
		drag:   noDrag,
	}
}

// Model returns the model edited by c.
func (c *Controller) Model() *Model { return c.model }

// Mode returns the current interaction mode.
func (c *Controller) Mode() Mode { return c.mode }

// Dragging returns the index of the control point being dragged, if any.
func (c *Controller) Dragging() (int, bool) {
	return c.drag, c.drag != noDrag
}

// Do performs a toggle action.
func (c *Controller) Do(a Action) {
	switch a {
	case ToggleAdding:
		c.ToggleAdding()
	case ToggleRemoving:
		c.ToggleRemoving()
	case ToggleCrossplot:
		c.ToggleCrossplot()
	case Reset:
		c.Reset()
	}
}

// ToggleAdding enters or leaves [Adding] mode, leaving [Removing] first if
// necessary.
func (c *Controller) ToggleAdding() {
	c.transition(ToggleAdding)
}

// ToggleRemoving enters or leaves [Removing] mode, leaving [Adding] first if
// necessary. Removing is not entered if there are no control points.
func (c *Controller) ToggleRemoving() {
	c.transition(ToggleRemoving)
}

// ToggleCrossplot shows or hides the crossplot and redraws.
func (c *Controller) ToggleCrossplot() {
	visible := !c.view.Crossplot()
	c.view.SetCrossplot(visible)
	Logger().Debug("crossplot toggled", slog.Bool("visible", visible))
	c.view.Redraw()
}

// Reset leaves [Removing] mode, removes all control points and redraws an
// empty canvas.
func (c *Controller) Reset() {
	c.transition(Reset)
	c.drag = noDrag
	c.view.FullReset()
}

func (c *Controller) transition(a Action) {
	from := c.mode
	c.mode = from.Next(a, c.model.Len() > 0)
	if c.mode != Idle {
		c.drag = noDrag
	}
	if c.mode != from {
		Logger().Debug("mode changed", slog.String("action", a.String()), slog.String("from", from.String()), slog.String("to", c.mode.String()))
	}
}

func (c *Controller) inRegion(p Point) bool {
	return c.view.CanvasSize().InputRegion().Contains(p)
}

// Handle dispatches a pointer event to the matching method.
func (c *Controller) Handle(ev Event) {
	switch ev.Kind {
	case ClickEvent:
		c.Click(ev.Pos)
	case DownEvent:
		c.PointerDown(ev.Pos)
	case MoveEvent:
		c.PointerMove(ev.Pos)
	case UpEvent:
		c.PointerUp(ev.Pos)
	}
}

// Click adds a control point at p in [Adding] mode, or removes the first
// control point near p in [Removing] mode. Clicks in [Idle] mode and clicks
// outside the input region are ignored.
func (c *Controller) Click(p Point) {
	if c.mode == Idle {
		return
	}
	if !c.inRegion(p) {
		Logger().Debug("click outside input region", slog.Any("point", p))
		return
	}
	switch c.mode {
	case Adding:
		c.model.Add(p)
		c.view.Redraw()
	case Removing:
		if c.model.RemoveNear(p, c.Radius) {
			c.view.Redraw()
		}
	}
}

// PointerDown picks up the control point near p for dragging. It only has an
// effect in [Idle] mode.
func (c *Controller) PointerDown(p Point) {
	if c.mode != Idle {
		return
	}
	c.drag = noDrag
	if !c.inRegion(p) {
		return
	}
	if i, ok := c.model.FindNear(p, c.Radius); ok {
		c.drag = i
		Logger().Debug("drag started", slog.Int("index", i))
	}
}

// PointerMove moves the dragged control point to p. It is ignored if no point
// is being dragged or if p is outside the input region, in which case the
// point keeps its previous position.
func (c *Controller) PointerMove(p Point) {
	if c.drag == noDrag {
		return
	}
	if !c.inRegion(p) {
		return
	}
	if err := c.model.Replace(c.drag, p); err != nil {
		// The model was changed behind our back; there is nothing left to
		// drag.
		Logger().Warn("dropping drag", slog.Any("err", err))
		c.drag = noDrag
		return
	}
	c.view.Redraw()
}

// PointerUp releases the dragged control point, if any.
func (c *Controller) PointerUp(Point) {
	c.drag = noDrag
}
