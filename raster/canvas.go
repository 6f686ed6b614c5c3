// Package raster implements a software [casteljau.Renderer] that draws onto an
// in-memory RGBA image.
//
// Shapes are filled with the analytic coverage rasterizer of
// golang.org/x/image/vector; strokes are expanded to polygons before
// filling. Axis labels are drawn with a fixed bitmap font.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"iter"
	"math"

	"honnef.co/go/casteljau"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

const (
	axisWidth    = 2
	polygonWidth = 1
	outlineWidth = 2
	arrowLength  = 15

	// circleSegments is the number of edges used to approximate a circle.
	circleSegments = 48
)

// Options configures a [Canvas]. The zero value of each field selects its
// default.
type Options struct {
	// Background fills the canvas. Defaults to a light pink.
	Background color.Color
	// Axes is the color of the axes, their arrows and labels. Defaults to
	// blue.
	Axes color.Color
	// Fill is the interior of control points. Defaults to black.
	Fill color.Color
	// Radius of control points. Defaults to [casteljau.DefaultRadius].
	Radius float64
	// Face renders the axis labels. Defaults to [basicfont.Face7x13].
	Face font.Face
}

func (opts *Options) withDefaults() Options {
	var o Options
	if opts != nil {
		o = *opts
	}
	if o.Background == nil {
		o.Background = color.RGBA{0xff, 0xd5, 0xfd, 0xff}
	}
	if o.Axes == nil {
		o.Axes = color.RGBA{0x00, 0x00, 0xff, 0xff}
	}
	if o.Fill == nil {
		o.Fill = color.Black
	}
	if o.Radius <= 0 {
		o.Radius = casteljau.DefaultRadius
	}
	if o.Face == nil {
		o.Face = basicfont.Face7x13
	}
	return o
}

// Canvas is a [casteljau.Renderer] backed by an [image.RGBA].
type Canvas struct {
	img     *image.RGBA
	ras     *vector.Rasterizer
	opts    Options
	notices []error
}

var (
	_ casteljau.Renderer = (*Canvas)(nil)
	_ casteljau.Clearer  = (*Canvas)(nil)
	_ casteljau.Notifier = (*Canvas)(nil)
)

// New returns a transparent canvas of w×h pixels. opts may be nil.
func New(w, h int, opts *Options) *Canvas {
	return &Canvas{
		img:  image.NewRGBA(image.Rect(0, 0, w, h)),
		ras:  vector.NewRasterizer(w, h),
		opts: opts.withDefaults(),
	}
}

// Image returns the image the canvas draws onto.
func (c *Canvas) Image() *image.RGBA { return c.img }

func (c *Canvas) CanvasSize() casteljau.Size {
	b := c.img.Bounds()
	return casteljau.Sz(float64(b.Dx()), float64(b.Dy()))
}

// Clear makes every pixel transparent.
func (c *Canvas) Clear() {
	draw.Draw(c.img, c.img.Bounds(), image.Transparent, image.Point{}, draw.Src)
}

func (c *Canvas) DrawBackground() {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(c.opts.Background), image.Point{}, draw.Src)
}

// DrawAxes draws both axes through the center of the canvas, with an arrow at
// each end, and labels their directions: x to the right, y to the top, and the
// parameter T to the left and to the bottom.
func (c *Canvas) DrawAxes() {
	xAxis, yAxis := c.CanvasSize().Axes()
	c.fill(c.opts.Axes, func(z *vector.Rasterizer) {
		for _, l := range []casteljau.Line{xAxis, yAxis} {
			stroke(z, l, axisWidth)
			dir := l.P1.Sub(l.P0).Normalize()
			arrow(z, l.P1, dir)
			arrow(z, l.P0, dir.Negate())
		}
	})

	w, h := c.CanvasSize().Splat()
	mid := c.CanvasSize().Center()
	c.label("T", 7, mid.Y-20)
	c.label("x", w-27, mid.Y+35)
	c.label("y", mid.X+17, 21)
	c.label("T", mid.X-35, h-3)
}

// DrawPoint draws a control point as a filled disk outlined with stroke.
func (c *Canvas) DrawPoint(pt casteljau.Point, stroke color.Color) {
	r := c.opts.Radius
	c.fill(c.opts.Fill, func(z *vector.Rasterizer) {
		circle(z, pt, r, false)
	})
	c.fill(stroke, func(z *vector.Rasterizer) {
		circle(z, pt, r+outlineWidth/2, false)
		circle(z, pt, r-outlineWidth/2, true)
	})
}

func (c *Canvas) DrawPolyline(pts []casteljau.Point, col color.Color) {
	if len(pts) < 2 {
		return
	}
	c.fill(col, func(z *vector.Rasterizer) {
		for l := range casteljau.Polygon(pts) {
			stroke(z, l, polygonWidth)
		}
	})
}

// DrawCurveSamples plots each sample as a one pixel square whose top left
// corner is the sample.
func (c *Canvas) DrawCurveSamples(samples iter.Seq[casteljau.Point], col color.Color) {
	c.fill(col, func(z *vector.Rasterizer) {
		for pt := range samples {
			if pt.IsNaN() || pt.IsInf() {
				continue
			}
			x, y := float32(pt.X), float32(pt.Y)
			z.MoveTo(x, y)
			z.LineTo(x+1, y)
			z.LineTo(x+1, y+1)
			z.LineTo(x, y+1)
			z.ClosePath()
		}
	})
}

// Notify records err. See [Canvas.Notices].
func (c *Canvas) Notify(err error) {
	c.notices = append(c.notices, err)
}

// Notices returns the notices reported since the canvas was created.
func (c *Canvas) Notices() []error { return c.notices }

// EncodePNG writes the canvas to w as a PNG image.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

// fill rasterizes the path built by fn and composites it over the canvas.
func (c *Canvas) fill(col color.Color, fn func(z *vector.Rasterizer)) {
	b := c.img.Bounds()
	c.ras.Reset(b.Dx(), b.Dy())
	c.ras.DrawOp = draw.Over
	fn(c.ras)
	c.ras.Draw(c.img, b, image.NewUniform(col), image.Point{})
}

func (c *Canvas) label(s string, x, y float64) {
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(c.opts.Axes),
		Face: c.opts.Face,
		Dot:  fixed.P(int(math.Round(x)), int(math.Round(y))),
	}
	d.DrawString(s)
}

// stroke adds the rectangle covering l stroked with the given width, with
// butt caps.
func stroke(z *vector.Rasterizer, l casteljau.Line, width float64) {
	if l.Length() == 0 {
		return
	}
	n := l.P1.Sub(l.P0).Normalize().Perp().Mul(width / 2)
	quad(z,
		l.P0.Translate(n),
		l.P1.Translate(n),
		l.P1.Translate(n.Negate()),
		l.P0.Translate(n.Negate()),
	)
}

// arrow adds the two wings of an arrowhead at tip, pointing in direction dir,
// which must be of unit length.
func arrow(z *vector.Rasterizer, tip casteljau.Point, dir casteljau.Vec2) {
	back := tip.Translate(dir.Mul(-arrowLength))
	side := dir.Perp().Mul(arrowLength)
	stroke(z, casteljau.Line{P0: back.Translate(side), P1: tip}, axisWidth)
	stroke(z, casteljau.Line{P0: back.Translate(side.Negate()), P1: tip}, axisWidth)
}

// circle adds a polygonal approximation of a circle. Reversed circles wind the
// other way and cut holes into enclosing ones.
func circle(z *vector.Rasterizer, center casteljau.Point, r float64, reverse bool) {
	if r <= 0 {
		return
	}
	for i := range circleSegments + 1 {
		th := 2 * math.Pi * float64(i) / circleSegments
		if reverse {
			th = -th
		}
		sin, cos := math.Sincos(th)
		x, y := float32(center.X+r*cos), float32(center.Y+r*sin)
		if i == 0 {
			z.MoveTo(x, y)
		} else {
			z.LineTo(x, y)
		}
	}
	z.ClosePath()
}

func quad(z *vector.Rasterizer, p0, p1, p2, p3 casteljau.Point) {
	z.MoveTo(float32(p0.X), float32(p0.Y))
	z.LineTo(float32(p1.X), float32(p1.Y))
	z.LineTo(float32(p2.X), float32(p2.Y))
	z.LineTo(float32(p3.X), float32(p3.Y))
	z.ClosePath()
}
