// Implements a raster backend to draw pen commands,
// by wrapping rasterx.
// The canvas follows the turtle screen convention: the origin is at
// the center of the image, with the Y axis pointing up.
package svgraster

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/benoitkugler/svgturtle/svgdraw"
	"github.com/benoitkugler/svgturtle/svgicon"
	"github.com/benoitkugler/svgturtle/svgpath"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

var _ svgdraw.Pen = (*Pen)(nil) // assert interface conformance

// DefaultSize is the side of the default square canvas, in pixels.
const DefaultSize = 800

// Options configures the canvas.
type Options struct {
	LineWidth  float64     // in pixels, 1 if not positive
	Background color.Color // nil for a transparent canvas
}

// DefaultOptions returns a 1px line on a white canvas.
func DefaultOptions() Options {
	return Options{LineWidth: 1, Background: color.White}
}

// Pen draws on an RGBA image.
type Pen struct {
	img    *image.RGBA
	dasher *rasterx.Dasher // we use separated instances
	filler *rasterx.Filler // to avoid shared state

	origin svgpath.Point // center of the image, in pixels

	pos     svgpath.Point // surface space
	down    bool
	color   color.NRGBA
	filling bool

	stroking    bool // a polyline is pending in the dasher
	fillStarted bool // a polygon is pending in the filler
}

// NewPen returns a pen drawing on a new width x height image,
// positioned at the center, down and black, as a fresh turtle.
func NewPen(width, height int, opts Options) *Pen {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if opts.Background != nil {
		draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)
	}
	lineWidth := opts.LineWidth
	if lineWidth <= 0 {
		lineWidth = 1
	}

	pen := &Pen{
		img:    img,
		dasher: rasterx.NewDasher(width, height, rasterx.NewScannerGV(width, height, img, img.Bounds())),
		filler: rasterx.NewFiller(width, height, rasterx.NewScannerGV(width, height, img, img.Bounds())),
		origin: svgpath.Point{X: float64(width) / 2, Y: float64(height) / 2},
		down:   true,
		color:  color.NRGBA{A: 0xff},
	}
	pen.dasher.SetStroke(fixed.Int26_6(lineWidth*64), 4<<6, rasterx.RoundCap, rasterx.RoundCap,
		rasterx.RoundGap, rasterx.Round, nil, 0)
	return pen
}

// toPixel converts from surface space to image coordinates
func (pen *Pen) toPixel(p svgpath.Point) fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6((pen.origin.X + p.X) * 64),
		Y: fixed.Int26_6((pen.origin.Y - p.Y) * 64),
	}
}

// flushStroke paints the pending polyline, if any
func (pen *Pen) flushStroke() {
	if !pen.stroking {
		return
	}
	pen.stroking = false
	pen.dasher.Stop(false)
	if pen.color.A != 0 {
		pen.dasher.SetColor(pen.color)
		pen.dasher.Draw()
	}
	pen.dasher.Clear()
}

func (pen *Pen) SetColor(c svgicon.Color) {
	pen.flushStroke()
	pen.color = svgdraw.ResolveColor(c)
}

func (pen *Pen) PenUp() {
	pen.flushStroke()
	pen.down = false
}

func (pen *Pen) PenDown() { pen.down = true }

func (pen *Pen) MoveTo(p svgpath.Point) {
	if pen.down {
		if !pen.stroking {
			pen.dasher.Start(pen.toPixel(pen.pos))
			pen.stroking = true
		}
		pen.dasher.Line(pen.toPixel(p))
	}
	if pen.filling {
		if pen.fillStarted {
			pen.filler.Line(pen.toPixel(p))
		} else {
			pen.filler.Start(pen.toPixel(p))
			pen.fillStarted = true
		}
	}
	pen.pos = p
}

func (pen *Pen) BeginFill() {
	pen.flushStroke()
	pen.filler.Clear()
	pen.filling, pen.fillStarted = true, false
}

// EndFill paints the recorded polygon, then the
// pending outline on top of it.
func (pen *Pen) EndFill() {
	if pen.fillStarted {
		pen.filler.Stop(true)
		if pen.color.A != 0 {
			pen.filler.SetColor(pen.color)
			pen.filler.Draw()
		}
		pen.filler.Clear()
	}
	pen.filling, pen.fillStarted = false, false
	pen.flushStroke()
}

// Position returns the current position, in surface space.
func (pen *Pen) Position() svgpath.Point { return pen.pos }

// Image returns the drawing, after painting the pending strokes.
func (pen *Pen) Image() *image.RGBA {
	pen.flushStroke()
	return pen.img
}

// WritePNG encodes the drawing to w.
func (pen *Pen) WritePNG(w io.Writer) error {
	return png.Encode(w, pen.Image())
}
