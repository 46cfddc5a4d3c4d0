// Implements a PDF backend to draw pen commands,
// by wrapping github.com/jung-kurt/gofpdf.
// As for the raster backend, the origin is at the center
// of the page, with the Y axis pointing up.
package svgpdf

import (
	"image/color"
	"io"

	"github.com/benoitkugler/svgturtle/svgdraw"
	"github.com/benoitkugler/svgturtle/svgicon"
	"github.com/benoitkugler/svgturtle/svgpath"
	"github.com/jung-kurt/gofpdf"
)

var _ svgdraw.Pen = (*Pen)(nil) // assert interface conformance

// Options configures the page.
type Options struct {
	LineWidth  float64     // in points, 1 if not positive
	Background color.Color // nil to leave the page blank
	Compress   bool        // compress the content stream
}

// DefaultOptions returns a 1pt line on a blank, compressed page.
func DefaultOptions() Options {
	return Options{LineWidth: 1, Compress: true}
}

// Pen writes to a one page PDF document.
type Pen struct {
	pdf    *gofpdf.Fpdf
	origin svgpath.Point // center of the page

	pos     svgpath.Point // surface space
	down    bool
	color   color.NRGBA
	filling bool

	stroke []svgpath.Point // pending polyline
	fill   []svgpath.Point // pending polygon
}

// NewPen returns a pen drawing on a width x height page
// (in points), positioned at the center, down and black.
func NewPen(width, height float64, opts Options) *Pen {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: width, Ht: height},
	})
	pdf.SetCompression(opts.Compress)
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	if opts.Background != nil {
		r, g, b := toRGB(opts.Background)
		pdf.SetFillColor(r, g, b)
		pdf.Rect(0, 0, width, height, "F")
	}
	lineWidth := opts.LineWidth
	if lineWidth <= 0 {
		lineWidth = 1
	}
	pdf.SetLineWidth(lineWidth)
	pdf.SetLineCapStyle("round")
	pdf.SetLineJoinStyle("round")

	return &Pen{
		pdf:    pdf,
		origin: svgpath.Point{X: width / 2, Y: height / 2},
		down:   true,
		color:  color.NRGBA{A: 0xff},
	}
}

func toRGB(c color.Color) (r, g, b int) {
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	return int(nc.R), int(nc.G), int(nc.B)
}

// toPage converts from surface space to page coordinates
func (pen *Pen) toPage(p svgpath.Point) (float64, float64) {
	return pen.origin.X + p.X, pen.origin.Y - p.Y
}

func (pen *Pen) writePath(points []svgpath.Point) {
	pen.pdf.MoveTo(pen.toPage(points[0]))
	for _, p := range points[1:] {
		pen.pdf.LineTo(pen.toPage(p))
	}
}

// flushStroke writes the pending polyline, if any
func (pen *Pen) flushStroke() {
	points := pen.stroke
	pen.stroke = pen.stroke[:0]
	if len(points) < 2 || pen.color.A == 0 {
		return
	}
	pen.pdf.SetDrawColor(int(pen.color.R), int(pen.color.G), int(pen.color.B))
	pen.pdf.SetAlpha(float64(pen.color.A)/255, "Normal")
	pen.writePath(points)
	pen.pdf.DrawPath("D")
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
		if len(pen.stroke) == 0 {
			pen.stroke = append(pen.stroke, pen.pos)
		}
		pen.stroke = append(pen.stroke, p)
	}
	if pen.filling {
		pen.fill = append(pen.fill, p)
	}
	pen.pos = p
}

func (pen *Pen) BeginFill() {
	pen.flushStroke()
	pen.filling = true
	pen.fill = pen.fill[:0]
}

// EndFill writes the recorded polygon, then the
// pending outline on top of it.
func (pen *Pen) EndFill() {
	if len(pen.fill) != 0 && pen.color.A != 0 {
		pen.pdf.SetFillColor(int(pen.color.R), int(pen.color.G), int(pen.color.B))
		pen.pdf.SetAlpha(float64(pen.color.A)/255, "Normal")
		pen.writePath(pen.fill)
		pen.pdf.ClosePath()
		pen.pdf.DrawPath("F")
	}
	pen.filling = false
	pen.fill = pen.fill[:0]
	pen.flushStroke()
}

// Position returns the current position, in surface space.
func (pen *Pen) Position() svgpath.Point { return pen.pos }

// Write outputs the document to w, after writing the
// pending strokes. The pen must not be used afterwards.
func (pen *Pen) Write(w io.Writer) error {
	pen.flushStroke()
	return pen.pdf.Output(w)
}
