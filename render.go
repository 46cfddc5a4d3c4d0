package svgturtle

import (
	"image/color"
	"io"
	"os"

	"github.com/benoitkugler/svgturtle/svgdraw"
	"github.com/benoitkugler/svgturtle/svgicon"
	"github.com/benoitkugler/svgturtle/svgpdf"
	"github.com/benoitkugler/svgturtle/svgraster"
)

// BackgroundColor returns the parsed background, or nil
// for a transparent canvas.
func (cc CanvasConfig) BackgroundColor() color.Color {
	if cc.Background == "" {
		return nil
	}
	return svgdraw.ResolveColor(svgicon.Color(cc.Background))
}

// RasterPen returns a pen drawing on a new image.
func (cc CanvasConfig) RasterPen() *svgraster.Pen {
	return svgraster.NewPen(cc.Width, cc.Height, svgraster.Options{
		LineWidth:  cc.LineWidth,
		Background: cc.BackgroundColor(),
	})
}

// PDFPen returns a pen drawing on a new PDF page,
// using one point per pixel.
func (cc CanvasConfig) PDFPen() *svgpdf.Pen {
	return svgpdf.NewPen(float64(cc.Width), float64(cc.Height), svgpdf.Options{
		LineWidth:  cc.LineWidth,
		Background: cc.BackgroundColor(),
		Compress:   true,
	})
}

// drawConfig resolves the transform used for shapes
func (cfg Config) drawConfig(shapes []svgicon.Shape) svgdraw.Config {
	out := cfg.Draw
	if cfg.Canvas.Fit {
		t := Fit(shapes, float64(cfg.Canvas.Width), float64(cfg.Canvas.Height), cfg.Canvas.Margin)
		out.Scale, out.OffsetX, out.OffsetY = t.Scale, t.OffsetX, t.OffsetY
	}
	return out
}

// Draw draws the shapes with pen, as configured.
func Draw(shapes []svgicon.Shape, pen svgdraw.Pen, cfg Config) svgdraw.Summary {
	return svgdraw.Run(shapes, pen, cfg.drawConfig(shapes))
}

// Render reads the document from r and draws its shapes with pen.
// If the document can't be parsed, nothing is drawn: an empty summary
// and the error are returned.
func Render(r io.Reader, pen svgdraw.Pen, cfg Config) (svgdraw.Summary, error) {
	shapes, err := svgicon.ReadShapesStream(r, cfg.ExtractOptions())
	if err != nil {
		Logger().Warn("no shape to draw", "error", err)
		return svgdraw.Summary{}, err
	}
	return Draw(shapes, pen, cfg), nil
}

// RenderFile is the same as Render, reading from the named file.
func RenderFile(file string, pen svgdraw.Pen, cfg Config) (svgdraw.Summary, error) {
	f, err := os.Open(file)
	if err != nil {
		return svgdraw.Summary{}, err
	}
	defer f.Close()
	return Render(f, pen, cfg)
}
