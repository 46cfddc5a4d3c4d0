package svgturtle

import (
	"math"

	"github.com/benoitkugler/svgturtle/svgdraw"
	"github.com/benoitkugler/svgturtle/svgicon"
	"github.com/benoitkugler/svgturtle/svgpath"
)

// ShapesBounds returns the bounding box of the shapes, in document space.
// The returned rectangle is empty if there is no point.
func ShapesBounds(shapes []svgicon.Shape) svgpath.Rect {
	box := svgpath.EmptyRect
	for _, shape := range shapes {
		switch shape := shape.(type) {
		case svgicon.PathShape:
			box = box.Union(shape.Segments.Bounds())
		case svgicon.PolygonShape:
			for _, v := range shape.Vertices {
				box = box.Extend(v)
			}
		case svgicon.LineShape:
			box = box.Extend(shape.From).Extend(shape.To)
		}
	}
	return box
}

// Fit returns the transform centering the shapes on a turtle canvas
// of size width x height, scaled to leave at least `margin`
// on each side.
// Shapes without extent are only centered.
func Fit(shapes []svgicon.Shape, width, height, margin float64) svgdraw.Transform {
	box := ShapesBounds(shapes)
	if box.IsEmpty() {
		return svgdraw.Identity
	}
	scale := math.Inf(1)
	if w := box.Width(); w > 0 {
		scale = math.Max(width-2*margin, 1) / w
	}
	if h := box.Height(); h > 0 {
		scale = math.Min(scale, math.Max(height-2*margin, 1)/h)
	}
	if math.IsInf(scale, 1) { // a single point
		scale = 1
	}
	center := box.Min.Lerp(box.Max, 0.5)
	return svgdraw.Transform{
		Scale:   scale,
		OffsetX: -center.X * scale,
		OffsetY: center.Y * scale,
	}
}
