package svgdraw

import "github.com/benoitkugler/svgturtle/svgpath"

// ToSurface maps a point from document space (Y down)
// to drawing surface space (Y up).
func ToSurface(p svgpath.Point, scale, offsetX, offsetY float64) svgpath.Point {
	return svgpath.Point{
		X: p.X*scale + offsetX,
		Y: -p.Y*scale + offsetY,
	}
}

// Transform stores the mapping applied to every emitted point.
type Transform struct {
	Scale            float64
	OffsetX, OffsetY float64
}

// Identity only flips the Y axis.
var Identity = Transform{Scale: 1}

// Apply maps p to surface space.
func (t Transform) Apply(p svgpath.Point) svgpath.Point {
	return ToSurface(p, t.Scale, t.OffsetX, t.OffsetY)
}
