package svgicon

import (
	"fmt"
	"strings"

	"github.com/benoitkugler/svgturtle/svgpath"
)

// svgFunc builds the shape described by an element.
// A nil shape with a nil error means the element is skipped.
type svgFunc func(attrs elementAttrs) (Shape, error)

var drawFuncs = map[string]svgFunc{
	"path":    pathF,
	"polygon": polygonF,
	"line":    lineF,
}

// only an absent or empty attribute skips the element:
// blank path data yields a path without segment
func pathF(attrs elementAttrs) (Shape, error) {
	d, _ := attrs.get("d")
	if d == "" {
		return nil, nil
	}
	segments, err := svgpath.ParsePath(d)
	if err != nil {
		return nil, fmt.Errorf("path %s: %w", attrs.id(), err)
	}
	return PathShape{Segments: segments, Fill: attrs.color("fill"), ID: attrs.id()}, nil
}

func polygonF(attrs elementAttrs) (Shape, error) {
	points, _ := attrs.get("points")
	if points == "" {
		return nil, nil
	}
	return PolygonShape{Vertices: parsePoints(points), Fill: attrs.color("fill"), ID: attrs.id()}, nil
}

// parsePoints reads whitespace separated "x,y" pairs.
// Malformed pairs are dropped.
func parsePoints(s string) []svgpath.Point {
	var out []svgpath.Point
	for _, token := range strings.Fields(s) {
		xy := strings.Split(token, ",")
		if len(xy) != 2 {
			continue
		}
		x, errX := svgpath.ParseNumber(xy[0])
		y, errY := svgpath.ParseNumber(xy[1])
		if errX != nil || errY != nil {
			continue
		}
		out = append(out, svgpath.Point{X: x, Y: y})
	}
	return out
}

func lineF(attrs elementAttrs) (Shape, error) {
	var coords [4]float64
	for i, name := range [4]string{"x1", "y1", "x2", "y2"} {
		v, ok := attrs.get(name)
		if !ok {
			continue // defaults to 0
		}
		f, err := svgpath.ParseNumber(v)
		if err != nil {
			return nil, fmt.Errorf("line %s: invalid %s: %w", attrs.id(), name, err)
		}
		coords[i] = f
	}
	return LineShape{
		From:   svgpath.Point{X: coords[0], Y: coords[1]},
		To:     svgpath.Point{X: coords[2], Y: coords[3]},
		Stroke: attrs.color("stroke"),
		ID:     attrs.id(),
	}, nil
}
