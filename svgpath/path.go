// Implements an abstract representation of
// svg paths, as a sequence of parametrized curves,
// which can then be flattened into points.
package svgpath

import (
	"fmt"
	"math"
	"strings"

	"honnef.co/go/curve"
)

// Point is a position in document space (the Y axis points down).
type Point struct {
	X, Y float64
}

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

func (p Point) Mul(f float64) Point { return Point{p.X * f, p.Y * f} }

// Lerp returns the point at t on the segment [p, q]
func (p Point) Lerp(q Point, t float64) Point {
	return Point{p.X + (q.X-p.X)*t, p.Y + (q.Y-p.Y)*t}
}

// Norm is the distance from the origin of the point
func (p Point) Norm() float64 { return math.Hypot(p.X, p.Y) }

// toCurve converts p for length computations.
func (p Point) toCurve() curve.Point { return curve.Pt(p.X, p.Y) }

func (p Point) String() string { return fmt.Sprintf("(%g,%g)", p.X, p.Y) }

// Segment is a parametrized curve, defined for t in [0, 1].
// Line, QuadBezier, CubicBezier and Arc implement it.
type Segment interface {
	// Length returns the arc length of the curve.
	Length() float64
	// PointAt evaluates the curve at t.
	PointAt(t float64) Point
}

// Path describes a sequence of segments, as found
// in the 'd' attribute of a path element.
// Consecutive segments are not required to be connected:
// a path with several sub-paths simply concatenates their segments.
type Path []Segment

// ToSVGPath returns a string representation of the path
func (p Path) ToSVGPath() string {
	chunks := make([]string, 0, len(p))
	var current Point
	for i, seg := range p {
		start := seg.PointAt(0)
		if i == 0 || start != current {
			chunks = append(chunks, fmt.Sprintf("M%4.3f,%4.3f", start.X, start.Y))
		}
		switch seg := seg.(type) {
		case Line:
			chunks = append(chunks, fmt.Sprintf("L%4.3f,%4.3f", seg[1].X, seg[1].Y))
		case QuadBezier:
			chunks = append(chunks, fmt.Sprintf("Q%4.3f,%4.3f,%4.3f,%4.3f",
				seg[1].X, seg[1].Y, seg[2].X, seg[2].Y))
		case CubicBezier:
			chunks = append(chunks, fmt.Sprintf("C%4.3f,%4.3f,%4.3f,%4.3f,%4.3f,%4.3f",
				seg[1].X, seg[1].Y, seg[2].X, seg[2].Y, seg[3].X, seg[3].Y))
		case Arc:
			end := seg.PointAt(1)
			large, sweep := 0, 0
			if math.Abs(seg.Delta) > math.Pi {
				large = 1
			}
			if seg.Delta > 0 {
				sweep = 1
			}
			chunks = append(chunks, fmt.Sprintf("A%4.3f,%4.3f,%4.3f,%d,%d,%4.3f,%4.3f",
				seg.Radii.X, seg.Radii.Y, seg.Rotation*180/math.Pi, large, sweep, end.X, end.Y))
		default:
			end := seg.PointAt(1)
			chunks = append(chunks, fmt.Sprintf("L%4.3f,%4.3f", end.X, end.Y))
		}
		current = seg.PointAt(1)
	}
	return strings.Join(chunks, " ")
}

// String returns a readable representation of a Path.
func (p Path) String() string {
	return p.ToSVGPath()
}

// Length returns the sum of the segment lengths.
func (p Path) Length() float64 {
	var l float64
	for _, seg := range p {
		l += seg.Length()
	}
	return l
}
