package svgpath

import "math"

// compute the bouding box of a path, needed to fit
// a document on a drawing surface

// Rect is an axis aligned box, in document space.
type Rect struct {
	Min, Max Point
}

// EmptyRect is the neutral element of Union.
var EmptyRect = Rect{
	Min: Point{math.Inf(1), math.Inf(1)},
	Max: Point{math.Inf(-1), math.Inf(-1)},
}

// IsEmpty returns true if the box contains no point.
func (r Rect) IsEmpty() bool { return r.Min.X > r.Max.X || r.Min.Y > r.Max.Y }

func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Union returns the smallest box containing r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Min: Point{math.Min(r.Min.X, other.Min.X), math.Min(r.Min.Y, other.Min.Y)},
		Max: Point{math.Max(r.Max.X, other.Max.X), math.Max(r.Max.Y, other.Max.Y)},
	}
}

// Extend returns the smallest box containing r and p.
func (r Rect) Extend(p Point) Rect { return r.Union(Rect{p, p}) }

type bezier interface {
	// compute the t zeroing the derivative
	criticalPoints() (tX, tY []float64)
}

func (l Line) criticalPoints() (tX, tY []float64) {
	return nil, nil
}

func (cu QuadBezier) criticalPoints() (tX, tY []float64) {
	aX, bX := quadraticDerivative(cu[0].X, cu[1].X, cu[2].X)
	aY, bY := quadraticDerivative(cu[0].Y, cu[1].Y, cu[2].Y)
	return linearRoots(aX, bX), linearRoots(aY, bY)
}

func (cu CubicBezier) criticalPoints() (tX, tY []float64) {
	aX, bX, cX := cubicDerivative(cu[0].X, cu[1].X, cu[2].X, cu[3].X)
	aY, bY, cY := cubicDerivative(cu[0].Y, cu[1].Y, cu[2].Y, cu[3].Y)
	return quadraticRoots(aX, bX, cX), quadraticRoots(aY, bY, cY)
}

// the extrema of the ellipse are reached when its tangent
// is horizontal or vertical; they are tested against the span of the arc.
func (a Arc) criticalPoints() (tX, tY []float64) {
	sin, cos := math.Sincos(a.Rotation)
	etaX := math.Atan2(-a.Radii.Y*sin, a.Radii.X*cos)
	etaY := math.Atan2(a.Radii.Y*cos, a.Radii.X*sin)
	return a.anglesToT(etaX), a.anglesToT(etaY)
}

// anglesToT returns the parameters of the arc reaching eta or eta + k*pi
func (a Arc) anglesToT(eta float64) []float64 {
	if a.Delta == 0 {
		return nil
	}
	var out []float64
	// the span is at most 2*pi, so a few multiples of pi are enough
	for k := -4; k <= 4; k++ {
		t := (eta + float64(k)*math.Pi - a.Start) / a.Delta
		if 0 <= t && t <= 1 {
			out = append(out, t)
		}
	}
	return out
}

// handle the case where a = 0
func linearRoots(a, b float64) []float64 {
	if a == 0 {
		return nil
	}
	return []float64{-b / a}
}

//b^2 - 4ac = Determinant
func determinant(a, b, c float64) float64 { return b*b - 4*a*c }

func _solve(a_, b_, c_ float64, s bool) float64 {
	sign := 1.
	if !s {
		sign = -1.
	}
	return (-b_ + (math.Sqrt((b_*b_)-(4*a_*c_)) * sign)) / (2 * a_)
}

func quadraticRoots(a, b, c float64) []float64 {
	if a == 0 {
		//aX^2 + bX + c well then then this is a simple line
		//x= -c / b
		return linearRoots(b, c)
	}

	d := determinant(a, b, c)
	if d < 0 {
		return nil
	}
	if d == 0 {
		return []float64{_solve(a, b, c, true)}
	}
	return []float64{
		_solve(a, b, c, true),
		_solve(a, b, c, false),
	}
}

// Bounds returns the bounding box of the segment. Curves
// are bounded using the roots of their derivative; other
// segments fall back to their flattened points.
func Bounds(seg Segment) Rect {
	box := EmptyRect.Extend(seg.PointAt(0)).Extend(seg.PointAt(1))
	curve, ok := seg.(bezier)
	if !ok {
		// segments too long to be sampled keep their end points
		points, _ := Flatten(seg)
		for _, p := range points {
			box = box.Extend(p)
		}
		return box
	}
	resX, resY := curve.criticalPoints()
	for _, t := range append(resX, resY...) {
		// filter invalid value
		if !(0 <= t && t <= 1) {
			continue
		}
		box = box.Extend(seg.PointAt(t))
	}
	return box
}

// Bounds returns the union of the bounding boxes of the segments.
func (p Path) Bounds() Rect {
	box := EmptyRect
	for _, seg := range p {
		box = box.Union(Bounds(seg))
	}
	return box
}
