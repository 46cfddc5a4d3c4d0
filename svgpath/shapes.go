package svgpath

import (
	"math"

	"honnef.co/go/curve"
)

// This file implements the concrete curve kinds
// found in path data.

// Line is a straight segment from [0] to [1].
type Line [2]Point

// arclenAccuracy is the absolute error tolerated on bezier lengths.
const arclenAccuracy = 1e-9

// QuadBezier is a quadratic bezier curve: start, control, end.
type QuadBezier [3]Point

// CubicBezier is a cubic bezier curve: start, two controls, end.
type CubicBezier [4]Point

// Arc is an elliptical arc, stored in center parametrization:
// the point at t is the point of the ellipse at angle Start + t*Delta.
type Arc struct {
	Center   Point
	Radii    Point   // X and Y radius, always positive
	Rotation float64 // x-axis rotation, in radians
	Start    float64 // start angle, in radians
	Delta    float64 // signed angular span, in radians
}

func (l Line) PointAt(t float64) Point {
	return Point{bezierLine(l[0].X, l[1].X, t), bezierLine(l[0].Y, l[1].Y, t)}
}

func (l Line) Length() float64 { return l[1].Sub(l[0]).Norm() }

func (q QuadBezier) PointAt(t float64) Point {
	return Point{
		bezierQuad(q[0].X, q[1].X, q[2].X, t),
		bezierQuad(q[0].Y, q[1].Y, q[2].Y, t),
	}
}

func (q QuadBezier) Length() float64 {
	return curve.QuadBez{P0: q[0].toCurve(), P1: q[1].toCurve(), P2: q[2].toCurve()}.Arclen(arclenAccuracy)
}

func (c CubicBezier) PointAt(t float64) Point {
	return Point{
		bezierSpline(c[0].X, c[1].X, c[2].X, c[3].X, t),
		bezierSpline(c[0].Y, c[1].Y, c[2].Y, c[3].Y, t),
	}
}

func (c CubicBezier) Length() float64 {
	return curve.CubicBez{P0: c[0].toCurve(), P1: c[1].toCurve(), P2: c[2].toCurve(), P3: c[3].toCurve()}.Arclen(arclenAccuracy)
}

func (a Arc) PointAt(t float64) Point {
	sin, cos := math.Sincos(a.Rotation)
	x, y := ellipsePointAt(a.Radii.X, a.Radii.Y, sin, cos, a.Start+t*a.Delta, a.Center.X, a.Center.Y)
	return Point{x, y}
}

func (a Arc) derivative(t float64) Point {
	sin, cos := math.Sincos(a.Rotation)
	dx, dy := ellipsePrime(a.Radii.X, a.Radii.Y, sin, cos, a.Start+t*a.Delta)
	return Point{dx * a.Delta, dy * a.Delta}
}

func (a Arc) Length() float64 { return arcLength(a.derivative) }

// NewArc converts the endpoint parametrization used in path data
// into a segment. It returns nil if from and to are the same point
// (the arc is omitted), and a Line if one of the radius is zero.
// Radii too small to join the end points are scaled up.
// rotation is in degrees.
func NewArc(from Point, rx, ry, rotation float64, largeArc, sweep bool, to Point) Segment {
	if from == to {
		return nil
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 {
		return Line{from, to}
	}
	rotX := rotation * math.Pi / 180
	sin, cos := math.Sincos(rotX)

	// move the origin to the middle of the chord, aligned with the ellipse axis
	dx, dy := (from.X-to.X)/2, (from.Y-to.Y)/2
	x1, y1 := cos*dx+sin*dy, -sin*dx+cos*dy

	if lambda := (x1*x1)/(rx*rx) + (y1*y1)/(ry*ry); lambda > 1 {
		s := math.Sqrt(lambda)
		rx, ry = rx*s, ry*s
	}

	num := rx*rx*ry*ry - rx*rx*y1*y1 - ry*ry*x1*x1
	den := rx*rx*y1*y1 + ry*ry*x1*x1
	coef := math.Sqrt(math.Max(0, num/den))
	if largeArc == sweep {
		coef = -coef
	}
	cx1, cy1 := coef*rx*y1/ry, -coef*ry*x1/rx

	center := Point{
		X: cos*cx1 - sin*cy1 + (from.X+to.X)/2,
		Y: sin*cx1 + cos*cy1 + (from.Y+to.Y)/2,
	}
	start := math.Atan2((y1-cy1)/ry, (x1-cx1)/rx)
	end := math.Atan2((-y1-cy1)/ry, (-x1-cx1)/rx)
	delta := end - start
	if sweep && delta < 0 {
		delta += 2 * math.Pi
	} else if !sweep && delta > 0 {
		delta -= 2 * math.Pi
	}
	return Arc{Center: center, Radii: Point{rx, ry}, Rotation: rotX, Start: start, Delta: delta}
}

// ellipsePrime gives tangent vectors for parameterized elipse; a, b, radii, eta parameter
func ellipsePrime(a, b, sinTheta, cosTheta, eta float64) (px, py float64) {
	bCosEta := b * math.Cos(eta)
	aSinEta := a * math.Sin(eta)
	px = -aSinEta*cosTheta - bCosEta*sinTheta
	py = -aSinEta*sinTheta + bCosEta*cosTheta
	return
}

// ellipsePointAt gives points for parameterized elipse; a, b, radii, eta parameter, center cx, cy
func ellipsePointAt(a, b, sinTheta, cosTheta, eta, cx, cy float64) (px, py float64) {
	aCosEta := a * math.Cos(eta)
	bSinEta := b * math.Sin(eta)
	px = cx + aCosEta*cosTheta - bSinEta*sinTheta
	py = cy + aCosEta*sinTheta + bSinEta*cosTheta
	return
}

func bezierLine(p0, p1, t float64) float64 {
	return (p1-p0)*t + p0
}

// quadratic polinomial
// x = At^2 + Bt + C
// where
// A = p0 + p2 - 2p1
// B = 2(p1 - p0)
// C = p0
func bezierQuad(p0, p1, p2, t float64) float64 {
	return (p0+p2-2*p1)*t*t + 2*(p1-p0)*t + p0
}

// derivative as at + b where a,b :
func quadraticDerivative(p0, p1, p2 float64) (a, b float64) {
	return 2 * (p2 - p1 - (p1 - p0)), 2 * (p1 - p0)
}

// cubic polinomial
// x = At^3 + Bt^2 + Ct + D
// where A,B,C,D:
// A = p3 -3 * p2 + 3 * p1 - p0
// B = 3 * p2 - 6 * p1 +3 * p0
// C = 3 * p1 - 3 * p0
// D = p0
func bezierSpline(p0, p1, p2, p3, t float64) float64 {
	return (p3-3*p2+3*p1-p0)*t*t*t +
		(3*p2-6*p1+3*p0)*t*t +
		(3*p1-3*p0)*t +
		(p0)
}

// X' = (3*p3-9*p2+9*p1-3*p0)t^2 + (6*p2-12*p1+6*p0)t + (3*p1-3*p0)
// taken as aX^2 + bX + c  a,b and c are:
func cubicDerivative(p0, p1, p2, p3 float64) (a, b, c float64) {
	return 3*p3 - 9*p2 + 9*p1 - 3*p0, 6*p2 - 12*p1 + 6*p0, 3*p1 - 3*p0
}
