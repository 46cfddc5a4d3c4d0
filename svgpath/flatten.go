package svgpath

import (
	"errors"
	"fmt"
	"math"
)

// MinSamples is the minimum number of points returned by Flatten,
// so that short curves still look smooth.
const MinSamples = 30

// MaxSamples bounds the number of points returned by Flatten.
// Longer segments are rejected with ErrTooManySamples.
const MaxSamples = 1 << 20

// ErrTooManySamples is returned when a segment is too long to be flattened.
var ErrTooManySamples = errors.New("segment too long to flatten")

const (
	lengthTolerance = 1e-9
	maxLengthDepth  = 18
	lengthIntervals = 8
)

// Flatten samples the segment at max(ceil(length), MinSamples) parameters,
// evenly spaced in [0, 1], both ends included.
// Degenerate segments yield MinSamples identical points.
func Flatten(seg Segment) ([]Point, error) {
	n, err := SampleCount(seg)
	if err != nil {
		return nil, err
	}
	out := make([]Point, n)
	last := float64(n - 1)
	for i := range out {
		out[i] = seg.PointAt(float64(i) / last)
	}
	return out, nil
}

// SampleCount returns the number of points Flatten produces for seg,
// or an error wrapping ErrTooManySamples if it would exceed MaxSamples.
func SampleCount(seg Segment) (int, error) {
	l := seg.Length()
	if math.IsNaN(l) || math.IsInf(l, 0) {
		return MinSamples, nil
	}
	n := math.Ceil(l)
	if n > MaxSamples {
		return 0, fmt.Errorf("%w: length %g", ErrTooManySamples, l)
	}
	if n > MinSamples {
		return int(n), nil
	}
	return MinSamples, nil
}

// arcLength integrates the norm of the derivative over [0, 1],
// using adaptive Simpson quadrature on a few fixed sub-intervals.
// It is only used for elliptical arcs.
func arcLength(derivative func(t float64) Point) float64 {
	speed := func(t float64) float64 { return derivative(t).Norm() }
	var total float64
	step := 1. / lengthIntervals
	for i := 0; i < lengthIntervals; i++ {
		a, b := float64(i)*step, float64(i+1)*step
		fa, fm, fb := speed(a), speed((a+b)/2), speed(b)
		whole := (b - a) / 6 * (fa + 4*fm + fb)
		total += simpson(speed, a, b, fa, fm, fb, whole, lengthTolerance/lengthIntervals, maxLengthDepth)
	}
	return total
}

func simpson(f func(float64) float64, a, b, fa, fm, fb, whole, eps float64, depth int) float64 {
	m := (a + b) / 2
	lm, rm := (a+m)/2, (m+b)/2
	flm, frm := f(lm), f(rm)
	left := (m - a) / 6 * (fa + 4*flm + fm)
	right := (b - m) / 6 * (fm + 4*frm + fb)
	delta := left + right - whole
	if depth <= 0 || math.Abs(delta) <= 15*eps {
		return left + right + delta/15
	}
	return simpson(f, a, m, fa, flm, fm, left, eps/2, depth-1) +
		simpson(f, m, b, fm, frm, fb, right, eps/2, depth-1)
}
