package svgpath

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-6

func assertPointNear(t *testing.T, expected, got Point) {
	t.Helper()
	assert.InDelta(t, expected.X, got.X, eps, "X of %v", got)
	assert.InDelta(t, expected.Y, got.Y, eps, "Y of %v", got)
}

func TestParsePathRelative(t *testing.T) {
	abs, err := ParsePath("M10 10 L20 10 L20 20 Z")
	require.NoError(t, err)
	rel, err := ParsePath("m10,10 l10,0 l0,10 z")
	require.NoError(t, err)
	assert.Equal(t, abs, rel)
	assert.Equal(t, Path{
		Line{{10, 10}, {20, 10}},
		Line{{20, 10}, {20, 20}},
		Line{{20, 20}, {10, 10}},
	}, abs)
}

func TestParsePathImplicitLines(t *testing.T) {
	p, err := ParsePath("M0 0 10 0 10 10")
	require.NoError(t, err)
	assert.Equal(t, Path{Line{{0, 0}, {10, 0}}, Line{{10, 0}, {10, 10}}}, p)

	p, err = ParsePath("m5 5 5 0 h-10 v3 H1 V0")
	require.NoError(t, err)
	assert.Equal(t, Path{
		Line{{5, 5}, {10, 5}},
		Line{{10, 5}, {0, 5}},
		Line{{0, 5}, {0, 8}},
		Line{{0, 8}, {1, 8}},
		Line{{1, 8}, {1, 0}},
	}, p)
}

func TestParsePathCompactNumbers(t *testing.T) {
	p, err := ParsePath("M.5-.5L1e1-2.5")
	require.NoError(t, err)
	require.Len(t, p, 1)
	assert.Equal(t, Line{{0.5, -0.5}, {10, -2.5}}, p[0])
	// the trailing .5 is an incomplete pair
	_, err = ParsePath("M0 0 L1 2 3")
	assert.True(t, errors.Is(err, ErrBadPath))
}

func TestParsePathReflection(t *testing.T) {
	p, err := ParsePath("M0 0 C0 10 10 10 10 0 S20 -10 20 0")
	require.NoError(t, err)
	require.Len(t, p, 2)
	assert.Equal(t, CubicBezier{{10, 0}, {10, -10}, {20, -10}, {20, 0}}, p[1])

	p, err = ParsePath("M0 0 Q5 10 10 0 T20 0")
	require.NoError(t, err)
	require.Len(t, p, 2)
	assert.Equal(t, QuadBezier{{10, 0}, {15, -10}, {20, 0}}, p[1])

	// without a preceding curve, the control point is the current point
	p, err = ParsePath("M0 0 T10 0")
	require.NoError(t, err)
	assert.Equal(t, QuadBezier{{0, 0}, {0, 0}, {10, 0}}, p[0])
}

func TestParsePathClose(t *testing.T) {
	// already at the start: no closing segment
	p, err := ParsePath("M0 0 L10 0 L0 0 Z")
	require.NoError(t, err)
	assert.Len(t, p, 2)

	// two sub-paths, the second one relative to the closed first one
	p, err = ParsePath("M0 0 h10 v10 z m20 0 h5")
	require.NoError(t, err)
	require.Len(t, p, 4)
	assert.Equal(t, Line{{20, 0}, {25, 0}}, p[3])
}

func TestParsePathErrors(t *testing.T) {
	for _, d := range []string{
		"L10 10",
		"M0 0 X10",
		"M0 0 L10",
		"M0 0 A10 10 0 2 1 5 5",
		"M0 0 Z 10",
	} {
		_, err := ParsePath(d)
		assert.ErrorIs(t, err, ErrBadPath, d)
	}

	p, err := ParsePath("   ")
	assert.NoError(t, err)
	assert.Empty(t, p)
}

func TestArc(t *testing.T) {
	p, err := ParsePath("M0 0 A10 10 0 0 1 20 0")
	require.NoError(t, err)
	require.Len(t, p, 1)
	arc, ok := p[0].(Arc)
	require.True(t, ok)

	assertPointNear(t, Point{0, 0}, arc.PointAt(0))
	assertPointNear(t, Point{20, 0}, arc.PointAt(1))
	assertPointNear(t, Point{10, -10}, arc.PointAt(0.5))
	assert.InDelta(t, 10*math.Pi, arc.Length(), 1e-6)

	// the other sweep goes below the chord
	p, err = ParsePath("M0 0 A10 10 0 0 0 20 0")
	require.NoError(t, err)
	assertPointNear(t, Point{10, 10}, p[0].PointAt(0.5))

	// radii too small are scaled up: same half circle
	p, err = ParsePath("M0 0 a1 1 0 0 1 20 0")
	require.NoError(t, err)
	assertPointNear(t, Point{10, -10}, p[0].PointAt(0.5))
}

func TestArcDegenerate(t *testing.T) {
	p, err := ParsePath("M0 0 A0 10 0 0 1 20 0")
	require.NoError(t, err)
	assert.Equal(t, Path{Line{{0, 0}, {20, 0}}}, p)

	p, err = ParsePath("M3 4 A10 10 0 1 1 3 4")
	require.NoError(t, err)
	assert.Empty(t, p)
}

func TestLengths(t *testing.T) {
	assert.Equal(t, 5., Line{{0, 0}, {3, 4}}.Length())

	// a straight quadratic has the length of its chord
	assert.InDelta(t, 10, QuadBezier{{0, 0}, {5, 0}, {10, 0}}.Length(), 1e-6)

	// a cubic with collinear controls
	assert.InDelta(t, 30, CubicBezier{{0, 0}, {10, 0}, {20, 0}, {30, 0}}.Length(), 1e-6)

	// a quarter of a circle, approximated by a cubic
	k := 0.5522847498
	quarter := CubicBezier{{100, 0}, {100, 100 * k}, {100 * k, 100}, {0, 100}}
	assert.InDelta(t, 50*math.Pi, quarter.Length(), 0.1)
}

func TestToSVGPath(t *testing.T) {
	p, err := ParsePath("M0 0 L10 0 Q15 5 10 10 M20 20 C20 30 30 30 30 20")
	require.NoError(t, err)
	assert.Equal(t,
		"M0.000,0.000 L10.000,0.000 Q15.000,5.000,10.000,10.000 M20.000,20.000 C20.000,30.000,30.000,30.000,30.000,20.000",
		p.String())
}

func TestParseNumber(t *testing.T) {
	for s, exp := range map[string]float64{
		"12":     12,
		" 12px ": 12,
		"-3.5":   -3.5,
		"1e2":    100,
	} {
		f, err := ParseNumber(s)
		assert.NoError(t, err, s)
		assert.Equal(t, exp, f, s)
	}
	for _, s := range []string{"", "abc", "12pt", "1,2"} {
		_, err := ParseNumber(s)
		assert.Error(t, err, s)
	}
}
