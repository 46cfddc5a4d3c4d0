package svgpath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlattenCount(t *testing.T) {
	for _, test := range []struct {
		seg      Segment
		expected int
	}{
		{Line{{0, 0}, {100, 0}}, 100},
		{Line{{0, 0}, {0, 40.2}}, 41},
		{Line{{0, 0}, {5, 5}}, MinSamples},
		{Line{{2, 2}, {2, 2}}, MinSamples},
		{CubicBezier{{1, 1}, {1, 1}, {1, 1}, {1, 1}}, MinSamples},
		{CubicBezier{{0, 0}, {10, 0}, {20, 0}, {30.5, 0}}, int(math.Ceil(CubicBezier{{0, 0}, {10, 0}, {20, 0}, {30.5, 0}}.Length()))},
	} {
		points, err := Flatten(test.seg)
		require.NoError(t, err)
		assert.Len(t, points, test.expected)
		assert.GreaterOrEqual(t, len(points), MinSamples)
		want := int(math.Max(math.Ceil(test.seg.Length()), MinSamples))
		assert.Equal(t, want, len(points))
	}
}

func TestFlattenEndpoints(t *testing.T) {
	p, err := ParsePath("M0 0 C0 50 50 50 50 0 A25 25 0 0 0 0 0 Q-10 -10 -20 0")
	require.NoError(t, err)
	for _, seg := range p {
		points, err := Flatten(seg)
		require.NoError(t, err)
		assertPointNear(t, seg.PointAt(0), points[0])
		assertPointNear(t, seg.PointAt(1), points[len(points)-1])
	}
}

func TestFlattenEvenlySpaced(t *testing.T) {
	points, err := Flatten(Line{{0, 0}, {0, 58}})
	require.NoError(t, err)
	require.Len(t, points, 58)
	for i, p := range points {
		assert.InDelta(t, float64(i)*58/57, p.Y, 1e-9)
		assert.Equal(t, 0., p.X)
	}
}

func TestFlattenDeterministic(t *testing.T) {
	seg := CubicBezier{{0, 0}, {120, 30}, {-40, 80}, {60, 200}}
	first, err := Flatten(seg)
	require.NoError(t, err)
	for range [5]int{} {
		again, _ := Flatten(seg)
		assert.Equal(t, first, again)
	}
	// an equal value, built separately
	other, _ := Flatten(CubicBezier{{0, 0}, {120, 30}, {-40, 80}, {60, 200}})
	assert.Equal(t, first, other)
}

func TestFlattenDegenerate(t *testing.T) {
	points, err := Flatten(QuadBezier{{3, 4}, {3, 4}, {3, 4}})
	require.NoError(t, err)
	require.Len(t, points, MinSamples)
	for _, p := range points {
		assert.Equal(t, Point{3, 4}, p)
	}
}

type brokenSegment struct{}

func (brokenSegment) Length() float64       { return math.NaN() }
func (brokenSegment) PointAt(float64) Point { return Point{} }

func TestSampleCountInvalidLength(t *testing.T) {
	n, err := SampleCount(brokenSegment{})
	require.NoError(t, err)
	assert.Equal(t, MinSamples, n)
	points, err := Flatten(brokenSegment{})
	require.NoError(t, err)
	assert.Len(t, points, MinSamples)
}

func TestFlattenTooLong(t *testing.T) {
	for _, seg := range []Segment{
		Line{{0, 0}, {1e300, 0}},
		Line{{0, 0}, {0, MaxSamples + 1}},
		CubicBezier{{0, 0}, {1e12, 0}, {-1e12, 1e12}, {0, 1e12}},
	} {
		_, err := SampleCount(seg)
		assert.ErrorIs(t, err, ErrTooManySamples)
		points, err := Flatten(seg)
		assert.ErrorIs(t, err, ErrTooManySamples)
		assert.Nil(t, points)
	}

	// the ceiling itself is accepted
	n, err := SampleCount(Line{{0, 0}, {0, MaxSamples}})
	require.NoError(t, err)
	assert.Equal(t, MaxSamples, n)

	// bounds of a segment too long to be sampled use its end points
	box := Bounds(Line{{0, 0}, {1e300, 0}})
	assert.Equal(t, Rect{Max: Point{1e300, 0}}, box)
}

func TestBezierLength(t *testing.T) {
	// a straight cubic with evenly spaced controls
	assert.InDelta(t, 30., CubicBezier{{0, 0}, {10, 0}, {20, 0}, {30, 0}}.Length(), 1e-6)
	assert.InDelta(t, 10., QuadBezier{{0, 0}, {5, 0}, {10, 0}}.Length(), 1e-6)
	// parabola y = x^2 on [0, 1], whose length is known in closed form
	want := math.Sqrt(5)/2 + math.Asinh(2)/4
	assert.InDelta(t, want, QuadBezier{{0, 0}, {0.5, 0}, {1, 1}}.Length(), 1e-6)
	assert.InDelta(t, 0., CubicBezier{{1, 1}, {1, 1}, {1, 1}, {1, 1}}.Length(), 1e-9)

	// arcs keep their own quadrature
	arc := NewArc(Point{0, 0}, 50, 50, 0, false, true, Point{100, 0})
	assert.InDelta(t, math.Pi*50, arc.Length(), 1e-6)
}

func TestBounds(t *testing.T) {
	box := Bounds(CubicBezier{{0, 0}, {0, 10}, {10, 10}, {10, 0}})
	assertPointNear(t, Point{0, 0}, box.Min)
	assertPointNear(t, Point{10, 7.5}, box.Max)

	box = Bounds(QuadBezier{{0, 0}, {5, -10}, {10, 0}})
	assertPointNear(t, Point{0, -5}, box.Min)
	assertPointNear(t, Point{10, 0}, box.Max)

	p, err := ParsePath("M0 0 A10 10 0 0 1 20 0")
	require.NoError(t, err)
	box = p.Bounds()
	assertPointNear(t, Point{0, -10}, box.Min)
	assertPointNear(t, Point{20, 0}, box.Max)

	// segments without critical points use their samples
	box = Bounds(brokenSegment{})
	assert.Equal(t, Rect{}, box)

	assert.True(t, Path(nil).Bounds().IsEmpty())
}
