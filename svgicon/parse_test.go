package svgicon

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/benoitkugler/svgturtle/internal/logging"
	"github.com/benoitkugler/svgturtle/svgpath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readString(t *testing.T, s string, opts Options) []Shape {
	t.Helper()
	shapes, err := ReadShapesStream(strings.NewReader(s), opts)
	require.NoError(t, err)
	return shapes
}

func TestReadFile(t *testing.T) {
	shapes, err := ReadShapes("testdata/mixed.svg", Options{})
	require.NoError(t, err)
	require.Len(t, shapes, 4)

	kinds := make([]Kind, len(shapes))
	for i, sh := range shapes {
		kinds[i] = sh.Kind()
	}
	assert.Equal(t, []Kind{KindLine, KindPath, KindPolygon, KindPath}, kinds)

	line := shapes[0].(LineShape)
	assert.Equal(t, "base", line.Identifier())
	assert.Equal(t, Color("blue"), line.Color())
	assert.Equal(t, svgpath.Point{X: 0, Y: 150}, line.From)
	assert.Equal(t, svgpath.Point{X: 200, Y: 150}, line.To)

	hill := shapes[1].(PathShape)
	assert.Equal(t, "hill", hill.ID)
	assert.Equal(t, Color("green"), hill.Fill)
	require.Len(t, hill.Segments, 1)
	assert.IsType(t, svgpath.CubicBezier{}, hill.Segments[0])

	roof := shapes[2].(PolygonShape)
	assert.Equal(t, Color("red"), roof.Fill)
	assert.Equal(t, []svgpath.Point{{X: 60, Y: 100}, {X: 100, Y: 60}, {X: 140, Y: 100}}, roof.Vertices)

	door := shapes[3].(PathShape)
	assert.Equal(t, UnknownID, door.ID)
	assert.Equal(t, Black, door.Fill)
	assert.Len(t, door.Segments, 3)
}

func TestReadFileNotFound(t *testing.T) {
	_, err := ReadShapes("testdata/missing.svg", Options{})
	assert.Error(t, err)
}

func TestCharset(t *testing.T) {
	shapes, err := ReadShapes("testdata/latin1.svg", Options{})
	require.NoError(t, err)
	require.Len(t, shapes, 1)
	assert.Equal(t, svgpath.Point{X: 10, Y: 10}, shapes[0].(LineShape).To)
}

func TestGroupByKind(t *testing.T) {
	shapes, err := ReadShapes("testdata/mixed.svg", Options{GroupByKind: true})
	require.NoError(t, err)
	var ids []string
	for _, sh := range shapes {
		ids = append(ids, sh.Identifier())
	}
	assert.Equal(t, []string{"hill", UnknownID, "roof", "base"}, ids)
}

func TestPolygonPoints(t *testing.T) {
	for _, test := range []struct {
		points   string
		expected []svgpath.Point
	}{
		{"0,0 10,x 10,10", []svgpath.Point{{X: 0, Y: 0}, {X: 10, Y: 10}}},
		{"0,0\n\t5,5   1e1,-2", []svgpath.Point{{X: 0, Y: 0}, {X: 5, Y: 5}, {X: 10, Y: -2}}},
		{"0,0 10 10,10", []svgpath.Point{{X: 0, Y: 0}, {X: 10, Y: 10}}},
		{"1,2,3 4,5", []svgpath.Point{{X: 4, Y: 5}}},
		{"a,b c,d", nil},
	} {
		assert.Equal(t, test.expected, parsePoints(test.points), test.points)
	}

	shapes := readString(t, `<svg><polygon points="0,0 10,x 10,10"/></svg>`, Options{})
	require.Len(t, shapes, 1)
	assert.Equal(t, []svgpath.Point{{X: 0, Y: 0}, {X: 10, Y: 10}}, shapes[0].(PolygonShape).Vertices)

	// all tokens malformed: the polygon is kept, without vertices
	shapes = readString(t, `<svg><polygon points="x,y"/></svg>`, Options{})
	require.Len(t, shapes, 1)
	assert.Empty(t, shapes[0].(PolygonShape).Vertices)
}

func TestSkippedElements(t *testing.T) {
	shapes := readString(t, `<svg>
		<polygon/>
		<polygon points=""/>
		<path/>
		<path d=""/>
		<circle cx="5" cy="5" r="2"/>
		<foo:line xmlns:foo="http://example.com/foo" x2="3"/>
	</svg>`, Options{StrictErrorMode, false})
	assert.Empty(t, shapes)
}

func TestBlankAttributes(t *testing.T) {
	// blank but present data is kept, as an empty shape
	shapes := readString(t, `<svg>
		<path d=" " fill="red" id="p"/>
		<polygon points="  " id="q"/>
	</svg>`, Options{StrictErrorMode, false})
	require.Len(t, shapes, 2)
	assert.Equal(t, PathShape{Fill: "red", ID: "p"}, shapes[0])
	assert.Equal(t, PolygonShape{Fill: Black, ID: "q"}, shapes[1])
}

func TestDefaults(t *testing.T) {
	shapes := readString(t, `<svg><line/><polygon points="1,1"/><path d="M0 0 L1 1"/></svg>`, Options{})
	require.Len(t, shapes, 3)
	assert.Equal(t, LineShape{Stroke: Black, ID: UnknownID}, shapes[0])
	for _, sh := range shapes {
		assert.Equal(t, Black, sh.Color())
		assert.Equal(t, UnknownID, sh.Identifier())
	}
}

func TestStyleColor(t *testing.T) {
	shapes := readString(t, `<svg>
		<line x2="1" style="stroke:#ff0000;stroke-width:2"/>
		<line x2="1" stroke="blue" style="stroke:red"/>
		<path d="M0 0 H1" style="fill : rgb(0, 0, 255) ; fill: none"/>
		<path d="M0 0 H1" style="stroke-width:2"/>
	</svg>`, Options{})
	require.Len(t, shapes, 4)
	assert.Equal(t, Color("#ff0000"), shapes[0].Color())
	assert.Equal(t, Color("blue"), shapes[1].Color())
	assert.Equal(t, Color("none"), shapes[2].Color())
	assert.Equal(t, Black, shapes[3].Color())
}

func TestLineUnits(t *testing.T) {
	shapes := readString(t, `<svg><line x1="1.5px" y1="-2" x2=" 3e1 " y2="+4"/></svg>`, Options{})
	require.Len(t, shapes, 1)
	line := shapes[0].(LineShape)
	assert.Equal(t, svgpath.Point{X: 1.5, Y: -2}, line.From)
	assert.Equal(t, svgpath.Point{X: 30, Y: 4}, line.To)
}

const malformedElements = `<svg>
	<path id="bad" d="L 10 10"/>
	<line id="badline" x1="abc"/>
	<line id="good" x2="4" stroke="red"/>
</svg>`

func TestErrorModes(t *testing.T) {
	shapes := readString(t, malformedElements, Options{ErrorMode: IgnoreErrorMode})
	require.Len(t, shapes, 1)
	assert.Equal(t, "good", shapes[0].Identifier())

	var buf bytes.Buffer
	logging.Set(slog.New(slog.NewTextHandler(&buf, nil)))
	defer logging.Set(nil)
	shapes = readString(t, malformedElements, Options{ErrorMode: WarnErrorMode})
	require.Len(t, shapes, 1)
	assert.Equal(t, 2, strings.Count(buf.String(), "skipping malformed svg element"))
	assert.Contains(t, buf.String(), "badline")

	shapes, err := ReadShapesStream(strings.NewReader(malformedElements), Options{ErrorMode: StrictErrorMode})
	assert.ErrorIs(t, err, svgpath.ErrBadPath)
	assert.Empty(t, shapes)
}

func TestParseErrorMode(t *testing.T) {
	for _, mode := range []ErrorMode{IgnoreErrorMode, WarnErrorMode, StrictErrorMode} {
		got, err := ParseErrorMode(mode.String())
		require.NoError(t, err)
		assert.Equal(t, mode, got)
	}
	got, err := ParseErrorMode("")
	assert.NoError(t, err)
	assert.Equal(t, IgnoreErrorMode, got)
	_, err = ParseErrorMode("panic")
	assert.Error(t, err)
}

func TestInvalidDocument(t *testing.T) {
	shapes, err := ReadShapesStream(strings.NewReader(`<svg><line x2="1"></svg>`), Options{})
	assert.Error(t, err)
	assert.Empty(t, shapes)

	shapes, err = ReadShapesStream(strings.NewReader(""), Options{})
	assert.ErrorIs(t, err, ErrEmptyDocument)
	assert.Empty(t, shapes)

	shapes, err = ReadShapesStream(strings.NewReader("<svg/>"), Options{})
	assert.NoError(t, err)
	assert.Empty(t, shapes)
}
