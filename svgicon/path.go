package svgicon

import (
	"fmt"

	"github.com/benoitkugler/svgturtle/svgpath"
)

// This file defines the shapes extracted from a document

// Color is the raw value of a fill or stroke attribute.
// It is not validated, and is passed as it is to the pen.
type Color string

const (
	// Black is used when a shape has no color attribute.
	Black Color = "black"
	// UnknownID is used when a shape has no id attribute.
	UnknownID = "unknown"
)

// Kind identifies the variant of a Shape.
type Kind uint8

const (
	KindPath Kind = iota
	KindPolygon
	KindLine
)

func (k Kind) String() string {
	switch k {
	case KindPath:
		return "path"
	case KindPolygon:
		return "polygon"
	case KindLine:
		return "line"
	default:
		return "<unknown Kind>"
	}
}

// Shape is one of PathShape, PolygonShape or LineShape.
type Shape interface {
	Kind() Kind
	// Identifier returns the id attribute of the element,
	// or UnknownID
	Identifier() string
	// Color returns the fill color for paths and polygons,
	// the stroke color for lines.
	Color() Color

	isShape()
}

// PathShape is a path element, decomposed in curves.
type PathShape struct {
	Segments svgpath.Path
	Fill     Color
	ID       string
}

// PolygonShape is a polygon element; the outline
// is implicitly closed.
type PolygonShape struct {
	Vertices []svgpath.Point
	Fill     Color
	ID       string
}

// LineShape is a line element.
type LineShape struct {
	From, To svgpath.Point
	Stroke   Color
	ID       string
}

func (PathShape) isShape()    {}
func (PolygonShape) isShape() {}
func (LineShape) isShape()    {}

func (PathShape) Kind() Kind    { return KindPath }
func (PolygonShape) Kind() Kind { return KindPolygon }
func (LineShape) Kind() Kind    { return KindLine }

func (s PathShape) Identifier() string    { return s.ID }
func (s PolygonShape) Identifier() string { return s.ID }
func (s LineShape) Identifier() string    { return s.ID }

func (s PathShape) Color() Color    { return s.Fill }
func (s PolygonShape) Color() Color { return s.Fill }
func (s LineShape) Color() Color    { return s.Stroke }

func (s PathShape) String() string {
	return fmt.Sprintf("path %s (fill %s): %s", s.ID, s.Fill, s.Segments)
}

func (s PolygonShape) String() string {
	return fmt.Sprintf("polygon %s (fill %s): %v", s.ID, s.Fill, s.Vertices)
}

func (s LineShape) String() string {
	return fmt.Sprintf("line %s (stroke %s): %s -> %s", s.ID, s.Stroke, s.From, s.To)
}
