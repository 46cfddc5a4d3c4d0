// Provides the extraction of drawable shapes from SVG documents.
// Paths, polygons and lines are read into a list of Shape,
// in document order, which can then be consumed by svgdraw.
package svgicon

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"golang.org/x/net/html/charset"
)

// ErrEmptyDocument is returned when the input has no element at all.
var ErrEmptyDocument = errors.New("invalid svg document: no element found")

// Options controls the extraction.
type Options struct {
	// ErrorMode determines if malformed elements are ignored,
	// logged, or abort the extraction.
	ErrorMode ErrorMode

	// GroupByKind returns all the paths first, then the polygons,
	// then the lines, instead of the interleaved document order.
	// Each group keeps the document order.
	GroupByKind bool
}

// ReadShapesStream reads the shapes from the given io.Reader.
// Only path, polygon and line elements are extracted; other elements
// are ignored.
// If the document can't be parsed, no shape and a non nil error are
// returned: callers may go on with the empty list.
func ReadShapesStream(stream io.Reader, opts Options) ([]Shape, error) {
	cursor := &iconCursor{errorMode: opts.ErrorMode}
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel
	seenTag := false
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				if !seenTag {
					return nil, ErrEmptyDocument
				}
				break
			}
			return nil, fmt.Errorf("invalid svg document: %w", err)
		}
		// Inspect the type of the XML token
		switch se := t.(type) {
		case xml.StartElement:
			seenTag = true
			err = cursor.readStartElement(se)
			if err != nil {
				return nil, err
			}
		}
	}

	shapes := cursor.shapes
	if opts.GroupByKind {
		sort.SliceStable(shapes, func(i, j int) bool { return shapes[i].Kind() < shapes[j].Kind() })
	}
	return shapes, nil
}

// ReadShapes reads the shapes from the named file.
// See ReadShapesStream for details.
func ReadShapes(file string, opts Options) ([]Shape, error) {
	fin, errf := os.Open(file)
	if errf != nil {
		return nil, errf
	}
	defer fin.Close()
	return ReadShapesStream(fin, opts)
}
