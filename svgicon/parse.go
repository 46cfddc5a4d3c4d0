package svgicon

import (
	"encoding/xml"
	"errors"
	"strings"

	"github.com/benoitkugler/svgturtle/internal/logging"
)

// ErrorMode sets how the parser reacts to malformed elements
type ErrorMode uint8

const (
	// IgnoreErrorMode silently drops malformed elements
	IgnoreErrorMode ErrorMode = iota
	// WarnErrorMode drops malformed elements and logs a warning
	WarnErrorMode
	// StrictErrorMode aborts the extraction on the first malformed element
	StrictErrorMode
)

func (m ErrorMode) String() string {
	switch m {
	case IgnoreErrorMode:
		return "ignore"
	case WarnErrorMode:
		return "warn"
	case StrictErrorMode:
		return "strict"
	default:
		return "<unknown ErrorMode>"
	}
}

// ParseErrorMode is the inverse of ErrorMode.String
func ParseErrorMode(s string) (ErrorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "ignore":
		return IgnoreErrorMode, nil
	case "warn":
		return WarnErrorMode, nil
	case "strict":
		return StrictErrorMode, nil
	default:
		return 0, errors.New("unknown error mode " + s)
	}
}

const svgNamespace = "http://www.w3.org/2000/svg"

// iconCursor is used while parsing SVG files
type iconCursor struct {
	errorMode ErrorMode
	shapes    []Shape
}

// elementAttrs gives access to the attributes of one element
type elementAttrs []xml.Attr

// get returns the value of the attribute `name`, without namespace
func (attrs elementAttrs) get(name string) (string, bool) {
	for _, attr := range attrs {
		if attr.Name.Local == name && attr.Name.Space == "" {
			return attr.Value, true
		}
	}
	return "", false
}

// id returns the id attribute or UnknownID
func (attrs elementAttrs) id() string {
	if id, ok := attrs.get("id"); ok {
		return id
	}
	return UnknownID
}

// color resolves the property `name` (fill or stroke), looking first
// for an attribute, then for a declaration in the style attribute.
// Black is returned if the property is not set.
func (attrs elementAttrs) color(name string) Color {
	if v, ok := attrs.get(name); ok {
		return Color(v)
	}
	if style, ok := attrs.get("style"); ok {
		if v, ok := readStyleAttr(style, name); ok {
			return Color(v)
		}
	}
	return Black
}

// readStyleAttr looks for the declaration `k` in a style attribute,
// made of 'k:v' pairs separated by ';'. The last declaration wins.
func readStyleAttr(style, k string) (v string, ok bool) {
	for _, pair := range strings.Split(style, ";") {
		kv := strings.SplitN(pair, ":", 2)
		if len(kv) != 2 {
			continue
		}
		if strings.ToLower(strings.TrimSpace(kv[0])) == k {
			v, ok = strings.TrimSpace(kv[1]), true
		}
	}
	return v, ok
}

// handleError applies the error mode on a malformed element
func (c *iconCursor) handleError(err error) error {
	switch c.errorMode {
	case StrictErrorMode:
		return err
	case WarnErrorMode:
		logging.Logger().Warn("skipping malformed svg element", "error", err)
	}
	return nil
}

func (c *iconCursor) readStartElement(se xml.StartElement) error {
	if se.Name.Space != "" && se.Name.Space != svgNamespace {
		return nil
	}
	df, ok := drawFuncs[se.Name.Local]
	if !ok { // not a drawable shape
		return nil
	}
	shape, err := df(elementAttrs(se.Attr))
	if err != nil {
		return c.handleError(err)
	}
	if shape != nil {
		c.shapes = append(c.shapes, shape)
	}
	return nil
}
