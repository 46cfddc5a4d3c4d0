package svgdraw

import (
	"errors"
	"fmt"

	"github.com/benoitkugler/svgturtle/svgicon"
	"github.com/benoitkugler/svgturtle/svgpath"
)

// ErrUnknownShape is returned by Emit for a nil or unsupported shape.
var ErrUnknownShape = errors.New("unknown shape kind")

// EmitOptions controls the command streams built by Emit.
type EmitOptions struct {
	// FillPolygons wraps polygons between BeginFill and EndFill.
	FillPolygons bool
}

// Emit returns the pen commands drawing shape.
// The MoveTo targets are in document space: see Commands.Mapped
// to obtain surface coordinates.
// A path with a segment too long to be flattened yields an error
// wrapping svgpath.ErrTooManySamples.
func Emit(shape svgicon.Shape, opts EmitOptions) (Commands, error) {
	switch shape := shape.(type) {
	case svgicon.PathShape:
		return emitPath(shape)
	case svgicon.PolygonShape:
		return emitPolygon(shape, opts.FillPolygons), nil
	case svgicon.LineShape:
		return emitLine(shape), nil
	case nil:
		return nil, ErrUnknownShape
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownShape, shape)
	}
}

// the pen stays down across the segments, even if
// they are not contiguous; it is always raised at the end,
// even for a path without segment
func emitPath(shape svgicon.PathShape) (Commands, error) {
	out := Commands{SetColor{shape.Fill}, PenUp{}}
	started := false
	for i, seg := range shape.Segments {
		points, err := svgpath.Flatten(seg)
		if err != nil {
			return nil, fmt.Errorf("path %s, segment %d: %w", shape.ID, i, err)
		}
		for _, p := range points {
			out = append(out, MoveTo{p})
			if !started {
				out = append(out, PenDown{})
				started = true
			}
		}
	}
	return append(out, PenUp{}), nil
}

func emitPolygon(shape svgicon.PolygonShape, fill bool) Commands {
	out := Commands{SetColor{shape.Fill}}
	if fill {
		out = append(out, BeginFill{})
	}
	if len(shape.Vertices) != 0 {
		first := shape.Vertices[0]
		out = append(out, PenUp{}, MoveTo{first}, PenDown{})
		for _, v := range shape.Vertices[1:] {
			out = append(out, MoveTo{v})
		}
		out = append(out, MoveTo{first})
	}
	if fill {
		out = append(out, EndFill{})
	}
	if len(shape.Vertices) != 0 || !fill {
		out = append(out, PenUp{})
	}
	return out
}

func emitLine(shape svgicon.LineShape) Commands {
	return Commands{
		SetColor{shape.Stroke},
		PenUp{},
		MoveTo{shape.From},
		PenDown{},
		MoveTo{shape.To},
		PenUp{},
	}
}
