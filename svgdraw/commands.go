package svgdraw

import (
	"fmt"
	"strings"

	"github.com/benoitkugler/svgturtle/svgicon"
	"github.com/benoitkugler/svgturtle/svgpath"
)

// Pen is a stateful drawing surface, which can be raised,
// lowered, moved and colored, and which may accumulate fills.
// Points are given in surface space (Y up).
type Pen interface {
	SetColor(c svgicon.Color)
	PenUp()
	PenDown()
	// MoveTo moves the pen to p, drawing a line if the pen is down.
	MoveTo(p svgpath.Point)
	// BeginFill starts recording the outline of a region to fill.
	BeginFill()
	// EndFill fills the region recorded since BeginFill.
	EndFill()
}

// Command is one pen operation. It is one of
// SetColor, PenUp, PenDown, MoveTo, BeginFill, EndFill.
type Command interface {
	fmt.Stringer

	// apply calls the corresponding method on the pen
	apply(pen Pen)
}

type SetColor struct {
	Color svgicon.Color
}

type PenUp struct{}

type PenDown struct{}

type MoveTo struct {
	To svgpath.Point
}

type BeginFill struct{}

type EndFill struct{}

func (c SetColor) apply(pen Pen) { pen.SetColor(c.Color) }
func (PenUp) apply(pen Pen)      { pen.PenUp() }
func (PenDown) apply(pen Pen)    { pen.PenDown() }
func (c MoveTo) apply(pen Pen)   { pen.MoveTo(c.To) }
func (BeginFill) apply(pen Pen)  { pen.BeginFill() }
func (EndFill) apply(pen Pen)    { pen.EndFill() }

func (c SetColor) String() string { return fmt.Sprintf("color %s", c.Color) }
func (PenUp) String() string      { return "up" }
func (PenDown) String() string    { return "down" }
func (c MoveTo) String() string   { return fmt.Sprintf("goto %.3f %.3f", c.To.X, c.To.Y) }
func (BeginFill) String() string  { return "begin_fill" }
func (EndFill) String() string    { return "end_fill" }

// Commands is a stream of pen operations.
type Commands []Command

// String returns one command per line.
func (cmds Commands) String() string {
	var sb strings.Builder
	for _, cmd := range cmds {
		sb.WriteString(cmd.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Moves returns the targets of the MoveTo commands, in order.
func (cmds Commands) Moves() []svgpath.Point {
	var out []svgpath.Point
	for _, cmd := range cmds {
		if m, ok := cmd.(MoveTo); ok {
			out = append(out, m.To)
		}
	}
	return out
}

// Mapped returns a copy of cmds where the MoveTo
// targets are mapped to surface space.
func (cmds Commands) Mapped(t Transform) Commands {
	out := make(Commands, len(cmds))
	for i, cmd := range cmds {
		if m, ok := cmd.(MoveTo); ok {
			cmd = MoveTo{To: t.Apply(m.To)}
		}
		out[i] = cmd
	}
	return out
}
