package svgdraw

import (
	"github.com/benoitkugler/svgturtle/svgicon"
	"github.com/benoitkugler/svgturtle/svgpath"
)

// Recorder is a Pen storing the commands it receives.
// The zero value is ready to use.
type Recorder struct {
	Commands Commands
}

var _ Pen = (*Recorder)(nil)

func (r *Recorder) SetColor(c svgicon.Color) { r.Commands = append(r.Commands, SetColor{c}) }
func (r *Recorder) PenUp()                   { r.Commands = append(r.Commands, PenUp{}) }
func (r *Recorder) PenDown()                 { r.Commands = append(r.Commands, PenDown{}) }
func (r *Recorder) MoveTo(p svgpath.Point)   { r.Commands = append(r.Commands, MoveTo{p}) }
func (r *Recorder) BeginFill()               { r.Commands = append(r.Commands, BeginFill{}) }
func (r *Recorder) EndFill()                 { r.Commands = append(r.Commands, EndFill{}) }

// Reset drops the recorded commands.
func (r *Recorder) Reset() { r.Commands = r.Commands[:0] }
