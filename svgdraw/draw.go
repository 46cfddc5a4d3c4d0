// Given the shapes extracted from an SVG document, implements how to
// draw them with a pen.
// Each shape is converted to a stream of pen commands, which is
// replayed on a Pen, such as a rasterizer to output .png images or
// a pdf writer.
package svgdraw

import (
	"github.com/benoitkugler/svgturtle/internal/logging"
	"github.com/benoitkugler/svgturtle/svgicon"
)

// Config is applied identically to every shape of a run.
type Config struct {
	Scale   float64 `toml:"scale" yaml:"scale"`
	OffsetX float64 `toml:"offset_x" yaml:"offset_x"`
	OffsetY float64 `toml:"offset_y" yaml:"offset_y"`
	// FillPolygons is false to only stroke polygon outlines.
	FillPolygons bool `toml:"fill_polygons" yaml:"fill_polygons"`
}

// DefaultConfig returns a unit scale, no offset, and filled polygons.
func DefaultConfig() Config {
	return Config{Scale: 1, FillPolygons: true}
}

// Transform returns the coordinate mapping of the config.
func (cfg Config) Transform() Transform {
	return Transform{Scale: cfg.Scale, OffsetX: cfg.OffsetX, OffsetY: cfg.OffsetY}
}

// Summary reports the outcome of a run.
type Summary struct {
	Processed int // shapes drawn
	Skipped   int // shapes which could not be drawn
}

// Replay maps the commands with t and applies them on pen, in order.
func Replay(cmds Commands, pen Pen, t Transform) {
	for _, cmd := range cmds {
		if m, ok := cmd.(MoveTo); ok {
			cmd = MoveTo{t.Apply(m.To)}
		}
		cmd.apply(pen)
	}
}

// Run draws the shapes in order on pen.
// Shapes which can't be converted are logged and skipped;
// Run never aborts.
func Run(shapes []svgicon.Shape, pen Pen, cfg Config) Summary {
	logger := logging.Logger()
	t := cfg.Transform()
	opts := EmitOptions{FillPolygons: cfg.FillPolygons}
	var sum Summary
	for i, shape := range shapes {
		cmds, err := Emit(shape, opts)
		if err != nil {
			logger.Warn("skipping shape", "index", i, "error", err)
			sum.Skipped++
			continue
		}
		logger.Debug("drawing element", "id", shape.Identifier(), "kind", shape.Kind(), "color", shape.Color())
		Replay(cmds, pen, t)
		sum.Processed++
	}
	logger.Info("drawing complete", "processed", sum.Processed, "skipped", sum.Skipped)
	return sum
}
