package svgturtle

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/benoitkugler/svgturtle/svgdraw"
	"github.com/benoitkugler/svgturtle/svgicon"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// CanvasConfig describes the drawing surface.
type CanvasConfig struct {
	Width      int     `toml:"width" yaml:"width"`
	Height     int     `toml:"height" yaml:"height"`
	LineWidth  float64 `toml:"line_width" yaml:"line_width"`
	Background string  `toml:"background" yaml:"background"` // empty for transparent

	// Fit ignores the scale and offsets of the draw section, and
	// centers the document on the canvas instead.
	Fit    bool    `toml:"fit" yaml:"fit"`
	Margin float64 `toml:"margin" yaml:"margin"`
}

// ExtractConfig controls how shapes are read from the document.
type ExtractConfig struct {
	GroupByKind bool   `toml:"group_by_kind" yaml:"group_by_kind"`
	ErrorMode   string `toml:"error_mode" yaml:"error_mode"` // ignore, warn or strict
}

// Config groups all the settings of a run.
type Config struct {
	Draw    svgdraw.Config `toml:"draw" yaml:"draw"`
	Canvas  CanvasConfig   `toml:"canvas" yaml:"canvas"`
	Extract ExtractConfig  `toml:"extract" yaml:"extract"`
}

// DefaultConfig returns the settings of a fresh turtle screen:
// an 800x800 white canvas, unit scale, filled polygons.
func DefaultConfig() Config {
	return Config{
		Draw: svgdraw.DefaultConfig(),
		Canvas: CanvasConfig{
			Width:      800,
			Height:     800,
			LineWidth:  1,
			Background: "white",
			Margin:     20,
		},
		Extract: ExtractConfig{ErrorMode: svgicon.WarnErrorMode.String()},
	}
}

// LoadConfig reads a TOML (.toml) or YAML (.yaml, .yml) file.
// Keys absent from the file keep their default value.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return cfg, fmt.Errorf("unsupported config format %q", ext)
	}
	if err != nil {
		return cfg, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the consistency of the settings.
func (cfg Config) Validate() error {
	var errs []error
	if cfg.Canvas.Width <= 0 || cfg.Canvas.Height <= 0 {
		errs = append(errs, fmt.Errorf("invalid canvas size %dx%d", cfg.Canvas.Width, cfg.Canvas.Height))
	}
	if cfg.Canvas.LineWidth < 0 {
		errs = append(errs, fmt.Errorf("negative line width %g", cfg.Canvas.LineWidth))
	}
	if cfg.Canvas.Margin < 0 {
		errs = append(errs, fmt.Errorf("negative margin %g", cfg.Canvas.Margin))
	}
	if cfg.Draw.Scale == 0 && !cfg.Canvas.Fit {
		errs = append(errs, errors.New("scale must not be zero"))
	}
	if cfg.Canvas.Background != "" {
		if _, err := svgdraw.ParseColor(svgicon.Color(cfg.Canvas.Background)); err != nil {
			errs = append(errs, fmt.Errorf("invalid background: %w", err))
		}
	}
	if _, err := svgicon.ParseErrorMode(cfg.Extract.ErrorMode); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// ExtractOptions converts the extraction settings,
// which must be valid.
func (cfg Config) ExtractOptions() svgicon.Options {
	mode, _ := svgicon.ParseErrorMode(cfg.Extract.ErrorMode)
	return svgicon.Options{ErrorMode: mode, GroupByKind: cfg.Extract.GroupByKind}
}
