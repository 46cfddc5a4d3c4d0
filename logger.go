package svgturtle

import (
	"log/slog"

	"github.com/benoitkugler/svgturtle/internal/logging"
)

// SetLogger configures the logger used by all the svgturtle packages.
// By default, nothing is logged. Pass nil to restore the default.
//
// Log levels:
//   - [slog.LevelDebug]: one message per drawn shape
//   - [slog.LevelInfo]: summary of a run
//   - [slog.LevelWarn]: skipped elements and shapes, invalid colors
//
// SetLogger is safe for concurrent use.
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	return logging.Logger()
}
