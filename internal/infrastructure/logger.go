// Package infrastructure wires the ambient runtime pieces, currently the
// application logger.
package infrastructure

import (
	"io"
	"log/slog"
	"strings"

	"nbsrates/internal/config"
)

// NewLogger builds a slog logger from configuration. It never fails:
// unknown levels fall back to info and unknown formats to text.
func NewLogger(cfg config.LoggingConfig, output io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(output, opts)
	} else {
		handler = slog.NewTextHandler(output, opts)
	}
	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
