package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/interlinear/internal/config"
)

// NewLogger builds the process logger from cfg, writes to os.Stderr and
// installs it as the slog default.
//
// Format "json" is for production, "text" adds source positions for
// development. Level is debug, info, warn or error (case-insensitive) and
// defaults to info. Every record carries the build version. Components
// scope it further with With, keyed by their layer.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLogger(os.Stderr, cfg)
	slog.SetDefault(logger)
	return logger
}

func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: strings.EqualFold(cfg.Format, "text"),
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler).With(slog.String("version", Version))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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
