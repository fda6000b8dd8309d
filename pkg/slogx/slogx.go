package slogx

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

type Config struct {
	Service string
	Version string
	Env     string // e.g. "dev", "prod"
	Level   string // e.g. "debug", "info", "warn", "error"
	Format  string // e.g. "json", "text"

	// Output defaults to os.Stdout.
	Output io.Writer
}

// New returns a configured slog.Logger instance and installs it as the
// default logger. Text format in dev is colourised with tint.
func New(cfg Config) *slog.Logger {
	var handler slog.Handler

	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}

	level := parseLevel(cfg.Level)
	dev := cfg.Env == "dev"

	switch strings.ToLower(cfg.Format) {
	case "text":
		if dev {
			handler = tint.NewHandler(out, &tint.Options{
				Level:      level,
				AddSource:  true,
				TimeFormat: time.Kitchen,
				NoColor:    out != os.Stdout,
			})
		} else {
			handler = slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})
		}
	default:
		handler = slog.NewJSONHandler(out, &slog.HandlerOptions{
			AddSource: dev, // Add source info in dev mode
			Level:     level,
		})
	}

	logger := slog.New(handler).With(
		"service", cfg.Service,
		"version", cfg.Version,
		"env", cfg.Env,
	)

	slog.SetDefault(logger)
	return logger
}

// parseLevel maps a string to slog.Level.
func parseLevel(lvl string) slog.Level {
	switch strings.ToLower(lvl) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
