package config

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger builds the process logger described by cfg, writing to w.
//
// The "console" format uses zerolog.ConsoleWriter; "json" writes one JSON
// object per line. Every record carries component=fwpath. An unparsable
// level falls back to warn.
func NewLogger(cfg LogConfig, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.WarnLevel
	}

	out := w
	if cfg.Format == "console" {
		out = zerolog.ConsoleWriter{
			Out:        w,
			NoColor:    !cfg.Color,
			TimeFormat: time.TimeOnly,
		}
	}

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("component", "fwpath").
		Logger()
}
