// Package logger builds the zerolog loggers used by the application and by the
// pgx query tracer.
package logger

import (
	"io"
	"os"
	"time"

	pgxzero "github.com/jackc/pgx-zerolog"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"

	"academicevents/internal/config"
)

// New returns a logger writing to w. Unknown levels fall back to info.
func New(cfg config.Log, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	if cfg.Format != "json" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// NewDefault is the logger used before the configuration is known.
func NewDefault() zerolog.Logger {
	return New(config.Log{Level: "info", Format: "console"}, os.Stderr)
}

// NewQueryTracer returns a pgx tracer logging every statement through log, or nil
// when the logger is not at debug level or below.
func NewQueryTracer(log zerolog.Logger) *tracelog.TraceLog {
	level := log.GetLevel()
	if level > zerolog.DebugLevel {
		return nil
	}
	traceLevel := tracelog.LogLevelDebug
	if level == zerolog.TraceLevel {
		traceLevel = tracelog.LogLevelTrace
	}
	return &tracelog.TraceLog{
		Logger:   pgxzero.NewLogger(log.With().Str("component", "pgx").Logger()),
		LogLevel: traceLevel,
	}
}
