package telemetry

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// LoggingConfig selects the log level and output format.
type LoggingConfig struct {
	// Level is one of trace, debug, info, warn, error (default: info).
	Level string

	// Format is "console" or "json" (default: console).
	Format string

	// Output receives log lines (default: os.Stderr).
	Output io.Writer
}

// NewLogger builds a logger from cfg.
func NewLogger(cfg LoggingConfig) (zerolog.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), err
	}

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	switch cfg.Format {
	case "", "console":
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	case "json":
	default:
		return zerolog.Nop(), fmt.Errorf("unknown log format %q", cfg.Format)
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}

// ParseLevel converts a level name to zerolog.Level. The empty string is
// info.
func ParseLevel(level string) (zerolog.Level, error) {
	switch strings.ToLower(level) {
	case "trace":
		return zerolog.TraceLevel, nil
	case "debug":
		return zerolog.DebugLevel, nil
	case "", "info":
		return zerolog.InfoLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.InfoLevel, fmt.Errorf("unknown log level %q", level)
	}
}
