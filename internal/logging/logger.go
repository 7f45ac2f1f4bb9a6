// Package logging builds zerolog loggers and carries them through context.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
}

// FileConfig controls the optional log file next to stderr output.
type FileConfig struct {
	Enabled       bool
	Dir           string
	WriteToStderr bool
}

const (
	logFileName = "tlpui.log"
	logDirPerm  = 0o755
	logFilePerm = 0o644
)

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// New creates a new zerolog logger with the given configuration
func New(cfg Config) zerolog.Logger {
	return newWithWriter(cfg, os.Stderr)
}

func newWithWriter(cfg Config, out io.Writer) zerolog.Logger {
	output := out
	if cfg.Format != "json" {
		output = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: cfg.TimeFormat,
			NoColor:    out != os.Stderr,
		}
	}

	return zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// NewWithFile creates a logger that also appends to a file in fc.Dir.
// The returned cleanup closes the file and is always safe to call.
func NewWithFile(cfg Config, fc FileConfig) (zerolog.Logger, func(), error) {
	noop := func() {}
	if !fc.Enabled || fc.Dir == "" {
		if !fc.WriteToStderr {
			return zerolog.Nop(), noop, nil
		}
		return New(cfg), noop, nil
	}

	if err := os.MkdirAll(fc.Dir, logDirPerm); err != nil {
		return New(cfg), noop, err
	}
	f, err := os.OpenFile(filepath.Join(fc.Dir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePerm)
	if err != nil {
		return New(cfg), noop, err
	}

	fileCfg := cfg
	fileCfg.Format = "json"
	fileLogger := newWithWriter(fileCfg, f)

	logger := fileLogger
	if fc.WriteToStderr {
		logger = zerolog.New(zerolog.MultiLevelWriter(
			fileLogger,
			zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: cfg.TimeFormat},
		)).Level(cfg.Level).With().Timestamp().Logger()
	}

	return logger, func() { _ = f.Close() }, nil
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}

// NewFromConfigValues creates a logger from plain config strings.
func NewFromConfigValues(level, format string) zerolog.Logger {
	cfg := DefaultConfig()
	cfg.Level = ParseLevel(level)
	switch format {
	case "json", "console":
		cfg.Format = format
	case "text":
		cfg.Format = "console"
	}
	return New(cfg)
}

// NewFromEnv creates a logger based on environment variables
// TLPUI_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// TLPUI_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	return NewFromConfigValues(os.Getenv("TLPUI_LOG_LEVEL"), os.Getenv("TLPUI_LOG_FORMAT"))
}
