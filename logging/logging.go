// Package logging builds the zerolog loggers used by the CLI and the HTTP API.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/rustyeddy/riskcalc/config"
)

// New creates a logger writing to the console and/or a rotating file.
// With neither enabled it writes JSON lines to stderr. If the log directory
// cannot be created the file sink is skipped and the logger reports it.
func New(cfg config.LogConfig) zerolog.Logger {
	return NewWithWriter(cfg, nil)
}

// NewWithWriter is New with the console output redirected to out.
func NewWithWriter(cfg config.LogConfig, out io.Writer) zerolog.Logger {
	if out == nil {
		out = os.Stderr
	}

	var writers []io.Writer
	if cfg.Console {
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
			NoColor:    !isTerminal(out),
		})
	}
	var fileErr error
	if cfg.File && cfg.FilePath != "" {
		if fileErr = os.MkdirAll(filepath.Dir(cfg.FilePath), 0755); fileErr == nil {
			writers = append(writers, &lumberjack.Logger{
				Filename:   cfg.FilePath,
				MaxSize:    cfg.MaxSize,
				MaxBackups: cfg.MaxBackups,
				MaxAge:     cfg.MaxAge,
				Compress:   true,
			})
		}
	}

	var w io.Writer
	switch len(writers) {
	case 0:
		w = out
	case 1:
		w = writers[0]
	default:
		w = zerolog.MultiLevelWriter(writers...)
	}

	l := zerolog.New(w).
		Level(ParseLevel(cfg.Level)).
		With().
		Timestamp().
		Logger()

	if fileErr != nil {
		l.Error().Err(fileErr).Str("file_path", cfg.FilePath).Msg("file logging disabled")
	}
	return l
}

// ParseLevel maps a config level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
