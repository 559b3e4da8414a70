// Package logging configures structured logging for the CLI. It wraps
// zerolog with a small Config surface (level, format, optional file
// output) and the context plumbing the rest of the code uses to pick up
// the active logger.
package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// Config controls how the process logger is built.
type Config struct {
	// Level is a zerolog level name ("debug", "info", "warn", ...).
	// Unparseable values fall back to info.
	Level string

	// Format selects "console" (human-readable, the default) or "json".
	Format string

	// File, when set, receives a JSON copy of every event in addition to
	// the console/stderr output.
	File string
}

// New builds a logger from cfg. The returned closer releases the log file
// handle when file output is enabled and is a no-op otherwise.
func New(cfg Config) (zerolog.Logger, io.Closer, error) {
	lvl, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		lvl = zerolog.InfoLevel
	}

	var console io.Writer = zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	if cfg.Format == "json" {
		console = os.Stderr
	}

	writers := []io.Writer{console}
	closer := io.Closer(nopCloser{})

	if cfg.File != "" {
		if dir := filepath.Dir(cfg.File); dir != "." {
			if mkErr := os.MkdirAll(dir, 0o750); mkErr != nil {
				return zerolog.Nop(), closer, fmt.Errorf("creating log directory: %w", mkErr)
			}
		}
		f, openErr := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
		if openErr != nil {
			return zerolog.Nop(), closer, fmt.Errorf("opening log file: %w", openErr)
		}
		writers = append(writers, f)
		closer = f
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(lvl).
		With().
		Timestamp().
		Logger()

	return logger, closer, nil
}

// ComponentLogger derives a child logger tagged with a component name.
func ComponentLogger(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}

// FromContext returns the logger stored in ctx, or a disabled logger when
// none was attached.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// nopCloser satisfies io.Closer when no file handle is held.
type nopCloser struct{}

func (nopCloser) Close() error { return nil }
