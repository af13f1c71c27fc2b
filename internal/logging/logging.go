// Package logging builds the diagnostic logger tada reports non-fatal
// failures to. Diagnostics are for operators; users never see them in the UI.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/tada/internal/config"
)

// Options holds configuration for the diagnostic logger.
type Options struct {
	Level string
	// File, when set, receives log lines (appended). Otherwise Fallback does.
	File     string
	Fallback io.Writer
}

// Logger wraps *log.Logger with the file it may own.
type Logger struct {
	*log.Logger
	closer io.Closer
	Path   string
}

// New creates a leveled logger with the "tada" prefix.
func New(opts Options) (*Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	var (
		w      io.Writer = opts.Fallback
		closer io.Closer
	)
	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, f
	}
	if w == nil {
		w = os.Stderr
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          "tada",
		ReportTimestamp: closer != nil,
		TimeFormat:      time.RFC3339,
	})
	return &Logger{Logger: logger, closer: closer, Path: opts.File}, nil
}

// FromConfig builds the logger for a command. Interactive sessions own the
// terminal, so they log to a file even when none is configured.
func FromConfig(cfg config.Log, interactive bool) (*Logger, error) {
	file := cfg.File
	if file == "" && interactive {
		file = config.DefaultLogFile()
	}
	return New(Options{Level: cfg.Level, File: file, Fallback: os.Stderr})
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return &Logger{Logger: log.New(io.Discard)}
}

// ParseLevel accepts debug, info, warn, error and fatal. Empty means info.
func ParseLevel(s string) (log.Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return log.InfoLevel, nil
	}
	if s == "warning" {
		s = "warn"
	}
	level, err := log.ParseLevel(s)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("log level: %w", err)
	}
	return level, nil
}

// Close closes the log file, if the logger opened one.
func (l *Logger) Close() error {
	if l == nil || l.closer == nil {
		return nil
	}
	return l.closer.Close()
}
