// Package logging builds the charmbracelet/log logger shared by the store and the hosts.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Options holds configuration for the logger.
type Options struct {
	Level log.Level
	// File, when set, receives all log output (appended).
	File string
	// Fallback receives output when File is empty. Nil discards it;
	// the board owns the terminal, so it passes nil.
	Fallback io.Writer
	Prefix   string
}

// DefaultOptions returns default options: warn level, discard output.
func DefaultOptions() Options {
	return Options{
		Level:  log.WarnLevel,
		Prefix: "tasklist",
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New builds a logger. The returned closer releases the log file, if any.
func New(opts Options) (*log.Logger, io.Closer, error) {
	var (
		w      io.Writer = io.Discard
		closer io.Closer = nopCloser{}
		stamp  bool
	)
	switch {
	case opts.File != "":
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer, stamp = f, f, true
	case opts.Fallback != nil:
		w = opts.Fallback
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           opts.Level,
		Formatter:       log.TextFormatter,
		ReportTimestamp: stamp,
		Prefix:          opts.Prefix,
	})
	return logger, closer, nil
}
