// ABOUTME: Builds the zerolog logger used throughout a pipeline run
// ABOUTME: Console output on stderr plus an optional log file, no globals
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options configures logger construction.
type Options struct {
	Level   string // trace|debug|info|warn|error, default info
	LogFile string // optional file that also receives all events
	Quiet   bool   // raises the console threshold to warn
}

// New builds a logger from the options. The returned closer releases the
// log file, if one was opened; it is safe to call even on error paths.
// The logger is a value handed into the pipeline, not process-wide state,
// so concurrent runs can each carry their own.
func New(opts Options) (zerolog.Logger, func(), error) {
	level := parseLevel(opts.Level)
	if opts.Quiet && level < zerolog.WarnLevel {
		level = zerolog.WarnLevel
	}

	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}

	var w io.Writer = console
	closer := func() {}
	if opts.LogFile != "" {
		f, err := os.OpenFile(opts.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Nop(), closer, err
		}
		w = zerolog.MultiLevelWriter(console, f)
		closer = func() { _ = f.Close() }
	}

	log := zerolog.New(w).Level(level).With().Timestamp().Logger()
	return log, closer, nil
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "", "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
