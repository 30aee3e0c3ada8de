// Package logging configures the zerolog logger shared by all modes.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"
)

// Config controls logger initialization.
type Config struct {
	Format    string // "json", "console", or "auto"
	Level     string // "debug", "info", "warn", "error"
	Component string // optional component name
}

var isTerminalFn = term.IsTerminal

// Init configures zerolog globals and returns the base logger. Output goes
// to stderr so reports and JSON on stdout stay clean.
func Init(cfg Config) zerolog.Logger {
	return New(os.Stderr, cfg)
}

// New builds a logger writing to w.
func New(w io.Writer, cfg Config) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	writer := selectWriter(w, cfg.Format)
	ctx := zerolog.New(writer).Level(parseLevel(cfg.Level)).With().Timestamp()
	if c := strings.TrimSpace(cfg.Component); c != "" {
		ctx = ctx.Str("component", c)
	}
	logger := ctx.Logger()
	log.Logger = logger
	return logger
}

func selectWriter(w io.Writer, format string) io.Writer {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return w
	case "console":
		return zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	default:
		if f, ok := w.(*os.File); ok && isTerminalFn(int(f.Fd())) {
			return zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
		}
		return w
	}
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
