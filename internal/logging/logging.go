// Package logging configures the process-wide zerolog logger and hands
// out component-scoped sub-loggers.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Format selects the log output encoding.
type Format string

const (
	// FormatConsole is human-readable output for interactive use.
	FormatConsole Format = "console"
	// FormatJSON is structured output for machine consumption.
	FormatJSON Format = "json"
)

var (
	mu   sync.Mutex
	root zerolog.Logger = zerolog.New(io.Discard)
)

// Setup initializes the root logger. level accepts the zerolog level
// names ("debug", "info", "warn", "error"); unknown levels fall back to
// info. Safe to call more than once; the last call wins.
func Setup(level string, format Format, out io.Writer) {
	if out == nil {
		out = os.Stderr
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	var w io.Writer = out
	if format != FormatJSON {
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	}

	mu.Lock()
	root = zerolog.New(w).Level(lvl).With().Timestamp().Logger()
	mu.Unlock()
}

// Component returns a sub-logger tagged with the component name.
func Component(name string) zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return root.With().Str("component", name).Logger()
}
