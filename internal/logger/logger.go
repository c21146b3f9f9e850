package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

var (
	base        zerolog.Logger
	initialized bool

	// output is where log lines go. Stdout carries conversion results, so
	// logs stay on stderr.
	output io.Writer = os.Stderr
)

// Init configures the global JSON logger.
//
// defaultLevel is used when LOG_LEVEL is not set; the convert command passes
// "error" so that stderr carries nothing but diagnostics, the API server
// passes "info".
//
// Environment variables (optional):
//   - LOG_LEVEL: debug|info|warn|error
//   - LOG_PRETTY: true|false (default: false)
func Init(defaultLevel string) {
	level := parseLevel(getenv("LOG_LEVEL", defaultLevel))
	pretty := strings.EqualFold(getenv("LOG_PRETTY", "false"), "true")

	zerolog.TimeFieldFormat = time.RFC3339Nano
	w := output
	if pretty {
		w = zerolog.ConsoleWriter{Out: output, TimeFormat: time.RFC3339}
	}
	base = zerolog.New(w).With().Timestamp().Logger().Level(level)
	initialized = true
}

// SetOutput redirects log output; the next Init picks it up.
func SetOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	output = w
}

// L returns the global logger, initializing it at info level if Init was
// never called.
func L() *zerolog.Logger {
	if !initialized {
		Init("info")
	}
	return &base
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error", "err":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}
