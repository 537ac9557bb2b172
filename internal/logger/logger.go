// Package logger provides the process-wide zerolog logger plus privacy
// helpers for anything user-supplied that ends up in a log line.
package logger

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Log is the shared logger. It is usable before config load; the level
// defaults from LOG_LEVEL so early startup lines respect it too.
var Log zerolog.Logger

func init() {
	zerolog.SetGlobalLevel(parseLevel(os.Getenv("LOG_LEVEL")))

	Log = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Caller().Logger()
}

// SetLevel sets the global log level. Unknown names fall back to info.
func SetLevel(level string) {
	zerolog.SetGlobalLevel(parseLevel(level))
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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

// SetJSON switches to plain JSON output for production log shipping.
func SetJSON() {
	Log = zerolog.New(os.Stdout).With().Timestamp().Logger()
}
