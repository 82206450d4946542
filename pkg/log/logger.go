// Package log provides structured JSON logging for higgs-eda.
//
// Logging is built on the standard log/slog package. The default handler
// emits JSON records to stderr and is wrapped so that errors carrying
// cockroachdb/errors stack traces are logged with a stacktrace attribute.
package log

import (
	"fmt"
	"log/slog"
	"os"
)

// SetupLogger installs the default slog logger for the process.
func SetupLogger(loglevel string) {
	ops := slog.HandlerOptions{
		Level: ToLogLevel(loglevel),
	}
	handler := slog.NewJSONHandler(os.Stderr, &ops)
	errFmtHandler := WrapByErrFmtHandler(handler)
	slog.SetDefault(slog.New(errFmtHandler))
}

// ToLogLevel converts a level name to a slog.Level.
func ToLogLevel(level string) slog.Level {
	switch level {
	case "info":
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		panic(fmt.Sprintf("invalid log level :%s", level))
	}
}

// ValidLevel reports whether level is an accepted log level name.
func ValidLevel(level string) bool {
	switch level {
	case "info", "debug", "warn", "error":
		return true
	}
	return false
}

const (
	ErrAttrKey        = "error"
	StacktraceAttrKey = "stacktrace"
)

// ErrAttr is a wrapper to pass err to slog.
func ErrAttr(err error) slog.Attr {
	return slog.Any(ErrAttrKey, err)
}
