package log

import (
	"bytes"
	"log/slog"
)

// NewTestLogger returns an slog.Logger that writes JSON records into the
// returned buffer. Tests use it to assert on emitted log attributes without
// touching the process-wide default logger.
func NewTestLogger(level slog.Level) (*slog.Logger, *bytes.Buffer) {
	buffer := &bytes.Buffer{}
	handler := slog.NewJSONHandler(buffer, &slog.HandlerOptions{Level: level})
	return slog.New(WrapByErrFmtHandler(handler)), buffer
}
