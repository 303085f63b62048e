package policy

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// Reporter receives violation messages as they are discovered during a
// scan. Implementations must be safe to call once per violator; the
// engine never batches.
type Reporter interface {
	Report(prefix, message string)
}

// WriterReporter writes violation messages to an io.Writer, one per
// line, prefixed.
type WriterReporter struct {
	w io.Writer
}

// NewWriterReporter returns a Reporter writing to w.
func NewWriterReporter(w io.Writer) *WriterReporter {
	return &WriterReporter{w: w}
}

// Report writes the prefixed message followed by a newline.
func (r *WriterReporter) Report(prefix, message string) {
	fmt.Fprintf(r.w, "%s%s\n", prefix, message)
}

// LogReporter emits violation messages through a zerolog logger at warn
// level.
type LogReporter struct {
	logger zerolog.Logger
}

// NewLogReporter returns a Reporter logging through logger.
func NewLogReporter(logger zerolog.Logger) *LogReporter {
	return &LogReporter{
		logger: logger.With().Str("component", "violation-reporter").Logger(),
	}
}

// Report logs the message with the prefix as a structured field.
func (r *LogReporter) Report(prefix, message string) {
	r.logger.Warn().Str("prefix", prefix).Msg(message)
}
