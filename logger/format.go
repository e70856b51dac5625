package logger

import (
	"fmt"
	"time"
)

// TimestampLayout is the local wall-clock layout used by DefaultFormatter.
const TimestampLayout = "2006-01-02 15:04:05"

// Formatter maps a message and its level to the exact text written to a sink.
type Formatter func(message string, level Level) string

// DefaultFormatter renders "<timestamp> : [<LEVEL>] : <message>", or
// "<timestamp> : <message>" for LogLevel. The clock is read once per call.
var DefaultFormatter Formatter = NewTimestampFormatter(time.Now)

// NewTimestampFormatter returns the default template over the given clock.
func NewTimestampFormatter(now func() time.Time) Formatter {
	return func(message string, level Level) string {
		ts := now().Local().Format(TimestampLayout)
		if !level.tagged() {
			return fmt.Sprintf("%s : %s", ts, message)
		}
		return fmt.Sprintf("%s : [%s] : %s", ts, level, message)
	}
}
