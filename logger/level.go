package logger

import (
	"strings"

	"github.com/pkg/errors"
)

// Levels define log severity.
type Level int

const (
	// LogLevel is the untagged level; its lines carry no [LEVEL] tag.
	LogLevel Level = iota
	// InfoLevel is for informational messages.
	InfoLevel
	// WarnLevel is for warnings. Console output is highlighted in yellow.
	WarnLevel
	// ErrorLevel is for errors. Console output is highlighted in red.
	ErrorLevel
)

// AllLevels returns all supported levels.
func AllLevels() []Level {
	return []Level{LogLevel, InfoLevel, WarnLevel, ErrorLevel}
}

// String returns the upper-cased level name.
func (l Level) String() string {
	switch l {
	case LogLevel:
		return "LOG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// tagged reports whether lines at this level carry a bracketed tag.
func (l Level) tagged() bool {
	return l != LogLevel
}

// ParseLevel parses a level name, case-insensitively.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "LOG":
		return LogLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "WARN", "WARNING":
		return WarnLevel, nil
	case "ERROR":
		return ErrorLevel, nil
	}
	return LogLevel, errors.Errorf("unknown log level %q", s)
}
