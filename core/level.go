package core

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownLevel is returned by ParseLevel for unrecognised names.
var ErrUnknownLevel = errors.New("unknown log level")

// Level is the verbosity of a log line. Higher values are more verbose.
type Level int8

const (
	// NoneLevel disables all output when used as a threshold
	NoneLevel Level = iota
	// ErrorLevel for failures
	ErrorLevel
	// WarningLevel for recoverable anomalies
	WarningLevel
	// InfoLevel for general informational messages
	InfoLevel
	// DebugLevel for detailed debugging information
	DebugLevel
)

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case NoneLevel:
		return "NONE"
	case ErrorLevel:
		return "ERROR"
	case WarningLevel:
		return "WARNING"
	case InfoLevel:
		return "INFO"
	case DebugLevel:
		return "DEBUG"
	default:
		return "UNKNOWN"
	}
}

// pre-padded labels so the column after the level stays aligned
var labels = [...]string{
	NoneLevel:    "None   ",
	ErrorLevel:   "Error  ",
	WarningLevel: "Warning",
	InfoLevel:    "Info   ",
	DebugLevel:   "Debug  ",
}

// Label returns the fixed-width label written into log lines.
func (l Level) Label() string {
	if l >= 0 && int(l) < len(labels) {
		return labels[l]
	}
	return "Unknown"
}

// Enabled reports whether a message at level msg passes a threshold of l.
// Messages outside ErrorLevel..DebugLevel never pass.
func (l Level) Enabled(msg Level) bool {
	return msg > NoneLevel && msg <= DebugLevel && msg <= l
}

// ParseLevel converts a string to a Level
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "NONE", "OFF":
		return NoneLevel, nil
	case "ERROR":
		return ErrorLevel, nil
	case "WARN", "WARNING":
		return WarningLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "DEBUG":
		return DebugLevel, nil
	default:
		return NoneLevel, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(l.String())), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
