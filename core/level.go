package core

import (
	"strings"

	"github.com/pkg/errors"
)

// Level represents the severity level of a log record
type Level int8

const (
	// TraceLevel for very fine-grained diagnostics
	TraceLevel Level = iota
	// DebugLevel for detailed debugging information
	DebugLevel
	// InfoLevel for general informational messages
	InfoLevel
	// WarnLevel for warning messages
	WarnLevel
	// ErrorLevel for error messages
	ErrorLevel
	// FatalLevel for fatal messages. It carries no implicit exit.
	FatalLevel
	// DisabledLevel is the threshold that enables nothing (default)
	DisabledLevel
)

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case TraceLevel:
		return "TRACE"
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	case DisabledLevel:
		return "DISABLED"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether l is one of the six record severities.
func (l Level) Valid() bool {
	return l >= TraceLevel && l <= FatalLevel
}

// Enabled reports whether a record at level l passes the threshold min.
func (l Level) Enabled(min Level) bool {
	return l.Valid() && l >= min
}

// ParseLevel converts a configuration name to a threshold Level.
//
// The recognized names are all (alias trace), debug, info, warn (alias
// warning), error, fatal and disabled (aliases none, off). The empty
// string selects DisabledLevel.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "all", "trace":
		return TraceLevel, nil
	case "debug":
		return DebugLevel, nil
	case "info":
		return InfoLevel, nil
	case "warn", "warning":
		return WarnLevel, nil
	case "error":
		return ErrorLevel, nil
	case "fatal":
		return FatalLevel, nil
	case "", "disabled", "none", "off":
		return DisabledLevel, nil
	default:
		return DisabledLevel, errors.Errorf("unknown log level %q", s)
	}
}

// Set implements pflag.Value.
func (l *Level) Set(s string) error {
	lvl, err := ParseLevel(s)
	if err != nil {
		return err
	}
	*l = lvl
	return nil
}

// Type implements pflag.Value.
func (l *Level) Type() string {
	return "level"
}
