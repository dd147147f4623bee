package logger

import (
	"github.com/philipp01105/qlog/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	TraceLevel    = core.TraceLevel
	DebugLevel    = core.DebugLevel
	InfoLevel     = core.InfoLevel
	WarnLevel     = core.WarnLevel
	ErrorLevel    = core.ErrorLevel
	FatalLevel    = core.FatalLevel
	DisabledLevel = core.DisabledLevel
)

// ParseLevel converts a configuration name to a Level.
// See core.ParseLevel for the recognized names.
func ParseLevel(s string) (Level, error) {
	return core.ParseLevel(s)
}
