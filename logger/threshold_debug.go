//go:build qlog_debug

package logger

import "github.com/philipp01105/qlog/core"

const (
	compiledLevel = core.DebugLevel
	defaultLevel  = core.DebugLevel
)
