//go:build qlog_trace

package logger

import "github.com/philipp01105/qlog/core"

const (
	compiledLevel = core.TraceLevel
	defaultLevel  = core.TraceLevel
)
