//go:build qlog_fatal

package logger

import "github.com/philipp01105/qlog/core"

const (
	compiledLevel = core.FatalLevel
	defaultLevel  = core.FatalLevel
)
