//go:build qlog_error

package logger

import "github.com/philipp01105/qlog/core"

const (
	compiledLevel = core.ErrorLevel
	defaultLevel  = core.ErrorLevel
)
