//go:build qlog_warn

package logger

import "github.com/philipp01105/qlog/core"

const (
	compiledLevel = core.WarnLevel
	defaultLevel  = core.WarnLevel
)
