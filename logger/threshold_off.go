//go:build qlog_off

package logger

import "github.com/philipp01105/qlog/core"

const (
	compiledLevel = core.DisabledLevel
	defaultLevel  = core.DisabledLevel
)
