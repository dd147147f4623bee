//go:build qlog_info

package logger

import "github.com/philipp01105/qlog/core"

const (
	compiledLevel = core.InfoLevel
	defaultLevel  = core.InfoLevel
)
