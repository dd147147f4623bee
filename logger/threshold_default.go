//go:build !qlog_trace && !qlog_debug && !qlog_info && !qlog_warn && !qlog_error && !qlog_fatal && !qlog_off

package logger

import "github.com/philipp01105/qlog/core"

// Without a qlog_* build tag nothing is compiled out, and the default
// logger enables nothing unless QLOG_LEVEL or --log-level says otherwise.
const (
	compiledLevel = core.TraceLevel
	defaultLevel  = core.DisabledLevel
)
