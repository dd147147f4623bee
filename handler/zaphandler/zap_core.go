// Package zaphandler provides a zapcore.Core backed by a qlog Handler, so
// zap loggers print through the qlog pipeline.
package zaphandler

import (
	"sort"

	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/qlog/core"
	"github.com/philipp01105/qlog/handler"
)

// Core implements zapcore.Core. Fields are flattened into the message as
// trailing key=value pairs in key order.
type Core struct {
	handler handler.Handler
	level   core.Level
	fields  []zapcore.Field
}

// NewCore creates a zapcore.Core wrapping h. Entries below level are
// discarded.
func NewCore(h handler.Handler, level core.Level) *Core {
	return &Core{handler: h, level: level}
}

// Enabled implements zapcore.LevelEnabler.
func (c *Core) Enabled(lvl zapcore.Level) bool {
	return zapLevelToCore(lvl).Enabled(c.level)
}

// With returns a Core carrying additional fields.
func (c *Core) With(fields []zapcore.Field) zapcore.Core {
	merged := make([]zapcore.Field, 0, len(c.fields)+len(fields))
	merged = append(merged, c.fields...)
	merged = append(merged, fields...)
	return &Core{handler: c.handler, level: c.level, fields: merged}
}

// Check adds the core to ce when the entry level is enabled.
func (c *Core) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write renders the entry and hands it to the wrapped handler. A stack
// captured by zap.AddStacktrace follows the message on its own lines.
func (c *Core) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	msg := make([]byte, 0, len(ent.Message)+64)
	if ent.LoggerName != "" {
		msg = append(msg, ent.LoggerName...)
		msg = append(msg, ": "...)
	}
	msg = append(msg, ent.Message...)
	msg = appendFields(msg, c.fields, fields)
	if ent.Stack != "" {
		msg = append(msg, '\n')
		msg = append(msg, ent.Stack...)
	}

	rec := &core.Record{
		Time:    ent.Time,
		Level:   zapLevelToCore(ent.Level),
		Message: string(msg),
	}
	if ent.Caller.Defined {
		rec.File = ent.Caller.File
		rec.Line = ent.Caller.Line
	}
	return c.handler.Handle(rec)
}

// Sync is a no-op: the handler owns flushing, which happens on Close.
func (c *Core) Sync() error {
	return nil
}

func appendFields(dst []byte, sets ...[]zapcore.Field) []byte {
	enc := zapcore.NewMapObjectEncoder()
	n := 0
	for _, fields := range sets {
		for _, f := range fields {
			f.AddTo(enc)
			n++
		}
	}
	if n == 0 {
		return dst
	}

	keys := make([]string, 0, len(enc.Fields))
	for k := range enc.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		dst = core.AppendPair(dst, k, enc.Fields[k])
	}
	return dst
}

// zapLevelToCore maps zap levels; DPanic and Panic map to Error, Fatal to
// Fatal. Zap itself still panics or exits for those levels.
func zapLevelToCore(lvl zapcore.Level) core.Level {
	switch {
	case lvl >= zapcore.FatalLevel:
		return core.FatalLevel
	case lvl >= zapcore.ErrorLevel:
		return core.ErrorLevel
	case lvl >= zapcore.WarnLevel:
		return core.WarnLevel
	case lvl >= zapcore.InfoLevel:
		return core.InfoLevel
	case lvl >= zapcore.DebugLevel:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}
