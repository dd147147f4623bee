package sloghandler

import (
	"context"
	"log/slog"
	"runtime"

	"github.com/philipp01105/qlog/core"
	"github.com/philipp01105/qlog/handler"
)

// SlogHandler is an adapter that implements slog.Handler using a qlog Handler.
type SlogHandler struct {
	handler handler.Handler
	level   core.Level
	attrs   []byte // pre-rendered " key=value" pairs from WithAttrs
	group   string
}

// NewSlogHandler creates a new slog.Handler adapter wrapping the given Handler.
// Records below level are discarded.
func NewSlogHandler(h handler.Handler, level core.Level) *SlogHandler {
	return &SlogHandler{
		handler: h,
		level:   level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return slogLevelToCore(level).Enabled(s.level)
}

// Handle converts a slog.Record to a core.Record and passes it to the wrapped handler.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	msg := make([]byte, 0, len(record.Message)+len(s.attrs)+32)
	msg = append(msg, record.Message...)
	msg = append(msg, s.attrs...)
	record.Attrs(func(a slog.Attr) bool {
		msg = appendAttr(msg, s.group, a)
		return true
	})

	rec := &core.Record{
		Time:    record.Time,
		Level:   slogLevelToCore(record.Level),
		Message: string(msg),
	}
	if record.PC != 0 {
		frame, _ := runtime.CallersFrames([]uintptr{record.PC}).Next()
		rec.File = frame.File
		rec.Line = frame.Line
	}

	return s.handler.Handle(rec)
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]byte, len(s.attrs), len(s.attrs)+16*len(attrs))
	copy(newAttrs, s.attrs)
	for _, a := range attrs {
		newAttrs = appendAttr(newAttrs, s.group, a)
	}
	return &SlogHandler{
		handler: s.handler,
		level:   s.level,
		attrs:   newAttrs,
		group:   s.group,
	}
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	newGroup := name
	if s.group != "" {
		newGroup = s.group + "." + name
	}
	return &SlogHandler{
		handler: s.handler,
		level:   s.level,
		attrs:   s.attrs,
		group:   newGroup,
	}
}

// slogLevelToCore converts a slog.Level to a core.Level. Levels below
// Debug map to Trace and levels at least four above Error map to Fatal.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError+4:
		return core.FatalLevel
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	case level >= slog.LevelDebug:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}

// appendAttr renders a as " key=value", prefixing the group and
// flattening nested groups.
func appendAttr(dst []byte, group string, a slog.Attr) []byte {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return dst
	}

	key := a.Key
	if group != "" && key != "" {
		key = group + "." + key
	} else if key == "" {
		key = group
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			dst = appendAttr(dst, key, ga)
		}
		return dst
	}
	return core.AppendPair(dst, key, a.Value.Any())
}
