// Package logrhandler provides a logr.LogSink backed by a qlog Handler.
//
// Any library that accepts a logr.Logger (controller-runtime, klog via
// klog.SetLogger, ...) can then print through the qlog pipeline:
//
//	log := logr.New(logrhandler.NewSink(h, core.InfoLevel))
package logrhandler

import (
	"fmt"
	"time"

	"github.com/go-logr/logr"

	"github.com/philipp01105/qlog/core"
	"github.com/philipp01105/qlog/handler"
)

// Sink implements logr.LogSink and logr.CallDepthLogSink.
//
// V(0) maps to Info, V(1) to Debug and V(2) and above to Trace. Error
// calls map to Error regardless of verbosity.
type Sink struct {
	handler   handler.Handler
	level     core.Level
	name      string
	values    []byte // pre-rendered " key=value" pairs
	callDepth int
}

var (
	_ logr.LogSink          = (*Sink)(nil)
	_ logr.CallDepthLogSink = (*Sink)(nil)
)

// NewSink creates a LogSink wrapping h. Records below level are discarded.
func NewSink(h handler.Handler, level core.Level) *Sink {
	return &Sink{handler: h, level: level}
}

// Init receives the call depth of the logr front end.
func (s *Sink) Init(info logr.RuntimeInfo) {
	s.callDepth = info.CallDepth
}

// Enabled reports whether the given verbosity passes the configured level.
func (s *Sink) Enabled(v int) bool {
	return verbosityToCore(v).Enabled(s.level)
}

// Info logs a non-error message.
func (s *Sink) Info(v int, msg string, keysAndValues ...any) {
	s.log(verbosityToCore(v), msg, nil, keysAndValues)
}

// Error logs an error with the given message.
func (s *Sink) Error(err error, msg string, keysAndValues ...any) {
	if !core.ErrorLevel.Enabled(s.level) {
		return
	}
	s.log(core.ErrorLevel, msg, err, keysAndValues)
}

// WithValues returns a sink carrying additional key/value pairs.
func (s *Sink) WithValues(keysAndValues ...any) logr.LogSink {
	c := s.clone()
	c.values = appendKeysAndValues(c.values, keysAndValues)
	return c
}

// WithName returns a sink whose messages are prefixed with name.
func (s *Sink) WithName(name string) logr.LogSink {
	c := s.clone()
	if c.name == "" {
		c.name = name
	} else {
		c.name += "/" + name
	}
	return c
}

// WithCallDepth returns a sink that skips depth more frames when
// resolving the caller location.
func (s *Sink) WithCallDepth(depth int) logr.LogSink {
	c := s.clone()
	c.callDepth += depth
	return c
}

func (s *Sink) clone() *Sink {
	c := *s
	c.values = append([]byte(nil), s.values...)
	return &c
}

// log is called directly from Info or Error, so the logr caller sits
// callDepth+2 frames above it.
func (s *Sink) log(level core.Level, msg string, err error, keysAndValues []any) {
	file, line := core.Caller(s.callDepth + 2)
	now := time.Now()

	buf := make([]byte, 0, len(s.name)+len(msg)+len(s.values)+32)
	if s.name != "" {
		buf = append(buf, s.name...)
		buf = append(buf, ": "...)
	}
	buf = append(buf, msg...)
	if err != nil {
		buf = core.AppendPair(buf, "error", err)
	}
	buf = append(buf, s.values...)
	buf = appendKeysAndValues(buf, keysAndValues)

	_ = s.handler.Handle(&core.Record{
		Time:    now,
		Level:   level,
		File:    file,
		Line:    line,
		Message: string(buf),
	})
}

// appendKeysAndValues renders logr's alternating key/value slice. A
// dangling key gets the value "<missing>".
func appendKeysAndValues(dst []byte, kv []any) []byte {
	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			key = fmt.Sprint(kv[i])
		}
		var v any = "<missing>"
		if i+1 < len(kv) {
			v = kv[i+1]
		}
		dst = core.AppendPair(dst, key, v)
	}
	return dst
}

func verbosityToCore(v int) core.Level {
	switch {
	case v <= 0:
		return core.InfoLevel
	case v == 1:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}
