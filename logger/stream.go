package logger

import (
	"fmt"
	"sync"
	"time"

	"github.com/philipp01105/qlog/core"
	"github.com/philipp01105/qlog/handler"
)

// Sink is what every call site receives: a live *Stream when the level
// is enabled, Nop otherwise. Call sites chain Append calls and end the
// statement with Send, and compile the same way whichever one they got.
type Sink interface {
	// Append serializes v into the pending message and returns the sink.
	Append(v any) Sink
	// Appendf appends fmt.Sprintf(format, args...) and returns the sink.
	Appendf(format string, args ...any) Sink
	// Send finishes the statement.
	Send()
}

// Stream accumulates one log statement. Severity, source location and
// timestamp are captured when the stream is created; Send turns the
// accumulated text into a core.Record and hands it to the handler
// without waiting for it to be printed.
//
// A Stream belongs to the goroutine that created it. Send detaches it
// from the handler, so later Sends on the same Stream do nothing and
// later Appends never reach another statement.
type Stream struct {
	buf   *[]byte
	h     handler.Handler
	level core.Level
	file  string
	line  int
	t     time.Time
}

// Only the accumulators are pooled. A Stream is never reused, so a
// stale handle cannot reach another statement's state.
var bufPool = sync.Pool{
	New: func() interface{} {
		b := make([]byte, 0, 128)
		return &b
	},
}

func newStream(h handler.Handler, level core.Level, file string, line int, t time.Time) *Stream {
	buf := bufPool.Get().(*[]byte)
	*buf = (*buf)[:0]
	return &Stream{
		buf:   buf,
		h:     h,
		level: level,
		file:  file,
		line:  line,
		t:     t,
	}
}

func putBuf(buf *[]byte) {
	if cap(*buf) > 64*1024 { // Don't keep very large buffers
		return
	}
	bufPool.Put(buf)
}

// Append serializes v into the stream's private buffer.
func (s *Stream) Append(v any) Sink {
	if s.h == nil {
		return s
	}
	*s.buf = core.AppendValue(*s.buf, v)
	return s
}

// Appendf appends a formatted string.
func (s *Stream) Appendf(format string, args ...any) Sink {
	if s.h == nil {
		return s
	}
	*s.buf = fmt.Appendf(*s.buf, format, args...)
	return s
}

// Send submits the finished record. Only the first Send on a stream
// submits anything, so `defer s.Send()` is safe next to an explicit one.
func (s *Stream) Send() {
	h := s.h
	if h == nil {
		return
	}
	rec := &core.Record{
		Time:    s.t,
		Level:   s.level,
		File:    s.file,
		Line:    s.line,
		Message: string(*s.buf),
	}
	buf := s.buf
	s.h = nil
	s.buf = nil
	putBuf(buf)
	// Best effort: a failing handler must not fail the caller.
	_ = h.Handle(rec)
}

// Level returns the severity the stream was created at.
func (s *Stream) Level() core.Level {
	return s.level
}

// Nop is the disabled sink. It discards everything appended to it and
// never reaches a handler.
type Nop struct{}

// Append discards v.
func (n Nop) Append(any) Sink { return n }

// Appendf discards its arguments.
func (n Nop) Appendf(string, ...any) Sink { return n }

// Send does nothing.
func (Nop) Send() {}
