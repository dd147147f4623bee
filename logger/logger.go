package logger

import (
	"fmt"
	"time"

	"github.com/philipp01105/qlog/core"
	"github.com/philipp01105/qlog/handler"
)

// Logger hands out Sinks bound to one handler (immutable)
type Logger struct {
	handler    handler.Handler
	level      core.Level
	callerSkip int
	now        func() time.Time
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	handler    handler.Handler
	level      core.Level
	callerSkip int
	coarse     bool
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		level: core.InfoLevel, // Default level
	}
}

// WithHandler sets the handler
func (b *Builder) WithHandler(h handler.Handler) *Builder {
	b.handler = h
	return b
}

// WithLevel sets the minimum level. It is fixed for the Logger's lifetime.
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// WithCallerSkip skips additional stack frames when resolving the call
// site, for wrappers around the Logger.
func (b *Builder) WithCallerSkip(skip int) *Builder {
	b.callerSkip = skip
	return b
}

// WithCoarseClock stamps records from core.CoarseNow instead of time.Now.
func (b *Builder) WithCoarseClock(enabled bool) *Builder {
	b.coarse = enabled
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	now := time.Now
	if b.coarse {
		core.StartCoarseClock()
		now = core.CoarseNow
	}
	return &Logger{
		handler:    b.handler,
		level:      b.level,
		callerSkip: b.callerSkip,
		now:        now,
	}
}

// Enabled reports whether a call site at level would produce a record.
func (l *Logger) Enabled(level core.Level) bool {
	return l.handler != nil && level.Enabled(l.level)
}

// Level returns the logger's minimum level.
func (l *Logger) Level() core.Level {
	return l.level
}

// Handler returns the handler records are sent to.
func (l *Logger) Handler() handler.Handler {
	return l.handler
}

// at is the single place streams are created. skip counts the frames
// between the user's call site and at.
func (l *Logger) at(level core.Level, skip int) Sink {
	// Level check before any allocation or stack walk
	if !l.Enabled(level) {
		return Nop{}
	}
	t := l.now()
	file, line := core.Caller(skip + 1 + l.callerSkip)
	return newStream(l.handler, level, file, line, t)
}

// Log starts a statement at the given level
func (l *Logger) Log(level core.Level) Sink {
	return l.at(level, 1)
}

// Trace starts a trace statement
func (l *Logger) Trace() Sink {
	return l.at(core.TraceLevel, 1)
}

// Debug starts a debug statement
func (l *Logger) Debug() Sink {
	return l.at(core.DebugLevel, 1)
}

// Info starts an info statement
func (l *Logger) Info() Sink {
	return l.at(core.InfoLevel, 1)
}

// Warn starts a warning statement
func (l *Logger) Warn() Sink {
	return l.at(core.WarnLevel, 1)
}

// Error starts an error statement
func (l *Logger) Error() Sink {
	return l.at(core.ErrorLevel, 1)
}

// Fatal starts a fatal statement. It does not exit the process.
func (l *Logger) Fatal() Sink {
	return l.at(core.FatalLevel, 1)
}

// logf is the shared body of the *f helpers.
func (l *Logger) logf(level core.Level, format string, args []any) {
	if !l.Enabled(level) {
		return
	}
	l.at(level, 2).Append(fmt.Sprintf(format, args...)).Send()
}

// Tracef logs a formatted trace message
func (l *Logger) Tracef(format string, args ...any) {
	l.logf(core.TraceLevel, format, args)
}

// Debugf logs a formatted debug message
func (l *Logger) Debugf(format string, args ...any) {
	l.logf(core.DebugLevel, format, args)
}

// Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...any) {
	l.logf(core.InfoLevel, format, args)
}

// Warnf logs a formatted warning message
func (l *Logger) Warnf(format string, args ...any) {
	l.logf(core.WarnLevel, format, args)
}

// Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...any) {
	l.logf(core.ErrorLevel, format, args)
}

// Fatalf logs a formatted fatal message. It does not exit the process.
func (l *Logger) Fatalf(format string, args ...any) {
	l.logf(core.FatalLevel, format, args)
}

// Close closes the logger's handler, draining anything still queued
func (l *Logger) Close() error {
	if l.handler != nil {
		return l.handler.Close()
	}
	return nil
}
