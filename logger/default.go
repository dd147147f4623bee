package logger

import (
	"os"
	"sync"
	"sync/atomic"

	"github.com/mattn/go-colorable"
	"github.com/spf13/pflag"

	"github.com/philipp01105/qlog/core"
	"github.com/philipp01105/qlog/formatter"
	"github.com/philipp01105/qlog/handler"
	"github.com/philipp01105/qlog/handler/consolehandler"
)

// EnvLevel names the environment variable read when the default logger
// is constructed.
const EnvLevel = "QLOG_LEVEL"

// FlagLevel is the flag registered by BindFlags.
const FlagLevel = "log-level"

var (
	defaultOnce    sync.Once
	defaultLogger  *Logger
	defaultHandler atomic.Pointer[consolehandler.AsyncConsoleHandler]

	flagMu    sync.Mutex
	flagSet   *pflag.FlagSet
	flagLevel = defaultLevel
)

// BindFlags registers --log-level on fs. The flag is consulted once, when
// the default logger is first used, so BindFlags must be called and the
// flags parsed before that.
func BindFlags(fs *pflag.FlagSet) {
	flagMu.Lock()
	defer flagMu.Unlock()
	fs.Var(&flagLevel, FlagLevel, "minimum level of the default logger (trace, debug, info, warn, error, fatal, off)")
	flagSet = fs
}

// resolveLevel picks the startup level: a changed flag wins over the
// environment, which wins over the build default. The result is never
// below what was compiled in.
func resolveLevel(fs *pflag.FlagSet, flagValue Level, env string) Level {
	level := defaultLevel
	switch {
	case fs != nil && fs.Changed(FlagLevel):
		level = flagValue
	case env != "":
		// Unparseable values fall back to the build default
		if l, err := core.ParseLevel(env); err == nil {
			level = l
		}
	}
	if level < compiledLevel {
		level = compiledLevel
	}
	return level
}

func newDefault() *Logger {
	flagMu.Lock()
	level := resolveLevel(flagSet, flagLevel, os.Getenv(EnvLevel))
	flagMu.Unlock()

	h := consolehandler.NewAsyncConsoleHandler(consolehandler.ConsoleConfig{
		Writer:    colorable.NewColorableStdout(),
		Formatter: formatter.NewTextFormatter(formatter.Config{}),
	})
	defaultHandler.Store(h)

	return NewBuilder().
		WithHandler(h).
		WithLevel(level).
		Build()
}

// Default returns the process-wide logger, constructing it on first use.
func Default() *Logger {
	defaultOnce.Do(func() {
		defaultLogger = newDefault()
	})
	return defaultLogger
}

// Shutdown drains the default logger and stops its worker. It is a no-op
// when the default logger was never used. Statements issued after
// Shutdown are still printed, synchronously.
func Shutdown() error {
	h := defaultHandler.Load()
	if h == nil {
		return nil
	}
	return h.Close()
}

// DefaultState reports the lifecycle state of the default logger.
func DefaultState() handler.State {
	h := defaultHandler.Load()
	if h == nil {
		return handler.StateUninitialized
	}
	return h.State()
}

// Package-level call sites. Each compares its level against the compiled
// floor first, so statements below it compile down to Nop{}.

// Trace starts a trace statement on the default logger
func Trace() Sink {
	if core.TraceLevel < compiledLevel {
		return Nop{}
	}
	return Default().at(core.TraceLevel, 1)
}

// Debug starts a debug statement on the default logger
func Debug() Sink {
	if core.DebugLevel < compiledLevel {
		return Nop{}
	}
	return Default().at(core.DebugLevel, 1)
}

// Info starts an info statement on the default logger
func Info() Sink {
	if core.InfoLevel < compiledLevel {
		return Nop{}
	}
	return Default().at(core.InfoLevel, 1)
}

// Warn starts a warning statement on the default logger
func Warn() Sink {
	if core.WarnLevel < compiledLevel {
		return Nop{}
	}
	return Default().at(core.WarnLevel, 1)
}

// Error starts an error statement on the default logger
func Error() Sink {
	if core.ErrorLevel < compiledLevel {
		return Nop{}
	}
	return Default().at(core.ErrorLevel, 1)
}

// Fatal starts a fatal statement on the default logger. It does not exit.
func Fatal() Sink {
	if core.FatalLevel < compiledLevel {
		return Nop{}
	}
	return Default().at(core.FatalLevel, 1)
}

// Tracef logs a formatted trace message using the default logger
func Tracef(format string, args ...any) {
	if core.TraceLevel < compiledLevel {
		return
	}
	Default().logf(core.TraceLevel, format, args)
}

// Debugf logs a formatted debug message using the default logger
func Debugf(format string, args ...any) {
	if core.DebugLevel < compiledLevel {
		return
	}
	Default().logf(core.DebugLevel, format, args)
}

// Infof logs a formatted info message using the default logger
func Infof(format string, args ...any) {
	if core.InfoLevel < compiledLevel {
		return
	}
	Default().logf(core.InfoLevel, format, args)
}

// Warnf logs a formatted warning message using the default logger
func Warnf(format string, args ...any) {
	if core.WarnLevel < compiledLevel {
		return
	}
	Default().logf(core.WarnLevel, format, args)
}

// Errorf logs a formatted error message using the default logger
func Errorf(format string, args ...any) {
	if core.ErrorLevel < compiledLevel {
		return
	}
	Default().logf(core.ErrorLevel, format, args)
}

// Fatalf logs a formatted fatal message using the default logger. It does not exit.
func Fatalf(format string, args ...any) {
	if core.FatalLevel < compiledLevel {
		return
	}
	Default().logf(core.FatalLevel, format, args)
}
