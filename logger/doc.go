// Package logger is the public API of qlog. Most users only need to
// import this package.
//
// Every log statement starts at a call site that returns a Sink, gets
// values appended to it, and ends with Send:
//
//	logger.Info().Append("listening on ").Append(port).Send()
//	logger.Warn().Appendf("retry %d of %d", n, max).Send()
//
// When the level is enabled the Sink is a *Stream that has already
// captured the severity, the caller's file and line, and the time. Send
// hands the finished record to the handler and returns without waiting
// for it to be printed. When the level is disabled the Sink is Nop, and
// nothing is formatted, timestamped or queued.
//
// The package-level call sites use a process-wide logger that is built
// on first use: an asynchronous console handler writing coloured text
// to stdout. Its level is fixed at construction from, in order, the
// --log-level flag (see BindFlags), the QLOG_LEVEL environment variable,
// and the build default. Call Shutdown before exiting so every queued
// record reaches stdout:
//
//	func main() {
//	    defer logger.Shutdown()
//	    logger.Info().Append("ready").Send()
//	}
//
// # Build tags
//
// The tags qlog_trace, qlog_debug, qlog_info, qlog_warn, qlog_error,
// qlog_fatal and qlog_off set both the compiled floor and the default
// level. Package-level call sites below the floor compare two constants
// and compile down to Nop. Without a tag nothing is compiled out and the
// default logger prints nothing unless configured at startup.
//
// # Explicit loggers
//
// A Logger built with NewBuilder is immutable. Its level is checked
// once per statement at run time:
//
//	log := logger.NewBuilder().
//	    WithHandler(myHandler).
//	    WithLevel(logger.DebugLevel).
//	    Build()
//	defer log.Close()
//
// Fatal statements never exit the process.
package logger
