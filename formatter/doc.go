// Package formatter defines how log records are rendered into
// terminal-ready lines.
//
// It exposes two interfaces: Formatter, which returns a []byte, and
// BufferFormatter, which formats into a caller-owned bytes.Buffer.
// Handlers check for BufferFormatter at construction time and prefer it,
// so the single consumer goroutine can reuse one buffer for every record.
//
// TextFormatter is the built-in implementation. A line looks like
//
//	[2026-10-18] [13:04:05.123456] [WARN ] [main.go:42]             disk almost full
//
// The location column is padded so message bodies align. The span from
// the severity tag to the end of the message is coloured per severity,
// and colour codes are emitted unconditionally unless Config.Color says
// otherwise.
//
// Buffers larger than 64 KiB are not returned to the pool to prevent
// a single large log line from permanently inflating memory usage.
package formatter
