package formatter

import (
	"bytes"
	"io"
	"sync"
	"time"

	"github.com/philipp01105/qlog/core"
)

// Formatter defines the interface for log formatters
type Formatter interface {
	// Format renders a record into a newline-terminated line
	Format(rec *core.Record) ([]byte, error)
}

// BufferFormatter is an optional interface that formatters can implement
// to format directly into a caller-provided buffer, avoiding internal
// buffer pool overhead.
type BufferFormatter interface {
	// FormatRecord appends the rendered record to buf.
	FormatRecord(rec *core.Record, buf *bytes.Buffer) error
}

// DefaultLocationWidth is the column width the bracketed location is
// padded to when Config.LocationWidth is zero.
const DefaultLocationWidth = 24

// Config holds common formatter configuration
type Config struct {
	// Color selects when ANSI colour sequences are emitted (default: ColorAlways)
	Color ColorMode
	// LocationWidth is the padded width of the "[file:line]" column
	// (default: DefaultLocationWidth, negative disables padding)
	LocationWidth int
	// Location is the time zone timestamps are rendered in (default: time.Local)
	Location *time.Location
	// Output is the writer ColorAuto inspects (default: os.Stdout). Writers
	// without a file descriptor never count as terminals.
	Output io.Writer
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
