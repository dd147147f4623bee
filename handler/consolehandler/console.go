package consolehandler

import (
	"bytes"
	"io"
	"os"
	"sync"

	"github.com/pkg/errors"

	"github.com/philipp01105/qlog/core"
	"github.com/philipp01105/qlog/formatter"
	"github.com/philipp01105/qlog/handler"
)

// consoleBase contains shared fields and methods for console handlers.
type consoleBase struct {
	writer          io.Writer
	formatter       formatter.Formatter
	bufferFormatter formatter.BufferFormatter
	stats           *handler.Stats
	mu              sync.Mutex // serializes formatting and writes, protects buf
	buf             bytes.Buffer
}

func (b *consoleBase) init(cfg ConsoleConfig) {
	b.writer = cfg.Writer
	b.formatter = cfg.Formatter
	b.stats = handler.NewStats()

	// Cache BufferFormatter so every record reuses buf
	b.bufferFormatter, _ = cfg.Formatter.(formatter.BufferFormatter)
	b.buf.Grow(256)
}

// write formats and writes one record under mu. A panic inside the
// formatter or writer is contained here and reported as an error, so one
// malformed record never takes the caller (or the worker) down.
func (b *consoleBase) write(rec *core.Record) (err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("panic while writing record: %v", r)
		}
		if err != nil {
			b.stats.IncrementFailed()
			return
		}
		b.stats.IncrementProcessed()
	}()

	var data []byte
	if b.bufferFormatter != nil {
		b.buf.Reset()
		if err := b.bufferFormatter.FormatRecord(rec, &b.buf); err != nil {
			return errors.Wrap(err, "format record")
		}
		data = b.buf.Bytes()
	} else {
		data, err = b.formatter.Format(rec)
		if err != nil {
			return errors.Wrap(err, "format record")
		}
	}

	if _, err := b.writer.Write(data); err != nil {
		return errors.Wrap(err, "write record")
	}
	return nil
}

// Stats returns a snapshot of the current statistics
func (b *consoleBase) Stats() handler.Snapshot {
	return b.stats.GetSnapshot()
}

// ConsoleConfig holds configuration for console handler
type ConsoleConfig struct {
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
	// Formatter to use (default: TextFormatter with default Config)
	Formatter formatter.Formatter
	// Async enables the background queue and worker goroutine
	Async bool
}

// applyConsoleDefaults fills in zero-value fields with defaults.
func applyConsoleDefaults(cfg *ConsoleConfig) {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{Output: cfg.Writer})
	}
}

// NewConsoleHandler creates a new console handler.
// Returns a SyncConsoleHandler when Async is false, or an AsyncConsoleHandler
// when Async is true. Both implement Handler, StatsProvider and StateProvider.
func NewConsoleHandler(cfg ConsoleConfig) handler.Handler {
	applyConsoleDefaults(&cfg)
	if cfg.Async {
		return newAsyncConsoleHandler(cfg)
	}
	return newSyncConsoleHandler(cfg)
}

// NewAsyncConsoleHandler creates the asynchronous handler directly.
func NewAsyncConsoleHandler(cfg ConsoleConfig) *AsyncConsoleHandler {
	applyConsoleDefaults(&cfg)
	return newAsyncConsoleHandler(cfg)
}
