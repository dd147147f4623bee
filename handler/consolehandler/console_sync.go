package consolehandler

import (
	"go.uber.org/atomic"

	"github.com/philipp01105/qlog/core"
	"github.com/philipp01105/qlog/handler"
)

// SyncConsoleHandler formats and writes each record on the caller's
// goroutine. It has no queue, so Close has nothing to drain.
type SyncConsoleHandler struct {
	consoleBase
	closed atomic.Bool
}

// newSyncConsoleHandler creates a new synchronous console handler.
func newSyncConsoleHandler(cfg ConsoleConfig) *SyncConsoleHandler {
	h := &SyncConsoleHandler{}
	h.init(cfg)
	return h
}

// Handle processes a record synchronously.
func (h *SyncConsoleHandler) Handle(rec *core.Record) error {
	h.stats.IncrementSubmitted()
	if h.closed.Load() {
		h.stats.IncrementLate()
	}
	return h.write(rec)
}

// Close closes the handler. Records handled afterwards are still written.
func (h *SyncConsoleHandler) Close() error {
	h.closed.Store(true)
	return nil
}

// State returns StateRunning until Close, then StateStopped.
func (h *SyncConsoleHandler) State() handler.State {
	if h.closed.Load() {
		return handler.StateStopped
	}
	return handler.StateRunning
}
