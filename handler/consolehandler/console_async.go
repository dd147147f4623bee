package consolehandler

import (
	"sync"

	"go.uber.org/atomic"
	"go.uber.org/multierr"

	"github.com/philipp01105/qlog/core"
	"github.com/philipp01105/qlog/handler"
)

// AsyncConsoleHandler queues records and writes them from one background
// goroutine. The queue is unbounded, so Handle never drops and never
// waits for I/O while the handler is running.
//
// Records are written in exactly the order Handle acquired the queue
// lock. Close is drain-complete: every record accepted before Close
// returns is written before it returns. Records handed to Handle after
// Close are written synchronously on the caller's goroutine and counted
// as late.
type AsyncConsoleHandler struct {
	consoleBase

	qmu     sync.Mutex // guards queue, running and stopped
	cond    *sync.Cond
	queue   []*core.Record
	running bool
	stopped bool

	state     atomic.Int32
	done      chan struct{} // closed when the worker returns
	closeOnce sync.Once
	closeErr  error
}

// newAsyncConsoleHandler creates a new asynchronous console handler and
// starts its worker.
func newAsyncConsoleHandler(cfg ConsoleConfig) *AsyncConsoleHandler {
	h := &AsyncConsoleHandler{
		running: true,
		done:    make(chan struct{}),
	}
	h.init(cfg)
	h.cond = sync.NewCond(&h.qmu)
	h.state.Store(int32(handler.StateRunning))

	go h.run()

	return h
}

// Handle appends rec to the tail of the queue and wakes the worker.
func (h *AsyncConsoleHandler) Handle(rec *core.Record) error {
	h.stats.IncrementSubmitted()

	h.qmu.Lock()
	if h.stopped {
		h.qmu.Unlock()
		h.stats.IncrementLate()
		return h.write(rec)
	}
	h.queue = append(h.queue, rec)
	h.qmu.Unlock()

	h.cond.Signal()
	return nil
}

// run is the worker loop. It swaps the whole queue out under the lock and
// formats and writes outside it, so producers only ever contend on the
// slice append.
func (h *AsyncConsoleHandler) run() {
	defer close(h.done)

	var batch []*core.Record
	for {
		h.qmu.Lock()
		for h.running && len(h.queue) == 0 {
			h.cond.Wait()
		}
		if !h.running && len(h.queue) == 0 {
			h.qmu.Unlock()
			return
		}
		batch, h.queue = h.queue, batch[:0]
		h.qmu.Unlock()

		// Errors are already counted in stats; the worker keeps going.
		_ = h.writeBatch(batch)
		clear(batch)
	}
}

// writeBatch writes records in order and returns every failure.
func (h *AsyncConsoleHandler) writeBatch(batch []*core.Record) error {
	var errs error
	for _, rec := range batch {
		errs = multierr.Append(errs, h.write(rec))
	}
	return errs
}

// Close stops the worker and synchronously drains whatever is still
// queued. It is safe to call more than once; later calls return the
// result of the first.
func (h *AsyncConsoleHandler) Close() error {
	h.closeOnce.Do(func() {
		h.qmu.Lock()
		h.running = false
		h.state.Store(int32(handler.StateDraining))
		h.qmu.Unlock()
		h.cond.Broadcast()

		<-h.done

		// Records enqueued between the worker's last drain and its exit.
		// stopped is only set once the queue is observed empty, so late
		// synchronous writers can never overtake a queued record.
		for {
			h.qmu.Lock()
			if len(h.queue) == 0 {
				h.stopped = true
				h.state.Store(int32(handler.StateStopped))
				h.qmu.Unlock()
				break
			}
			batch := h.queue
			h.queue = nil
			h.qmu.Unlock()

			h.closeErr = multierr.Append(h.closeErr, h.writeBatch(batch))
		}
	})
	return h.closeErr
}

// State returns the current lifecycle state.
func (h *AsyncConsoleHandler) State() handler.State {
	return handler.State(h.state.Load())
}
