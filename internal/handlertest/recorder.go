// Package handlertest provides handlers for tests.
package handlertest

import (
	"sync"

	"github.com/philipp01105/qlog/core"
	"github.com/philipp01105/qlog/handler"
)

// Recorder is a Handler that keeps every record it receives. It is safe
// for concurrent use.
type Recorder struct {
	mu      sync.Mutex
	records []core.Record
	stats   handler.Stats
	closed  bool
}

// Handle stores a copy of rec.
func (r *Recorder) Handle(rec *core.Record) error {
	r.stats.IncrementSubmitted()
	r.mu.Lock()
	r.records = append(r.records, *rec)
	if r.closed {
		r.stats.IncrementLate()
	}
	r.mu.Unlock()
	r.stats.IncrementProcessed()
	return nil
}

// Close marks the recorder closed. Later records are still kept.
func (r *Recorder) Close() error {
	r.mu.Lock()
	r.closed = true
	r.mu.Unlock()
	return nil
}

// Records returns a copy of everything recorded so far, in arrival order.
func (r *Recorder) Records() []core.Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]core.Record, len(r.records))
	copy(out, r.records)
	return out
}

// Messages returns the Message of every recorded record.
func (r *Recorder) Messages() []string {
	recs := r.Records()
	out := make([]string, len(recs))
	for i, rec := range recs {
		out[i] = rec.Message
	}
	return out
}

// Stats returns a snapshot of the recorder's counters.
func (r *Recorder) Stats() handler.Snapshot {
	return r.stats.GetSnapshot()
}
