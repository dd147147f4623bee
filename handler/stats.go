package handler

import (
	"go.uber.org/atomic"
)

// Stats tracks handler statistics
type Stats struct {
	// SubmittedTotal counts records handed to Handle
	SubmittedTotal atomic.Uint64
	// ProcessedTotal counts records formatted and written successfully
	ProcessedTotal atomic.Uint64
	// FailedTotal counts records whose formatting or write failed
	FailedTotal atomic.Uint64
	// LateTotal counts records submitted after Close and written synchronously
	LateTotal atomic.Uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementSubmitted atomically increments the submitted counter
func (s *Stats) IncrementSubmitted() {
	s.SubmittedTotal.Inc()
}

// IncrementProcessed atomically increments the processed counter
func (s *Stats) IncrementProcessed() {
	s.ProcessedTotal.Inc()
}

// IncrementFailed atomically increments the failed counter
func (s *Stats) IncrementFailed() {
	s.FailedTotal.Inc()
}

// IncrementLate atomically increments the late counter
func (s *Stats) IncrementLate() {
	s.LateTotal.Inc()
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	s.SubmittedTotal.Store(0)
	s.ProcessedTotal.Store(0)
	s.FailedTotal.Store(0)
	s.LateTotal.Store(0)
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	SubmittedTotal uint64
	ProcessedTotal uint64
	FailedTotal    uint64
	LateTotal      uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		SubmittedTotal: s.SubmittedTotal.Load(),
		ProcessedTotal: s.ProcessedTotal.Load(),
		FailedTotal:    s.FailedTotal.Load(),
		LateTotal:      s.LateTotal.Load(),
	}
}

// Pending returns how many submitted records have not been written or
// failed yet.
func (s Snapshot) Pending() uint64 {
	done := s.ProcessedTotal + s.FailedTotal
	if done > s.SubmittedTotal {
		return 0
	}
	return s.SubmittedTotal - done
}
