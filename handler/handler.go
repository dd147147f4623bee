package handler

import (
	"github.com/philipp01105/qlog/core"
)

// Handler defines the interface for log handlers
type Handler interface {
	// Handle takes ownership of a finished record
	Handle(rec *core.Record) error
	// Close flushes pending records and releases resources
	Close() error
}

// StatsProvider is implemented by handlers that keep Stats.
type StatsProvider interface {
	Stats() Snapshot
}

// StateProvider is implemented by handlers with a lifecycle.
type StateProvider interface {
	State() State
}

// State is a position in the handler lifecycle. Transitions only move
// forward: Uninitialized, Running, Draining, Stopped.
type State int32

const (
	// StateUninitialized means the handler has not been constructed yet
	StateUninitialized State = iota
	// StateRunning means records are accepted and processed in the background
	StateRunning
	// StateDraining means Close has started and the worker is finishing the queue
	StateDraining
	// StateStopped means Close has returned; late records are written synchronously
	StateStopped
)

// String returns the string representation of the state
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "Uninitialized"
	case StateRunning:
		return "Running"
	case StateDraining:
		return "Draining"
	case StateStopped:
		return "Stopped"
	default:
		return "Unknown"
	}
}
