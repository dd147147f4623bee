// Package core defines the shared types used across qlog.
//
// It provides the Level type for severity filtering, the Record type that
// represents a single finished log event, and AppendValue, which renders
// any appended value into a stream's private byte buffer.
//
// A Record is immutable once built. It is produced exactly once, when a
// stream is sent, and from then on it is owned by whichever handler
// received it. Records are deliberately not pooled: the async handler
// keeps them in its queue long after the producing call returned.
//
// AppendValue writes the common scalar types (strings, integers, floats,
// bools, time.Time and time.Duration) with strconv-style Append functions
// and only falls back to fmt for everything else.
package core
