// Package handler provides the Handler interface and the shared pieces
// every handler implementation uses: lifecycle State and Stats counters.
//
// A Handler receives finished core.Record values and is responsible for
// turning them into output. Built-in implementations live in
// sub-packages:
//
//   - consolehandler writes formatted records to stdout (or any io.Writer).
//     Its async variant is the heart of qlog: an unbounded FIFO queue
//     drained by a single background goroutine, with a Close that blocks
//     until every accepted record has been written.
//   - sloghandler, zaphandler and logrhandler adapt log/slog, zap and logr
//     front ends so that records they produce flow into a Handler.
//
// Handlers never drop records. Stats counts how many were submitted,
// processed, failed and written late (after Close) so tests and
// operators can verify that.
package handler
