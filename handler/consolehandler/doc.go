// Package consolehandler provides console output handlers that write
// formatted log records to any io.Writer (default: os.Stdout).
//
// Handlers are split into specialized sync and async variants:
//
//   - AsyncConsoleHandler owns an unbounded FIFO queue guarded by a mutex
//     and a condition variable, and a dedicated background goroutine that
//     swaps the queue out and writes it in order. Close stops the worker,
//     waits for it and drains the remainder synchronously.
//   - SyncConsoleHandler writes inline on the caller's goroutine.
//
// The factory function NewConsoleHandler automatically chooses the
// right variant based on the Async field in ConsoleConfig.
//
// Both variants serialize formatting and writing under one lock, so each
// output line is exactly one record and lines never interleave.
package consolehandler
