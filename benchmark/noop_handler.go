package benchmark

import (
	"github.com/philipp01105/qlog/core"
	"github.com/philipp01105/qlog/handler"
)

// noopHandler accepts records without formatting them, isolating the
// cost of the call site and the stream.
type noopHandler struct{}

func newNoopHandler() handler.Handler {
	return &noopHandler{}
}

func (h *noopHandler) Handle(rec *core.Record) error {
	_ = len(rec.Message)
	return nil
}

func (h *noopHandler) Close() error {
	return nil
}
