// Command qlog-stress floods an asynchronous console handler from many
// goroutines and reports what the handler saw.
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/atomic"

	"github.com/philipp01105/qlog/core"
	"github.com/philipp01105/qlog/formatter"
	"github.com/philipp01105/qlog/handler/consolehandler"
	"github.com/philipp01105/qlog/logger"
)

var (
	producers int
	records   int
	color     string
	discard   bool
	level     = core.InfoLevel
)

func main() {
	cmd := &cobra.Command{
		Use:          "qlog-stress",
		Short:        "Concurrent producer stress test for the qlog queue",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().IntVar(&producers, "producers", 8, "number of producer goroutines")
	cmd.Flags().IntVar(&records, "records", 1000, "records per producer")
	cmd.Flags().StringVar(&color, "color", "auto", "colour mode: always, never or auto")
	cmd.Flags().BoolVar(&discard, "discard", false, "format records but drop the output")
	cmd.Flags().Var(&level, "level", "level the producers log at")
	logger.BindFlags(cmd.PersistentFlags())

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err.Error())
		os.Exit(1)
	}
}

func parseColor(s string) (formatter.ColorMode, error) {
	switch s {
	case "always":
		return formatter.ColorAlways, nil
	case "never":
		return formatter.ColorNever, nil
	case "auto":
		return formatter.ColorAuto, nil
	}
	return 0, errors.Errorf("unknown colour mode %q", s)
}

// lineCounter counts the newlines that reach the underlying writer.
type lineCounter struct {
	w     io.Writer
	lines atomic.Int64
}

func (c *lineCounter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.lines.Add(int64(bytes.Count(p[:n], []byte{'\n'})))
	return n, err
}

func run(stdout, stderr io.Writer) error {
	defer logger.Shutdown()

	if producers < 1 || records < 0 {
		return errors.Errorf("invalid workload: %d producers, %d records", producers, records)
	}
	mode, err := parseColor(color)
	if err != nil {
		return err
	}

	// term is what ColorAuto inspects, out is what gets written
	term, out := stdout, stdout
	if discard {
		term, out = io.Discard, io.Discard
	} else if f, ok := stdout.(*os.File); ok {
		out = colorable.NewColorable(f)
	}
	counter := &lineCounter{w: out}

	h := consolehandler.NewAsyncConsoleHandler(consolehandler.ConsoleConfig{
		Writer:    counter,
		Formatter: formatter.NewTextFormatter(formatter.Config{Color: mode, Output: term}),
	})
	log := logger.NewBuilder().
		WithHandler(h).
		WithLevel(level).
		Build()

	logger.Info().Append("starting ").Append(producers).Append(" producers x ").Append(records).Send()

	start := time.Now()
	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < records; i++ {
				log.Log(level).Append("producer=").Append(p).Append(" seq=").Append(i).Send()
			}
		}(p)
	}
	wg.Wait()
	submitted := time.Since(start)

	if err := log.Close(); err != nil {
		return errors.Wrap(err, "close handler")
	}
	drained := time.Since(start)

	snap := h.Stats()
	fmt.Fprintf(stderr, "submitted=%d processed=%d failed=%d late=%d lines=%d enqueue=%s drain=%s\n",
		snap.SubmittedTotal, snap.ProcessedTotal, snap.FailedTotal, snap.LateTotal,
		counter.lines.Load(), submitted, drained)

	want := int64(producers * records)
	if !log.Enabled(level) {
		want = 0
	}
	if got := counter.lines.Load(); got != want {
		return errors.Errorf("wrote %d lines, expected %d", got, want)
	}
	logger.Info().Append("done in ").Append(drained).Send()
	return nil
}
