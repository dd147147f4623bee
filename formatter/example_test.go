package formatter_test

import (
	"fmt"
	"time"

	"github.com/philipp01105/qlog/core"
	"github.com/philipp01105/qlog/formatter"
)

func ExampleNewTextFormatter() {
	f := formatter.NewTextFormatter(formatter.Config{
		Color:    formatter.ColorNever,
		Location: time.UTC,
	})

	rec := &core.Record{
		Time:    time.Date(2026, 1, 15, 12, 0, 0, 123456000, time.UTC),
		Level:   core.InfoLevel,
		File:    "/src/app/main.go",
		Line:    17,
		Message: "hello world",
	}

	out, _ := f.Format(rec)
	fmt.Print(string(out))
	// Output:
	// [2026-01-15] [12:00:00.123456] [INFO ] [main.go:17]             hello world
}
