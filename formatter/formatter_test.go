package formatter

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/philipp01105/qlog/core"
)

func plain() *TextFormatter {
	return NewTextFormatter(Config{Color: ColorNever, Location: time.UTC})
}

func TestTextFormatter_Basic(t *testing.T) {
	f := plain()

	rec := &core.Record{
		Time:    time.Date(2026, 2, 18, 13, 0, 0, 42000, time.UTC),
		Level:   core.InfoLevel,
		File:    "/home/dev/app/main.go",
		Line:    7,
		Message: "test message",
	}

	result, err := f.Format(rec)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	output := string(result)
	if !strings.HasPrefix(output, "[2026-02-18] [13:00:00.000042] [INFO ] [main.go:7]") {
		t.Errorf("unexpected prefix: %q", output)
	}
	if !strings.HasSuffix(output, " test message\n") {
		t.Errorf("Expected message at end of line, got: %q", output)
	}
	if strings.Count(output, "\n") != 1 {
		t.Errorf("Expected exactly one newline, got: %q", output)
	}
}

func TestTextFormatter_RoundTrip(t *testing.T) {
	f := NewTextFormatter(Config{Location: time.UTC})

	rec := &core.Record{
		Time:    time.Date(2026, 2, 18, 13, 0, 0, 0, time.UTC),
		Level:   core.WarnLevel,
		File:    "/a/b/c.ext",
		Line:    42,
		Message: "hello",
	}

	result, err := f.Format(rec)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	output := string(result)

	tag := strings.Index(output, "[WARN ]")
	loc := strings.Index(output, "c.ext:42")
	msg := strings.Index(output, "hello")
	if tag < 0 || loc < 0 || msg < 0 {
		t.Fatalf("missing substring in %q", output)
	}
	// The line layout puts the tag before the location.
	if !(tag < loc && loc < msg) {
		t.Errorf("unexpected order tag=%d loc=%d msg=%d in %q", tag, loc, msg, output)
	}
	if strings.Contains(output, "/a/b/") {
		t.Errorf("location should be reduced to its basename: %q", output)
	}
}

func TestTextFormatter_DoesNotMutateRecord(t *testing.T) {
	f := NewTextFormatter(Config{})
	rec := core.Record{
		Time:    time.Now(),
		Level:   core.ErrorLevel,
		File:    "/x/y.go",
		Line:    3,
		Message: "unchanged",
	}
	before := rec

	if _, err := f.Format(&rec); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if rec != before {
		t.Errorf("record mutated: %+v -> %+v", before, rec)
	}
}

func TestTextFormatter_LocationPadding(t *testing.T) {
	f := NewTextFormatter(Config{Color: ColorNever, Location: time.UTC, LocationWidth: 16})
	ts := time.Date(2026, 2, 18, 13, 0, 0, 0, time.UTC)

	short := string(mustFormat(t, f, &core.Record{Time: ts, Level: core.InfoLevel, File: "a.go", Line: 1, Message: "m1"}))
	other := string(mustFormat(t, f, &core.Record{Time: ts, Level: core.ErrorLevel, File: "bb.go", Line: 100, Message: "m2"}))

	if strings.Index(short, "m1") != strings.Index(other, "m2") {
		t.Errorf("message columns differ:\n%q\n%q", short, other)
	}
	if !strings.Contains(short, "[a.go:1]"+strings.Repeat(" ", 16-len("[a.go:1]"))+" m1") {
		t.Errorf("unexpected padding: %q", short)
	}
}

func TestTextFormatter_LongLocationNotPadded(t *testing.T) {
	f := NewTextFormatter(Config{Color: ColorNever, Location: time.UTC, LocationWidth: 8})

	out := string(mustFormat(t, f, &core.Record{
		Time:    time.Now(),
		Level:   core.InfoLevel,
		File:    "/src/a_rather_long_file_name.go",
		Line:    1234,
		Message: "body",
	}))

	if !strings.Contains(out, "[a_rather_long_file_name.go:1234] body\n") {
		t.Errorf("expected single separator after long location, got %q", out)
	}
}

func TestTextFormatter_UnknownLevelSkipsTag(t *testing.T) {
	f := NewTextFormatter(Config{Location: time.UTC})

	out := string(mustFormat(t, f, &core.Record{
		Time:    time.Date(2026, 2, 18, 13, 0, 0, 0, time.UTC),
		Level:   core.Level(99),
		File:    "x.go",
		Line:    1,
		Message: "still printed",
	}))

	if strings.Contains(out, "\x1b[") {
		t.Errorf("unknown level should not be coloured: %q", out)
	}
	if !strings.HasPrefix(out, "[2026-02-18] [13:00:00.000000] [x.go:1]") {
		t.Errorf("unexpected line: %q", out)
	}
	if !strings.Contains(out, "still printed") {
		t.Errorf("message missing: %q", out)
	}
}

func TestTextFormatter_Color(t *testing.T) {
	rec := &core.Record{
		Time:    time.Now(),
		Level:   core.ErrorLevel,
		File:    "x.go",
		Line:    1,
		Message: "colourful",
	}

	colored := string(mustFormat(t, NewTextFormatter(Config{Color: ColorAlways}), rec))
	if !strings.Contains(colored, "\x1b[31m[ERROR]") {
		t.Errorf("expected red escape before tag, got %q", colored)
	}
	if !strings.HasSuffix(colored, "colourful\x1b[0m\n") {
		t.Errorf("expected reset at line end, got %q", colored)
	}

	plainOut := string(mustFormat(t, NewTextFormatter(Config{Color: ColorNever}), rec))
	if strings.Contains(plainOut, "\x1b[") {
		t.Errorf("ColorNever emitted escapes: %q", plainOut)
	}
}

func TestTextFormatter_EveryLevelTagged(t *testing.T) {
	f := plain()
	for lvl := core.TraceLevel; lvl <= core.FatalLevel; lvl++ {
		out := string(mustFormat(t, f, &core.Record{Time: time.Now(), Level: lvl, File: "f.go", Line: 1}))
		if !strings.Contains(out, "["+lvl.String()) {
			t.Errorf("level %v missing tag: %q", lvl, out)
		}
	}
}

func TestColorMode_String(t *testing.T) {
	tests := map[ColorMode]string{
		ColorAlways:  "always",
		ColorNever:   "never",
		ColorAuto:    "auto",
		ColorMode(9): "unknown",
	}
	for mode, want := range tests {
		if got := mode.String(); got != want {
			t.Errorf("ColorMode(%d).String() = %q, want %q", int(mode), got, want)
		}
	}
}

func TestColorAuto_FollowsOutput(t *testing.T) {
	file, err := os.CreateTemp(t.TempDir(), "colour-*.log")
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()

	rec := &core.Record{Level: core.ErrorLevel, File: "x.go", Line: 1, Message: "plain"}
	tests := []struct {
		name string
		out  io.Writer
	}{
		{"buffer", &bytes.Buffer{}},
		{"discard", io.Discard},
		{"regular file", file},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewTextFormatter(Config{Color: ColorAuto, Output: tt.out})
			if got := string(mustFormat(t, f, rec)); strings.Contains(got, "\x1b[") {
				t.Errorf("ColorAuto coloured a non-terminal: %q", got)
			}
		})
	}
}

func mustFormat(t *testing.T, f *TextFormatter, rec *core.Record) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := f.FormatRecord(rec, &buf); err != nil {
		t.Fatalf("FormatRecord() error = %v", err)
	}
	return buf.Bytes()
}

func BenchmarkTextFormatter(b *testing.B) {
	f := NewTextFormatter(Config{})
	rec := &core.Record{
		Time:    time.Now(),
		Level:   core.InfoLevel,
		File:    "/src/app/server.go",
		Line:    120,
		Message: "benchmark message",
	}
	var buf bytes.Buffer

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		buf.Reset()
		_ = f.FormatRecord(rec, &buf)
	}
}
