package formatter

import (
	"bytes"
	"path/filepath"
	"strconv"
	"time"

	"github.com/philipp01105/qlog/core"
)

const (
	dateLayout = "[2006-01-02] "
	timeLayout = "[15:04:05.000000] "
)

// pre-formatted tag strings, padded so the location column starts at the
// same offset for every severity
var levelTags = [...]string{
	core.TraceLevel: "[TRACE] ",
	core.DebugLevel: "[DEBUG] ",
	core.InfoLevel:  "[INFO ] ",
	core.WarnLevel:  "[WARN ] ",
	core.ErrorLevel: "[ERROR] ",
	core.FatalLevel: "[FATAL] ",
}

// TextFormatter formats records as human-readable terminal lines
type TextFormatter struct {
	Config
	colors  *palette
	colored bool
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.LocationWidth == 0 {
		cfg.LocationWidth = DefaultLocationWidth
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	colored := cfg.Color.enabled(cfg.Output)
	return &TextFormatter{
		Config:  cfg,
		colors:  newPalette(colored),
		colored: colored,
	}
}

// Format formats a record as text
func (f *TextFormatter) Format(rec *core.Record) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	if err := f.FormatRecord(rec, buf); err != nil {
		return nil, err
	}

	// Copy buffer content to return
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatRecord appends the rendered record to buf. The record is only read.
func (f *TextFormatter) FormatRecord(rec *core.Record, buf *bytes.Buffer) error {
	t := rec.Time.In(f.Location)
	buf.Write(t.AppendFormat(buf.AvailableBuffer(), dateLayout))
	buf.Write(t.AppendFormat(buf.AvailableBuffer(), timeLayout))

	start := buf.Len()

	// Unknown severities get no tag
	if rec.Level.Valid() {
		buf.WriteString(levelTags[rec.Level])
	}

	f.writeLocation(rec, buf)
	buf.WriteString(rec.Message)

	if c := f.colors.get(rec.Level); f.colored && c != nil {
		body := string(buf.Bytes()[start:])
		buf.Truncate(start)
		buf.WriteString(c.Sprint(body))
	}

	buf.WriteByte('\n')
	return nil
}

// writeLocation writes "[basename:line]" right-padded to LocationWidth,
// followed by the separating space.
func (f *TextFormatter) writeLocation(rec *core.Record, buf *bytes.Buffer) {
	start := buf.Len()
	buf.WriteByte('[')
	if rec.File == "" {
		buf.WriteString("???")
	} else {
		buf.WriteString(filepath.Base(rec.File))
	}
	buf.WriteByte(':')
	buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(rec.Line), 10))
	buf.WriteByte(']')

	for n := buf.Len() - start; n < f.LocationWidth; n++ {
		buf.WriteByte(' ')
	}
	buf.WriteByte(' ')
}
