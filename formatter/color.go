package formatter

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/philipp01105/qlog/core"
)

// ColorMode controls colour emission.
type ColorMode int

const (
	// ColorAlways emits colour sequences regardless of the output (default).
	// Output redirected to a file keeps the raw escape codes.
	ColorAlways ColorMode = iota
	// ColorNever emits plain text.
	ColorNever
	// ColorAuto emits colour only when Config.Output is a terminal.
	ColorAuto
)

// String returns the string representation of the mode
func (m ColorMode) String() string {
	switch m {
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	case ColorAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// fdWriter is implemented by *os.File.
type fdWriter interface {
	Fd() uintptr
}

// enabled resolves the mode to a yes/no answer for output out.
func (m ColorMode) enabled(out io.Writer) bool {
	switch m {
	case ColorNever:
		return false
	case ColorAuto:
		if out == nil {
			out = os.Stdout
		}
		f, ok := out.(fdWriter)
		if !ok {
			return false
		}
		fd := f.Fd()
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	default:
		return true
	}
}

// palette holds one colour per record severity, indexed by core.Level.
type palette [core.FatalLevel + 1]*color.Color

func newPalette(enabled bool) *palette {
	p := &palette{
		core.TraceLevel: color.New(color.FgHiBlack),
		core.DebugLevel: color.New(color.FgCyan),
		core.InfoLevel:  color.New(color.FgGreen),
		core.WarnLevel:  color.New(color.FgYellow),
		core.ErrorLevel: color.New(color.FgRed),
		core.FatalLevel: color.New(color.FgHiRed, color.Bold),
	}
	// fatih/color disables itself when stdout is not a TTY; the mode has
	// already made that decision, so override it per colour.
	for _, c := range p {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p *palette) get(l core.Level) *color.Color {
	if !l.Valid() {
		return nil
	}
	return p[l]
}
