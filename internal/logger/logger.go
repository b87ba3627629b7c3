// Package logger builds the process logger: colored console output on a
// terminal, JSON lines otherwise.
package logger

import (
	"io"
	"os"

	"github.com/phuslu/log"
)

// New returns a logger at level. A non-terminal out gets JSON lines.
func New(level string, out *os.File) *log.Logger {
	if out == nil {
		out = os.Stderr
	}

	if log.IsTerminal(out.Fd()) {
		return &log.Logger{
			Level:  log.ParseLevel(level),
			Caller: 1,
			Writer: &log.ConsoleWriter{
				Writer:         out,
				ColorOutput:    true,
				EndWithMessage: true,
			},
		}
	}

	return NewJSON(level, out)
}

// NewJSON writes JSON lines to w regardless of where w points.
func NewJSON(level string, w io.Writer) *log.Logger {
	return &log.Logger{
		Level:      log.ParseLevel(level),
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
		Writer:     &log.IOWriter{Writer: w},
	}
}

// Discard drops every entry. Used where no logger is injected.
func Discard() *log.Logger {
	return &log.Logger{Level: log.PanicLevel, Writer: &log.IOWriter{Writer: io.Discard}}
}
