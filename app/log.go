package app

import (
	"bytes"
	"log/slog"

	"vkpad/hal"
)

// lineWriter adapts a hal.Logger to the io.Writer a slog text handler writes to. The
// handler emits one record per Write, terminated by a newline.
type lineWriter struct {
	l hal.Logger
}

func (w lineWriter) Write(p []byte) (int, error) {
	n := len(p)
	for len(p) > 0 {
		line := p
		if i := bytes.IndexByte(p, '\n'); i >= 0 {
			line, p = p[:i], p[i+1:]
		} else {
			p = nil
		}
		if len(line) > 0 {
			w.l.WriteLineBytes(line)
		}
	}
	return n, nil
}

// NewLogger returns a structured logger that prints to the HAL log sink. Timestamps are
// left out; the sink is a serial console on hardware.
func NewLogger(l hal.Logger, level slog.Leveler) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}
	return slog.New(slog.NewTextHandler(lineWriter{l: l}, opts))
}
