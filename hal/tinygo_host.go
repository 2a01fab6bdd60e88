//go:build tinygo && !baremetal

package hal

import "time"

type tinyGoHostHAL struct {
	logger *tinyGoHostLogger
	fb     *MemFramebuffer
	touch  *VirtualTouch
	start  time.Time
}

// New returns a TinyGo-on-host HAL implementation.
//
// This is used by `tinygo run` targets like linux/wasm where there is no MCU pin mapping.
func New(opts Options) HAL {
	opts = opts.withDefaults()
	return &tinyGoHostHAL{
		logger: &tinyGoHostLogger{},
		fb:     NewFramebuffer(opts.Width, opts.Height),
		touch:  NewVirtualTouch(),
		start:  time.Now(),
	}
}

func (h *tinyGoHostHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHostHAL) Display() Display { return display{fb: h.fb} }
func (h *tinyGoHostHAL) Input() Input     { return input{kbd: tinyGoHostKeyboard{}, touch: h.touch} }
func (h *tinyGoHostHAL) Time() Time       { return h }

func (h *tinyGoHostHAL) Millis() uint64 {
	return uint64(time.Since(h.start) / time.Millisecond)
}

type tinyGoHostLogger struct{}

func (l *tinyGoHostLogger) WriteLineString(s string) {
	println(s)
}

func (l *tinyGoHostLogger) WriteLineBytes(b []byte) {
	println(string(b))
}

type tinyGoHostKeyboard struct{}

func (tinyGoHostKeyboard) Events() <-chan KeyEvent { return nil }
