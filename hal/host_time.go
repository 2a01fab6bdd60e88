//go:build !tinygo

package hal

import (
	"time"

	"go.uber.org/atomic"
)

// hostTime is a millisecond clock advanced by the host runner, either from the wall
// clock (window) or by a fixed step per tick (headless).
type hostTime struct {
	ms atomic.Uint64

	last time.Time
	acc  time.Duration
}

func newHostTime() *hostTime {
	return &hostTime{}
}

func (t *hostTime) Millis() uint64 { return t.ms.Load() }

// sync advances the clock by the wall time elapsed since the previous call.
func (t *hostTime) sync() {
	now := time.Now()
	if t.last.IsZero() {
		t.last = now
		return
	}

	t.acc += now.Sub(t.last)
	t.last = now

	ms := uint64(t.acc / time.Millisecond)
	if ms == 0 {
		return
	}
	t.acc %= time.Millisecond
	t.ms.Add(ms)
}

func (t *hostTime) advance(d time.Duration) {
	if d > 0 {
		t.ms.Add(uint64(d / time.Millisecond))
	}
}
