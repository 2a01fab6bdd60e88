package hal

import "go.uber.org/atomic"

// VirtualTouch is a touch panel fed from software: the host mouse, a headless script or
// a test.
type VirtualTouch struct {
	x    atomic.Int32
	y    atomic.Int32
	down atomic.Bool
}

func NewVirtualTouch() *VirtualTouch { return &VirtualTouch{} }

// Press moves the contact to x, y and holds it down.
func (t *VirtualTouch) Press(x, y int16) {
	t.x.Store(int32(x))
	t.y.Store(int32(y))
	t.down.Store(true)
}

// Release lifts the contact; the last position is kept.
func (t *VirtualTouch) Release() { t.down.Store(false) }

func (t *VirtualTouch) Read() TouchPoint {
	return TouchPoint{
		X:       int16(t.x.Load()),
		Y:       int16(t.y.Load()),
		Pressed: t.down.Load(),
	}
}

// ScriptedTouch presses the panel at X, Y on tick At and releases it Hold ticks later.
type ScriptedTouch struct {
	At   uint64
	Hold uint64
	X    int16
	Y    int16
}
