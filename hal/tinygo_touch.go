//go:build tinygo && baremetal

package hal

import (
	"machine"

	"tinygo.org/x/drivers/xpt2046"
)

// Raw panel extents as reported by ReadTouchPoint; measured on the reference panel.
const (
	touchRawMinX = 0x0800
	touchRawMaxX = 0xF400
	touchRawMinY = 0x0A00
	touchRawMaxY = 0xF000
)

type xpt2046Touch struct {
	dev  xpt2046.Device
	w, h int
	last TouchPoint
}

func newXPT2046Touch(w, h int) *xpt2046Touch {
	dev := xpt2046.New(machine.GP18, machine.GP16, machine.GP19, machine.GP20, machine.GP17)
	dev.Configure(&xpt2046.Config{Precision: 10})
	return &xpt2046Touch{dev: dev, w: w, h: h}
}

func (t *xpt2046Touch) Read() TouchPoint {
	if !t.dev.Touched() {
		t.last.Pressed = false
		return t.last
	}
	p := t.dev.ReadTouchPoint()
	t.last = TouchPoint{
		X:       scaleTouch(p.X, touchRawMinX, touchRawMaxX, t.w),
		Y:       scaleTouch(p.Y, touchRawMinY, touchRawMaxY, t.h),
		Pressed: true,
	}
	return t.last
}

func scaleTouch(raw, lo, hi, size int) int16 {
	if raw < lo {
		raw = lo
	}
	if raw > hi {
		raw = hi
	}
	return int16((raw - lo) * (size - 1) / (hi - lo))
}
