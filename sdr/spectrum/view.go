package spectrum

import (
	"image/color"

	"vkpad/sdr/keypad"
)

var (
	colorBG      = color.RGBA{A: 0xFF}
	colorGrid    = color.RGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xFF}
	colorCarrier = color.RGBA{R: 0xFF, G: 0xE0, B: 0x40, A: 0xFF}
)

// Tuner reports the dial frequency the waterfall is centered on.
type Tuner interface {
	Frequency() uint32
}

// View is the waterfall drawn into the full-screen area.
//
// Clear hands the area over to a keypad and Init takes it back, the same contract the
// keypad controller expects from the spectrum display.
type View struct {
	p     keypad.Painter
	area  keypad.Rect
	tuner Tuner

	active bool
	row    int16
	seed   uint32

	lines uint64
}

var _ keypad.Spectrum = (*View)(nil)

// New returns an inactive view; call Init to start drawing.
func New(p keypad.Painter, l keypad.Layout, tuner Tuner) *View {
	return &View{p: p, area: l.FullArea(), tuner: tuner, seed: 0x2545F491}
}

func (v *View) Active() bool  { return v.active }
func (v *View) Lines() uint64 { return v.lines }

// Clear stops the waterfall and blanks its area.
func (v *View) Clear() {
	v.active = false
	v.p.FillRect(v.area.X, v.area.Y, v.area.W, v.area.H, colorBG)
}

// Init redraws the empty waterfall frame and resumes scrolling from the top.
func (v *View) Init() {
	a := v.area
	v.p.FillRect(a.X, a.Y, a.W, a.H, colorBG)
	v.p.HLine(a.X, a.Y, a.W, colorGrid)
	v.p.VLine(a.X+a.W/2, a.Y+1, a.H-1, colorGrid)
	v.row = 1
	v.active = true
}

// Step draws one waterfall line when the view owns the area.
func (v *View) Step() {
	if !v.active || v.area.W <= 0 || v.area.H <= 1 {
		return
	}

	a := v.area
	y := a.Y + v.row
	center := a.W / 2

	// Carriers every 5 kHz, offset by the dial position; one pixel is 250 Hz.
	var hz uint32
	if v.tuner != nil {
		hz = v.tuner.Frequency()
	}
	phase := int16((hz % 5000) / 250)

	for x := int16(0); x < a.W; {
		run := int16(1 + v.next()%6)
		if x+run > a.W {
			run = a.W - x
		}
		v.p.HLine(a.X+x, y, run, noiseColor(uint8(v.next())))
		x += run
	}
	for x := center - phase; x < a.W; x += 20 {
		if x >= 0 {
			v.p.VLine(a.X+x, y, 1, colorCarrier)
		}
	}
	for x := center - phase - 20; x >= 0; x -= 20 {
		v.p.VLine(a.X+x, y, 1, colorCarrier)
	}

	v.row++
	if v.row >= a.H {
		v.row = 1
	}
	v.lines++
}

// next is a xorshift32 step.
func (v *View) next() uint32 {
	x := v.seed
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	v.seed = x
	return x
}

func noiseColor(level uint8) color.RGBA {
	level >>= 2
	return color.RGBA{R: 0, G: level / 2, B: 0x20 + level, A: 0xFF}
}
