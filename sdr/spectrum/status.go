package spectrum

import (
	"image/color"
	"strconv"

	"vkpad/sdr/keypad"
	"vkpad/sdr/radio"
)

var (
	colorStatusBG  = color.RGBA{R: 0x10, G: 0x10, B: 0x30, A: 0xFF}
	colorStatusFG  = color.RGBA{R: 0xEE, G: 0xEE, B: 0xEE, A: 0xFF}
	colorStatusHz  = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	colorStatusDSP = color.RGBA{R: 0x60, G: 0xFF, B: 0x60, A: 0xFF}
)

type statusState struct {
	vfo  radio.VFO
	band int
	hz   uint32
	dsp  uint8
}

// Status is the one-line radio readout at the top of the screen.
type Status struct {
	p     keypad.Painter
	area  keypad.Rect
	radio *radio.Radio

	last  statusState
	valid bool
	draws uint64
}

func NewStatus(p keypad.Painter, l Layout, r *radio.Radio) *Status {
	return &Status{p: p, area: l.StatusArea(), radio: r}
}

func (s *Status) Draws() uint64 { return s.draws }

// Update redraws the status line if anything it shows has changed.
func (s *Status) Update() {
	cur := statusState{
		vfo:  s.radio.ActiveVFO(),
		band: s.radio.Band(),
		hz:   s.radio.Frequency(),
		dsp:  s.radio.DSPMode(),
	}
	if s.valid && cur == s.last {
		return
	}
	s.last = cur
	s.valid = true
	s.draw(cur)
}

// Invalidate forces the next Update to redraw.
func (s *Status) Invalidate() { s.valid = false }

func (s *Status) draw(st statusState) {
	a := s.area
	s.draws++
	s.p.FillRect(a.X, a.Y, a.W, a.H, colorStatusBG)

	lh := s.p.LineHeight(keypad.FontLabel)
	y := a.Y + (a.H-lh)/2
	left := "VFO " + st.vfo.String() + "  " + s.radio.BandName(st.band)
	s.p.Text(a.X+4, y, left, colorStatusFG, colorStatusBG, keypad.FontLabel)

	dh := s.p.LineHeight(keypad.FontDigits)
	s.p.TextCentered(a.X, a.Y+(a.H-dh)/2, a.W, FormatHz(st.hz), colorStatusHz, colorStatusBG, keypad.FontDigits)

	s.p.TextRight(a.X+a.W-4, y, radio.DSPModeName(st.dsp), colorStatusDSP, colorStatusBG, keypad.FontLabel)
}

// FormatHz groups a frequency in blocks of three digits, e.g. "7.100.000".
func FormatHz(hz uint32) string {
	s := strconv.FormatUint(uint64(hz), 10)
	out := make([]byte, 0, len(s)+len(s)/3)
	for i := 0; i < len(s); i++ {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, s[i])
	}
	return string(out)
}
