package keypad

import "math"

// MaxFreqDigits is the capacity of the frequency-entry buffer.
const MaxFreqDigits = 10

// Key parameters of the frequency-entry keypad. Digit keys carry their ASCII code.
const (
	freqKeyBackspace  = 0x08
	freqKeyEnter      = 0x0D
	freqKeyEscape     = 0x1B
	freqKeyBandChange = 'B'
	freqKeyTripleZero = 1000
)

const (
	infoWindowWidth = 120
	msgOutOfRange   = "Out of range"
	groupSeparator  = '.'
)

// FreqEntry is the digit buffer behind the frequency-entry keypad.
type FreqEntry struct {
	digits [MaxFreqDigits]byte
	n      int

	bandChange bool
	canCommit  bool
	msg        string
}

// Reset empties the buffer and clears the band-change flag.
func (f *FreqEntry) Reset() { *f = FreqEntry{} }

func (f *FreqEntry) Len() int         { return f.n }
func (f *FreqEntry) Digits() string   { return string(f.digits[:f.n]) }
func (f *FreqEntry) BandChange() bool { return f.bandChange }
func (f *FreqEntry) CanCommit() bool  { return f.canCommit }
func (f *FreqEntry) Message() string  { return f.msg }

// Append adds one decimal digit. It does nothing when the buffer is full.
func (f *FreqEntry) Append(d byte) bool {
	if d < '0' || d > '9' || f.n >= MaxFreqDigits {
		return false
	}
	f.digits[f.n] = d
	f.n++
	return true
}

// AppendZeros appends up to n zeros and returns how many fit.
func (f *FreqEntry) AppendZeros(n int) int {
	added := 0
	for ; added < n; added++ {
		if !f.Append('0') {
			break
		}
	}
	return added
}

// Backspace drops the last digit.
func (f *FreqEntry) Backspace() bool {
	if f.n == 0 {
		return false
	}
	f.n--
	f.digits[f.n] = 0
	return true
}

// Clear drops every digit but keeps the band-change flag.
func (f *FreqEntry) Clear() bool {
	if f.n == 0 {
		return false
	}
	f.digits = [MaxFreqDigits]byte{}
	f.n = 0
	return true
}

func (f *FreqEntry) ToggleBandChange() { f.bandChange = !f.bandChange }

// Value returns the buffer as a decimal number; an empty buffer is 0.
func (f *FreqEntry) Value() uint64 {
	var v uint64
	for _, d := range f.digits[:f.n] {
		v = v*10 + uint64(d-'0')
	}
	return v
}

// Hz returns the entered value scaled by mult, or false if it does not fit in 32 bits.
func (f *FreqEntry) Hz(mult uint32) (uint32, bool) {
	v := f.Value() * uint64(mult)
	if mult != 0 && v/uint64(mult) != f.Value() {
		return 0, false
	}
	if v > math.MaxUint32 {
		return 0, false
	}
	return uint32(v), true
}

// Grouped formats the digits in blocks of three from the right, e.g. "3.700.000".
func (f *FreqEntry) Grouped() string {
	if f.n == 0 {
		return ""
	}
	out := make([]byte, 0, f.n+f.n/3)
	for i := 0; i < f.n; i++ {
		if i > 0 && (f.n-i)%3 == 0 {
			out = append(out, groupSeparator)
		}
		out = append(out, f.digits[i])
	}
	return string(out)
}

// Validate recomputes whether the entry may be committed and the info message.
func (f *FreqEntry) Validate(r Radio) bool {
	f.canCommit = false
	f.msg = ""
	if f.n == 0 {
		return false
	}
	hz, ok := f.Hz(r.TuneMult())
	if !ok || (!f.bandChange && !r.FreqInBand(r.Band(), hz)) {
		f.msg = msgOutOfRange
		return false
	}
	f.canCommit = true
	return true
}

// Commit tunes the active VFO to the entered frequency.
//
// With band change enabled the first band containing the frequency is used, falling back
// to the selected band when none does. Commit does nothing unless the last Validate
// passed.
func (f *FreqEntry) Commit(r Radio) (band int, hz uint32, ok bool) {
	if !f.canCommit {
		return 0, 0, false
	}
	hz, ok = f.Hz(r.TuneMult())
	if !ok {
		return 0, 0, false
	}

	band = r.Band()
	if f.bandChange {
		for b := 0; b < r.Bands(); b++ {
			if r.FreqInBand(b, hz) {
				band = b
				break
			}
		}
	}

	r.SetBandFrequency(band, hz)
	r.SelectBand(band)
	return band, hz, true
}

func freqKeyShort(c *Controller, index int, param uint32) {
	f := &c.freq
	changed := false

	switch param {
	case freqKeyTripleZero:
		changed = f.AppendZeros(3) > 0
	case freqKeyBandChange:
		f.ToggleBandChange()
		c.RedrawIfChanged()
		changed = true
	case freqKeyBackspace:
		changed = f.Backspace()
	case freqKeyEscape:
		c.Close()
		return
	case freqKeyEnter:
		c.commitFreq()
		return
	default:
		if param <= math.MaxUint8 {
			changed = f.Append(byte(param))
		}
	}

	if changed {
		c.updateFreqDisplay()
	}
}

func freqKeyLong(c *Controller, index int, param uint32) {
	if param != freqKeyBackspace {
		return
	}
	c.freq.Clear()
	c.updateFreqDisplay()
}

func freqKeyState(c *Controller, index int, param uint32) State {
	if param == freqKeyBandChange && c.freq.BandChange() {
		return StatePressed
	}
	return StateNormal
}

func (c *Controller) commitFreq() {
	band, hz, ok := c.freq.Commit(c.env.Radio)
	if !ok {
		c.logDebug("frequency commit refused", "digits", c.freq.Digits())
		return
	}
	c.env.Log.Info("frequency set", "band", c.env.Radio.BandName(band), "hz", hz)
	c.Close()
}

// updateFreqDisplay revalidates the entry and prints it above the keys.
func (c *Controller) updateFreqDisplay() {
	if !c.shown || c.active == nil || c.active.Family != FamilyFreqEntry {
		return
	}
	f := &c.freq
	f.Validate(c.env.Radio)

	p := c.env.Painter
	d := c.active
	panel := PanelRegion(d, c.env.Layout.FullArea())

	p.FillRect(panel.X+2+infoWindowWidth, panel.Y+4, panel.W-infoWindowWidth-4, d.TopMargin-6, colorBtnFace)
	p.FillRect(panel.X+4, panel.Y+4, infoWindowWidth-4, p.LineHeight(FontInfo), colorBtnFace)

	value := colorWhite
	if f.msg != "" {
		value = colorYellow
		p.Text(panel.X+4, panel.Y+4, f.msg, colorYellow, colorBtnFace, FontInfo)
	}
	p.TextRight(panel.X+panel.W-4, panel.Y+4, f.Grouped(), value, colorBtnFace, FontDigits)
}
