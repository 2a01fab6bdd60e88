package keypad

import (
	"image/color"
	"log/slog"
)

// Resolution selects the size variant of every keypad.
type Resolution uint8

const (
	Res320x240 Resolution = iota
	Res480x320
)

func (r Resolution) String() string {
	switch r {
	case Res320x240:
		return "320x240"
	case Res480x320:
		return "480x320"
	default:
		return "?"
	}
}

// Painter is the set of drawing primitives the keypad renders with.
type Painter interface {
	FillRect(x, y, w, h int16, c color.RGBA)
	HLine(x, y, w int16, c color.RGBA)
	VLine(x, y, h int16, c color.RGBA)

	LineHeight(f Font) int16
	// TextCentered prints s centered in the span [x, x+w) with its top edge at y.
	TextCentered(x, y, w int16, s string, fg, bg color.RGBA, f Font)
	// TextRight prints s so that it ends at x.
	TextRight(x, y int16, s string, fg, bg color.RGBA, f Font)
	Text(x, y int16, s string, fg, bg color.RGBA, f Font)
}

// HitTest reports whether the current touch intersects r.
type HitTest func(r Rect) bool

// PointHit returns a HitTest for a touch resolved to a single point.
func PointHit(x, y int16) HitTest {
	return func(r Rect) bool { return r.Contains(x, y) }
}

// Layout provides the screen area keypads are drawn into.
type Layout interface {
	FullArea() Rect
}

// Spectrum is the view that normally owns the full-screen area.
type Spectrum interface {
	// Clear erases the area before a keypad is shown.
	Clear()
	// Init restores the view after a keypad is hidden.
	Init()
}

// Radio is the slice of radio management the keypads read and drive.
type Radio interface {
	Bands() int
	BandName(band int) string
	Band() int
	BandEnabled(band int) bool
	FreqInBand(band int, hz uint32) bool
	SetBandFrequency(band int, hz uint32)
	SelectBand(band int)
	TuneMult() uint32

	DSPMode() uint8
	SetDSPMode(mode uint8)
	DSPModeMask() uint32
	ToggleDSPMask(bit int)
	ActiveDSPFunctions() uint32
	DSPWarning() bool
}

// Env bundles the collaborators a controller works with.
type Env struct {
	Painter  Painter
	Layout   Layout
	Spectrum Spectrum
	Radio    Radio
	Log      *slog.Logger
}
