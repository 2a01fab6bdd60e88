package keypad

import "image/color"

// State is the visual state of one key.
type State uint8

const (
	StateNormal State = iota
	StatePressed
	StateDisabled
)

func (s State) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StatePressed:
		return "pressed"
	case StateDisabled:
		return "disabled"
	default:
		return "?"
	}
}

// Font selects one of the painter's fonts.
type Font uint8

const (
	// FontLabel is the default key label font.
	FontLabel Font = iota
	// FontDigits is the large font used for digit keys and the entered frequency.
	FontDigits
	// FontInfo is the small font used for status messages.
	FontInfo
)

// GroupMode describes how many keys of a keypad may be pressed at once.
type GroupMode uint8

const (
	GroupOneAllowed GroupMode = iota
)

// Family identifies a concrete keypad independent of its size variant.
type Family uint8

const (
	FamilyNone Family = iota
	FamilyDSP
	FamilyBandSelect
	FamilyFreqEntry

	familyCount
)

func (f Family) String() string {
	switch f {
	case FamilyNone:
		return "none"
	case FamilyDSP:
		return "dsp"
	case FamilyBandSelect:
		return "bandsel"
	case FamilyFreqEntry:
		return "freqset"
	default:
		return "?"
	}
}

// Handler is invoked for a short or long press of key index.
type Handler func(c *Controller, index int, param uint32)

// WarningFunc reports whether key index should be drawn with the warning fill.
type WarningFunc func(c *Controller, index int, param uint32) bool

// StateFunc returns the visual state of key index.
type StateFunc func(c *Controller, index int, param uint32) State

// Button describes one key. Its grid cell is implied by its position in Descriptor.Keys.
type Button struct {
	Label            string
	TextColor        color.RGBA
	PressedTextColor color.RGBA
	Font             Font

	// SpanX and SpanY make the key cover that many extra cells to the right and below.
	SpanX uint8
	SpanY uint8

	Short      Handler
	ShortParam uint32
	Long       Handler
	LongParam  uint32

	Warning WarningFunc
}

// Descriptor is the static description of one keypad size variant.
type Descriptor struct {
	Name   string
	Family Family

	Rows    int
	Columns int
	Keys    []Button

	KeyWidth   int16
	KeyHeight  int16
	KeySpacing int16
	TopMargin  int16

	BackgroundX int16
	BackgroundY int16

	Group GroupMode
	State StateFunc
}

// Count returns the number of keys.
func (d *Descriptor) Count() int { return len(d.Keys) }
