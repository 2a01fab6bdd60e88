// Package spectrum owns the full-screen drawing area while no keypad is shown: a scrolling
// waterfall below a one-line radio status readout.
package spectrum

import "vkpad/sdr/keypad"

// Layout places the status line and the full-screen area for one resolution.
type Layout struct {
	res    keypad.Resolution
	screen keypad.Rect
	status keypad.Rect
	full   keypad.Rect
}

var _ keypad.Layout = Layout{}

// NewLayout returns the screen layout for res.
func NewLayout(res keypad.Resolution) Layout {
	switch res {
	case keypad.Res320x240:
		return Layout{
			res:    res,
			screen: keypad.Rect{W: 320, H: 240},
			status: keypad.Rect{X: 0, Y: 0, W: 320, H: 24},
			full:   keypad.Rect{X: 0, Y: 100, W: 320, H: 140},
		}
	default:
		return Layout{
			res:    keypad.Res480x320,
			screen: keypad.Rect{W: 480, H: 320},
			status: keypad.Rect{X: 0, Y: 0, W: 480, H: 28},
			full:   keypad.Rect{X: 0, Y: 120, W: 480, H: 200},
		}
	}
}

func (l Layout) Resolution() keypad.Resolution { return l.res }
func (l Layout) Screen() keypad.Rect           { return l.screen }
func (l Layout) StatusArea() keypad.Rect       { return l.status }
func (l Layout) FullArea() keypad.Rect         { return l.full }
