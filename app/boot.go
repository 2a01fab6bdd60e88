package app

import (
	"image/color"

	"vkpad/internal/buildinfo"
	"vkpad/sdr/gfx"
	"vkpad/sdr/keypad"
	"vkpad/sdr/spectrum"
)

// bootScreen paints the version banner into the full-screen area. The waterfall
// overwrites it line by line once it starts.
func bootScreen(d *gfx.Display, l spectrum.Layout) {
	fg := color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	bg := color.RGBA{A: 0xFF}

	full := l.FullArea()
	d.FillRect(full.X, full.Y, full.W, full.H, bg)

	lh := d.LineHeight(keypad.FontInfo)
	y := full.Y + full.H/2 - lh
	d.TextCentered(full.X, y, full.W, "vkpad "+buildinfo.Short(), fg, bg, keypad.FontInfo)
	d.TextCentered(full.X, y+lh+2, full.W, l.Resolution().String(), fg, bg, keypad.FontInfo)
}

var colorBlack = color.RGBA{A: 0xFF}
