package gfx

import (
	"image/color"

	"vkpad/sdr/keypad"

	"tinygo.org/x/tinyfont"
)

var _ keypad.Painter = (*Display)(nil)

func (d *Display) FillRect(x, y, w, h int16, c color.RGBA) {
	_ = d.FillRectangle(x, y, w, h, c)
}

func (d *Display) HLine(x, y, w int16, c color.RGBA) {
	_ = d.FillRectangle(x, y, w, 1, c)
}

func (d *Display) VLine(x, y, h int16, c color.RGBA) {
	_ = d.FillRectangle(x, y, 1, h, c)
}

func (d *Display) LineHeight(f keypad.Font) int16 {
	return d.fonts.get(f).height
}

// TextWidth returns the advance width of s in font f.
func (d *Display) TextWidth(s string, f keypad.Font) int16 {
	_, w := tinyfont.LineWidth(d.fonts.get(f).font, s)
	return int16(w)
}

// Text prints s on a bg cell whose top-left corner is x, y.
func (d *Display) Text(x, y int16, s string, fg, bg color.RGBA, f keypad.Font) {
	if s == "" {
		return
	}
	m := d.fonts.get(f)
	w := d.TextWidth(s, f)
	_ = d.FillRectangle(x, y, w, m.height, bg)
	tinyfont.WriteLine(d, m.font, x, y+m.baseline, s, fg)
}

func (d *Display) TextCentered(x, y, w int16, s string, fg, bg color.RGBA, f keypad.Font) {
	tw := d.TextWidth(s, f)
	d.Text(x+(w-tw)/2, y, s, fg, bg, f)
}

func (d *Display) TextRight(x, y int16, s string, fg, bg color.RGBA, f keypad.Font) {
	d.Text(x-d.TextWidth(s, f), y, s, fg, bg, f)
}
