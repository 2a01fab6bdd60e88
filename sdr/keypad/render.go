package keypad

import (
	"image/color"
	"strings"
)

var (
	colorBtnFace     = color.RGBA{R: 0x90, G: 0x90, B: 0x90, A: 0xFF}
	colorBtnPressed  = color.RGBA{R: 0x70, G: 0x70, B: 0x70, A: 0xFF}
	colorBtnLight    = color.RGBA{R: 0xD0, G: 0xD0, B: 0xD0, A: 0xFF}
	colorBtnShadow   = color.RGBA{R: 0x50, G: 0x50, B: 0x50, A: 0xFF}
	colorBtnDisabled = color.RGBA{R: 0x60, G: 0x60, B: 0x60, A: 0xFF}
	colorWarning     = color.RGBA{R: 0xC0, G: 0xC0, B: 0x50, A: 0xFF}

	colorWhite  = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	colorBlack  = color.RGBA{A: 0xFF}
	colorYellow = color.RGBA{R: 0xFF, G: 0xFF, B: 0x00, A: 0xFF}
)

// drawBody paints a bevelled box covering exactly r.
func drawBody(p Painter, r Rect, face, lightTL, shadowBR color.RGBA) {
	if r.W < 2 || r.H < 2 {
		return
	}
	p.FillRect(r.X+1, r.Y+1, r.W-2, r.H-2, face)
	p.VLine(r.X, r.Y, r.H, lightTL)
	p.HLine(r.X+1, r.Y, r.W-1, lightTL)
	p.VLine(r.X+r.W-1, r.Y+1, r.H-1, shadowBR)
	p.HLine(r.X+1, r.Y+r.H-1, r.W-2, shadowBR)
}

// DrawButtonChrome paints the key body for the given state and returns its face colour.
func DrawButtonChrome(p Painter, r Rect, st State, warning bool) color.RGBA {
	var face, tl, br color.RGBA
	switch st {
	case StateDisabled:
		face, tl, br = colorBtnFace, colorBtnDisabled, colorBtnDisabled
	case StatePressed:
		face, tl, br = colorBtnPressed, colorBtnShadow, colorBtnLight
	default:
		face, tl, br = colorBtnFace, colorBtnLight, colorBtnShadow
		if warning {
			face = colorWarning
		}
	}
	drawBody(p, r, face, tl, br)
	return face
}

// DrawButton paints one key with its (possibly multi-line) label centered inside.
func DrawButton(p Painter, r Rect, warning bool, st State, label string, unpressed, pressed color.RGBA, f Font) {
	text := unpressed
	switch st {
	case StateDisabled:
		text = colorBtnDisabled
	case StatePressed:
		text = pressed
	}

	face := DrawButtonChrome(p, r, st, warning)

	lh := p.LineHeight(f)
	lines := strings.Split(label, "\n")
	total := lh * int16(len(lines))

	y := r.Y + r.H/2 - total/2
	for _, line := range lines {
		p.TextCentered(r.X+2, y, r.W-4, line, text, face, f)
		y += lh
	}
}

// DrawKeypad renders every key of the active keypad.
func DrawKeypad(c *Controller) {
	d := c.active
	if d == nil {
		return
	}
	full := c.env.Layout.FullArea()
	cells := d.Rows * d.Columns
	for i := range d.Keys {
		if i >= cells {
			return
		}
		k := &d.Keys[i]
		warning := false
		if k.Warning != nil {
			warning = k.Warning(c, i, 0)
		}
		st := d.State(c, i, k.ShortParam)
		DrawButton(c.env.Painter, ButtonRegion(d, full, i), warning, st, k.Label, k.TextColor, k.PressedTextColor, k.Font)
	}
}

// DrawBackground renders the framed panel behind the keys.
func DrawBackground(c *Controller) {
	d := c.active
	if d == nil {
		return
	}
	r := BackgroundRegion(d, c.env.Layout.FullArea())
	drawBody(c.env.Painter, r, colorBtnFace, colorBtnLight, colorBtnShadow)
}
