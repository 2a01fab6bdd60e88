package gfx

import (
	"image/color"
	"testing"

	"vkpad/hal"
	"vkpad/sdr/keypad"

	"tinygo.org/x/drivers"
)

var (
	white = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	red   = color.RGBA{R: 0xFF, A: 0xFF}
)

func newTestDisplay(w, h int) (*Display, *hal.MemFramebuffer) {
	fb := hal.NewFramebuffer(w, h)
	return New(fb), fb
}

func isWhite(fb *hal.MemFramebuffer, x, y int) bool {
	r, g, b := fb.PixelRGB(x, y)
	return r == 0xFF && g == 0xFF && b == 0xFF
}

func TestFillRectClips(t *testing.T) {
	d, fb := newTestDisplay(20, 10)
	d.FillRect(-5, -5, 10, 10, red)
	if r, _, _ := fb.PixelRGB(0, 0); r != 0xFF {
		t.Fatalf("pixel 0,0 not filled")
	}
	if r, _, _ := fb.PixelRGB(4, 4); r != 0xFF {
		t.Fatalf("pixel 4,4 not filled")
	}
	if r, _, _ := fb.PixelRGB(5, 5); r != 0 {
		t.Fatalf("pixel 5,5 filled outside rect")
	}
	d.FillRect(15, 5, 100, 100, red)
	if r, _, _ := fb.PixelRGB(19, 9); r != 0xFF {
		t.Fatalf("pixel 19,9 not filled")
	}
}

func TestLines(t *testing.T) {
	d, fb := newTestDisplay(10, 10)
	d.HLine(2, 3, 4, white)
	d.VLine(8, 1, 3, white)
	for x := 2; x < 6; x++ {
		if !isWhite(fb, x, 3) {
			t.Fatalf("hline missing at %d,3", x)
		}
	}
	if isWhite(fb, 6, 3) || isWhite(fb, 2, 4) {
		t.Fatalf("hline too long")
	}
	for y := 1; y < 4; y++ {
		if !isWhite(fb, 8, y) {
			t.Fatalf("vline missing at 8,%d", y)
		}
	}
}

func TestFontMetrics(t *testing.T) {
	d, _ := newTestDisplay(1, 1)
	label := d.LineHeight(keypad.FontLabel)
	digits := d.LineHeight(keypad.FontDigits)
	if label <= 0 || digits <= 0 {
		t.Fatalf("line heights %d, %d, want positive", label, digits)
	}
	if digits <= label {
		t.Fatalf("digit font (%d) not taller than label font (%d)", digits, label)
	}
	for _, f := range []keypad.Font{keypad.FontLabel, keypad.FontDigits, keypad.FontInfo} {
		m := d.fonts.get(f)
		if m.baseline <= 0 || m.baseline > m.height {
			t.Fatalf("font %d baseline %d outside cell height %d", f, m.baseline, m.height)
		}
	}
}

func TestTextStaysInCell(t *testing.T) {
	d, fb := newTestDisplay(120, 60)
	const x, y = 10, 20
	d.Text(x, y, "8", white, red, keypad.FontDigits)

	h := int(d.LineHeight(keypad.FontDigits))
	w := int(d.TextWidth("8", keypad.FontDigits))
	lit := 0
	for py := 0; py < 60; py++ {
		for px := 0; px < 120; px++ {
			if !isWhite(fb, px, py) {
				continue
			}
			lit++
			if px < x || px >= x+w || py < y || py >= y+h {
				t.Fatalf("glyph pixel %d,%d outside cell %d,%d %dx%d", px, py, x, y, w, h)
			}
		}
	}
	if lit == 0 {
		t.Fatalf("no glyph pixels drawn")
	}
	// The descender row of a digit is pure background.
	if r, g, _ := fb.PixelRGB(x, y+h-1); r != 0xFF || g != 0 {
		t.Fatalf("cell background not painted")
	}
}

func TestTextRightEndsAtX(t *testing.T) {
	d, fb := newTestDisplay(120, 40)
	d.TextRight(100, 5, "123", white, color.RGBA{A: 0xFF}, keypad.FontLabel)
	for py := 0; py < 40; py++ {
		for px := 100; px < 120; px++ {
			if isWhite(fb, px, py) {
				t.Fatalf("text pixel at %d,%d past right edge", px, py)
			}
		}
	}
}

func TestSetRotation(t *testing.T) {
	d, _ := newTestDisplay(1, 1)
	if err := d.SetRotation(drivers.Rotation0); err != nil {
		t.Fatalf("SetRotation(0) = %v", err)
	}
	if err := d.SetRotation(drivers.Rotation90); err == nil {
		t.Fatalf("SetRotation(90) = nil, want error")
	}
}
