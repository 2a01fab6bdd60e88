package gfx

import (
	"vkpad/sdr/keypad"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"
	"tinygo.org/x/tinyfont/proggy"
)

// probeRunes are measured to find a font's vertical extent.
const probeRunes = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz.+>()"

// fontMetrics is the cell a font's text is laid out in.
type fontMetrics struct {
	font tinyfont.Fonter
	// height is the distance from the highest ascender to the lowest descender.
	height int16
	// baseline is the offset of the baseline from the top of the cell.
	baseline int16
}

type fontSet [3]fontMetrics

func defaultFonts() fontSet {
	var fs fontSet
	fs[keypad.FontLabel] = measure(&proggy.TinySZ8pt7b)
	fs[keypad.FontDigits] = measure(&freemono.Bold9pt7b)
	fs[keypad.FontInfo] = measure(&proggy.TinySZ8pt7b)
	return fs
}

func (fs *fontSet) get(f keypad.Font) *fontMetrics {
	if int(f) >= len(fs) {
		f = keypad.FontLabel
	}
	return &fs[f]
}

// measure derives the line cell of font from its glyph extents, falling back to the
// font's y-advance when no glyph reports a size.
func measure(font tinyfont.Fonter) fontMetrics {
	minY, maxY := 0, 0
	first := true
	for _, r := range probeRunes {
		info := font.GetGlyph(r).Info()
		if info.Height == 0 {
			continue
		}
		top := int(info.YOffset)
		bottom := top + int(info.Height)
		if first {
			minY, maxY = top, bottom
			first = false
			continue
		}
		if top < minY {
			minY = top
		}
		if bottom > maxY {
			maxY = bottom
		}
	}

	m := fontMetrics{font: font}
	if first || maxY <= minY {
		m.height = int16(font.GetYAdvance())
		m.baseline = m.height
		return m
	}
	m.height = int16(maxY - minY)
	m.baseline = int16(-minY)
	return m
}
