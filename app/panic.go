package app

import (
	"fmt"
	"image/color"
	"strings"
	"unicode/utf8"

	"vkpad/hal"
	"vkpad/kernel"
	"vkpad/sdr/gfx"
	"vkpad/sdr/keypad"
)

func installPanicHandler(h hal.HAL) {
	kernel.SetPanicHandler(func(info kernel.PanicInfo) {
		panicScreen(h, info)
	})
}

// panicScreen logs the panic and paints it over the whole panel. The scheduler stops
// stepping tasks afterwards, so the screen stays up until reset.
func panicScreen(h hal.HAL, info kernel.PanicInfo) {
	lines := []string{
		"vkpad panic:",
		fmt.Sprintf("task: %d", info.TaskID),
		fmt.Sprintf("panic: %v", info.Value),
	}
	if len(info.Stack) > 0 {
		lines = append(lines, "stack:")
		for _, line := range strings.Split(string(info.Stack), "\n") {
			if line != "" {
				lines = append(lines, line)
			}
		}
	} else {
		lines = append(lines, "stack: unavailable")
	}

	if l := h.Logger(); l != nil {
		for _, line := range lines {
			l.WriteLineString(line)
		}
	}

	disp := h.Display()
	if disp == nil {
		return
	}
	fb := disp.Framebuffer()
	if fb == nil {
		return
	}

	d := gfx.New(fb)
	fg := color.RGBA{A: 0xFF}
	bg := color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	d.Clear(bg)

	lh := d.LineHeight(keypad.FontInfo)
	cw := d.TextWidth("0", keypad.FontInfo)
	w, maxH := d.Size()
	if lh <= 0 || cw <= 0 {
		_ = d.Display()
		return
	}
	cols := int(w / cw)
	if cols <= 0 {
		cols = 1
	}

	y := int16(0)
out:
	for _, line := range lines {
		for len(line) > 0 {
			if y+lh > maxH {
				break out
			}
			chunk, rest := takeRunes(line, cols)
			d.Text(0, y, chunk, fg, bg, keypad.FontInfo)
			y += lh
			line = strings.TrimLeft(rest, " ")
		}
	}
	_ = d.Display()
}

func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if len(s) <= n {
		return s, ""
	}
	var i, count int
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
