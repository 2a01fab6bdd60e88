package keypad

import (
	"image/color"
	"testing"

	"vkpad/sdr/radio"
)

func TestDrawButtonChromeFace(t *testing.T) {
	cases := []struct {
		st      State
		warning bool
		want    color.RGBA
	}{
		{StateNormal, false, colorBtnFace},
		{StateNormal, true, colorWarning},
		{StatePressed, false, colorBtnPressed},
		{StatePressed, true, colorBtnPressed},
		{StateDisabled, true, colorBtnFace},
	}
	for _, tc := range cases {
		p := &fakePainter{}
		if got := DrawButtonChrome(p, Rect{X: 10, Y: 20, W: 30, H: 40}, tc.st, tc.warning); got != tc.want {
			t.Fatalf("%v warning=%v: face %v, want %v", tc.st, tc.warning, got, tc.want)
		}
	}
}

func TestDrawButtonChromeStaysInside(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 30, H: 40}
	for _, st := range []State{StateNormal, StatePressed, StateDisabled} {
		p := &fakePainter{}
		DrawButtonChrome(p, r, st, false)
		for _, op := range p.ops {
			if op.r.X < r.X || op.r.Y < r.Y || op.r.X+op.r.W > r.X+r.W || op.r.Y+op.r.H > r.Y+r.H {
				t.Fatalf("%v: %s %+v outside %+v", st, op.kind, op.r, r)
			}
		}
	}
}

func TestDrawButtonMultiLineLabel(t *testing.T) {
	p := &fakePainter{}
	r := Rect{X: 0, Y: 0, W: 60, H: 40}
	DrawButton(p, r, false, StatePressed, "NR\n+NOTCH", colorBlack, colorWhite, FontLabel)

	lines := p.texts("text")
	if len(lines) != 2 {
		t.Fatalf("%d text lines, want 2", len(lines))
	}
	if lines[0].text != "NR" || lines[1].text != "+NOTCH" {
		t.Fatalf("lines %q %q", lines[0].text, lines[1].text)
	}
	if lines[0].r.Y != 12 || lines[1].r.Y != 20 {
		t.Fatalf("lines at y=%d,%d, want 12,20", lines[0].r.Y, lines[1].r.Y)
	}
	if lines[0].c != colorWhite {
		t.Fatalf("pressed text colour %v, want white", lines[0].c)
	}
}

func TestDrawKeypadStates(t *testing.T) {
	h := newHarness(t, Res320x240, radio.Config{StartBand: radio.Band80m, DisabledBands: []int{radio.Band60m}})
	h.c.Toggle(FamilyBandSelect)

	colors := map[string]color.RGBA{}
	for _, op := range h.p.texts("text") {
		colors[op.text] = op.c
	}
	if colors["60m"] != colorBtnDisabled {
		t.Fatalf("60m text %v, want disabled colour", colors["60m"])
	}
	if colors["80m"] != colorWhite {
		t.Fatalf("80m text %v, want pressed colour", colors["80m"])
	}
	if colors["40m"] != colorBlack {
		t.Fatalf("40m text %v, want normal colour", colors["40m"])
	}
}

func TestDrawKeypadWarning(t *testing.T) {
	h := newHarness(t, Res480x320, radio.Config{SPIDisplay: true, DSPModeMask: 0x3E})
	h.c.Toggle(FamilyDSP)

	r := ButtonRegion(h.c.Active(), h.full, 3)
	found := false
	for _, op := range h.p.ops {
		if op.kind == "fill" && op.c == colorWarning {
			if op.r.X != r.X+1 || op.r.Y != r.Y+1 {
				t.Fatalf("warning fill at %+v, want inside key 3 %+v", op.r, r)
			}
			found = true
		}
	}
	if !found {
		t.Fatalf("NR+NOTCH key not drawn with warning fill")
	}
}
