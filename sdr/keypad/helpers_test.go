package keypad

import (
	"image/color"
	"testing"

	"vkpad/sdr/radio"
)

type paintOp struct {
	kind string
	r    Rect
	c    color.RGBA
	text string
	font Font
}

type fakePainter struct {
	ops []paintOp
}

func (p *fakePainter) FillRect(x, y, w, h int16, c color.RGBA) {
	p.ops = append(p.ops, paintOp{kind: "fill", r: Rect{x, y, w, h}, c: c})
}

func (p *fakePainter) HLine(x, y, w int16, c color.RGBA) {
	p.ops = append(p.ops, paintOp{kind: "hline", r: Rect{x, y, w, 1}, c: c})
}

func (p *fakePainter) VLine(x, y, h int16, c color.RGBA) {
	p.ops = append(p.ops, paintOp{kind: "vline", r: Rect{x, y, 1, h}, c: c})
}

func (p *fakePainter) LineHeight(f Font) int16 {
	if f == FontDigits {
		return 16
	}
	return 8
}

func (p *fakePainter) TextCentered(x, y, w int16, s string, fg, bg color.RGBA, f Font) {
	p.ops = append(p.ops, paintOp{kind: "text", r: Rect{x, y, w, p.LineHeight(f)}, c: fg, text: s, font: f})
}

func (p *fakePainter) TextRight(x, y int16, s string, fg, bg color.RGBA, f Font) {
	p.ops = append(p.ops, paintOp{kind: "textright", r: Rect{x, y, 0, p.LineHeight(f)}, c: fg, text: s, font: f})
}

func (p *fakePainter) Text(x, y int16, s string, fg, bg color.RGBA, f Font) {
	p.ops = append(p.ops, paintOp{kind: "textleft", r: Rect{x, y, 0, p.LineHeight(f)}, c: fg, text: s, font: f})
}

func (p *fakePainter) reset() { p.ops = p.ops[:0] }

func (p *fakePainter) texts(kind string) []paintOp {
	var out []paintOp
	for _, op := range p.ops {
		if op.kind == kind {
			out = append(out, op)
		}
	}
	return out
}

type fakeLayout struct{ full Rect }

func (l fakeLayout) FullArea() Rect { return l.full }

type fakeSpectrum struct {
	clears int
	inits  int
}

func (s *fakeSpectrum) Clear() { s.clears++ }
func (s *fakeSpectrum) Init()  { s.inits++ }

var testAreas = map[Resolution]Rect{
	Res320x240: {X: 0, Y: 100, W: 320, H: 140},
	Res480x320: {X: 0, Y: 120, W: 480, H: 200},
}

type harness struct {
	c     *Controller
	p     *fakePainter
	view  *fakeSpectrum
	radio *radio.Radio
	full  Rect
}

func newHarness(t *testing.T, res Resolution, cfg radio.Config) *harness {
	t.Helper()
	h := &harness{
		p:     &fakePainter{},
		view:  &fakeSpectrum{},
		radio: radio.New(cfg, nil),
		full:  testAreas[res],
	}
	h.c = New(Env{
		Painter:  h.p,
		Layout:   fakeLayout{full: h.full},
		Spectrum: h.view,
		Radio:    h.radio,
	}, res)
	return h
}

// center returns a hit test for the middle of key index of the shown keypad.
func (h *harness) center(t *testing.T, index int) HitTest {
	t.Helper()
	d := h.c.Active()
	if d == nil {
		t.Fatalf("no keypad shown")
	}
	r := ButtonRegion(d, h.full, index)
	return PointHit(r.X+r.W/2, r.Y+r.H/2)
}

func (h *harness) tap(t *testing.T, index int) {
	t.Helper()
	if !h.c.Dispatch(h.center(t, index), false) {
		t.Fatalf("tap on key %d not claimed", index)
	}
}

// keyIndex finds the key with the given label in the shown keypad.
func (h *harness) keyIndex(t *testing.T, label string) int {
	t.Helper()
	for i, k := range h.c.Active().Keys {
		if k.Label == label {
			return i
		}
	}
	t.Fatalf("no key %q in %s", label, h.c.Active().Name)
	return -1
}

func (h *harness) typeDigits(t *testing.T, s string) {
	t.Helper()
	for _, r := range s {
		h.tap(t, h.keyIndex(t, string(r)))
	}
}
