package keypad

import (
	"testing"

	"vkpad/sdr/radio"
)

func TestToggleShowsAndHides(t *testing.T) {
	h := newHarness(t, Res320x240, radio.Config{StartBand: radio.Band80m})

	h.c.Toggle(FamilyBandSelect)
	if !h.c.Shown() || h.c.Family() != FamilyBandSelect {
		t.Fatalf("Family = %v shown=%v, want bandsel shown", h.c.Family(), h.c.Shown())
	}
	if h.view.clears != 1 {
		t.Fatalf("spectrum clears = %d, want 1", h.view.clears)
	}
	if h.c.Passes() != 1 {
		t.Fatalf("Passes = %d, want 1", h.c.Passes())
	}

	h.c.Toggle(FamilyBandSelect)
	if h.c.Shown() || h.c.Active() != nil {
		t.Fatalf("keypad still shown after second toggle")
	}
	if h.view.inits != 1 {
		t.Fatalf("spectrum inits = %d, want 1", h.view.inits)
	}
}

func TestRedrawIfChangedIsIdempotent(t *testing.T) {
	h := newHarness(t, Res320x240, radio.Config{StartBand: radio.Band80m})
	h.c.Toggle(FamilyBandSelect)

	for i := 0; i < 3; i++ {
		h.c.RedrawIfChanged()
	}
	if h.c.Passes() != 1 {
		t.Fatalf("Passes = %d after unchanged redraws, want 1", h.c.Passes())
	}

	h.radio.SelectBand(radio.Band20m)
	h.c.RedrawIfChanged()
	h.c.RedrawIfChanged()
	if h.c.Passes() != 2 {
		t.Fatalf("Passes = %d after band change, want 2", h.c.Passes())
	}
}

func TestSwitchingKeypadForcesRedraw(t *testing.T) {
	h := newHarness(t, Res480x320, radio.Config{StartBand: radio.Band40m})

	h.c.Toggle(FamilyDSP)
	h.c.Toggle(FamilyBandSelect)
	if h.c.Family() != FamilyBandSelect {
		t.Fatalf("Family = %v, want bandsel", h.c.Family())
	}
	if h.view.inits != 0 {
		t.Fatalf("spectrum re-initialised while switching keypads")
	}

	// The DSP signal has not changed since it was last drawn; it must be redrawn anyway.
	h.c.Toggle(FamilyDSP)
	if h.c.Passes() != 3 {
		t.Fatalf("Passes = %d, want 3", h.c.Passes())
	}
	if h.view.clears != 3 {
		t.Fatalf("spectrum clears = %d, want 3", h.view.clears)
	}
}

func TestRedrawWhileHiddenDoesNothing(t *testing.T) {
	h := newHarness(t, Res320x240, radio.Config{})
	h.c.RedrawIfChanged()
	h.c.Redraw()
	h.c.Close()
	if h.c.Passes() != 0 || len(h.p.ops) != 0 || h.view.inits != 0 {
		t.Fatalf("hidden controller drew: passes=%d ops=%d inits=%d", h.c.Passes(), len(h.p.ops), h.view.inits)
	}
}

func TestDispatchBandSelect(t *testing.T) {
	h := newHarness(t, Res320x240, radio.Config{StartBand: radio.Band80m})
	h.c.Toggle(FamilyBandSelect)

	i := h.keyIndex(t, "40m")
	if i != 3 {
		t.Fatalf("40m at index %d, want 3", i)
	}
	h.tap(t, i)
	if h.radio.Band() != radio.Band40m {
		t.Fatalf("Band = %d, want %d", h.radio.Band(), radio.Band40m)
	}

	h.c.RedrawIfChanged()
	if h.c.Passes() != 2 {
		t.Fatalf("Passes = %d, want 2", h.c.Passes())
	}
	d := h.c.Active()
	if st := d.State(h.c, i, d.Keys[i].ShortParam); st != StatePressed {
		t.Fatalf("40m state = %v, want pressed", st)
	}
	if st := d.State(h.c, 1, d.Keys[1].ShortParam); st != StateNormal {
		t.Fatalf("80m state = %v, want normal", st)
	}
}

func TestDispatchDisabledBand(t *testing.T) {
	h := newHarness(t, Res320x240, radio.Config{StartBand: radio.Band80m, DisabledBands: []int{radio.Band60m}})
	h.c.Toggle(FamilyBandSelect)

	i := h.keyIndex(t, "60m")
	d := h.c.Active()
	if st := d.State(h.c, i, d.Keys[i].ShortParam); st != StateDisabled {
		t.Fatalf("60m state = %v, want disabled", st)
	}
	h.tap(t, i)
	if h.radio.Band() != radio.Band80m {
		t.Fatalf("disabled band selected")
	}
}

func TestDispatchClaimsOnlyFullArea(t *testing.T) {
	h := newHarness(t, Res320x240, radio.Config{StartBand: radio.Band80m})
	if h.c.Dispatch(PointHit(10, 150), false) {
		t.Fatalf("hidden keypad claimed touch")
	}

	h.c.Toggle(FamilyBandSelect)
	if h.c.Dispatch(PointHit(10, 10), false) {
		t.Fatalf("touch above full area claimed")
	}
	if !h.c.Dispatch(PointHit(h.full.X+1, h.full.Y+1), false) {
		t.Fatalf("touch inside full area not claimed")
	}
	if h.radio.Band() != radio.Band80m || h.c.Family() != FamilyBandSelect {
		t.Fatalf("touch between keys changed state")
	}
}

func TestLongPressFallsBackToShort(t *testing.T) {
	h := newHarness(t, Res320x240, radio.Config{StartBand: radio.Band80m})
	h.c.Toggle(FamilyBandSelect)
	h.c.Dispatch(h.center(t, h.keyIndex(t, "20m")), true)
	if h.radio.Band() != radio.Band20m {
		t.Fatalf("Band = %d, want %d", h.radio.Band(), radio.Band20m)
	}
}

func TestDSPMaskAndMode(t *testing.T) {
	h := newHarness(t, Res480x320, radio.Config{})
	h.c.Toggle(FamilyDSP)
	d := h.c.Active()

	if st := d.State(h.c, 1, d.Keys[1].ShortParam); st != StateDisabled {
		t.Fatalf("NR state = %v, want disabled", st)
	}
	h.tap(t, 1)
	if h.radio.DSPMode() != radio.DSPSwitchOff {
		t.Fatalf("masked mode selected")
	}

	passes := h.c.Passes()
	h.c.Dispatch(h.center(t, 1), true)
	if h.radio.DSPModeMask()&(1<<1) == 0 {
		t.Fatalf("long press did not enable NR")
	}
	if h.c.Passes() != passes {
		t.Fatalf("mask toggle redrew before the next redraw pass")
	}
	h.c.RedrawIfChanged()
	if h.c.Passes() != passes+1 {
		t.Fatalf("mask change did not force a redraw")
	}

	h.tap(t, 1)
	if h.radio.DSPMode() != radio.DSPSwitchNR {
		t.Fatalf("DSPMode = %d, want NR", h.radio.DSPMode())
	}
	if st := d.State(h.c, 1, d.Keys[1].ShortParam); st != StatePressed {
		t.Fatalf("NR state = %v, want pressed", st)
	}

	h.tap(t, 0)
	if h.radio.DSPMode() != radio.DSPSwitchOff {
		t.Fatalf("DSP OFF not selected")
	}
}

func TestToggleUnknownFamily(t *testing.T) {
	h := newHarness(t, Res320x240, radio.Config{})
	h.c.Toggle(FamilyNone)
	if h.c.Shown() {
		t.Fatalf("FamilyNone shown")
	}
}
