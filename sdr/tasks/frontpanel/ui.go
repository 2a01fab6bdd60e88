package frontpanel

import (
	"log/slog"

	"vkpad/hal"
	"vkpad/kernel"
	"vkpad/sdr/keypad"
	"vkpad/sdr/radio"
	"vkpad/sdr/spectrum"
	"vkpad/sdr/touch"
)

// Presenter flushes the drawn frame to the panel.
type Presenter interface {
	Display() error
}

// UI owns the screen: it routes presses to the keypad controller, redraws what changed
// and advances the waterfall.
type UI struct {
	ctrl   *keypad.Controller
	radio  *radio.Radio
	view   *spectrum.View
	status *spectrum.Status
	layout spectrum.Layout
	out    Presenter
	in     kernel.Capability
	log    *slog.Logger

	presentErr error
}

// UIConfig bundles the collaborators of the UI task.
type UIConfig struct {
	Controller *keypad.Controller
	Radio      *radio.Radio
	View       *spectrum.View
	Status     *spectrum.Status
	Layout     spectrum.Layout
	Presenter  Presenter
	Inbox      kernel.Capability
	Log        *slog.Logger
}

func NewUI(cfg UIConfig) *UI {
	return &UI{
		ctrl:   cfg.Controller,
		radio:  cfg.Radio,
		view:   cfg.View,
		status: cfg.Status,
		layout: cfg.Layout,
		out:    cfg.Presenter,
		in:     cfg.Inbox,
		log:    cfg.Log,
	}
}

// Err returns the error of the last frame flush, or nil.
func (t *UI) Err() error { return t.presentErr }

func (t *UI) Step(ctx *kernel.Context) {
	for {
		msg, ok := ctx.TryRecv(t.in)
		if !ok {
			break
		}
		t.handle(&msg)
	}

	t.ctrl.RedrawIfChanged()
	t.status.Update()
	t.view.Step()

	if t.out != nil {
		err := t.out.Display()
		if err != nil && t.presentErr == nil {
			t.log.Error("present failed", "err", err)
		}
		t.presentErr = err
	}
	ctx.BlockOnTick()
}

func (t *UI) handle(msg *kernel.Message) {
	switch msg.Kind {
	case MsgPress:
		if p, ok := decodePress(msg.Payload()); ok {
			t.press(p)
		}
	case MsgKey:
		if code, ok := decodeKey(msg.Payload()); ok {
			t.key(code)
		}
	}
}

// press hands a touch to the keypad first; touches it does not claim fall through to
// the status line, which opens the band keypad (long press: the DSP keypad).
func (t *UI) press(p touch.Press) {
	if t.ctrl.Dispatch(keypad.PointHit(p.X, p.Y), p.Long) {
		return
	}
	if !t.layout.StatusArea().Contains(p.X, p.Y) {
		return
	}
	if p.Long {
		t.ctrl.Toggle(keypad.FamilyDSP)
	} else {
		t.ctrl.Toggle(keypad.FamilyBandSelect)
	}
}

func (t *UI) key(code hal.KeyCode) {
	switch code {
	case hal.KeyF1:
		t.ctrl.Toggle(keypad.FamilyDSP)
	case hal.KeyF2:
		t.ctrl.Toggle(keypad.FamilyBandSelect)
	case hal.KeyF3:
		t.ctrl.Toggle(keypad.FamilyFreqEntry)
	case hal.KeyF4:
		t.radio.SwapVFO()
		t.log.Info("vfo swap", "vfo", t.radio.ActiveVFO().String())
		t.ctrl.Invalidate()
	case hal.KeyEscape:
		t.ctrl.Close()
	}
}
