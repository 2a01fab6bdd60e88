package keypad

import (
	"io"
	"log/slog"
)

// Controller owns the active keypad and the frequency-entry state.
//
// It is driven from one cooperative tick at a time and is not safe for concurrent use.
type Controller struct {
	env Env
	res Resolution

	active *Descriptor
	shown  bool
	memo   memo

	freq FreqEntry

	passes uint64
}

// New returns a controller with no keypad shown.
func New(env Env, res Resolution) *Controller {
	if env.Log == nil {
		env.Log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Controller{env: env, res: res, memo: newMemo()}
}

func (c *Controller) Env() *Env              { return &c.env }
func (c *Controller) Radio() Radio           { return c.env.Radio }
func (c *Controller) Resolution() Resolution { return c.res }
func (c *Controller) Shown() bool            { return c.shown }
func (c *Controller) Freq() *FreqEntry       { return &c.freq }
func (c *Controller) Passes() uint64         { return c.passes }

// Active returns the shown keypad, or nil.
func (c *Controller) Active() *Descriptor {
	if !c.shown {
		return nil
	}
	return c.active
}

// Family returns the family of the shown keypad, or FamilyNone.
func (c *Controller) Family() Family {
	if !c.shown || c.active == nil {
		return FamilyNone
	}
	return c.active.Family
}

// Toggle hides keypad f if it is shown, otherwise shows it in place of any other keypad.
func (c *Controller) Toggle(f Family) {
	if c.Family() == f {
		c.Close()
		return
	}

	d := Lookup(f, c.res)
	if d == nil {
		c.env.Log.Warn("keypad not available", "family", f.String(), "res", c.res.String())
		return
	}

	c.active = d
	c.memo.invalidate(f)
	if f == FamilyFreqEntry {
		c.freq.Reset()
	}

	// Clear resets the shown flag on the firmware side, so it always runs first.
	c.env.Spectrum.Clear()
	c.shown = true
	c.env.Log.Debug("keypad open", "keypad", d.Name)

	DrawBackground(c)
	if f == FamilyFreqEntry {
		c.updateFreqDisplay()
	}
	c.RedrawIfChanged()
}

// Close hides the shown keypad and hands the area back to the spectrum view.
func (c *Controller) Close() {
	if !c.shown {
		return
	}
	c.shown = false
	if c.active != nil {
		c.env.Log.Debug("keypad close", "keypad", c.active.Name)
		if c.active.Family == FamilyFreqEntry {
			c.freq.Reset()
		}
	}
	c.env.Spectrum.Init()
}

// RedrawIfChanged redraws the shown keypad when its change signal moved.
func (c *Controller) RedrawIfChanged() {
	if !c.shown || c.active == nil {
		return
	}
	f := c.active.Family
	if !c.memo.update(f, c.signal(f)) {
		return
	}
	c.Redraw()
}

// Redraw unconditionally redraws the keys of the shown keypad.
func (c *Controller) Redraw() {
	if !c.shown || c.active == nil {
		return
	}
	c.passes++
	DrawKeypad(c)
}

// Invalidate forces the next RedrawIfChanged to redraw the shown keypad.
func (c *Controller) Invalidate() {
	if c.active != nil {
		c.memo.invalidate(c.active.Family)
	}
}

// signal returns the value whose change requires a redraw of family f.
func (c *Controller) signal(f Family) uint32 {
	switch f {
	case FamilyDSP:
		return c.env.Radio.ActiveDSPFunctions()
	case FamilyBandSelect:
		return uint32(c.env.Radio.Band())
	case FamilyFreqEntry:
		v := uint32(c.freq.Len())
		if c.freq.BandChange() {
			v |= 1 << 8
		}
		return v
	default:
		return 0
	}
}

func (c *Controller) logDebug(msg string, args ...any) {
	c.env.Log.Debug(msg, args...)
}
