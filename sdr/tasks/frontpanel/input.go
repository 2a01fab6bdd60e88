// Package frontpanel holds the two cooperative tasks that run the front panel: one
// samples the touch panel and keys, the other owns the screen.
package frontpanel

import (
	"log/slog"

	"vkpad/hal"
	"vkpad/kernel"
	"vkpad/sdr/touch"
)

// Input polls the touch panel and keyboard once per tick and forwards classified
// presses and key-downs to the UI task.
type Input struct {
	touch hal.Touch
	keys  hal.Keyboard
	cls   *touch.Classifier
	out   kernel.Capability
	log   *slog.Logger

	dropped uint64
}

func NewInput(in hal.Input, cls *touch.Classifier, out kernel.Capability, log *slog.Logger) *Input {
	t := &Input{cls: cls, out: out, log: log}
	if in != nil {
		t.touch = in.Touch()
		t.keys = in.Keyboard()
	}
	return t
}

func (t *Input) Dropped() uint64 { return t.dropped }

func (t *Input) Step(ctx *kernel.Context) {
	if t.touch != nil {
		if p, ok := t.cls.Update(t.touch.Read(), ctx.Now()); ok {
			t.send(ctx, MsgPress, encodePress(p))
		}
	}

	if t.keys != nil {
		if ch := t.keys.Events(); ch != nil {
		drain:
			for {
				select {
				case ev, ok := <-ch:
					if !ok {
						t.keys = nil
						break drain
					}
					if ev.Press {
						t.send(ctx, MsgKey, encodeKey(ev.Code))
					}
				default:
					break drain
				}
			}
		}
	}

	ctx.BlockOnTick()
}

func (t *Input) send(ctx *kernel.Context, kind uint16, payload []byte) {
	if res := ctx.Send(t.out, kind, payload); res != kernel.SendOK {
		t.dropped++
		t.log.Warn("input dropped", "kind", kind, "err", res.String())
	}
}
