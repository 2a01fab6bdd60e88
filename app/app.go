// Package app wires the front panel together: kernel, display, radio model, waterfall,
// keypad controller and the two front-panel tasks.
package app

import (
	"fmt"
	"log/slog"
	"time"

	"vkpad/hal"
	"vkpad/internal/buildinfo"
	"vkpad/internal/config"
	"vkpad/kernel"
	"vkpad/sdr/gfx"
	"vkpad/sdr/keypad"
	"vkpad/sdr/radio"
	"vkpad/sdr/spectrum"
	"vkpad/sdr/tasks/frontpanel"
	"vkpad/sdr/touch"
)

// stepBudget bounds the task steps run per tick.
const stepBudget = 16

type system struct {
	h    hal.HAL
	k    *kernel.Kernel
	ui   *frontpanel.UI
	ctrl *keypad.Controller
}

// New builds the front panel on h and returns the function to call once per tick.
func New(h hal.HAL, cfg config.Config) func() error {
	return newSystem(h, cfg).step
}

// Run builds the front panel and ticks it forever at cfg.Hz (TinyGo entrypoint). Step
// errors are already logged by the UI task and do not stop the loop.
func Run(h hal.HAL, cfg config.Config) {
	step := New(h, cfg)
	hz := cfg.Hz
	if hz <= 0 {
		hz = 60
	}
	period := time.Second / time.Duration(hz)
	for {
		_ = step()
		time.Sleep(period)
	}
}

func newSystem(h hal.HAL, cfg config.Config) *system {
	level := new(slog.LevelVar)
	level.Set(cfg.Level())
	log := NewLogger(h.Logger(), level)
	log.Info("vkpad starting", append(buildinfo.Describe(), "res", cfg.Resolution)...)

	installPanicHandler(h)

	var fb hal.Framebuffer
	if disp := h.Display(); disp != nil {
		fb = disp.Framebuffer()
	}
	d := gfx.New(fb)
	layout := spectrum.NewLayout(cfg.Res())

	d.Clear(colorBlack)
	bootScreen(d, layout)
	_ = d.Display()

	r := radio.New(cfg.Radio(), log.With("component", "radio"))
	view := spectrum.New(d, layout, r)
	status := spectrum.NewStatus(d, layout, r)
	ctrl := keypad.New(keypad.Env{
		Painter:  d,
		Layout:   layout,
		Spectrum: view,
		Radio:    r,
		Log:      log.With("component", "keypad"),
	}, cfg.Res())

	view.Init()
	status.Update()

	k := kernel.New()
	ep := k.NewEndpoint(kernel.RightSend | kernel.RightRecv)
	k.AddTask(frontpanel.NewInput(h.Input(), touch.NewClassifier(cfg.LongPress()), ep.Restrict(kernel.RightSend), log.With("task", "input")))
	ui := frontpanel.NewUI(frontpanel.UIConfig{
		Controller: ctrl,
		Radio:      r,
		View:       view,
		Status:     status,
		Layout:     layout,
		Presenter:  d,
		Inbox:      ep.Restrict(kernel.RightRecv),
		Log:        log.With("task", "ui"),
	})
	k.AddTask(ui)

	return &system{h: h, k: k, ui: ui, ctrl: ctrl}
}

func (s *system) step() error {
	if kernel.InPanicMode() {
		return nil
	}
	var now uint64
	if t := s.h.Time(); t != nil {
		now = t.Millis()
	}
	s.k.Tick(now)
	s.k.RunUntilIdle(stepBudget)
	if err := s.ui.Err(); err != nil {
		return fmt.Errorf("present: %w", err)
	}
	return nil
}
