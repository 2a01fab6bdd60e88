//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Hz      int
	Ticks   uint64
	Script  []ScriptedTouch
}

// RunHeadless runs the firmware without opening a window.
//
// The clock advances by exactly one tick period per tick so that scripted touches and
// long-press timing are reproducible.
func RunHeadless(ctx context.Context, opts Options, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}

	h := newHost(opts)
	step := newApp(h)

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			h.t.advance(d)
			applyScript(h.touch.VirtualTouch, cfg.Script, tick)
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}

func applyScript(vt *VirtualTouch, script []ScriptedTouch, tick uint64) {
	for _, s := range script {
		hold := s.Hold
		if hold == 0 {
			hold = 1
		}
		switch tick {
		case s.At:
			vt.Press(s.X, s.Y)
		case s.At + hold:
			vt.Release()
		}
	}
}
