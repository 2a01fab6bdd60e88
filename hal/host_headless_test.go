//go:build !tinygo

package hal

import (
	"context"
	"testing"
	"time"
)

func TestApplyScript(t *testing.T) {
	vt := NewVirtualTouch()
	script := []ScriptedTouch{{At: 2, Hold: 3, X: 10, Y: 20}}

	want := []bool{false, false, true, true, true, false}
	for tick, pressed := range want {
		applyScript(vt, script, uint64(tick))
		if got := vt.Read().Pressed; got != pressed {
			t.Fatalf("tick %d: pressed = %v, want %v", tick, got, pressed)
		}
	}
}

func TestRunHeadlessStopsAfterTicks(t *testing.T) {
	var steps int
	var lastMs uint64
	err := RunHeadless(context.Background(), Options{Width: 320, Height: 240}, func(h HAL) func() error {
		if w := h.Display().Framebuffer().Width(); w != 320 {
			t.Fatalf("framebuffer width = %d, want 320", w)
		}
		return func() error {
			steps++
			lastMs = h.Time().Millis()
			return nil
		}
	}, HeadlessConfig{Hz: 1000, Ticks: 5})
	if err != nil {
		t.Fatalf("RunHeadless = %v", err)
	}
	if steps != 5 {
		t.Fatalf("steps = %d, want 5", steps)
	}
	if lastMs != 5 {
		t.Fatalf("clock = %d ms, want 5", lastMs)
	}
}

func TestHostTimeAdvance(t *testing.T) {
	ht := newHostTime()
	ht.advance(16 * time.Millisecond)
	ht.advance(-time.Second)
	if ht.Millis() != 16 {
		t.Fatalf("Millis = %d, want 16", ht.Millis())
	}
}
