// Package config loads the front panel settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"vkpad/hal"
	"vkpad/sdr/keypad"
	"vkpad/sdr/radio"

	"github.com/BurntSushi/toml"
)

var (
	ErrResolution = errors.New("unknown resolution")
	ErrBand       = errors.New("unknown band")
	ErrLogLevel   = errors.New("unknown log level")
	ErrUnknownKey = errors.New("unknown key")
)

// Touch is one scripted press for headless runs.
type Touch struct {
	At   uint64 `toml:"at"`
	Hold uint64 `toml:"hold"`
	X    int16  `toml:"x"`
	Y    int16  `toml:"y"`
}

type Headless struct {
	Touch []Touch `toml:"touch"`
}

// Config is the decoded settings file.
type Config struct {
	Resolution  string `toml:"resolution"`
	LongPressMs int    `toml:"long_press_ms"`
	LogLevel    string `toml:"log_level"`
	Hz          int    `toml:"hz"`

	TuneMult      uint32   `toml:"tune_mult"`
	StartBand     string   `toml:"start_band"`
	StartFreq     uint32   `toml:"start_freq"`
	SPIDisplay    bool     `toml:"spi_display"`
	DSPModeMask   uint32   `toml:"dsp_mode_mask"`
	DisabledBands []string `toml:"disabled_bands"`

	Headless Headless `toml:"headless"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Resolution:  keypad.Res480x320.String(),
		LongPressMs: 500,
		LogLevel:    "info",
		Hz:          60,
		TuneMult:    1,
		StartBand:   "40m",
		DSPModeMask: 0x3E,
	}
}

// Load reads path over the defaults. Keys the file sets that Config does not know are
// an error.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("config %s: %w: %s", path, ErrUnknownKey, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every value that is parsed later.
func (c Config) Validate() error {
	if _, err := ParseResolution(c.Resolution); err != nil {
		return err
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if _, ok := radio.BandByName(c.StartBand); !ok {
		return fmt.Errorf("start_band %q: %w", c.StartBand, ErrBand)
	}
	for _, name := range c.DisabledBands {
		if _, ok := radio.BandByName(name); !ok {
			return fmt.Errorf("disabled_bands %q: %w", name, ErrBand)
		}
	}
	return nil
}

// ParseResolution accepts "320x240" or "480x320".
func ParseResolution(s string) (keypad.Resolution, error) {
	switch s {
	case keypad.Res320x240.String():
		return keypad.Res320x240, nil
	case keypad.Res480x320.String():
		return keypad.Res480x320, nil
	}
	return 0, fmt.Errorf("resolution %q: %w", s, ErrResolution)
}

// ParseLevel accepts the slog level names in any case.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("log_level %q: %w", s, ErrLogLevel)
	}
	return l, nil
}

// Res returns the parsed resolution; call Validate first.
func (c Config) Res() keypad.Resolution {
	r, _ := ParseResolution(c.Resolution)
	return r
}

// Level returns the parsed log level; call Validate first.
func (c Config) Level() slog.Level {
	l, _ := ParseLevel(c.LogLevel)
	return l
}

func (c Config) LongPress() time.Duration {
	return time.Duration(c.LongPressMs) * time.Millisecond
}

// HALOptions returns the panel size for the configured resolution.
func (c Config) HALOptions() hal.Options {
	if c.Res() == keypad.Res320x240 {
		return hal.Options{Width: 320, Height: 240}
	}
	return hal.Options{Width: 480, Height: 320}
}

// Radio returns the initial radio state.
func (c Config) Radio() radio.Config {
	rc := radio.Config{
		TuneMult:    c.TuneMult,
		StartFreq:   c.StartFreq,
		SPIDisplay:  c.SPIDisplay,
		DSPModeMask: c.DSPModeMask,
	}
	if b, ok := radio.BandByName(c.StartBand); ok {
		rc.StartBand = b
	}
	for _, name := range c.DisabledBands {
		if b, ok := radio.BandByName(name); ok {
			rc.DisabledBands = append(rc.DisabledBands, b)
		}
	}
	return rc
}

// Script returns the headless touch script.
func (c Config) Script() []hal.ScriptedTouch {
	var out []hal.ScriptedTouch
	for _, t := range c.Headless.Touch {
		out = append(out, hal.ScriptedTouch{At: t.At, Hold: t.Hold, X: t.X, Y: t.Y})
	}
	return out
}
