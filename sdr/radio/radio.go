// Package radio models the transceiver state the front panel reads and drives:
// band plan, two VFOs with per-band dial memory and the DSP processing mode.
package radio

import (
	"io"
	"log/slog"
)

// DSP function bits as reported by ActiveDSPFunctions.
const (
	DSPNREnable uint32 = 1 << iota
	DSPNotchEnable
	DSPMNotchEnable
	DSPMPeakEnable
)

// DSP switch modes.
const (
	DSPSwitchOff uint8 = iota
	DSPSwitchNR
	DSPSwitchNRAndNotch
	DSPSwitchNotch
	DSPSwitchNotchManual
	DSPSwitchPeakFilter

	DSPSwitchMax
)

// VFO selects one of the two oscillators.
type VFO uint8

const (
	VFOA VFO = iota
	VFOB
)

func (v VFO) String() string {
	if v == VFOB {
		return "B"
	}
	return "A"
}

type vfoState struct {
	enabled [NumBands]bool
	dial    [NumBands]uint32
}

// Config is the initial radio state.
type Config struct {
	TuneMult      uint32
	StartBand     int
	StartFreq     uint32
	DSPModeMask   uint32
	SPIDisplay    bool
	DisabledBands []int
}

// Radio is the in-memory transceiver model.
type Radio struct {
	vfo    [2]vfoState
	active VFO
	band   int

	dspMode    uint8
	dspMask    uint32
	spiDisplay bool
	tuneMult   uint32

	log *slog.Logger
}

// New returns a radio tuned according to cfg.
func New(cfg Config, log *slog.Logger) *Radio {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	r := &Radio{
		dspMask:    cfg.DSPModeMask,
		spiDisplay: cfg.SPIDisplay,
		tuneMult:   cfg.TuneMult,
		log:        log,
	}
	if r.tuneMult == 0 {
		r.tuneMult = 1
	}
	for v := range r.vfo {
		for b := 0; b < NumBands; b++ {
			r.vfo[v].enabled[b] = true
			r.vfo[v].dial[b] = DefaultFrequency(b)
		}
		for _, b := range cfg.DisabledBands {
			if b >= 0 && b < NumBands {
				r.vfo[v].enabled[b] = false
			}
		}
	}

	if cfg.StartBand >= 0 && cfg.StartBand < NumBands {
		r.band = cfg.StartBand
	}
	if cfg.StartFreq != 0 && bandTable[r.band].Contains(cfg.StartFreq) {
		r.vfo[VFOA].dial[r.band] = cfg.StartFreq
		r.vfo[VFOB].dial[r.band] = cfg.StartFreq
	}
	return r
}

func (r *Radio) Bands() int       { return NumBands }
func (r *Radio) Band() int        { return r.band }
func (r *Radio) ActiveVFO() VFO   { return r.active }
func (r *Radio) TuneMult() uint32 { return r.tuneMult }

// BandName returns the display name of band b.
func (r *Radio) BandName(b int) string {
	info, ok := Band(b)
	if !ok {
		return "?"
	}
	return info.Name
}

// BandEnabled reports whether band b may be selected on the active VFO.
func (r *Radio) BandEnabled(b int) bool {
	if b < 0 || b >= NumBands {
		return false
	}
	return r.vfo[r.active].enabled[b]
}

// SetBandEnabled changes the band enable flag on both VFOs.
func (r *Radio) SetBandEnabled(b int, on bool) {
	if b < 0 || b >= NumBands {
		return
	}
	for v := range r.vfo {
		r.vfo[v].enabled[b] = on
	}
}

// FreqInBand reports whether hz belongs to band b.
func (r *Radio) FreqInBand(b int, hz uint32) bool {
	info, ok := Band(b)
	return ok && info.Contains(hz)
}

// Frequency returns the dial frequency of the active VFO.
func (r *Radio) Frequency() uint32 {
	return r.vfo[r.active].dial[r.band]
}

// BandFrequency returns the dial memory of band b on the active VFO.
func (r *Radio) BandFrequency(b int) uint32 {
	if b < 0 || b >= NumBands {
		return 0
	}
	return r.vfo[r.active].dial[b]
}

// SetBandFrequency stores hz as the dial memory of band b on the active VFO.
func (r *Radio) SetBandFrequency(b int, hz uint32) {
	if b < 0 || b >= NumBands {
		return
	}
	r.vfo[r.active].dial[b] = hz
}

// SelectBand switches the active VFO to band b, recalling its dial memory.
func (r *Radio) SelectBand(b int) {
	if b < 0 || b >= NumBands {
		return
	}
	if b != r.band {
		r.log.Debug("band change", "vfo", r.active.String(), "from", r.BandName(r.band), "to", r.BandName(b))
	}
	r.band = b
}

// SwapVFO makes the other VFO active.
func (r *Radio) SwapVFO() {
	r.active ^= 1
}

func (r *Radio) DSPMode() uint8      { return r.dspMode }
func (r *Radio) DSPModeMask() uint32 { return r.dspMask }
func (r *Radio) DSPWarning() bool    { return r.spiDisplay }

// SetDSPMode selects a DSP switch mode.
func (r *Radio) SetDSPMode(mode uint8) {
	if mode >= DSPSwitchMax {
		return
	}
	r.dspMode = mode
}

// ToggleDSPMask flips whether DSP key bit may be selected.
func (r *Radio) ToggleDSPMask(bit int) {
	if bit < 0 || bit >= 32 {
		return
	}
	r.dspMask ^= 1 << uint(bit)
}

// ActiveDSPFunctions returns the DSP function bits implied by the current mode.
func (r *Radio) ActiveDSPFunctions() uint32 {
	switch r.dspMode {
	case DSPSwitchNR:
		return DSPNREnable
	case DSPSwitchNRAndNotch:
		return DSPNREnable | DSPNotchEnable
	case DSPSwitchNotch:
		return DSPNotchEnable
	case DSPSwitchNotchManual:
		return DSPMNotchEnable
	case DSPSwitchPeakFilter:
		return DSPMPeakEnable
	default:
		return 0
	}
}

// DSPModeName is a short label for the status line.
func DSPModeName(mode uint8) string {
	switch mode {
	case DSPSwitchNR:
		return "NR"
	case DSPSwitchNRAndNotch:
		return "NR+NOTCH"
	case DSPSwitchNotch:
		return "NOTCH"
	case DSPSwitchNotchManual:
		return "MNOTCH"
	case DSPSwitchPeakFilter:
		return "PEAK"
	default:
		return "DSP OFF"
	}
}
