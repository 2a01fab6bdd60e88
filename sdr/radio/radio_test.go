package radio

import "testing"

func TestBandContainsEdges(t *testing.T) {
	b, ok := Band(Band80m)
	if !ok {
		t.Fatalf("Band(80m) missing")
	}
	if !b.Contains(3_500_000) || !b.Contains(4_000_000) {
		t.Fatalf("80m edges not contained")
	}
	if b.Contains(3_499_999) || b.Contains(4_000_001) {
		t.Fatalf("80m contains outside frequency")
	}
}

func TestBandByName(t *testing.T) {
	b, ok := BandByName("40m")
	if !ok || b != Band40m {
		t.Fatalf("BandByName(40m) = %d,%v, want %d,true", b, ok, Band40m)
	}
	if _, ok := BandByName("11m"); ok {
		t.Fatalf("BandByName(11m) found")
	}
}

func TestNewAppliesConfig(t *testing.T) {
	r := New(Config{
		StartBand:     Band20m,
		StartFreq:     14_074_000,
		DisabledBands: []int{Band60m, 99},
	}, nil)
	if r.Band() != Band20m {
		t.Fatalf("Band = %d, want %d", r.Band(), Band20m)
	}
	if r.Frequency() != 14_074_000 {
		t.Fatalf("Frequency = %d, want 14074000", r.Frequency())
	}
	if r.BandEnabled(Band60m) {
		t.Fatalf("60m enabled, want disabled")
	}
	if !r.BandEnabled(Band40m) {
		t.Fatalf("40m disabled, want enabled")
	}
	if r.TuneMult() != 1 {
		t.Fatalf("TuneMult = %d, want 1", r.TuneMult())
	}
}

func TestStartFreqOutsideBandIgnored(t *testing.T) {
	r := New(Config{StartBand: Band40m, StartFreq: 3_600_000}, nil)
	if r.Frequency() != DefaultFrequency(Band40m) {
		t.Fatalf("Frequency = %d, want default %d", r.Frequency(), DefaultFrequency(Band40m))
	}
}

func TestSelectBandRecallsDialMemory(t *testing.T) {
	r := New(Config{StartBand: Band80m}, nil)
	r.SetBandFrequency(Band40m, 7_100_000)
	r.SelectBand(Band40m)
	if r.Frequency() != 7_100_000 {
		t.Fatalf("Frequency = %d, want 7100000", r.Frequency())
	}
	r.SelectBand(Band80m)
	if r.Frequency() != DefaultFrequency(Band80m) {
		t.Fatalf("Frequency = %d, want %d", r.Frequency(), DefaultFrequency(Band80m))
	}
}

func TestVFOsKeepSeparateMemory(t *testing.T) {
	r := New(Config{StartBand: Band20m}, nil)
	r.SetBandFrequency(Band20m, 14_200_000)
	r.SwapVFO()
	if r.ActiveVFO() != VFOB {
		t.Fatalf("ActiveVFO = %v, want B", r.ActiveVFO())
	}
	if r.Frequency() == 14_200_000 {
		t.Fatalf("VFO B shares dial memory with VFO A")
	}
	r.SwapVFO()
	if r.Frequency() != 14_200_000 {
		t.Fatalf("VFO A Frequency = %d, want 14200000", r.Frequency())
	}
}

func TestActiveDSPFunctions(t *testing.T) {
	r := New(Config{}, nil)
	cases := []struct {
		mode uint8
		want uint32
	}{
		{DSPSwitchOff, 0},
		{DSPSwitchNR, DSPNREnable},
		{DSPSwitchNRAndNotch, DSPNREnable | DSPNotchEnable},
		{DSPSwitchNotch, DSPNotchEnable},
		{DSPSwitchNotchManual, DSPMNotchEnable},
		{DSPSwitchPeakFilter, DSPMPeakEnable},
	}
	for _, tc := range cases {
		r.SetDSPMode(tc.mode)
		if got := r.ActiveDSPFunctions(); got != tc.want {
			t.Fatalf("mode %d: ActiveDSPFunctions = %#x, want %#x", tc.mode, got, tc.want)
		}
	}
	r.SetDSPMode(DSPSwitchMax)
	if r.DSPMode() != DSPSwitchPeakFilter {
		t.Fatalf("out of range mode accepted: %d", r.DSPMode())
	}
}

func TestToggleDSPMask(t *testing.T) {
	r := New(Config{DSPModeMask: 0b0110}, nil)
	r.ToggleDSPMask(1)
	if r.DSPModeMask() != 0b0100 {
		t.Fatalf("mask = %#b, want 0b100", r.DSPModeMask())
	}
	r.ToggleDSPMask(1)
	r.ToggleDSPMask(40)
	if r.DSPModeMask() != 0b0110 {
		t.Fatalf("mask = %#b, want 0b110", r.DSPModeMask())
	}
}
