package keypad

const resolutionCount = 2

// registry is filled by init so that handlers reaching Lookup do not form an
// initialization cycle with the tables that reference them.
var registry [familyCount][resolutionCount]*Descriptor

func init() {
	registry[FamilyDSP][Res320x240] = dsp320x240
	registry[FamilyDSP][Res480x320] = dsp480x320
	registry[FamilyBandSelect][Res320x240] = bandSel320x240
	registry[FamilyBandSelect][Res480x320] = bandSel480x320
	registry[FamilyFreqEntry][Res320x240] = freqSet320x240
	registry[FamilyFreqEntry][Res480x320] = freqSet480x320

	for _, d := range All() {
		if err := Validate(d); err != nil {
			panic(err)
		}
	}
}

// Lookup returns the size variant of family f for resolution r, or nil.
func Lookup(f Family, r Resolution) *Descriptor {
	if f >= familyCount || int(r) >= resolutionCount {
		return nil
	}
	return registry[f][r]
}

// All returns every registered descriptor.
func All() []*Descriptor {
	var out []*Descriptor
	for f := range registry {
		for _, d := range registry[f] {
			if d != nil {
				out = append(out, d)
			}
		}
	}
	return out
}
