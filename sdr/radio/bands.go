package radio

// Band indices. The order is the firmware's band memory order, which is also the order
// a frequency is matched against when searching for its band.
const (
	Band80m = iota
	Band60m
	Band40m
	Band30m
	Band20m
	Band17m
	Band15m
	Band12m
	Band10m
	Band6m
	Band4m
	Band2m
	Band70cm
	Band23cm
	Band2200m
	Band630m
	Band160m

	NumBands
)

// BandInfo describes one amateur band.
type BandInfo struct {
	Name string
	Low  uint32
	Size uint32
}

// Contains reports whether hz lies inside the band, both edges included.
func (b BandInfo) Contains(hz uint32) bool {
	return hz >= b.Low && uint64(hz) <= uint64(b.Low)+uint64(b.Size)
}

var bandTable = [NumBands]BandInfo{
	Band80m:   {Name: "80m", Low: 3_500_000, Size: 500_000},
	Band60m:   {Name: "60m", Low: 5_250_000, Size: 200_000},
	Band40m:   {Name: "40m", Low: 7_000_000, Size: 300_000},
	Band30m:   {Name: "30m", Low: 10_100_000, Size: 50_000},
	Band20m:   {Name: "20m", Low: 14_000_000, Size: 350_000},
	Band17m:   {Name: "17m", Low: 18_068_000, Size: 100_000},
	Band15m:   {Name: "15m", Low: 21_000_000, Size: 450_000},
	Band12m:   {Name: "12m", Low: 24_890_000, Size: 100_000},
	Band10m:   {Name: "10m", Low: 28_000_000, Size: 1_700_000},
	Band6m:    {Name: "6m", Low: 50_000_000, Size: 4_000_000},
	Band4m:    {Name: "4m", Low: 70_000_000, Size: 500_000},
	Band2m:    {Name: "2m", Low: 144_000_000, Size: 4_000_000},
	Band70cm:  {Name: "70cm", Low: 430_000_000, Size: 10_000_000},
	Band23cm:  {Name: "23cm", Low: 1_240_000_000, Size: 60_000_000},
	Band2200m: {Name: "2200m", Low: 135_700, Size: 2_100},
	Band630m:  {Name: "630m", Low: 472_000, Size: 7_000},
	Band160m:  {Name: "160m", Low: 1_800_000, Size: 200_000},
}

// Band returns the table entry of band b.
func Band(b int) (BandInfo, bool) {
	if b < 0 || b >= NumBands {
		return BandInfo{}, false
	}
	return bandTable[b], true
}

// BandByName returns the index of the band called name.
func BandByName(name string) (int, bool) {
	for i, b := range bandTable {
		if b.Name == name {
			return i, true
		}
	}
	return 0, false
}

// DefaultFrequency is the dial value a band starts at.
func DefaultFrequency(b int) uint32 {
	info, ok := Band(b)
	if !ok {
		return 0
	}
	return info.Low + info.Size/10
}
