package keypad

// memoStale is never produced by any change signal.
const memoStale = ^uint32(0)

// memo caches the last rendered change signal per keypad family.
type memo struct {
	last [familyCount]uint32
}

func newMemo() memo {
	var m memo
	for i := range m.last {
		m.last[i] = memoStale
	}
	return m
}

func (m *memo) invalidate(f Family) {
	if f < familyCount {
		m.last[f] = memoStale
	}
}

// update stores v and reports whether it differs from the cached value.
func (m *memo) update(f Family, v uint32) bool {
	if f >= familyCount {
		return true
	}
	if m.last[f] == v {
		return false
	}
	m.last[f] = v
	return true
}
