package keypad

// Dispatch routes one classified touch to the key under it.
//
// The result reports whether the touch fell inside the full-screen area and must not be
// handled by other layers. Key regions are disjoint, so at most one key matches and the
// scan ends there; a handler may replace the active keypad.
func (c *Controller) Dispatch(hit HitTest, long bool) bool {
	if !c.shown || c.active == nil || hit == nil {
		return false
	}

	full := c.env.Layout.FullArea()
	claimed := hit(full)

	d := c.active
	for i := range d.Keys {
		if !hit(ButtonRegion(d, full, i)) {
			continue
		}
		k := &d.Keys[i]
		switch {
		case long && k.Long != nil:
			c.logDebug("keypad long press", "keypad", d.Name, "key", i)
			k.Long(c, i, k.LongParam)
		case k.Short != nil:
			c.logDebug("keypad short press", "keypad", d.Name, "key", i)
			k.Short(c, i, k.ShortParam)
		}
		break
	}
	return claimed
}
