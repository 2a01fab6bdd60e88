package keypad

// Rect is a screen rectangle in pixels.
type Rect struct {
	X int16
	Y int16
	W int16
	H int16
}

// Contains reports whether the point lies inside r.
func (r Rect) Contains(x, y int16) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Overlaps reports whether r and o share at least one pixel.
func (r Rect) Overlaps(o Rect) bool {
	if r.W <= 0 || r.H <= 0 || o.W <= 0 || o.H <= 0 {
		return false
	}
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Grow enlarges r by dx on the left and right and by dy on the top and bottom.
func (r Rect) Grow(dx, dy int16) Rect {
	return Rect{X: r.X - dx, Y: r.Y - dy, W: r.W + 2*dx, H: r.H + 2*dy}
}

// GridPos maps a key index to its grid cell.
//
// This is the only place the index -> (row, col) formula lives.
func GridPos(d *Descriptor, index int) (row, col int) {
	row = index / d.Columns
	col = index - row*d.Columns
	return row, col
}

// PanelRegion returns the keypad area centered inside the full-screen drawing area.
func PanelRegion(d *Descriptor, full Rect) Rect {
	cols := int16(d.Columns)
	rows := int16(d.Rows)

	w := cols*d.KeyWidth + (cols-1)*d.KeySpacing
	h := rows*d.KeyHeight + (rows-1)*d.KeySpacing + d.TopMargin

	return Rect{
		X: full.X + full.W/2 - w/2,
		Y: full.Y + full.H/2 - h/2,
		W: w,
		H: h,
	}
}

// ButtonRegion returns the rectangle of key index.
//
// Spanning keys grow to the right and downwards over the neighbouring cells and the
// spacing between them; the index of the following key still advances by one.
func ButtonRegion(d *Descriptor, full Rect, index int) Rect {
	panel := PanelRegion(d, full)
	row, col := GridPos(d, index)

	k := &d.Keys[index]
	spanX := int16(k.SpanX)
	spanY := int16(k.SpanY)

	return Rect{
		X: panel.X + int16(col)*(d.KeyWidth+d.KeySpacing),
		Y: panel.Y + int16(row)*(d.KeyHeight+d.KeySpacing) + d.TopMargin,
		W: d.KeyWidth*(spanX+1) + d.KeySpacing*spanX,
		H: d.KeyHeight*(spanY+1) + d.KeySpacing*spanY,
	}
}

// BackgroundRegion returns the panel enlarged by the descriptor's background margins.
func BackgroundRegion(d *Descriptor, full Rect) Rect {
	return PanelRegion(d, full).Grow(d.BackgroundX, d.BackgroundY)
}
