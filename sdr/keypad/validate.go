package keypad

import (
	"errors"
	"fmt"
)

var (
	ErrBadGrid     = errors.New("bad grid")
	ErrTooManyKeys = errors.New("more keys than grid cells")
	ErrNoState     = errors.New("missing state query")
	ErrSpanOutside = errors.New("span leaves the grid")
	ErrSpanOverlap = errors.New("span overlaps another key")
)

// Validate checks the structural invariants of a keypad table.
//
// Every cell a key covers, including the cells of its span, must lie inside the grid and
// belong to no other key. This is what keeps key regions disjoint.
func Validate(d *Descriptor) error {
	if d == nil {
		return errors.New("keypad: nil descriptor")
	}
	if d.Rows <= 0 || d.Columns <= 0 || d.KeyWidth <= 0 || d.KeyHeight <= 0 || d.KeySpacing < 0 {
		return fmt.Errorf("keypad %s: %w", d.Name, ErrBadGrid)
	}
	if d.Count() > d.Rows*d.Columns {
		return fmt.Errorf("keypad %s: %d keys in %dx%d: %w", d.Name, d.Count(), d.Rows, d.Columns, ErrTooManyKeys)
	}
	if d.State == nil {
		return fmt.Errorf("keypad %s: %w", d.Name, ErrNoState)
	}

	owner := make([]int, d.Rows*d.Columns)
	for i := range owner {
		owner[i] = -1
	}
	for i := range d.Keys {
		row, col := GridPos(d, i)
		k := &d.Keys[i]
		if row+int(k.SpanY) >= d.Rows || col+int(k.SpanX) >= d.Columns {
			return fmt.Errorf("keypad %s: key %d: %w", d.Name, i, ErrSpanOutside)
		}
		for r := row; r <= row+int(k.SpanY); r++ {
			for c := col; c <= col+int(k.SpanX); c++ {
				cell := r*d.Columns + c
				if owner[cell] >= 0 {
					return fmt.Errorf("keypad %s: key %d and key %d: %w", d.Name, owner[cell], i, ErrSpanOverlap)
				}
				owner[cell] = i
			}
		}
	}
	return nil
}
