// Package touch turns raw touch panel samples into short and long presses.
package touch

import (
	"time"

	"vkpad/hal"
)

// DefaultLongPress is the hold time after which a press counts as long.
const DefaultLongPress = 500 * time.Millisecond

// Press is one classified touch at the point where the finger went down.
type Press struct {
	X    int16
	Y    int16
	Long bool
}

// Classifier tracks one contact across samples.
//
// A long press is reported as soon as the hold time is reached, while the finger is
// still down; the release that follows is swallowed. A release before that is a short
// press.
type Classifier struct {
	threshold uint64

	down  bool
	fired bool
	start uint64
	x, y  int16
}

// NewClassifier returns a classifier with the given long-press threshold.
func NewClassifier(longPress time.Duration) *Classifier {
	if longPress <= 0 {
		longPress = DefaultLongPress
	}
	return &Classifier{threshold: uint64(longPress / time.Millisecond)}
}

// Update feeds the sample taken at now (milliseconds) and returns a press if one
// completed.
func (c *Classifier) Update(p hal.TouchPoint, now uint64) (Press, bool) {
	switch {
	case p.Pressed && !c.down:
		c.down = true
		c.fired = false
		c.start = now
		c.x, c.y = p.X, p.Y
		return Press{}, false

	case p.Pressed:
		if c.fired || now-c.start < c.threshold {
			return Press{}, false
		}
		c.fired = true
		return Press{X: c.x, Y: c.y, Long: true}, true

	case c.down:
		c.down = false
		if c.fired {
			return Press{}, false
		}
		return Press{X: c.x, Y: c.y}, true
	}
	return Press{}, false
}

// Down reports whether a contact is being tracked.
func (c *Classifier) Down() bool { return c.down }
