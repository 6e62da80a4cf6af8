package tui

import "github.com/vovakirdan/tank-arena/internal/core"

// Terminals report key presses and auto-repeats but never releases. A fresh
// press is held long enough to bridge the OS repeat delay; once repeats
// arrive each one only extends the hold by the short repeat window.
const (
	DefaultRepeatDelayTicks = 40 // ~660ms at 60 ticks/s, the slowest common repeat delay
	DefaultHoldTicks        = 8  // Longer than the gap between two repeats
)

var movementKeys = [...]core.Key{core.KeyLeft, core.KeyRight, core.KeyUp, core.KeyJump}

// HoldTracker derives the held-key set from press and repeat events.
type HoldTracker struct {
	delay  int
	window int
	until  map[core.Key]uint64
}

// NewHoldTracker creates a tracker. delay is how long a fresh press is held
// while waiting for the first repeat, window how long each repeat extends
// the hold. Non-positive values select the defaults.
func NewHoldTracker(delay, window int) *HoldTracker {
	if window <= 0 {
		window = DefaultHoldTicks
	}
	if delay <= 0 {
		delay = DefaultRepeatDelayTicks
	}
	return &HoldTracker{
		delay:  max(delay, window),
		window: window,
		until:  make(map[core.Key]uint64, len(movementKeys)),
	}
}

// Press records a press or repeat of k at tick. Pressing one horizontal
// direction releases the other.
func (h *HoldTracker) Press(k core.Key, tick uint64) {
	switch k {
	case core.KeyLeft:
		delete(h.until, core.KeyRight)
	case core.KeyRight:
		delete(h.until, core.KeyLeft)
	}

	span := h.delay
	if until, ok := h.until[k]; ok && tick < until {
		// Still held, so this is a repeat
		span = h.window
	}
	h.until[k] = max(h.until[k], tick+uint64(span)) //#nosec G115 -- span is positive
}

// Held returns the keys still held at the given tick.
func (h *HoldTracker) Held(tick uint64) core.KeySet {
	var set core.KeySet
	for _, k := range movementKeys {
		if until, ok := h.until[k]; ok && tick < until {
			set = set.With(k)
		}
	}
	return set
}

// Release drops every held key, e.g. when the round is paused.
func (h *HoldTracker) Release() {
	clear(h.until)
}
