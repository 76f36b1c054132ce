package tui

import (
	"time"

	"github.com/vovakirdan/flap/internal/core"
)

// HoldTracker turns key presses into held keys. Terminals report presses and
// auto-repeats but never releases, so a key counts as held for a window after
// its most recent press.
type HoldTracker struct {
	window  time.Duration
	pressed map[core.Action]time.Time
	order   core.HeldKeys
}

// NewHoldTracker creates a tracker with the given hold window.
func NewHoldTracker(window time.Duration) *HoldTracker {
	return &HoldTracker{
		window:  window,
		pressed: make(map[core.Action]time.Time),
	}
}

// Press records a press of a at now. The key moves to the end of the press
// order, so it wins over keys pressed before it.
func (h *HoldTracker) Press(a core.Action, now time.Time) {
	h.pressed[a] = now
	h.order.Release(a)
	h.order.Press(a)
}

// Held returns the keys still held at now, in press order.
// Keys whose window has run out are forgotten.
func (h *HoldTracker) Held(now time.Time) core.HeldKeys {
	for _, a := range h.order.Clone() {
		if now.Sub(h.pressed[a]) >= h.window {
			delete(h.pressed, a)
			h.order.Release(a)
		}
	}
	return h.order.Clone()
}

// Reset forgets every press.
func (h *HoldTracker) Reset() {
	clear(h.pressed)
	h.order = h.order[:0]
}
