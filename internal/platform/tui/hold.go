package tui

import (
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// holdTracker turns key presses into held controls.
// Terminals report presses (and auto-repeat) but never releases. A first
// press holds its control for the repeat delay, long enough for the
// terminal's auto-repeat to start. Once repeats arrive each one renews the
// hold for the shorter repeat window.
type holdTracker struct {
	first   time.Duration
	repeat  time.Duration
	pressed map[core.Control]hold
}

type hold struct {
	at        time.Time
	repeating bool
}

func newHoldTracker(first, repeat time.Duration) *holdTracker {
	return &holdTracker{
		first:   first,
		repeat:  repeat,
		pressed: make(map[core.Control]hold),
	}
}

// Press records a press of c at time now. A press of a control that is
// already held counts as auto-repeat.
func (h *holdTracker) Press(c core.Control, now time.Time) {
	_, held := h.pressed[c]
	h.pressed[c] = hold{at: now, repeating: held}
}

// Expire forgets controls whose last press is older than their window
// and returns them in control order.
func (h *holdTracker) Expire(now time.Time) []core.Control {
	var released []core.Control
	for _, c := range core.Controls {
		p, ok := h.pressed[c]
		if !ok || now.Sub(p.at) < h.window(p) {
			continue
		}
		delete(h.pressed, c)
		released = append(released, c)
	}
	return released
}

func (h *holdTracker) window(p hold) time.Duration {
	if p.repeating {
		return h.repeat
	}
	return h.first
}

// Held reports whether c is currently tracked as held.
func (h *holdTracker) Held(c core.Control) bool {
	_, ok := h.pressed[c]
	return ok
}

// Reset forgets every press.
func (h *holdTracker) Reset() {
	clear(h.pressed)
}
