package core

import "strings"

// Control is a logical game control, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Control int

const (
	ControlLeft    Control = iota // A, Left arrow - move ship left
	ControlRight                  // D, Right arrow - move ship right
	ControlUp                     // W, Up arrow
	ControlDown                   // S, Down arrow
	ControlFire                   // Space - fire
	ControlConfirm                // Enter - confirm menu selections

	numControls
)

// Controls lists every control in declaration order.
var Controls = []Control{
	ControlLeft, ControlRight, ControlUp, ControlDown, ControlFire, ControlConfirm,
}

// String returns the lower-case name of the control.
func (c Control) String() string {
	switch c {
	case ControlLeft:
		return "left"
	case ControlRight:
		return "right"
	case ControlUp:
		return "up"
	case ControlDown:
		return "down"
	case ControlFire:
		return "fire"
	case ControlConfirm:
		return "confirm"
	default:
		return "unknown"
	}
}

// ParseControl resolves a control by name. Unknown names report false.
func ParseControl(name string) (Control, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, c := range Controls {
		if c.String() == name {
			return c, true
		}
	}
	return 0, false
}

func (c Control) valid() bool {
	return c >= 0 && c < numControls
}

// InputState records which controls are held.
// It is a value type: a snapshot handed to the simulation cannot be used to
// mutate the manager it came from.
type InputState [numControls]bool

// Held reports whether the control is held.
func (s InputState) Held(c Control) bool {
	if !c.valid() {
		return false
	}
	return s[c]
}

// With returns a copy of the state with the given controls held.
func (s InputState) With(controls ...Control) InputState {
	for _, c := range controls {
		if c.valid() {
			s[c] = true
		}
	}
	return s
}

// Any reports whether any of the given controls is held.
func (s InputState) Any(controls ...Control) bool {
	for _, c := range controls {
		if s.Held(c) {
			return true
		}
	}
	return false
}

// String lists held controls, e.g. "left+fire", or "none".
func (s InputState) String() string {
	var names []string
	for _, c := range Controls {
		if s[c] {
			names = append(names, c.String())
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "+")
}

// InputManager tracks which controls are currently held.
//
// The platform's key event handlers are its only writers; the frame update
// reads it once per frame through Snapshot. Writes are accepted only while
// the manager is bound, which brackets the lifetime of the key listeners.
type InputManager struct {
	held  InputState
	bound bool
}

// NewInputManager creates an unbound manager with nothing held.
func NewInputManager() *InputManager {
	return &InputManager{}
}

// Bind starts accepting input.
func (m *InputManager) Bind() {
	m.bound = true
}

// Unbind stops accepting input and releases every held control.
func (m *InputManager) Unbind() {
	m.bound = false
	m.held = InputState{}
}

// Bound reports whether the manager currently accepts input.
func (m *InputManager) Bound() bool {
	return m.bound
}

// SetHeld records the held status of a control. Last write wins; writes to
// an unbound manager and unknown controls are ignored.
func (m *InputManager) SetHeld(c Control, held bool) {
	if !m.bound || !c.valid() {
		return
	}
	m.held[c] = held
}

// Snapshot returns the current held state by value.
func (m *InputManager) Snapshot() InputState {
	return m.held
}
