package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space, W, Up - flap upward
	ActionLeft           // A, Left arrow - move left
	ActionRight          // D, Right arrow - move right
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// IsMovement reports whether the action is one the simulation reacts to while held.
func (a Action) IsMovement() bool {
	return a == ActionJump || a == ActionLeft || a == ActionRight
}

// InputFrame represents the actions triggered during one simulation tick.
// It carries edge-triggered actions (pause, restart); held movement keys
// live in HeldKeys.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// HeldKeys is the ordered set of actions currently held down.
// Order is press order; consumers that let later keys override earlier
// ones rely on it.
type HeldKeys []Action

// Press adds a to the set if it is not already held.
func (h *HeldKeys) Press(a Action) {
	if h.Has(a) {
		return
	}
	*h = append(*h, a)
}

// Release removes a from the set, keeping the order of the rest.
func (h *HeldKeys) Release(a Action) {
	kept := (*h)[:0]
	for _, k := range *h {
		if k != a {
			kept = append(kept, k)
		}
	}
	*h = kept
}

// Has returns true if a is held.
func (h HeldKeys) Has(a Action) bool {
	for _, k := range h {
		if k == a {
			return true
		}
	}
	return false
}

// Clone returns an independent copy of the set.
func (h HeldKeys) Clone() HeldKeys {
	if h == nil {
		return nil
	}
	clone := make(HeldKeys, len(h))
	copy(clone, h)
	return clone
}
