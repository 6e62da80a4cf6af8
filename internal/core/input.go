package core

// Key is a movement key whose state is level-sensitive: it matters whether
// the key is held during a tick, not when it was pressed.
type Key uint8

const (
	KeyLeft Key = 1 << iota
	KeyRight
	KeyUp
	KeyJump
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyUp:
		return "Up"
	case KeyJump:
		return "Jump"
	default:
		return "Unknown"
	}
}

// KeySet is the set of movement keys held during a tick.
type KeySet uint8

// Has reports whether k is in the set.
func (s KeySet) Has(k Key) bool {
	return s&KeySet(k) != 0
}

// With returns the set with k added.
func (s KeySet) With(k Key) KeySet {
	return s | KeySet(k)
}

// Action is a discrete, edge-sensitive event: it fires once per physical
// press, never once per held frame.
type Action int

const (
	ActionNone    Action = iota
	ActionShoot          // S - fire a projectile
	ActionRestart        // R - restart after game over
	ActionPause          // P, Escape - pause/unpause
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionShoot:
		return "Shoot"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame is the input snapshot consumed by one simulation tick: the
// held movement keys plus the queue of action events since the last tick.
type InputFrame struct {
	Held    KeySet
	Actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Hold marks a movement key as held for this frame.
func (f *InputFrame) Hold(k Key) {
	f.Held = f.Held.With(k)
}

// IsHeld returns true if the movement key is held this frame.
func (f InputFrame) IsHeld(k Key) bool {
	return f.Held.Has(k)
}

// Push queues an action event.
func (f *InputFrame) Push(a Action) {
	if a == ActionNone {
		return
	}
	f.Actions = append(f.Actions, a)
}

// Has returns true if the action was queued at least once this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Count(a) > 0
}

// Count returns how many times the action was queued this frame.
func (f InputFrame) Count(a Action) int {
	n := 0
	for _, queued := range f.Actions {
		if queued == a {
			n++
		}
	}
	return n
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	f.Held = 0
	f.Actions = f.Actions[:0]
}

// Clone creates an independent copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := InputFrame{Held: f.Held}
	if len(f.Actions) > 0 {
		clone.Actions = append([]Action(nil), f.Actions...)
	}
	return clone
}
