package core

// Action represents a semantic game action, abstracted from physical key presses.
// The game works with high-level intents rather than raw input.
type Action int

const (
	ActionNone Action = iota
	// ActionJump is level-triggered: the platform sets it on every tick the
	// jump key is considered held. The game derives press/release edges by
	// comparing against the previous tick's state.
	ActionJump
	ActionRestart // R key - restart after game over
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionRestart:
		return "Restart"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// An empty frame is valid and means no input was observed this tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
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
