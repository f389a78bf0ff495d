package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionLeft              // A, Left arrow - walk left
	ActionRight             // D, Right arrow - walk right
	ActionJump              // Space, W, Up - jump
	ActionRegenerate        // R - build a fresh level
	ActionConfirm           // Enter - confirm selection, restart after a finished run
	ActionBack              // B - go back to menu
	ActionQuit              // Q, Esc, Ctrl+C - exit game/session
	ActionPause             // P - pause/unpause game
	ActionNote1             // 1..7 - sound toy notes
	ActionNote2
	ActionNote3
	ActionNote4
	ActionNote5
	ActionNote6
	ActionNote7
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionRegenerate:
		return "Regenerate"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	}
	if n, ok := a.Note(); ok {
		return "Note" + string(rune('1'+n))
	}
	return "Unknown"
}

// Note returns the zero-based note index for ActionNote1..ActionNote7.
func (a Action) Note() (int, bool) {
	if a < ActionNote1 || a > ActionNote7 {
		return 0, false
	}
	return int(a - ActionNote1), true
}

// NoteAction returns the action for a zero-based note index.
func NoteAction(i int) Action {
	return ActionNote1 + Action(i)
}

// InputFrame represents the input state during one simulation tick.
//
// Actions holds edges: keys pressed since the previous tick. Held holds
// keys that are down right now, which is what continuous movement reads.
type InputFrame struct {
	Actions map[Action]bool
	Held    map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Held:    make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Hold marks an action as currently held down.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// IsHeld returns true if the action is held down this frame.
func (f InputFrame) IsHeld(a Action) bool {
	if f.Held == nil {
		return false
	}
	return f.Held[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	for k := range f.Held {
		delete(f.Held, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	for k, v := range f.Held {
		clone.Held[k] = v
	}
	return clone
}
