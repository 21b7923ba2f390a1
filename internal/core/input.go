package core

// Action represents a semantic game action, abstracted from physical key
// presses. Games work with high-level intents rather than raw input.
type Action int

const (
	ActionNone     Action = iota
	ActionUp              // W, Up arrow - move the cell cursor up
	ActionDown            // S, Down arrow - move the cell cursor down
	ActionLeft            // A, Left arrow - move the cell cursor left
	ActionRight           // D, Right arrow - move the cell cursor right
	ActionTap             // Space - act on the cursor cell (place, upgrade, toggle)
	ActionSetStart        // Editor: move the spawn cell to the cursor
	ActionSetEnd          // Editor: move the exit cell to the cursor
	ActionSave            // Editor: write the level to disk
	ActionConfirm         // Enter - confirm selection in menu
	ActionBack            // B, Escape - go back to menu
	ActionRestart         // R key - restart after game over
	ActionQuit            // Q, Ctrl+C - exit game/session
	ActionPause           // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionTap:
		return "Tap"
	case ActionSetStart:
		return "SetStart"
	case ActionSetEnd:
		return "SetEnd"
	case ActionSave:
		return "Save"
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

// TapPos is a pointer tap location in screen cell coordinates.
// Games translate it to their own playfield coordinates.
type TapPos struct {
	X, Y int
}

// InputFrame represents the input state for a single simulation frame.
// It contains all actions triggered since the previous frame, plus an
// optional pointer tap.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	// Tap holds the screen cell of a pointer tap, if one occurred.
	Tap *TapPos
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

// SetTap records a pointer tap at the given screen cell.
func (f *InputFrame) SetTap(x, y int) {
	f.Tap = &TapPos{X: x, Y: y}
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions and the tap for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Tap = nil
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	if f.Tap != nil {
		tap := *f.Tap
		clone.Tap = &tap
	}
	return clone
}
