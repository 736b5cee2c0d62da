package core

// Action is a semantic input, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Move cursor up
	ActionDown           // Move cursor down
	ActionLeft           // Move cursor left
	ActionRight          // Move cursor right
	ActionSelect         // Pick the ball under the cursor, or move it there
	ActionCancel         // Drop the current selection
	ActionRestart        // Start a new game
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
	case ActionSelect:
		return "Select"
	case ActionCancel:
		return "Cancel"
	case ActionRestart:
		return "Restart"
	default:
		return "Unknown"
	}
}
