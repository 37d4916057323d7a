package core

// Action represents a semantic game input, abstracted from physical key presses.
// Only three inputs are recognised by the game.
type Action int

const (
	ActionNone Action = iota
	ActionFlap        // Space - upward impulse while playing
	ActionPlay        // P - start a run from the menu or the end screen
	ActionQuit        // Q - exit from the menu or the end screen
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFlap:
		return "Flap"
	case ActionPlay:
		return "Play"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is everything the simulation receives for one render tick:
// the wall-clock time since the previous tick and at most one pressed key.
type InputFrame struct {
	ElapsedMs float64
	Action    Action
}

// NewInputFrame creates an input frame for one tick.
func NewInputFrame(elapsedMs float64, action Action) InputFrame {
	return InputFrame{ElapsedMs: elapsedMs, Action: action}
}

// Has returns true if the given action was pressed this tick.
func (f InputFrame) Has(a Action) bool {
	return a != ActionNone && f.Action == a
}
