package flappy

import "fmt"

// Mode is the top-level game state. Every switch over Mode must handle all
// three values; the default branches panic.
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
	ModeEnd
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "Menu"
	case ModePlaying:
		return "Playing"
	case ModeEnd:
		return "End"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}
