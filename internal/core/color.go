package core

// Color represents a foreground or background color for a screen cell.
// Frontends map these to their own palette (ANSI codes, tcell colors).
type Color uint8

// Palette used by the game and its HUD.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorNavy
	ColorWhite
	ColorBrightWhite
)

// Layer selects the drawing target of a draw call.
// The text layer is composed first, the sprite layer on top of it.
type Layer uint8

const (
	LayerText Layer = iota
	LayerSprite
)

// String returns a human-readable name for the layer.
func (l Layer) String() string {
	switch l {
	case LayerText:
		return "text"
	case LayerSprite:
		return "sprite"
	default:
		return "unknown"
	}
}
