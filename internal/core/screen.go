package core

import (
	"strings"
)

// Cell is a single character position with its colors.
// A zero Cell (Rune == 0) is transparent when layers are composed.
type Cell struct {
	Rune rune
	Fg   Color
	Bg   Color
}

// Transparent reports whether the cell lets lower layers show through.
func (c Cell) Transparent() bool {
	return c.Rune == 0
}

// Screen is a 2D cell buffer for rendering game graphics.
// It decouples drawing from the terminal: the game draws runes and colors,
// the frontend handles actual display.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.cells = make([][]Cell, height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, width)
	}
	s.Clear()
	return s
}

// Width returns the screen width in cells.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in cells.
func (s *Screen) Height() int {
	return s.height
}

// Bounds returns the screen area as a rectangle at the origin.
func (s *Screen) Bounds() Rect {
	return NewRect(0, 0, s.width, s.height)
}

// Fill sets every cell to c.
func (s *Screen) Fill(c Cell) {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = c
		}
	}
}

// Clear fills the entire screen with spaces in default colors.
func (s *Screen) Clear() {
	s.Fill(Cell{Rune: ' '})
}

// ClearBg fills the entire screen with spaces on the given background.
func (s *Screen) ClearBg(bg Color) {
	s.Fill(Cell{Rune: ' ', Bg: bg})
}

// SetCell replaces the cell at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetCell(x, y int, c Cell) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = c
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates and transparent cells.
func (s *Screen) Get(x, y int) rune {
	c := s.GetCell(x, y)
	if c.Transparent() {
		return ' '
	}
	return c.Rune
}

// GetCell returns the cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{Rune: ' '}
	}
	return s.cells[y][x]
}

// DrawTextColor writes a string with explicit foreground and background colors.
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawTextColor(x, y int, fg, bg Color, text string) {
	i := 0
	for _, r := range text {
		s.SetCell(x+i, y, Cell{Rune: r, Fg: fg, Bg: bg})
		i++
	}
}

// DrawTextCentered draws text centered horizontally at the given y position.
func (s *Screen) DrawTextCentered(y int, text string) {
	n := len([]rune(text))
	s.DrawTextColor((s.width-n)/2, y, ColorWhite, ColorBlack, text)
}

// String converts the screen buffer to plain text, rows joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(s.Row(y))
	}
	return sb.String()
}

// Row returns the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for x := 0; x < s.width; x++ {
		sb.WriteRune(s.Get(x, y))
	}
	return sb.String()
}
