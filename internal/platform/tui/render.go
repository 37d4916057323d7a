package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// palette maps core colors to terminal colors. ColorDefault is left unset.
var palette = map[core.Color]lipgloss.Color{
	core.ColorBlack:       lipgloss.Color("0"),
	core.ColorNavy:        lipgloss.Color("#000080"),
	core.ColorWhite:       lipgloss.Color("7"),
	core.ColorBrightWhite: lipgloss.Color("15"),
}

type colorPair struct {
	fg, bg core.Color
}

// Styles caches one lipgloss style per fg/bg pair for a renderer.
// SSH sessions each get their own renderer and therefore their own Styles.
type Styles struct {
	renderer *lipgloss.Renderer
	cache    map[colorPair]lipgloss.Style
}

// NewStyles creates a style cache bound to r.
func NewStyles(r *lipgloss.Renderer) *Styles {
	return &Styles{renderer: r, cache: make(map[colorPair]lipgloss.Style)}
}

func (s *Styles) style(p colorPair) lipgloss.Style {
	if st, ok := s.cache[p]; ok {
		return st
	}
	st := s.renderer.NewStyle()
	if c, ok := palette[p.fg]; ok {
		st = st.Foreground(c)
	}
	if c, ok := palette[p.bg]; ok {
		st = st.Background(c)
	}
	s.cache[p] = st
	return st
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(styles *Styles, s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			colors := colorPair{cell.Fg, cell.Bg}

			// Collect consecutive cells with the same colors
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (colorPair{cell.Fg, cell.Bg}) != colors {
					break
				}
				run.WriteRune(s.Get(x, y))
				x++
			}

			sb.WriteString(styles.style(colors).Render(run.String()))
		}
	}
	return sb.String()
}
