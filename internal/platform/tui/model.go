package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappy-dragon/internal/core"
	"github.com/vovakirdan/flappy-dragon/internal/games/flappy"
	"github.com/vovakirdan/flappy-dragon/internal/registry"
	"github.com/vovakirdan/flappy-dragon/internal/render"
	"github.com/vovakirdan/flappy-dragon/internal/replay"
)

func init() {
	registry.Register("tui", func() registry.Frontend { return Frontend{} })
}

// Frontend runs the game in the local terminal with Bubble Tea.
type Frontend struct{}

// ID implements registry.Frontend.
func (Frontend) ID() string { return "tui" }

// Title implements registry.Frontend.
func (Frontend) Title() string { return "Bubble Tea terminal (lipgloss colors)" }

// Run implements registry.Frontend.
func (Frontend) Run(ctx context.Context, s registry.Session) error {
	model := NewModel(s, lipgloss.DefaultRenderer())

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

// Model is the Bubble Tea model hosting one game.
type Model struct {
	game     *flappy.State
	console  *render.Console
	recorder *replay.Recorder
	keys     KeyMap
	help     help.Model
	styles   *Styles
	tickRate int
	lastTick time.Time
	pending  core.Action // latest recognised key since the previous tick
	width    int
	height   int
	quitting bool
}

// NewModel creates a model for the session, rendering through r.
func NewModel(s registry.Session, r *lipgloss.Renderer) Model {
	game, console, recorder := s.NewGame()

	return Model{
		game:     game,
		console:  console,
		recorder: recorder,
		keys:     NewKeyMap(s.Config.Keys),
		help:     help.New(),
		styles:   NewStyles(r),
		tickRate: s.Config.TickRate,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey remembers the latest game key until the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Interrupt) {
		m.recorder.Abandon()
		m.quitting = true
		return m, tea.Quit
	}

	if a := m.keys.Action(msg); a != core.ActionNone {
		m.pending = a
	}
	return m, nil
}

// handleTick feeds the game one input frame and schedules the next tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var elapsed float64
	if !m.lastTick.IsZero() {
		elapsed = max(0, float64(now.Sub(m.lastTick))/float64(time.Millisecond))
	}
	m.lastTick = now

	in := core.NewInputFrame(elapsed, m.pending)
	m.pending = core.ActionNone

	before := m.game.Mode()
	m.game.Tick(in, m.console)
	m.recorder.Observe(before, in, m.game)

	if m.game.Quitting() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.tickRate)
}

// Game returns the hosted game.
func (m Model) Game() *flappy.State {
	return m.game
}

// View renders the composed console, with the key help below it when the
// terminal has room.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	cols, rows := m.console.Cols(), m.console.Rows()
	if m.width > 0 && (m.width < cols || m.height < rows) {
		return fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d.\nResize or press ctrl+c to exit.",
			cols, rows, m.width, m.height)
	}

	view := RenderScreen(m.styles, m.console.Compose())
	if m.height == 0 || m.height > rows {
		view += "\n" + m.help.View(m.keys)
	}
	return view
}
