// Package tcellui provides an alternative frontend drawing straight to a
// tcell screen, with its own event goroutine and tick ticker.
package tcellui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/flappy-dragon/internal/config"
	"github.com/vovakirdan/flappy-dragon/internal/core"
	"github.com/vovakirdan/flappy-dragon/internal/games/flappy"
	"github.com/vovakirdan/flappy-dragon/internal/registry"
	"github.com/vovakirdan/flappy-dragon/internal/render"
	"github.com/vovakirdan/flappy-dragon/internal/replay"
)

func init() {
	registry.Register("tcell", func() registry.Frontend { return Frontend{} })
}

// Frontend runs the game on a tcell screen.
type Frontend struct {
	// NewScreen opens the terminal screen. Nil uses tcell.NewScreen.
	NewScreen func() (tcell.Screen, error)
}

// ID implements registry.Frontend.
func (Frontend) ID() string { return "tcell" }

// Title implements registry.Frontend.
func (Frontend) Title() string { return "tcell terminal" }

// Run implements registry.Frontend.
func (f Frontend) Run(ctx context.Context, s registry.Session) error {
	newScreen := f.NewScreen
	if newScreen == nil {
		newScreen = tcell.NewScreen
	}

	screen, err := newScreen()
	if err != nil {
		return fmt.Errorf("tcellui: cannot create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("tcellui: cannot initialise screen: %w", err)
	}
	defer screen.Fini()

	return NewLoop(screen, s).Run(ctx)
}

// Loop hosts one game on an initialised screen.
type Loop struct {
	screen   tcell.Screen
	game     *flappy.State
	console  *render.Console
	recorder *replay.Recorder
	cfg      config.Config
	lastTick time.Time
	pending  core.Action
}

// NewLoop creates a loop for the session on screen.
func NewLoop(screen tcell.Screen, s registry.Session) *Loop {
	game, console, recorder := s.NewGame()
	return &Loop{
		screen:   screen,
		game:     game,
		console:  console,
		recorder: recorder,
		cfg:      s.Config,
	}
}

// Run ticks the game at the configured rate until the player quits, ctrl+c
// is pressed or ctx is cancelled.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(l.cfg.TickRate))
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := l.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			l.recorder.Abandon()
			return nil

		case ev := <-events:
			if l.HandleEvent(ev) {
				l.recorder.Abandon()
				return nil
			}

		case now := <-ticker.C:
			if l.Tick(now) {
				return nil
			}
			l.Draw()
		}
	}
}

// HandleEvent processes one terminal event. It returns true on ctrl+c.
func (l *Loop) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		name := KeyName(ev)
		if name == "ctrl+c" {
			return true
		}
		if a := l.cfg.ActionFor(name); a != core.ActionNone {
			l.pending = a
		}

	case *tcell.EventResize:
		l.screen.Sync()
	}
	return false
}

// Tick feeds the game one input frame. It returns true once the game quits.
func (l *Loop) Tick(now time.Time) bool {
	var elapsed float64
	if !l.lastTick.IsZero() {
		elapsed = max(0, float64(now.Sub(l.lastTick))/float64(time.Millisecond))
	}
	l.lastTick = now

	in := core.NewInputFrame(elapsed, l.pending)
	l.pending = core.ActionNone

	before := l.game.Mode()
	l.game.Tick(in, l.console)
	l.recorder.Observe(before, in, l.game)

	return l.game.Quitting()
}

// Draw copies the composed console to the screen.
func (l *Loop) Draw() {
	l.screen.Clear()

	w, h := l.screen.Size()
	cols, rows := l.console.Cols(), l.console.Rows()
	if w < cols || h < rows {
		msg := fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d", cols, rows, w, h)
		for i, r := range []rune(msg) {
			l.screen.SetContent(i, 0, r, nil, tcell.StyleDefault)
		}
		l.screen.Show()
		return
	}

	out := l.console.Compose()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			cell := out.GetCell(x, y)
			l.screen.SetContent(x, y, out.Get(x, y), nil, Style(cell.Fg, cell.Bg))
		}
	}
	l.screen.Show()
}

// Game returns the hosted game.
func (l *Loop) Game() *flappy.State {
	return l.game
}

// KeyName returns the key name used in the key configuration: the rune for
// printable keys, otherwise the lower-cased tcell name with "+" between
// modifier and key (e.g. "ctrl+c", "enter").
func KeyName(ev *tcell.EventKey) string {
	if ev.Key() == tcell.KeyRune {
		return string(ev.Rune())
	}
	if name, ok := tcell.KeyNames[ev.Key()]; ok {
		return strings.ToLower(strings.ReplaceAll(name, "-", "+"))
	}
	return ""
}

var colors = map[core.Color]tcell.Color{
	core.ColorDefault:     tcell.ColorDefault,
	core.ColorBlack:       tcell.ColorBlack,
	core.ColorNavy:        tcell.ColorNavy,
	core.ColorWhite:       tcell.ColorSilver,
	core.ColorBrightWhite: tcell.ColorWhite,
}

// Style converts a cell's colors to a tcell style.
func Style(fg, bg core.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(colors[fg]).Background(colors[bg])
}
