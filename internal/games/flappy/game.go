// Package flappy implements Flappy Dragon: a dragon flies through an endless
// cave of walls, flapping against gravity, until it hits a wall or falls out
// of the playfield.
package flappy

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// Simulation constants.
const (
	FrameDuration    = 75.0 // Milliseconds between fixed physics steps
	ScorePerObstacle = 0.05 // Score added for each wall column passed
)

// Canvas is the drawing boundary. Every call names its target layer.
type Canvas interface {
	Clear(layer core.Layer)
	ClearBg(layer core.Layer, bg core.Color)
	DrawSprite(layer core.Layer, dst core.Rect, z int, tint core.Color, index int)
	PrintCentered(layer core.Layer, y int, text string)
	PrintColor(layer core.Layer, x, y int, fg, bg core.Color, text string)
}

// HUD holds the texts that depend on the bootstrap configuration.
type HUD struct {
	Title   string
	FlapKey string
	PlayKey string
	QuitKey string
}

// DefaultHUD returns the texts for the default key bindings.
func DefaultHUD() HUD {
	return HUD{
		Title:   "Flappy Dragon",
		FlapKey: "SPACE",
		PlayKey: "P",
		QuitKey: "Q",
	}
}

// State is the whole simulation: player, wall columns, score, timing and mode.
type State struct {
	cfg       core.RuntimeConfig
	hud       HUD
	seeds     func() int64
	rng       *rand.Rand
	runSeed   int64
	player    Player
	frameTime float64    // Milliseconds accumulated since the last physics step
	frame     uint       // Animation counter, wraps
	obstacles []Obstacle // Ordered by ascending X; head is the next wall to pass
	mode      Mode
	score     float64
	quitting  bool
}

// New creates a game in the menu. A non-zero cfg.Seed makes every run use
// the same seed; otherwise each run draws a time-based seed.
func New(cfg core.RuntimeConfig, hud HUD) *State {
	s := &State{
		cfg:    cfg,
		hud:    hud,
		player: NewPlayer(StartX, StartY),
		mode:   ModeMenu,
	}

	if cfg.Seed != 0 {
		seed := cfg.Seed
		s.seeds = func() int64 { return seed }
	} else {
		s.seeds = func() int64 { return time.Now().UnixNano() }
	}
	return s
}

// SetSeed makes every following run use seed. Replays use it to rebuild a
// recorded run.
func (s *State) SetSeed(seed int64) {
	s.seeds = func() int64 { return seed }
}

// Tick advances the game by one render tick and draws it to dst.
func (s *State) Tick(in core.InputFrame, dst Canvas) {
	switch s.mode {
	case ModeMenu:
		s.mainMenu(in, dst)
	case ModePlaying:
		s.play(in, dst)
	case ModeEnd:
		s.dead(in, dst)
	default:
		panic(fmt.Sprintf("flappy: unreachable mode %v", s.mode))
	}
}

// Restart begins a new run with a freshly seeded generator.
func (s *State) Restart() {
	s.runSeed = s.seeds()
	s.rng = rand.New(rand.NewSource(s.runSeed))
	s.player = NewPlayer(StartX, StartY)
	s.frameTime = 0
	s.frame = 0
	s.obstacles = []Obstacle{
		NewObstacle(s.rng, s.player.X+s.cfg.Cols, s.cfg.Rows/2, 0),
	}
	s.mode = ModePlaying
	s.score = 0
}

func (s *State) mainMenu(in core.InputFrame, dst Canvas) {
	dst.Clear(core.LayerText)
	dst.PrintCentered(core.LayerText, 5, "Welcome to "+s.hud.Title)
	s.printChoices(dst)
	s.handleChoice(in)
}

func (s *State) dead(in core.InputFrame, dst Canvas) {
	dst.Clear(core.LayerSprite)
	dst.Clear(core.LayerText)
	dst.PrintCentered(core.LayerText, 5, "You are dead!")
	dst.PrintCentered(core.LayerText, 6, fmt.Sprintf("You earned %d points", s.DisplayScore()))
	s.printChoices(dst)
	s.handleChoice(in)
}

func (s *State) printChoices(dst Canvas) {
	dst.PrintCentered(core.LayerText, 8, fmt.Sprintf("(%s) Play Game", s.hud.PlayKey))
	dst.PrintCentered(core.LayerText, 9, fmt.Sprintf("(%s) Quit Game", s.hud.QuitKey))
}

func (s *State) handleChoice(in core.InputFrame) {
	switch in.Action {
	case core.ActionPlay:
		s.Restart()
	case core.ActionQuit:
		s.quitting = true
	}
}

func (s *State) play(in core.InputFrame, dst Canvas) {
	dst.ClearBg(core.LayerText, core.ColorNavy)

	s.frameTime += in.ElapsedMs
	if s.frameTime > FrameDuration {
		s.frameTime = 0
		s.frame++

		s.player.Advance()
		center := NextSeedGap(s.rng, s.tail().GapY, s.cfg.Rows)
		s.obstacles = append(s.obstacles, NewObstacle(s.rng, s.player.X+s.cfg.Cols, center, s.score))
	}

	if in.Has(core.ActionFlap) {
		s.player.Flap()
	}
	s.player.Render(dst, s.frame)

	if s.player.X > s.head().X {
		s.score += ScorePerObstacle
		s.obstacles = s.obstacles[1:]
	}

	lost := false
	for _, o := range s.obstacles {
		o.Render(dst, s.player.X, s.cfg.Rows)
		if s.player.Y > s.cfg.Rows || o.CollidesWith(s.player) {
			lost = true
		}
	}
	if lost {
		s.mode = ModeEnd
	}

	dst.PrintColor(core.LayerText, 0, 0, core.ColorWhite, core.ColorBlack,
		fmt.Sprintf("Press %s to flap.", s.hud.FlapKey))
	dst.PrintColor(core.LayerText, 0, 1, core.ColorWhite, core.ColorBlack,
		fmt.Sprintf("Score: %d", s.DisplayScore()))
}

// head returns the next wall to pass. An empty sequence is a defect.
func (s *State) head() Obstacle {
	if len(s.obstacles) == 0 {
		panic("flappy: unreachable: empty obstacle sequence")
	}
	return s.obstacles[0]
}

// tail returns the most recently spawned wall.
func (s *State) tail() Obstacle {
	if len(s.obstacles) == 0 {
		panic("flappy: unreachable: empty obstacle sequence")
	}
	return s.obstacles[len(s.obstacles)-1]
}

// Mode returns the current mode.
func (s *State) Mode() Mode {
	return s.mode
}

// Quitting reports whether the player asked to exit.
func (s *State) Quitting() bool {
	return s.quitting
}

// Score returns the raw accumulated score.
func (s *State) Score() float64 {
	return s.score
}

// DisplayScore returns the score truncated to an integer.
func (s *State) DisplayScore() int {
	return int(s.score)
}

// Player returns a copy of the player.
func (s *State) Player() Player {
	return s.player
}

// Obstacles returns a copy of the wall columns, head first.
func (s *State) Obstacles() []Obstacle {
	out := make([]Obstacle, len(s.obstacles))
	copy(out, s.obstacles)
	return out
}

// RunSeed returns the seed of the current (or last) run.
func (s *State) RunSeed() int64 {
	return s.runSeed
}

// Frame returns the animation counter.
func (s *State) Frame() uint {
	return s.frame
}

// Config returns the runtime configuration the game was created with.
func (s *State) Config() core.RuntimeConfig {
	return s.cfg
}
