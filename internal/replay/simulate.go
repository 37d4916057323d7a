package replay

import (
	"github.com/vovakirdan/flappy-dragon/internal/core"
	"github.com/vovakirdan/flappy-dragon/internal/games/flappy"
	"github.com/vovakirdan/flappy-dragon/internal/storage"
)

// Result summarises a re-simulated run.
type Result struct {
	Seed     int64
	Ticks    int // recorded ticks consumed before the run ended
	Distance int // player X at the last tick
	Score    int // display score at the last tick
	Ended    bool
}

// Simulate replays a run headlessly: it starts a run with seed from the
// menu, then feeds ticks until they run out or the run ends.
func Simulate(cfg core.RuntimeConfig, seed int64, ticks []core.InputFrame) Result {
	g := flappy.New(cfg, flappy.DefaultHUD())
	g.SetSeed(seed)

	var dst discardCanvas
	g.Tick(core.NewInputFrame(0, core.ActionPlay), dst)

	res := Result{Seed: seed}
	for _, in := range ticks {
		if g.Mode() != flappy.ModePlaying {
			break
		}
		g.Tick(in, dst)
		res.Ticks++
	}

	res.Distance = g.Player().X
	res.Score = g.DisplayScore()
	res.Ended = g.Mode() == flappy.ModeEnd
	return res
}

// Verify replays a journaled run on the grid it was recorded on and reports
// whether it ends the way it was recorded: same tick, same distance.
func Verify(cfg core.RuntimeConfig, run storage.Run, ticks []core.InputFrame) (Result, bool) {
	if run.Cols > 0 && run.Rows > 0 {
		cfg.Cols, cfg.Rows = run.Cols, run.Rows
	}
	res := Simulate(cfg, run.Seed, ticks)
	ok := res.Ended && res.Ticks == run.TickCount && res.Distance == run.Distance
	return res, ok
}

// discardCanvas draws nothing.
type discardCanvas struct{}

func (discardCanvas) Clear(core.Layer)                                                {}
func (discardCanvas) ClearBg(core.Layer, core.Color)                                  {}
func (discardCanvas) DrawSprite(core.Layer, core.Rect, int, core.Color, int)          {}
func (discardCanvas) PrintCentered(core.Layer, int, string)                           {}
func (discardCanvas) PrintColor(core.Layer, int, int, core.Color, core.Color, string) {}

var _ flappy.Canvas = discardCanvas{}
