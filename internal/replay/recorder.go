// Package replay records runs as they are played and re-simulates them
// headlessly from their seed and per-tick input.
package replay

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-dragon/internal/core"
	"github.com/vovakirdan/flappy-dragon/internal/games/flappy"
	"github.com/vovakirdan/flappy-dragon/internal/storage"
)

// Sink receives finished runs. *storage.Store implements it.
type Sink interface {
	SaveRun(run storage.Run, ticks []core.InputFrame) (int64, error)
}

var _ Sink = (*storage.Store)(nil)

// Recorder watches the ticks a frontend feeds the game and journals every
// run from its first Playing tick to the tick that ends it.
// A nil sink makes Observe a no-op.
type Recorder struct {
	sink   Sink
	logger *log.Logger
	now    func() time.Time

	recording bool
	run       storage.Run
	ticks     []core.InputFrame
}

// NewRecorder creates a recorder that hands finished runs to sink.
func NewRecorder(sink Sink, logger *log.Logger) *Recorder {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Recorder{sink: sink, logger: logger, now: time.Now}
}

// Observe must be called after every State.Tick with the mode the game was
// in before the tick and the input it was given.
func (r *Recorder) Observe(before flappy.Mode, in core.InputFrame, g *flappy.State) {
	if r == nil || r.sink == nil {
		return
	}

	if before == flappy.ModePlaying && r.recording {
		r.ticks = append(r.ticks, in)
	}

	switch after := g.Mode(); {
	case before != flappy.ModePlaying && after == flappy.ModePlaying:
		r.start(g)
	case before == flappy.ModePlaying && after == flappy.ModeEnd:
		r.finish(g)
	}
}

// Recording reports whether a run is in progress.
func (r *Recorder) Recording() bool {
	return r != nil && r.recording
}

// Abandon drops the run in progress without journaling it. Frontends call it
// when the player interrupts a run that has not ended.
func (r *Recorder) Abandon() {
	if !r.Recording() {
		return
	}
	r.logger.Debug("run interrupted, not journaled", "seed", r.run.Seed, "ticks", len(r.ticks))
	r.recording = false
	r.ticks = nil
}

func (r *Recorder) start(g *flappy.State) {
	r.recording = true
	cfg := g.Config()
	r.run = storage.Run{Seed: g.RunSeed(), Cols: cfg.Cols, Rows: cfg.Rows, StartedAt: r.now()}
	r.ticks = nil
}

func (r *Recorder) finish(g *flappy.State) {
	if !r.recording {
		return
	}
	r.recording = false
	r.run.Distance = g.Player().X
	r.run.EndedAt = r.now()

	id, err := r.sink.SaveRun(r.run, r.ticks)
	if err != nil {
		r.logger.Warn("cannot journal run", "seed", r.run.Seed, "err", err)
		return
	}
	r.logger.Debug("run journaled", "id", id, "seed", r.run.Seed, "ticks", len(r.ticks), "distance", r.run.Distance)
}
