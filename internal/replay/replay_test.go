package replay

import (
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/flappy-dragon/internal/core"
	"github.com/vovakirdan/flappy-dragon/internal/games/flappy"
	"github.com/vovakirdan/flappy-dragon/internal/storage"
)

type savedRun struct {
	run   storage.Run
	ticks []core.InputFrame
}

type fakeSink struct {
	runs []savedRun
	err  error
}

func (f *fakeSink) SaveRun(run storage.Run, ticks []core.InputFrame) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.runs = append(f.runs, savedRun{run: run, ticks: append([]core.InputFrame(nil), ticks...)})
	return int64(len(f.runs)), nil
}

func testConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = 7
	return cfg
}

// tick feeds one input to the game and the recorder, the way frontends do.
func tick(g *flappy.State, r *Recorder, in core.InputFrame) {
	before := g.Mode()
	g.Tick(in, discardCanvas{})
	r.Observe(before, in, g)
}

// playUntilDead starts a run and flaps every fifth tick until the dragon dies.
func playUntilDead(t *testing.T, g *flappy.State, r *Recorder) {
	t.Helper()

	tick(g, r, core.NewInputFrame(16, core.ActionPlay))
	for i := 0; i < 10_000 && g.Mode() == flappy.ModePlaying; i++ {
		action := core.ActionNone
		if i%5 == 0 {
			action = core.ActionFlap
		}
		tick(g, r, core.NewInputFrame(float64(20+i%70), action))
	}
	if g.Mode() != flappy.ModeEnd {
		t.Fatal("run did not end")
	}
}

func TestRecorderJournalsRun(t *testing.T) {
	sink := &fakeSink{}
	r := NewRecorder(sink, nil)
	g := flappy.New(testConfig(), flappy.DefaultHUD())

	tick(g, r, core.NewInputFrame(16, core.ActionNone))
	if r.Recording() {
		t.Fatal("menu ticks should not start a recording")
	}

	playUntilDead(t, g, r)

	if r.Recording() {
		t.Error("recording should stop when the run ends")
	}
	if len(sink.runs) != 1 {
		t.Fatalf("expected 1 journaled run, got %d", len(sink.runs))
	}

	saved := sink.runs[0]
	if saved.run.Seed != 7 {
		t.Errorf("Seed = %d, expected 7", saved.run.Seed)
	}
	if saved.run.Cols != 80 || saved.run.Rows != 50 {
		t.Errorf("grid = %dx%d, expected 80x50", saved.run.Cols, saved.run.Rows)
	}
	if saved.run.Distance != g.Player().X {
		t.Errorf("Distance = %d, expected %d", saved.run.Distance, g.Player().X)
	}
	if len(saved.ticks) == 0 || saved.ticks[0].Action != core.ActionFlap {
		t.Errorf("first recorded tick should be the first Playing tick, got %+v", saved.ticks)
	}
}

func TestRecorderIgnoresEndScreen(t *testing.T) {
	sink := &fakeSink{}
	r := NewRecorder(sink, nil)
	g := flappy.New(testConfig(), flappy.DefaultHUD())

	playUntilDead(t, g, r)
	for i := 0; i < 5; i++ {
		tick(g, r, core.NewInputFrame(16, core.ActionNone))
	}

	if len(sink.runs) != 1 || r.Recording() {
		t.Errorf("end screen ticks should not be journaled")
	}
}

func TestRecorderRestart(t *testing.T) {
	sink := &fakeSink{}
	r := NewRecorder(sink, nil)
	g := flappy.New(testConfig(), flappy.DefaultHUD())

	playUntilDead(t, g, r)
	playUntilDead(t, g, r)

	if len(sink.runs) != 2 {
		t.Fatalf("expected 2 journaled runs, got %d", len(sink.runs))
	}
	if len(sink.runs[0].ticks) != len(sink.runs[1].ticks) {
		t.Errorf("runs with the same seed and input should match: %d vs %d ticks",
			len(sink.runs[0].ticks), len(sink.runs[1].ticks))
	}
}

func TestRecorderTimestamps(t *testing.T) {
	sink := &fakeSink{}
	r := NewRecorder(sink, nil)
	start := time.UnixMilli(1_700_000_000_000)
	now := start
	r.now = func() time.Time {
		now = now.Add(time.Second)
		return now
	}

	playUntilDead(t, flappy.New(testConfig(), flappy.DefaultHUD()), r)

	run := sink.runs[0].run
	if !run.StartedAt.Equal(start.Add(time.Second)) || run.Duration() != time.Second {
		t.Errorf("timestamps = %v .. %v", run.StartedAt, run.EndedAt)
	}
}

func TestRecorderSinkErrorDoesNotStopPlay(t *testing.T) {
	sink := &fakeSink{err: errors.New("disk full")}
	r := NewRecorder(sink, nil)
	g := flappy.New(testConfig(), flappy.DefaultHUD())

	playUntilDead(t, g, r)

	if g.Mode() != flappy.ModeEnd || r.Recording() {
		t.Error("a failed save should leave the game on the end screen")
	}
}

func TestRecorderAbandon(t *testing.T) {
	sink := &fakeSink{}
	r := NewRecorder(sink, nil)
	g := flappy.New(testConfig(), flappy.DefaultHUD())

	tick(g, r, core.NewInputFrame(16, core.ActionPlay))
	tick(g, r, core.NewInputFrame(80, core.ActionNone))
	if !r.Recording() {
		t.Fatal("expected a run in progress")
	}

	r.Abandon()
	if r.Recording() {
		t.Error("abandoned run should stop recording")
	}

	for i := 0; i < 10_000 && g.Mode() == flappy.ModePlaying; i++ {
		tick(g, r, core.NewInputFrame(80, core.ActionNone))
	}
	if len(sink.runs) != 0 {
		t.Errorf("abandoned run was journaled: %+v", sink.runs)
	}

	var nilRecorder *Recorder
	nilRecorder.Abandon()
	if nilRecorder.Recording() {
		t.Error("nil recorder should never be recording")
	}
}

func TestNilSinkIsNoop(t *testing.T) {
	r := NewRecorder(nil, nil)
	g := flappy.New(testConfig(), flappy.DefaultHUD())

	playUntilDead(t, g, r)

	if r.Recording() {
		t.Error("a recorder without a sink should never record")
	}

	var nilRecorder *Recorder
	nilRecorder.Observe(flappy.ModeMenu, core.InputFrame{}, g)
}

func TestSimulateMatchesRecording(t *testing.T) {
	sink := &fakeSink{}
	r := NewRecorder(sink, nil)
	g := flappy.New(testConfig(), flappy.DefaultHUD())

	playUntilDead(t, g, r)

	saved := sink.runs[0]
	saved.run.TickCount = len(saved.ticks)

	res, ok := Verify(testConfig(), saved.run, saved.ticks)
	if !ok {
		t.Fatalf("Verify() = %+v, expected a match with %+v", res, saved.run)
	}
	if res.Score != g.DisplayScore() {
		t.Errorf("Score = %d, expected %d", res.Score, g.DisplayScore())
	}
}

func TestSimulateWithoutTicks(t *testing.T) {
	cfg := testConfig()

	a := Simulate(cfg, 1234, nil)
	if a.Seed != 1234 || a.Ended {
		t.Errorf("Simulate(no ticks) = %+v", a)
	}
	if a.Distance != flappy.StartX {
		t.Errorf("Distance = %d, expected %d before any step", a.Distance, flappy.StartX)
	}
}

func TestSimulateStopsAtEnd(t *testing.T) {
	ticks := make([]core.InputFrame, 500)
	for i := range ticks {
		ticks[i] = core.NewInputFrame(80, core.ActionNone)
	}

	res := Simulate(testConfig(), 3, ticks)
	if !res.Ended {
		t.Fatal("a dragon that never flaps should die")
	}
	if res.Ticks >= len(ticks) {
		t.Errorf("Ticks = %d, expected the replay to stop at the end of the run", res.Ticks)
	}
}

func TestVerifyUsesRecordedGrid(t *testing.T) {
	sink := &fakeSink{}
	r := NewRecorder(sink, nil)
	cfg := testConfig()
	cfg.Rows = 60

	playUntilDead(t, flappy.New(cfg, flappy.DefaultHUD()), r)

	saved := sink.runs[0]
	saved.run.TickCount = len(saved.ticks)
	if _, ok := Verify(testConfig(), saved.run, saved.ticks); !ok {
		t.Error("Verify() should replay on the recorded 80x60 grid")
	}
}

func TestVerifyDetectsMismatch(t *testing.T) {
	ticks := []core.InputFrame{core.NewInputFrame(80, core.ActionNone)}

	_, ok := Verify(testConfig(), storage.Run{Seed: 3, TickCount: 1, Distance: 6}, ticks)
	if ok {
		t.Error("a run that did not end should not verify")
	}
}
