package flappy

import (
	"testing"

	"github.com/vovakirdan/flappy-dragon/internal/core"
)

func testConfig(seed int64) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	return cfg
}

// step feeds one tick that crosses the fixed-step threshold.
func step(g *State, c Canvas, action core.Action) {
	g.Tick(core.NewInputFrame(FrameDuration+1, action), c)
}

func TestGameStartsInMenu(t *testing.T) {
	g := New(testConfig(1), DefaultHUD())
	c := &recordingCanvas{}

	g.Tick(core.NewInputFrame(16, core.ActionNone), c)

	if g.Mode() != ModeMenu {
		t.Fatalf("mode = %v, expected Menu", g.Mode())
	}
	if !c.printed("Welcome to Flappy Dragon") {
		t.Error("menu should print the welcome line")
	}
	if !c.printed("(P) Play Game") || !c.printed("(Q) Quit Game") {
		t.Error("menu should print the choices")
	}
}

func TestMenuQuitSetsExitFlagOnly(t *testing.T) {
	g := New(testConfig(1), DefaultHUD())
	before := *g

	g.Tick(core.NewInputFrame(16, core.ActionQuit), &recordingCanvas{})

	if !g.Quitting() {
		t.Fatal("quit in menu should set the exit flag")
	}
	if g.Mode() != ModeMenu {
		t.Errorf("mode = %v, expected Menu", g.Mode())
	}
	if g.Player() != before.player || len(g.Obstacles()) != 0 || g.Score() != 0 || g.RunSeed() != 0 {
		t.Error("quit should not mutate the simulation")
	}
}

func TestMenuIgnoresFlap(t *testing.T) {
	g := New(testConfig(1), DefaultHUD())

	g.Tick(core.NewInputFrame(100, core.ActionFlap), &recordingCanvas{})

	if g.Mode() != ModeMenu || g.Quitting() {
		t.Errorf("flap in menu should do nothing, mode = %v", g.Mode())
	}
}

func TestPlayStartsRun(t *testing.T) {
	g := New(testConfig(42), DefaultHUD())

	g.Tick(core.NewInputFrame(16, core.ActionPlay), &recordingCanvas{})

	if g.Mode() != ModePlaying {
		t.Fatalf("mode = %v, expected Playing", g.Mode())
	}

	p := g.Player()
	if p.X != 5 || p.Y != 25 || p.Velocity != 0 {
		t.Errorf("player = %+v, expected (5, 25) at rest", p)
	}

	obs := g.Obstacles()
	if len(obs) != 1 {
		t.Fatalf("expected a single obstacle, got %d", len(obs))
	}
	if obs[0].X != 85 {
		t.Errorf("first obstacle X = %d, expected 85", obs[0].X)
	}
	if obs[0].GapY < 20 || obs[0].GapY > 30 {
		t.Errorf("first obstacle GapY = %d, expected around 25", obs[0].GapY)
	}
	if obs[0].Size != 30 {
		t.Errorf("first obstacle Size = %d, expected 30", obs[0].Size)
	}
	if g.Score() != 0 {
		t.Errorf("score = %f, expected 0", g.Score())
	}
	if g.RunSeed() != 42 {
		t.Errorf("run seed = %d, expected 42", g.RunSeed())
	}
}

func TestRestartResetsToSameInitialState(t *testing.T) {
	fresh := New(testConfig(7), DefaultHUD())
	fresh.Restart()

	g := New(testConfig(7), DefaultHUD())
	c := &recordingCanvas{}
	g.Tick(core.NewInputFrame(0, core.ActionPlay), c)
	for i := 0; i < 200 && g.Mode() == ModePlaying; i++ {
		action := core.ActionNone
		if i%4 == 0 {
			action = core.ActionFlap
		}
		step(g, c, action)
	}
	g.Restart()

	if g.Player() != fresh.Player() {
		t.Errorf("player = %+v, expected %+v", g.Player(), fresh.Player())
	}
	if g.Score() != fresh.Score() || g.Mode() != fresh.Mode() || g.Frame() != fresh.Frame() {
		t.Errorf("score/mode/frame differ after restart")
	}
	if g.frameTime != 0 {
		t.Errorf("frame time accumulator = %f, expected 0", g.frameTime)
	}

	got, want := g.Obstacles(), fresh.Obstacles()
	if len(got) != len(want) || got[0] != want[0] {
		t.Errorf("obstacles = %+v, expected %+v", got, want)
	}
}

func TestFixedStepGate(t *testing.T) {
	g := New(testConfig(3), DefaultHUD())
	g.Restart()
	c := &recordingCanvas{}

	g.Tick(core.NewInputFrame(50, core.ActionNone), c)
	if g.Player().X != StartX || len(g.Obstacles()) != 1 {
		t.Fatal("no physics step should run below the threshold")
	}

	g.Tick(core.NewInputFrame(25, core.ActionNone), c)
	if g.Player().X != StartX {
		t.Fatal("exactly reaching the threshold is not enough; it must be exceeded")
	}

	g.Tick(core.NewInputFrame(1, core.ActionNone), c)
	if g.Player().X != StartX+1 {
		t.Fatalf("physics step should run once the threshold is exceeded, X = %d", g.Player().X)
	}
	if g.frameTime != 0 {
		t.Errorf("accumulator should reset to 0, got %f", g.frameTime)
	}
	if g.Frame() != 1 {
		t.Errorf("frame counter = %d, expected 1", g.Frame())
	}

	obs := g.Obstacles()
	if len(obs) != 2 {
		t.Fatalf("a new obstacle should spawn each step, have %d", len(obs))
	}
	if obs[1].X != g.Player().X+80 {
		t.Errorf("spawned obstacle X = %d, expected one screen ahead (%d)", obs[1].X, g.Player().X+80)
	}
	if obs[1].GapY < 20-GapJitter || obs[1].GapY > 30+GapJitter {
		t.Errorf("spawned obstacle GapY = %d out of range", obs[1].GapY)
	}
}

func TestFlapIsSampledEveryTick(t *testing.T) {
	g := New(testConfig(3), DefaultHUD())
	g.Restart()

	g.Tick(core.NewInputFrame(1, core.ActionFlap), &recordingCanvas{})

	if g.Player().Velocity != FlapVelocity {
		t.Errorf("flap should apply without a physics step, velocity = %f", g.Player().Velocity)
	}
	if g.Player().X != StartX {
		t.Error("flap tick should not advance physics")
	}
}

func TestPassingHeadObstacleScores(t *testing.T) {
	g := New(testConfig(3), DefaultHUD())
	g.Restart()
	g.player = Player{X: 86, Y: 25}
	g.obstacles = []Obstacle{
		{X: 85, GapY: 25, Size: 30},
		{X: 120, GapY: 25, Size: 30},
	}

	g.Tick(core.NewInputFrame(0, core.ActionNone), &recordingCanvas{})

	if g.Score() != ScorePerObstacle {
		t.Errorf("score = %f, expected %f", g.Score(), ScorePerObstacle)
	}
	obs := g.Obstacles()
	if len(obs) != 1 || obs[0].X != 120 {
		t.Errorf("head should be removed, obstacles = %+v", obs)
	}
}

func TestHeadNotRemovedUntilPassed(t *testing.T) {
	g := New(testConfig(3), DefaultHUD())
	g.Restart()
	g.player = Player{X: 85, Y: 25}
	g.obstacles = []Obstacle{{X: 85, GapY: 25, Size: 30}}

	g.Tick(core.NewInputFrame(0, core.ActionNone), &recordingCanvas{})

	if g.Score() != 0 || len(g.Obstacles()) != 1 {
		t.Error("obstacle at the player's column has not been passed yet")
	}
}

func TestFallingEndsRun(t *testing.T) {
	g := New(testConfig(11), DefaultHUD())
	g.Restart()
	c := &recordingCanvas{}

	prevY := g.Player().Y
	for i := 0; i < 50 && g.Mode() == ModePlaying; i++ {
		step(g, c, core.ActionNone)
		y := g.Player().Y
		if y < prevY {
			t.Fatalf("step %d: player rose without flapping (%d -> %d)", i, prevY, y)
		}
		prevY = y
	}

	if g.Mode() != ModeEnd {
		t.Fatalf("50 steps without flapping should end the run, mode = %v", g.Mode())
	}
}

func TestOutOfBoundsEndsRun(t *testing.T) {
	g := New(testConfig(5), DefaultHUD())
	g.Restart()
	g.player.Y = 51

	c := &recordingCanvas{}
	g.Tick(core.NewInputFrame(0, core.ActionNone), c)

	if g.Mode() != ModeEnd {
		t.Fatalf("player below the playfield should end the run, mode = %v", g.Mode())
	}
	if !c.printed("Score: 0") {
		t.Error("the losing tick should still draw the HUD")
	}
}

func TestCollisionEndsRun(t *testing.T) {
	g := New(testConfig(5), DefaultHUD())
	g.Restart()
	g.player = Player{X: 81, Y: 2}
	g.obstacles = []Obstacle{{X: 85, GapY: 25, Size: 10}}

	g.Tick(core.NewInputFrame(0, core.ActionNone), &recordingCanvas{})

	if g.Mode() != ModeEnd {
		t.Fatalf("collision should end the run, mode = %v", g.Mode())
	}
}

func TestEndScreen(t *testing.T) {
	g := New(testConfig(5), DefaultHUD())
	g.Restart()
	g.score = 2.35
	g.mode = ModeEnd
	c := &recordingCanvas{}

	g.Tick(core.NewInputFrame(16, core.ActionNone), c)

	if !c.printed("You are dead!") || !c.printed("You earned 2 points") {
		t.Error("end screen should show the truncated score")
	}

	g.Tick(core.NewInputFrame(16, core.ActionPlay), c)
	if g.Mode() != ModePlaying || g.Score() != 0 {
		t.Errorf("play from the end screen should restart, mode = %v", g.Mode())
	}
}

func TestEndQuit(t *testing.T) {
	g := New(testConfig(5), DefaultHUD())
	g.mode = ModeEnd

	g.Tick(core.NewInputFrame(16, core.ActionQuit), &recordingCanvas{})

	if !g.Quitting() {
		t.Error("quit on the end screen should set the exit flag")
	}
}

func TestPlayingHasNoQuit(t *testing.T) {
	g := New(testConfig(5), DefaultHUD())
	g.Restart()

	g.Tick(core.NewInputFrame(1, core.ActionQuit), &recordingCanvas{})

	if g.Quitting() || g.Mode() != ModePlaying {
		t.Error("quit must be ignored while playing")
	}
}

func TestPlayDrawsHUD(t *testing.T) {
	g := New(testConfig(5), HUD{Title: "X", FlapKey: "UP", PlayKey: "ENTER", QuitKey: "ESC"})
	g.Restart()
	c := &recordingCanvas{}

	g.Tick(core.NewInputFrame(1, core.ActionNone), c)

	if c.calls[0].op != "clearbg" || c.calls[0].layer != core.LayerText {
		t.Errorf("play should clear the text layer to the background first, got %+v", c.calls[0])
	}
	if !c.printed("Press UP to flap.") {
		t.Error("HUD should use the configured flap key")
	}
	if len(c.sprites(0)) != 1 {
		t.Error("the dragon should be drawn once with frame 0")
	}
	if len(c.sprites(ObstacleTile)) == 0 {
		t.Error("walls should be drawn")
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 600)
	for i := range inputs {
		inputs[i] = core.NewInputFrame(16.7, core.ActionNone)
		if i%9 == 0 {
			inputs[i].Action = core.ActionFlap
		}
	}

	run := func() *State {
		g := New(testConfig(12345), DefaultHUD())
		g.Restart()
		c := &recordingCanvas{}
		for _, in := range inputs {
			g.Tick(in, c)
			c.reset()
			if g.Mode() != ModePlaying {
				break
			}
		}
		return g
	}

	g1, g2 := run(), run()

	if g1.Player() != g2.Player() {
		t.Errorf("players differ: %+v vs %+v", g1.Player(), g2.Player())
	}
	if g1.Score() != g2.Score() || g1.Mode() != g2.Mode() {
		t.Errorf("outcomes differ: %f/%v vs %f/%v", g1.Score(), g1.Mode(), g2.Score(), g2.Mode())
	}
	o1, o2 := g1.Obstacles(), g2.Obstacles()
	if len(o1) != len(o2) {
		t.Fatalf("obstacle counts differ: %d vs %d", len(o1), len(o2))
	}
	for i := range o1 {
		if o1[i] != o2[i] {
			t.Fatalf("obstacle %d differs: %+v vs %+v", i, o1[i], o2[i])
		}
	}
}

func TestTimeSeededRun(t *testing.T) {
	g := New(testConfig(0), DefaultHUD())
	g.Restart()

	if g.RunSeed() == 0 {
		t.Error("time-based seed should be non-zero")
	}
}

func TestSetSeed(t *testing.T) {
	g := New(testConfig(0), DefaultHUD())
	g.SetSeed(99)

	g.Restart()
	first := g.Obstacles()
	g.Restart()

	if g.RunSeed() != 99 {
		t.Errorf("RunSeed() = %d, expected 99", g.RunSeed())
	}
	if g.Obstacles()[0] != first[0] {
		t.Errorf("runs with the same seed should spawn the same first wall")
	}
}

func TestModeString(t *testing.T) {
	tests := map[Mode]string{
		ModeMenu:    "Menu",
		ModePlaying: "Playing",
		ModeEnd:     "End",
		Mode(9):     "Mode(9)",
	}
	for m, want := range tests {
		if got := m.String(); got != want {
			t.Errorf("Mode(%d).String() = %q, expected %q", int(m), got, want)
		}
	}
}

func TestUnknownModePanics(t *testing.T) {
	g := New(testConfig(1), DefaultHUD())
	g.mode = Mode(9)

	defer func() {
		if recover() == nil {
			t.Error("an unknown mode should panic")
		}
	}()
	g.Tick(core.NewInputFrame(0, core.ActionNone), &recordingCanvas{})
}
