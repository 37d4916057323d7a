// Package registry provides a global registry for display frontends.
// Frontends register themselves in init() functions, allowing the CLI to
// discover and start them without hardcoded dependencies.
package registry

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-dragon/internal/config"
	"github.com/vovakirdan/flappy-dragon/internal/games/flappy"
	"github.com/vovakirdan/flappy-dragon/internal/render"
	"github.com/vovakirdan/flappy-dragon/internal/replay"
)

// Frontend is the platform boundary: it owns the display and the keyboard,
// measures elapsed time between ticks and feeds the game one InputFrame per
// tick until the game asks to quit.
type Frontend interface {
	// ID returns a unique identifier used by --backend (e.g., "tui").
	ID() string

	// Title returns a human-readable name for listings.
	Title() string

	// Run plays one session and blocks until the player quits, the
	// terminal is interrupted or ctx is cancelled.
	Run(ctx context.Context, s Session) error
}

// Session is everything a frontend needs to host one game.
type Session struct {
	Config  config.Config
	Seed    int64 // 0 = time-based seed per run
	Sheet   *render.SpriteSheet
	Journal replay.Sink // nil disables the run journal
	Logger  *log.Logger
}

// NewGame builds the game, the console it draws to and the recorder that
// journals its runs.
func (s Session) NewGame() (*flappy.State, *render.Console, *replay.Recorder) {
	rc := s.Config.Runtime(s.Seed)
	game := flappy.New(rc, s.Config.HUD())
	console := render.NewConsole(rc, s.Sheet)
	return game, console, replay.NewRecorder(s.Journal, s.Log())
}

// Log returns the session logger, or a discarding logger if none is set.
func (s Session) Log() *log.Logger {
	if s.Logger == nil {
		return log.New(io.Discard)
	}
	return s.Logger
}

// Info contains metadata about a registered frontend.
type Info struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a frontend.
type Factory func() Frontend

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a frontend factory to the registry.
// Typically called from a frontend's init() function.
// Panics if a frontend with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: frontend %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	titles[id] = f().Title()
}

// List returns information about all registered frontends, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for id := range factories {
		result = append(result, Info{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new frontend by its ID.
// Returns an error if the ID is not registered.
func Create(id string) (Frontend, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown frontend %q", id)
	}

	return f(), nil
}

// Exists checks if a frontend with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
