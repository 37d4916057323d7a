package core

// RuntimeConfig contains the boundary parameters handed to the simulation.
// Cols/Rows describe the console grid, SpriteW/SpriteH the sprite layer in pixels.
type RuntimeConfig struct {
	Cols     int   // Console width in cells
	Rows     int   // Console height in cells (also the playfield height)
	SpriteW  int   // Sprite layer width in pixels
	SpriteH  int   // Sprite layer height in pixels
	TickRate int   // Render ticks per second
	Seed     int64 // RNG seed; 0 means a fresh time-based seed per run
}

// DefaultConfig returns the 80x50 grid with a 640x400 sprite layer.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Cols:     80,
		Rows:     50,
		SpriteW:  640,
		SpriteH:  400,
		TickRate: 60,
		Seed:     0,
	}
}

// CellW returns the number of sprite pixels covered by one console cell horizontally.
func (c RuntimeConfig) CellW() int {
	if c.Cols <= 0 {
		return 1
	}
	return Max(1, c.SpriteW/c.Cols)
}

// CellH returns the number of sprite pixels covered by one console cell vertically.
func (c RuntimeConfig) CellH() int {
	if c.Rows <= 0 {
		return 1
	}
	return Max(1, c.SpriteH/c.Rows)
}
