package flappy

import "github.com/vovakirdan/flappy-dragon/internal/core"

// Player physics constants, applied once per fixed step.
const (
	StartX       = 5    // Horizontal start position of every run
	StartY       = 25   // Vertical start position of every run
	Gravity      = 0.2  // Velocity increment per step
	MaxFallSpeed = 2.0  // Velocity cap
	FlapVelocity = -2.0 // Velocity set by a flap (negative = up)
)

// Player sprite placement on the sprite layer.
const (
	PlayerSpriteSize = 32  // Width and height of the dragon sprite in pixels
	SpriteZBase      = 400 // z-order is SpriteZBase - row, so higher rows draw on top
	PlayerFrames     = 4   // Animation frames in the sprite sheet
)

// Player is the dragon. X is distance travelled, Y the row it occupies.
type Player struct {
	X        int
	Y        int
	Velocity float64
}

// NewPlayer creates a player at rest at the given position.
func NewPlayer(x, y int) Player {
	return Player{X: x, Y: y}
}

// Advance applies one fixed physics step: gravity up to the cap, vertical
// movement truncated to whole rows, one unit of forward travel.
func (p *Player) Advance() {
	if p.Velocity < MaxFallSpeed {
		p.Velocity += Gravity
		if p.Velocity > MaxFallSpeed {
			p.Velocity = MaxFallSpeed
		}
	}

	p.Y += int(p.Velocity)
	p.X++
	if p.Y < 0 {
		p.Y = 0
	}
}

// Flap resets the velocity to FlapVelocity. It is not additive.
func (p *Player) Flap() {
	p.Velocity = FlapVelocity
}

// Render clears the sprite layer and draws the dragon at the left edge of
// the screen. The world scrolls past it, so only Y affects placement.
func (p *Player) Render(dst Canvas, frame uint) {
	dst.Clear(core.LayerSprite)
	dst.DrawSprite(
		core.LayerSprite,
		core.NewRect(0, p.Y*SpriteCell-SpriteCell, PlayerSpriteSize, PlayerSpriteSize),
		SpriteZBase-p.Y,
		core.ColorBrightWhite,
		int(frame%PlayerFrames),
	)
}
