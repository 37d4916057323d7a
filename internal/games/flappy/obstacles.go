package flappy

import (
	"math/rand"

	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// Obstacle generation constants.
const (
	GapJitter          = 5  // gap_y is picked within ±GapJitter of its seed
	SeedJitter         = 7  // spawn seed is picked within ±SeedJitter of the tail gap
	GapMargin          = 20 // spawn seeds stay within [GapMargin, rows-GapMargin]
	MaxGapSize         = 30 // gap size at score 0
	MinGapSize         = 5  // gap size never shrinks below this
	ObstacleTile       = 4  // sprite sheet index of the wall tile
	SpriteCell         = 8  // sprite pixels per console cell
	CollisionTolerance = SpriteCell / 2
)

// Obstacle is one wall column with a passable gap centred on GapY.
type Obstacle struct {
	X    int // World column
	GapY int // Centre of the gap
	Size int // Gap height
}

// NewObstacle creates an obstacle at world column x. The gap centre is
// uniform in [seedGapY-GapJitter, seedGapY+GapJitter]; the gap size
// shrinks with the score.
func NewObstacle(rng *rand.Rand, x, seedGapY int, score float64) Obstacle {
	return Obstacle{
		X:    x,
		GapY: jitter(rng, seedGapY, GapJitter),
		Size: GapSize(score),
	}
}

// GapSize returns max(MinGapSize, MaxGapSize - floor(score)).
func GapSize(score float64) int {
	return core.Max(MinGapSize, MaxGapSize-int(score))
}

// NextSeedGap picks the seed for the next spawned obstacle from the gap of
// the current tail, clamped so the gap stays inside the playfield.
func NextSeedGap(rng *rand.Rand, lastGapY, rows int) int {
	return core.Clamp(jitter(rng, lastGapY, SeedJitter), GapMargin, rows-GapMargin)
}

// jitter returns a uniform integer in [center-spread, center+spread].
func jitter(rng *rand.Rand, center, spread int) int {
	return center - spread + rng.Intn(2*spread+1)
}

// GapTop returns the upper edge of the gap.
func (o Obstacle) GapTop() int {
	return o.GapY - o.Size/2
}

// GapBottom returns the lower edge of the gap.
func (o Obstacle) GapBottom() int {
	return o.GapY + o.Size/2
}

// Render draws the wall above and below the gap at screen column X - playerX.
func (o Obstacle) Render(dst Canvas, playerX, rows int) {
	screenX := o.X - playerX

	for y := 0; y < o.GapTop(); y++ {
		o.drawTile(dst, screenX, y)
	}
	for y := o.GapBottom(); y < rows; y++ {
		o.drawTile(dst, screenX, y)
	}
}

func (o Obstacle) drawTile(dst Canvas, screenX, y int) {
	dst.DrawSprite(
		core.LayerSprite,
		core.NewRect(screenX*SpriteCell, y*SpriteCell, SpriteCell, SpriteCell),
		SpriteZBase-y,
		core.ColorBrightWhite,
		ObstacleTile,
	)
}

// CollidesWith reports whether the player hits this wall. The column test is
// an exact match, so a hit can only register on the single step where the
// player's X equals X - CollisionTolerance. Moving faster than one column per
// step would need a swept test instead.
func (o Obstacle) CollidesWith(p Player) bool {
	if p.X != o.X-CollisionTolerance {
		return false
	}
	return p.Y < o.GapTop() || p.Y > o.GapBottom()
}
