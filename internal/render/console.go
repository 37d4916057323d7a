package render

import (
	"slices"

	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// sprite is one queued sprite draw in layer pixel coordinates.
type sprite struct {
	dst   core.Rect
	z     int
	tint  core.Color
	index int
}

// layer holds the cells printed on it and the sprites queued on it.
type layer struct {
	cells   *core.Screen
	sprites []sprite
}

// Console implements the game's Canvas. Each layer has its own cell buffer
// and sprite batch; Compose stacks them into one screen.
type Console struct {
	cols, rows   int
	cellW, cellH int
	sheet        *SpriteSheet
	layers       [2]layer
	out          *core.Screen
}

// NewConsole creates a console for the configured grid and sprite layer.
func NewConsole(cfg core.RuntimeConfig, sheet *SpriteSheet) *Console {
	c := &Console{
		cols:  cfg.Cols,
		rows:  cfg.Rows,
		cellW: cfg.CellW(),
		cellH: cfg.CellH(),
		sheet: sheet,
		out:   core.NewScreen(cfg.Cols, cfg.Rows),
	}
	for i := range c.layers {
		c.layers[i].cells = core.NewScreen(cfg.Cols, cfg.Rows)
		c.layers[i].cells.Fill(core.Cell{})
	}
	return c
}

// Cols returns the console width in cells.
func (c *Console) Cols() int {
	return c.cols
}

// Rows returns the console height in cells.
func (c *Console) Rows() int {
	return c.rows
}

func (c *Console) layer(l core.Layer) *layer {
	if int(l) >= len(c.layers) {
		return &c.layers[core.LayerText]
	}
	return &c.layers[l]
}

// Clear makes the layer fully transparent and drops its queued sprites.
func (c *Console) Clear(l core.Layer) {
	ly := c.layer(l)
	ly.cells.Fill(core.Cell{})
	ly.sprites = ly.sprites[:0]
}

// ClearBg fills the layer with blank cells on the given background.
func (c *Console) ClearBg(l core.Layer, bg core.Color) {
	ly := c.layer(l)
	ly.cells.ClearBg(bg)
	ly.sprites = ly.sprites[:0]
}

// DrawSprite queues sprite index of the sheet into dst, given in sprite layer pixels.
// Sprites with a higher z are drawn later.
func (c *Console) DrawSprite(l core.Layer, dst core.Rect, z int, tint core.Color, index int) {
	if c.sheet == nil || index < 0 || index >= c.sheet.Len() {
		return
	}
	ly := c.layer(l)
	ly.sprites = append(ly.sprites, sprite{dst: dst, z: z, tint: tint, index: index})
}

// PrintCentered prints white-on-black text centered on row y.
func (c *Console) PrintCentered(l core.Layer, y int, text string) {
	c.layer(l).cells.DrawTextCentered(y, text)
}

// PrintColor prints text at (x, y) with explicit colors.
func (c *Console) PrintColor(l core.Layer, x, y int, fg, bg core.Color, text string) {
	c.layer(l).cells.DrawTextColor(x, y, fg, bg, text)
}

// Compose stacks the layers into a single screen and returns it. The
// returned screen is reused by the next call.
func (c *Console) Compose() *core.Screen {
	c.out.Clear()

	for i := range c.layers {
		ly := &c.layers[i]
		for y := 0; y < c.rows; y++ {
			for x := 0; x < c.cols; x++ {
				if cell := ly.cells.GetCell(x, y); !cell.Transparent() {
					c.out.SetCell(x, y, cell)
				}
			}
		}

		slices.SortStableFunc(ly.sprites, func(a, b sprite) int {
			return a.z - b.z
		})
		for _, s := range ly.sprites {
			c.blit(s)
		}
	}
	return c.out
}

// blit rasterises a sprite into the output, scaling the sheet region to the
// cells covered by its pixel rectangle. Transparent runes keep the cell
// underneath; painted cells take the tint and keep the background.
func (c *Console) blit(s sprite) {
	cells := core.NewRect(
		core.FloorDiv(s.dst.X, c.cellW),
		core.FloorDiv(s.dst.Y, c.cellH),
		0, 0,
	)
	cells.W = core.CeilDiv(s.dst.Right(), c.cellW) - cells.X
	cells.H = core.CeilDiv(s.dst.Bottom(), c.cellH) - cells.Y
	if cells.Empty() || !cells.Intersects(c.out.Bounds()) {
		return
	}

	region := c.sheet.Region(s.index)
	for dy := 0; dy < cells.H; dy++ {
		for dx := 0; dx < cells.W; dx++ {
			r := c.sheet.At(s.index, dx*region.W/cells.W, dy*region.H/cells.H)
			if r == ' ' {
				continue
			}
			x, y := cells.X+dx, cells.Y+dy
			under := c.out.GetCell(x, y)
			c.out.SetCell(x, y, core.Cell{Rune: r, Fg: s.tint, Bg: under.Bg})
		}
	}
}
