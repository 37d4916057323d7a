// Package render implements the drawing boundary of the game: a two-layer
// console (text layer and sprite layer) composed into a single cell buffer,
// and the sprite sheet the sprite layer draws from.
package render

import (
	"fmt"
	"os"
	"strings"

	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// SpriteSheet is a text image cut into rectangular regions.
// A space in the image is transparent.
type SpriteSheet struct {
	image   [][]rune
	width   int
	regions []core.Rect
}

// ParseSpriteSheet builds a sprite sheet from a text image. Short lines are
// padded with spaces. Every region must lie inside the image.
func ParseSpriteSheet(data []byte, regions []core.Rect) (*SpriteSheet, error) {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil, fmt.Errorf("render: sprite sheet image is empty")
	}

	lines := strings.Split(text, "\n")
	sheet := &SpriteSheet{image: make([][]rune, len(lines))}
	for y, line := range lines {
		sheet.image[y] = []rune(line)
		sheet.width = core.Max(sheet.width, len(sheet.image[y]))
	}
	for y, row := range sheet.image {
		for len(row) < sheet.width {
			row = append(row, ' ')
		}
		sheet.image[y] = row
	}

	bounds := core.NewRect(0, 0, sheet.width, len(sheet.image))
	for i, r := range regions {
		if r.Empty() {
			return nil, fmt.Errorf("render: sprite %d has no area: %+v", i, r)
		}
		if !bounds.Contains(r) {
			return nil, fmt.Errorf("render: sprite %d %+v lies outside the %dx%d image", i, r, bounds.W, bounds.H)
		}
	}
	sheet.regions = append([]core.Rect(nil), regions...)

	return sheet, nil
}

// LoadSpriteSheet reads a text image from disk and cuts it into regions.
func LoadSpriteSheet(path string, regions []core.Rect) (*SpriteSheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("render: cannot read sprite sheet %s: %w", path, err)
	}
	sheet, err := ParseSpriteSheet(data, regions)
	if err != nil {
		return nil, fmt.Errorf("render: %s: %w", path, err)
	}
	return sheet, nil
}

// Len returns the number of sprites in the sheet.
func (s *SpriteSheet) Len() int {
	return len(s.regions)
}

// Region returns the image area of sprite i.
func (s *SpriteSheet) Region(i int) core.Rect {
	return s.regions[i]
}

// At returns the rune at (x, y) inside sprite i.
func (s *SpriteSheet) At(i, x, y int) rune {
	r := s.regions[i]
	return s.image[r.Y+y][r.X+x]
}
