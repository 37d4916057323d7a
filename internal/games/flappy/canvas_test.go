package flappy

import (
	"strings"

	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// drawCall is one call made against recordingCanvas.
type drawCall struct {
	op    string
	layer core.Layer
	rect  core.Rect
	z     int
	index int
	x, y  int
	text  string
}

// recordingCanvas remembers every draw call for assertions.
type recordingCanvas struct {
	calls []drawCall
}

func (c *recordingCanvas) Clear(layer core.Layer) {
	c.calls = append(c.calls, drawCall{op: "clear", layer: layer})
}

func (c *recordingCanvas) ClearBg(layer core.Layer, _ core.Color) {
	c.calls = append(c.calls, drawCall{op: "clearbg", layer: layer})
}

func (c *recordingCanvas) DrawSprite(layer core.Layer, dst core.Rect, z int, _ core.Color, index int) {
	c.calls = append(c.calls, drawCall{op: "sprite", layer: layer, rect: dst, z: z, index: index})
}

func (c *recordingCanvas) PrintCentered(layer core.Layer, y int, text string) {
	c.calls = append(c.calls, drawCall{op: "centered", layer: layer, y: y, text: text})
}

func (c *recordingCanvas) PrintColor(layer core.Layer, x, y int, _, _ core.Color, text string) {
	c.calls = append(c.calls, drawCall{op: "print", layer: layer, x: x, y: y, text: text})
}

func (c *recordingCanvas) reset() {
	c.calls = c.calls[:0]
}

func (c *recordingCanvas) sprites(index int) []drawCall {
	var out []drawCall
	for _, call := range c.calls {
		if call.op == "sprite" && call.index == index {
			out = append(out, call)
		}
	}
	return out
}

func (c *recordingCanvas) printed(substr string) bool {
	for _, call := range c.calls {
		if (call.op == "print" || call.op == "centered") && strings.Contains(call.text, substr) {
			return true
		}
	}
	return false
}
