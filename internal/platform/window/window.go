// Package window hosts a game in a GPU window using ebiten. The window
// host is only compiled with the ebiten build tag; other builds get a stub
// whose Run returns ErrUnavailable.
package window

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/game"
)

// ErrUnavailable is returned by Run in builds without the ebiten tag.
var ErrUnavailable = errors.New("window: built without the ebiten tag")

// maxBatchVertices is the largest whole-tile vertex count addressable with
// 16-bit indices.
const maxBatchVertices = (65535 / game.VerticesPerTile) * game.VerticesPerTile

// ToPixel maps a device-space position to pixel coordinates on a w x h
// surface. Device y grows upward, pixel y grows downward.
func ToPixel(p [2]float32, w, h float32) (x, y float32) {
	return (p[0] + 1) / 2 * w, (1 - p[1]) / 2 * h
}

// Batches splits n vertices into [start, end) ranges that each fit one
// indexed draw call.
func Batches(n int) [][2]int {
	var out [][2]int
	for start := 0; start < n; start += maxBatchVertices {
		out = append(out, [2]int{start, min(start+maxBatchVertices, n)})
	}
	return out
}

// ClassRGBA returns the palette color of a render class as premultiplied
// float channels in [0, 1].
func ClassRGBA(p config.PaletteConfig, c game.ColorClass) [4]float32 {
	role := core.ColorEmpty
	switch c {
	case game.ClassSnake:
		role = core.ColorSnake
	case game.ClassFood:
		role = core.ColorFood
	}
	r, g, b := p.RGB(role)
	return [4]float32{float32(r) / 255, float32(g) / 255, float32(b) / 255, 1}
}

// WindowSize returns the window size for a width x height board drawn at
// scale pixels per board unit. The size never drops below one pixel per axis.
func WindowSize(width, height, scale float64) (w, h int) {
	if scale <= 0 {
		scale = 1
	}
	return max(int(width*scale), 1), max(int(height*scale), 1)
}

// loggerOrDiscard returns l, or a logger that drops everything when l is nil.
func loggerOrDiscard(l *log.Logger) *log.Logger {
	if l == nil {
		return log.New(io.Discard)
	}
	return l
}
