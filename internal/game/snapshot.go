package game

import (
	"fmt"
	"strings"
)

// Snapshot captures the game state for determinism tests and debug output.
type Snapshot struct {
	Tick     uint64
	Cols     int
	Rows     int
	SnakeLen int
	HeadX    int
	HeadY    int
	Dir      Direction
	Food     int
	Phase    Phase
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	head := g.snake[0]
	return Snapshot{
		Tick:     g.ticks,
		Cols:     g.cols,
		Rows:     g.rows,
		SnakeLen: len(g.snake),
		HeadX:    head.X,
		HeadY:    head.Y,
		Dir:      g.direction,
		Food:     g.food,
		Phase:    g.Phase(),
	}
}

func (s Snapshot) String() string {
	return fmt.Sprintf("tick=%d board=%dx%d len=%d head=(%d,%d) dir=%s food=%d phase=%s",
		s.Tick, s.Cols, s.Rows, s.SnakeLen, s.HeadX, s.HeadY, s.Dir, s.Food, s.Phase)
}

// tileRunes are the debug characters for each tile.
var tileRunes = [...]rune{
	TileEmpty:     '.',
	TileFood:      'F',
	TileSnakeBody: 'b',
	TileSnakeHead: 'S',
}

// String draws the board as text, top row first.
func (g *Game) String() string {
	var b strings.Builder
	b.Grow((g.cols + 1) * g.rows)
	for y := g.rows - 1; y >= 0; y-- {
		for x := 0; x < g.cols; x++ {
			b.WriteRune(tileRunes[g.board[y*g.cols+x]])
		}
		if y > 0 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
