package game

import (
	"fmt"
	"strings"
)

// delta returns the one-tile offset for a direction.
// Up increases the row index.
func (d Direction) delta() (dx, dy int) {
	switch d {
	case DirRight:
		return 1, 0
	case DirLeft:
		return -1, 0
	case DirUp:
		return 0, 1
	case DirDown:
		return 0, -1
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction. DirNone has no opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case DirRight:
		return DirLeft
	case DirLeft:
		return DirRight
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	default:
		return DirNone
	}
}

// Step returns the position one tile away in direction d.
func (p Pos) Step(d Direction) Pos {
	dx, dy := d.delta()
	return Pos{X: p.X + dx, Y: p.Y + dy}
}

func (d Direction) String() string {
	switch d {
	case DirNone:
		return "none"
	case DirRight:
		return "right"
	case DirLeft:
		return "left"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}

// ParseDirection parses a direction name as printed by Direction.String.
// Single-letter forms (r, l, u, d) are accepted.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "right", "r":
		return DirRight, nil
	case "left", "l":
		return DirLeft, nil
	case "up", "u":
		return DirUp, nil
	case "down", "d":
		return DirDown, nil
	default:
		return DirNone, fmt.Errorf("game: unknown direction %q", s)
	}
}

// ChangeDirection sets the direction of travel for the next Update.
// A one-segment snake may turn anywhere. A longer snake ignores a turn that
// would put its head onto its second segment. DirNone is ignored.
func (g *Game) ChangeDirection(d Direction) {
	if d == DirNone {
		return
	}
	if len(g.snake) == 1 {
		g.direction = d
		return
	}
	if g.snake[0].Step(d) == g.snake[1] {
		return
	}
	g.direction = d
}
