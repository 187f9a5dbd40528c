// Package game implements the Snake simulation: a fixed grid of tiles, a
// snake that advances one cell per tick, and a single piece of food.
// It has no platform dependencies; hosts drive it through ChangeDirection,
// Update and Reset, and read it through RenderData or Instances.
package game

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// Tile is the content of one board cell.
type Tile uint8

const (
	TileEmpty Tile = iota
	TileFood
	TileSnakeBody
	TileSnakeHead
)

// Direction is the snake's direction of travel.
type Direction int

const (
	DirNone Direction = iota // not yet moving
	DirRight
	DirLeft
	DirUp
	DirDown
)

// Phase summarizes where the game is in its lifecycle.
// Game over is not a phase: Update returns false and the host resets.
type Phase string

const (
	PhaseNotStarted Phase = "not_started"
	PhaseRunning    Phase = "running"
	PhaseWon        Phase = "won"
)

// NoFood is the food location once the snake fills the board.
const NoFood = -1

var (
	// ErrInvalidGeometry is returned when the board would have no rows or columns.
	ErrInvalidGeometry = errors.New("game: invalid board geometry")
	// ErrBoardFull is returned when there is no empty cell left for food.
	ErrBoardFull = errors.New("game: no empty cell for food")
)

// Pos is a cell position. X is the column, Y the row.
type Pos struct {
	X, Y int
}

// FoodPicker chooses the next food cell. Pick receives the indices of all
// empty cells (never empty) and returns one of them.
type FoodPicker interface {
	Pick(candidates []int) int
}

// Game is the complete state of one Snake game.
type Game struct {
	// Geometry retained across resets
	width    float64
	height   float64
	tileSize float64
	picker   FoodPicker

	cols  int
	rows  int
	board []Tile

	snake     []Pos // head at index 0
	direction Direction
	food      int
	won       bool

	ticks uint64
}

// New creates a game on a board of width x height units split into square
// tiles of tileSize. A nil picker uses a time-seeded core.RNG.
func New(width, height, tileSize float64, picker FoodPicker) (*Game, error) {
	if picker == nil {
		picker = core.NewRNG(time.Now().UnixNano())
	}
	g := &Game{
		width:    width,
		height:   height,
		tileSize: tileSize,
		picker:   picker,
	}
	if err := g.init(); err != nil {
		return nil, err
	}
	return g, nil
}

// init builds the board from the stored geometry.
func (g *Game) init() error {
	cols, rows, err := Dimensions(g.width, g.height, g.tileSize)
	if err != nil {
		return err
	}
	if cols*rows == 1 {
		return fmt.Errorf("%w: board is a single cell", ErrBoardFull)
	}

	g.cols = cols
	g.rows = rows
	g.board = make([]Tile, cols*rows)
	g.direction = DirNone
	g.won = false
	g.ticks = 0

	// Start in the center cell
	head := Pos{X: cols / 2, Y: rows / 2}
	g.snake = []Pos{head}
	g.board[g.index(head)] = TileSnakeHead

	food, ok := g.placeFood()
	if !ok {
		return ErrBoardFull
	}
	g.food = food
	return nil
}

// MaxTiles is the largest board, in tiles, a game accepts.
const MaxTiles = 1 << 20

// Dimensions returns the column and row counts for a board geometry.
func Dimensions(width, height, tileSize float64) (cols, rows int, err error) {
	for _, v := range []float64{width, height, tileSize} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return 0, 0, fmt.Errorf("%w: width=%v height=%v tile=%v", ErrInvalidGeometry, width, height, tileSize)
		}
	}
	fc := math.Floor(width / tileSize)
	fr := math.Floor(height / tileSize)
	if fc < 1 || fr < 1 {
		return 0, 0, fmt.Errorf("%w: %vx%v tiles", ErrInvalidGeometry, fc, fr)
	}
	// Checked as floats so huge boards cannot overflow int
	if fc*fr > MaxTiles {
		return 0, 0, fmt.Errorf("%w: %vx%v tiles exceeds %d", ErrInvalidGeometry, fc, fr, MaxTiles)
	}
	return int(fc), int(fr), nil
}

// Reset discards the current game and starts over on the same board.
func (g *Game) Reset() error {
	return g.init()
}

// placeFood picks an empty cell and marks it as food.
// Returns false when the board has no empty cell.
func (g *Game) placeFood() (int, bool) {
	empty := make([]int, 0, len(g.board))
	for i, t := range g.board {
		if t == TileEmpty {
			empty = append(empty, i)
		}
	}
	if len(empty) == 0 {
		return NoFood, false
	}
	idx := g.picker.Pick(empty)
	g.board[idx] = TileFood
	return idx, true
}

func (g *Game) index(p Pos) int {
	return p.Y*g.cols + p.X
}

func (g *Game) inBounds(p Pos) bool {
	return p.X >= 0 && p.X < g.cols && p.Y >= 0 && p.Y < g.rows
}

// Cols returns the number of board columns.
func (g *Game) Cols() int { return g.cols }

// Rows returns the number of board rows.
func (g *Game) Rows() int { return g.rows }

// TileSize returns the edge length of one tile.
func (g *Game) TileSize() float64 { return g.tileSize }

// Size returns the board width and height the game was built with.
func (g *Game) Size() (width, height float64) { return g.width, g.height }

// Len returns the snake length.
func (g *Game) Len() int { return len(g.snake) }

// Head returns the head position.
func (g *Game) Head() Pos { return g.snake[0] }

// Segments returns a copy of the snake, head first.
func (g *Game) Segments() []Pos {
	out := make([]Pos, len(g.snake))
	copy(out, g.snake)
	return out
}

// CurrentDirection returns the direction of travel.
func (g *Game) CurrentDirection() Direction { return g.direction }

// Food returns the food cell index, or NoFood once the board is full.
func (g *Game) Food() int { return g.food }

// FoodPos returns the food position. ok is false when there is no food.
func (g *Game) FoodPos() (p Pos, ok bool) {
	if g.food == NoFood {
		return Pos{}, false
	}
	return Pos{X: g.food % g.cols, Y: g.food / g.cols}, true
}

// TileAt returns the tile at (x, y). Out-of-bounds cells read as empty.
func (g *Game) TileAt(x, y int) Tile {
	p := Pos{X: x, Y: y}
	if !g.inBounds(p) {
		return TileEmpty
	}
	return g.board[g.index(p)]
}

// Won reports whether the snake has filled the board.
func (g *Game) Won() bool { return g.won }

// Ticks returns the number of moves made since the last reset.
func (g *Game) Ticks() uint64 { return g.ticks }

// Phase returns the lifecycle phase.
func (g *Game) Phase() Phase {
	switch {
	case g.won:
		return PhaseWon
	case g.direction == DirNone:
		return PhaseNotStarted
	default:
		return PhaseRunning
	}
}

func (t Tile) String() string {
	switch t {
	case TileEmpty:
		return "empty"
	case TileFood:
		return "food"
	case TileSnakeBody:
		return "body"
	case TileSnakeHead:
		return "head"
	default:
		return "unknown"
	}
}
