package game

// ColorClass groups tiles for rendering.
type ColorClass uint32

const (
	ClassSnake ColorClass = iota // head and body
	ClassEmpty
	ClassFood
)

// VerticesPerTile is the number of vertices emitted per tile (two triangles).
const VerticesPerTile = 6

// Vertex is one corner of a tile triangle in device space ([-1, 1] on both
// axes, y up).
type Vertex struct {
	Position   [2]float32
	ColorClass ColorClass
}

// Instance describes one tile for renderers that draw a quad per tile.
// X and Y are the bottom-left corner in board units.
type Instance struct {
	Col, Row   int
	X, Y, Size float32
	ColorClass ColorClass
}

// ClassOf returns the color class used to draw a tile.
func ClassOf(t Tile) ColorClass {
	switch t {
	case TileSnakeHead, TileSnakeBody:
		return ClassSnake
	case TileFood:
		return ClassFood
	default:
		return ClassEmpty
	}
}

// Normalize maps a coordinate n on an axis of length d to device space.
func Normalize(n, d float32) float32 {
	return -1 + 2*(n/d)
}

// RenderData returns the board as triangles, six vertices per tile in
// row-major tile order. It does not modify the game.
func (g *Game) RenderData() []Vertex {
	w, h := float32(g.width), float32(g.height)
	out := make([]Vertex, 0, len(g.board)*VerticesPerTile)
	for _, in := range g.Instances() {
		l := Normalize(in.X, w)
		r := Normalize(in.X+in.Size, w)
		b := Normalize(in.Y, h)
		t := Normalize(in.Y+in.Size, h)
		c := in.ColorClass
		out = append(out,
			Vertex{Position: [2]float32{l, b}, ColorClass: c},
			Vertex{Position: [2]float32{r, b}, ColorClass: c},
			Vertex{Position: [2]float32{l, t}, ColorClass: c},
			Vertex{Position: [2]float32{r, b}, ColorClass: c},
			Vertex{Position: [2]float32{r, t}, ColorClass: c},
			Vertex{Position: [2]float32{l, t}, ColorClass: c},
		)
	}
	return out
}

// Instances returns one record per tile in row-major order.
func (g *Game) Instances() []Instance {
	size := float32(g.tileSize)
	out := make([]Instance, 0, len(g.board))
	for i, t := range g.board {
		col, row := i%g.cols, i/g.cols
		out = append(out, Instance{
			Col:        col,
			Row:        row,
			X:          float32(col) * size,
			Y:          float32(row) * size,
			Size:       size,
			ColorClass: ClassOf(t),
		})
	}
	return out
}
