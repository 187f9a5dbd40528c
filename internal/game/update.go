package game

// Update advances the game by one tick. It returns false when the game is
// lost (wall or self collision); the caller must Reset before the next
// Update. A game that has not started or has been won is left untouched.
func (g *Game) Update() bool {
	if g.direction == DirNone || g.won {
		return true
	}

	head := g.snake[0]

	// Leaving the board from a boundary row/column
	if g.atWall(head, g.direction) {
		return false
	}

	// Head already overlapping the body
	for _, seg := range g.snake[1:] {
		if seg == head {
			return false
		}
	}

	newHead := head.Step(g.direction)
	if !g.inBounds(newHead) {
		return false
	}

	// Moving onto the body. The tail is excluded since it vacates this tick.
	last := len(g.snake) - 1
	if last > 1 {
		for _, seg := range g.snake[1:last] {
			if seg == newHead {
				return false
			}
		}
	}

	tail := g.snake[last]
	g.board[g.index(tail)] = TileEmpty
	if last > 0 {
		g.board[g.index(head)] = TileSnakeBody
	}
	copy(g.snake[1:], g.snake[:last])
	g.snake[0] = newHead
	g.board[g.index(newHead)] = TileSnakeHead
	g.ticks++

	if g.index(newHead) == g.food {
		g.eat(tail)
	}

	return true
}

// eat grows the snake back onto the cell its tail just left and moves the
// food. When no empty cell remains the game is won.
func (g *Game) eat(vacated Pos) {
	g.snake = append(g.snake, vacated)
	g.board[g.index(vacated)] = TileSnakeBody

	food, ok := g.placeFood()
	g.food = food
	if !ok {
		g.won = true
	}
}

// atWall reports whether moving in d from p would leave the board.
func (g *Game) atWall(p Pos, d Direction) bool {
	switch d {
	case DirRight:
		return p.X == g.cols-1
	case DirLeft:
		return p.X == 0
	case DirUp:
		return p.Y == g.rows-1
	case DirDown:
		return p.Y == 0
	default:
		return false
	}
}
