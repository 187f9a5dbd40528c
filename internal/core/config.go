package core

// RuntimeConfig contains what a host needs to build and pace a game.
type RuntimeConfig struct {
	ScreenW int // Host surface width (terminal columns or window pixels)
	ScreenH int // Host surface height

	BoardW   float64 // Board width in board units
	BoardH   float64 // Board height in board units
	TileSize float64 // Edge length of one tile in board units

	TickRate       int   // Host ticks per second (default 60)
	MoveEveryTicks int   // Host ticks between game updates
	Seed           int64 // RNG seed for food placement
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:        80,
		ScreenH:        24,
		BoardW:         400,
		BoardH:         400,
		TileSize:       20,
		TickRate:       60,
		MoveEveryTicks: 8,
		Seed:           0, // 0 means use current time in platform layer
	}
}
