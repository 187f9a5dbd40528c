package config

import "math"

// DifficultyManager derives the snake's pace from its length or from the
// number of moves made.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0).
func (d *DifficultyManager) Level(length int, moves uint64) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "length":
		// A fresh snake has length 1
		progress = float64(length-1) / maxAt
	case "time":
		progress = float64(moves) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// MoveEveryTicks returns how many host ticks pass between snake moves,
// interpolated from slowest (level 0) to fastest (level 1).
func (d *DifficultyManager) MoveEveryTicks(t TimingConfig, length int, moves uint64) int {
	slow := max(t.MoveEveryTicks, 1)
	fast := min(max(t.MinMoveEveryTicks, 1), slow)
	level := d.Level(length, moves)
	return slow - int(math.Round(level*float64(slow-fast)))
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
