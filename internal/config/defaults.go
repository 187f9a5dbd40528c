package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in configuration. It matches
// defaults/snake.yaml and is used when the embedded file cannot be parsed.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			Width:    400,
			Height:   400,
			TileSize: 20,
		},
		Timing: TimingConfig{
			TickRate:          60,
			MoveEveryTicks:    8,
			MinMoveEveryTicks: 3,
		},
		Palette: PaletteConfig{
			Snake:      "#f5f5f5",
			Empty:      "#101010",
			Food:       "#e53935",
			HUD:        "#9e9e9e",
			Background: "#000000",
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "length",
				MaxAt: 40,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
