// Package config provides YAML-based game configuration loading and
// difficulty management for gridsnake.
package config

// SnakeConfig contains all configuration for a game and its hosts.
type SnakeConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Timing     TimingConfig     `yaml:"timing"`
	Palette    PaletteConfig    `yaml:"palette"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the board geometry. The grid is
// floor(width/tile_size) by floor(height/tile_size) tiles.
type BoardConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	TileSize float64 `yaml:"tile_size"`
}

// TimingConfig defines how the host paces the simulation.
type TimingConfig struct {
	TickRate          int `yaml:"tick_rate"`            // Host ticks per second
	MoveEveryTicks    int `yaml:"move_every_ticks"`     // Host ticks per snake move at the lowest difficulty
	MinMoveEveryTicks int `yaml:"min_move_every_ticks"` // Fastest allowed pace
}

// PaletteConfig maps color classes to "#rrggbb" colors.
type PaletteConfig struct {
	Snake      string `yaml:"snake"`
	Empty      string `yaml:"empty"`
	Food       string `yaml:"food"`
	HUD        string `yaml:"hud"`
	Background string `yaml:"background"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "length", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Snake length or moves at which max difficulty is reached
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
