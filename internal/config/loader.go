package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/game"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// LoadSnake loads the game configuration. Keys missing from a file keep
// their default values.
// Search order: customPath -> ~/.gridsnake/configs/snake.yaml -> ./configs/snake.yaml -> embedded default
func LoadSnake(customPath string) (SnakeConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SnakeConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseSnake(data)
		if err != nil {
			return SnakeConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("snake.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseSnake(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "snake.yaml")); err == nil {
		if cfg, err := parseSnake(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseSnake(defaultSnakeYAML)
	if err != nil {
		return DefaultSnakeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseSnake decodes data over the built-in defaults and validates the result.
func parseSnake(data []byte) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SnakeConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return SnakeConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gridsnake", "configs", filename)
}

// Validate checks the configuration for values no host can run with.
func (c SnakeConfig) Validate() error {
	b := c.Board
	if _, _, err := game.Dimensions(b.Width, b.Height, b.TileSize); err != nil {
		return fmt.Errorf("%w: board: %v", ErrInvalidConfig, err)
	}
	if c.Timing.TickRate <= 0 {
		return fmt.Errorf("%w: tick_rate must be positive, got %d", ErrInvalidConfig, c.Timing.TickRate)
	}
	if c.Timing.MoveEveryTicks <= 0 {
		return fmt.Errorf("%w: move_every_ticks must be positive, got %d", ErrInvalidConfig, c.Timing.MoveEveryTicks)
	}
	if c.Timing.MinMoveEveryTicks <= 0 || c.Timing.MinMoveEveryTicks > c.Timing.MoveEveryTicks {
		return fmt.Errorf("%w: min_move_every_ticks must be in [1, %d], got %d",
			ErrInvalidConfig, c.Timing.MoveEveryTicks, c.Timing.MinMoveEveryTicks)
	}
	for name, hex := range c.Palette.entries() {
		if _, err := colorful.Hex(hex); err != nil {
			return fmt.Errorf("%w: palette.%s: %v", ErrInvalidConfig, name, err)
		}
	}
	switch c.Difficulty.Progression.Type {
	case "length", "time", "none":
	default:
		return fmt.Errorf("%w: unknown progression type %q", ErrInvalidConfig, c.Difficulty.Progression.Type)
	}
	return nil
}

func (p PaletteConfig) entries() map[string]string {
	return map[string]string{
		"snake":      p.Snake,
		"empty":      p.Empty,
		"food":       p.Food,
		"hud":        p.HUD,
		"background": p.Background,
	}
}

// Color returns the palette entry for a color role. Unknown roles map to
// the background.
func (p PaletteConfig) Color(c core.Color) string {
	switch c {
	case core.ColorSnake:
		return p.Snake
	case core.ColorEmpty:
		return p.Empty
	case core.ColorFood:
		return p.Food
	case core.ColorHUD, core.ColorOverlay:
		return p.HUD
	default:
		return p.Background
	}
}

// RGB returns the palette entry for a color role as 8-bit channels.
// Entries are checked by Validate; an unparsable entry yields black.
func (p PaletteConfig) RGB(c core.Color) (r, g, b uint8) {
	col, err := colorful.Hex(p.Color(c))
	if err != nil {
		return 0, 0, 0
	}
	return col.RGB255()
}

// ApplySnakePreset modifies the config based on a difficulty preset.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}

// ParsePreset converts a flag value into a DifficultyPreset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// Runtime converts the configuration into host runtime settings.
func (c SnakeConfig) Runtime(screenW, screenH int, seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:        screenW,
		ScreenH:        screenH,
		BoardW:         c.Board.Width,
		BoardH:         c.Board.Height,
		TileSize:       c.Board.TileSize,
		TickRate:       c.Timing.TickRate,
		MoveEveryTicks: c.Timing.MoveEveryTicks,
		Seed:           seed,
	}
}

// Marshal encodes the configuration as YAML.
func (c SnakeConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}
