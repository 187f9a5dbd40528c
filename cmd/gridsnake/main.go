// gridsnake is a classic snake game on a fixed tile grid, playable in the
// terminal or in a GPU window.
//
// Usage:
//
//	gridsnake play            - Play in the terminal
//	gridsnake window          - Play in a window (build with -tags ebiten)
//	gridsnake sim             - Run a scripted game headless and print the board
//	gridsnake config          - Print the effective configuration
//
// Global flags:
//
//	--config <path>       - Path to a snake.yaml config
//	--difficulty <preset> - easy, normal, hard or fixed
//	--fps <rate>          - Override the tick rate
//	--seed <value>        - Set RNG seed for reproducible food placement
//	--log-level <level>   - debug, info, warn or error (default: info)
//	--log-file <path>     - Log destination for the terminal host
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/game"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagFPS        int
	flagSeed       int64
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gridsnake",
	Short: "gridsnake - snake on a tile grid",
	Long: `gridsnake is the classic snake game on a fixed grid of square tiles.
Steer the snake to the food; it grows by one segment per meal. Running into
a wall or into itself starts a new game. Fill the whole board to win.

Available commands:
  play     - Play in the terminal
  window   - Play in a GPU window (requires -tags ebiten)
  sim      - Run a scripted game without a display
  config   - Print the effective configuration

Examples:
  gridsnake play
  gridsnake play --difficulty hard
  gridsnake sim --dirs up,left,left,down --seed 7
  gridsnake config --config ./my-snake.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom snake config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file for the terminal host (default: discard)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the configuration and applies the global flag overrides.
func loadConfig() (config.SnakeConfig, error) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return cfg, err
		}
		config.ApplySnakePreset(&cfg, preset)
	}
	if flagFPS > 0 {
		cfg.Timing.TickRate = flagFPS
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newLogger creates the command logger writing to w.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "gridsnake",
		Level:           level,
	}), nil
}

// newRuntime resolves the host settings. A --seed of 0 seeds food
// placement from the clock.
func newRuntime(cfg config.SnakeConfig, screenW, screenH int) core.RuntimeConfig {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return cfg.Runtime(screenW, screenH, seed)
}

// newGame builds a game for the runtime's board.
func newGame(rc core.RuntimeConfig, logger *log.Logger) (*game.Game, error) {
	g, err := game.New(rc.BoardW, rc.BoardH, rc.TileSize, core.NewRNG(rc.Seed))
	if err != nil {
		return nil, err
	}
	logger.Debug("game created",
		"board", fmt.Sprintf("%dx%d", g.Cols(), g.Rows()),
		"tile", g.TileSize(),
		"seed", rc.Seed,
		"tick_rate", rc.TickRate,
		"move_every_ticks", rc.MoveEveryTicks)
	return g, nil
}
