//go:build !ebiten

package window

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/game"
)

// headless reports that this build has no window support.
const headless = true

// Run always fails in the headless build.
func Run(*game.Game, config.SnakeConfig, float64, *log.Logger) error {
	return ErrUnavailable
}
