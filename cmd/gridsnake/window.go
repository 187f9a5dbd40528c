package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/platform/window"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a GPU window",
	Long: `Start a game in a window rendered with ebiten.

The window host needs a build with the ebiten tag:
  go build -tags ebiten ./cmd/gridsnake

Controls:
  Arrows/WASD  - Steer
  P            - Pause
  R            - Restart
  Q/Esc        - Quit`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window pixels per board unit")
}

func runWindow(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger, err := newLogger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rc := newRuntime(cfg, 0, 0)
	rc.ScreenW, rc.ScreenH = window.WindowSize(rc.BoardW, rc.BoardH, flagScale)
	g, err := newGame(rc, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("window size", "width", rc.ScreenW, "height", rc.ScreenH)

	if err := window.Run(g, cfg, flagScale, logger); err != nil {
		if errors.Is(err, window.ErrUnavailable) {
			fmt.Fprintln(os.Stderr, "The window host requires the ebiten build tag.")
			fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/gridsnake window` or build with `-tags ebiten`.")
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
