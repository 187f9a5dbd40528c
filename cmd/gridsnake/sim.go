package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/game"
	"github.com/vovakirdan/gridsnake/internal/platform/session"
)

var (
	flagSimTicks int
	flagSimDirs  string
	flagSimTrace bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a scripted game without a display",
	Long: `Run a game headless: one game update per tick, with turns taken from
a script. The final board is printed top row first, followed by a snapshot.

Script entries are comma separated, one per tick: up, down, left, right
(or u, d, l, r). Empty entries and "-" keep the current direction. Ticks
beyond the script keep the current direction.

Board legend:
  S  head    b  body    F  food    .  empty

Examples:
  gridsnake sim --dirs up,up,left --ticks 10 --seed 7
  gridsnake sim --dirs right,-,-,up --trace --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 0, "Number of ticks to run (0 = length of the script)")
	simCmd.Flags().StringVar(&flagSimDirs, "dirs", "", "Comma-separated turns, one per tick")
	simCmd.Flags().BoolVar(&flagSimTrace, "trace", false, "Print a snapshot after every tick")
}

func runSim(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	script, err := parseScript(flagSimDirs)
	if err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	g, err := newGame(newRuntime(cfg, 0, 0), logger)
	if err != nil {
		return err
	}

	ticks := flagSimTicks
	if ticks <= 0 {
		ticks = len(script)
	}

	// Every host tick is a game update
	cfg.Timing.MoveEveryTicks = 1
	cfg.Timing.MinMoveEveryTicks = 1
	s := session.New(g, cfg, logger)

	return simulate(cmd.OutOrStdout(), s, script, ticks, flagSimTrace)
}

// simulate runs ticks session ticks with the scripted turns and writes the
// final board and snapshot to w.
func simulate(w io.Writer, s *session.Session, script []core.Action, ticks int, trace bool) error {
	frame := core.NewInputFrame()
	for i := range ticks {
		if i < len(script) && script[i] != core.ActionNone {
			frame.Set(script[i])
		}
		ev := s.Tick(frame)
		frame.Clear()

		if trace {
			if _, err := fmt.Fprintf(w, "%4d %-9s %s\n", i+1, ev, s.Game().Snapshot()); err != nil {
				return err
			}
		}
	}

	_, err := fmt.Fprintf(w, "%s\n%s\nresets=%d\n", s.Game(), s.Game().Snapshot(), s.Resets())
	return err
}

// parseScript turns "up,,l,-" into per-tick actions.
func parseScript(s string) ([]core.Action, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	script := make([]core.Action, len(parts))
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" || p == "-" {
			continue
		}
		d, err := game.ParseDirection(p)
		if err != nil {
			return nil, fmt.Errorf("--dirs entry %d: %w", i+1, err)
		}
		script[i] = actionFor(d)
	}
	return script, nil
}

func actionFor(d game.Direction) core.Action {
	switch d {
	case game.DirUp:
		return core.ActionUp
	case game.DirDown:
		return core.ActionDown
	case game.DirLeft:
		return core.ActionLeft
	case game.DirRight:
		return core.ActionRight
	default:
		return core.ActionNone
	}
}
