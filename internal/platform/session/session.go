// Package session paces a game for a host. Hosts feed it one input frame
// per host tick; it applies turns, runs a game update every move interval,
// and restarts the game after a collision.
package session

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/game"
)

// Event describes what happened during one host tick.
type Event int

const (
	EventNone Event = iota
	EventMoved
	EventAte
	EventWon
	EventCrashed
	EventRestarted
)

func (e Event) String() string {
	switch e {
	case EventNone:
		return "none"
	case EventMoved:
		return "moved"
	case EventAte:
		return "ate"
	case EventWon:
		return "won"
	case EventCrashed:
		return "crashed"
	case EventRestarted:
		return "restarted"
	default:
		return "unknown"
	}
}

// Session drives one game on behalf of a host.
type Session struct {
	game       *game.Game
	timing     config.TimingConfig
	difficulty *config.DifficultyManager
	logger     *log.Logger
	sinceMove  int
	resets     int
	paused     bool
}

// New creates a session for g. A nil logger discards all output.
func New(g *game.Game, cfg config.SnakeConfig, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Session{
		game:       g,
		timing:     cfg.Timing,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		logger:     logger,
	}
}

// Game returns the driven game.
func (s *Session) Game() *game.Game { return s.game }

// Paused reports whether the session is paused.
func (s *Session) Paused() bool { return s.paused }

// Resets returns how many times the game was restarted.
func (s *Session) Resets() int { return s.resets }

// MoveEveryTicks returns the current number of host ticks per game update.
func (s *Session) MoveEveryTicks() int {
	return s.difficulty.MoveEveryTicks(s.timing, s.game.Len(), s.game.Ticks())
}

// Tick processes one host tick with the input collected since the last one.
func (s *Session) Tick(frame core.InputFrame) Event {
	if frame.Has(core.ActionRestart) {
		s.reset("restart")
		return EventRestarted
	}
	// Each press toggles, so a double tap within one tick cancels out
	if n := frame.Count(core.ActionPause); n > 0 && s.game.Phase() == game.PhaseRunning {
		s.paused = s.paused != (n%2 == 1)
		s.logger.Debug("pause toggled", "presses", n, "paused", s.paused)
	}
	if s.paused {
		return EventNone
	}

	for _, a := range frame.Turns() {
		s.game.ChangeDirection(DirectionFor(a))
	}

	s.sinceMove++
	if s.sinceMove < s.MoveEveryTicks() {
		return EventNone
	}
	s.sinceMove = 0
	return s.step()
}

// step runs one game update and handles its outcome.
func (s *Session) step() Event {
	if s.game.Phase() != game.PhaseRunning {
		return EventNone
	}

	before := s.game.Len()
	if !s.game.Update() {
		s.logger.Debug("game over", "length", before, "head", s.game.Head())
		s.reset("collision")
		return EventCrashed
	}

	switch {
	case s.game.Won():
		s.logger.Info("board filled", "length", s.game.Len())
		return EventWon
	case s.game.Len() > before:
		s.logger.Debug("food eaten", "length", s.game.Len())
		return EventAte
	default:
		return EventMoved
	}
}

// reset starts a new game on the same board.
func (s *Session) reset(reason string) {
	if err := s.game.Reset(); err != nil {
		s.logger.Error("reset failed", "err", err)
		return
	}
	s.resets++
	s.paused = false
	s.sinceMove = 0
	s.logger.Debug("game reset", "reason", reason, "resets", s.resets)
}

// DirectionFor converts a turn action to a game direction. Any other
// action maps to DirNone, which the game ignores.
func DirectionFor(a core.Action) game.Direction {
	switch a {
	case core.ActionUp:
		return game.DirUp
	case core.ActionDown:
		return game.DirDown
	case core.ActionLeft:
		return game.DirLeft
	case core.ActionRight:
		return game.DirRight
	default:
		return game.DirNone
	}
}
