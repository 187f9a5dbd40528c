package session

import (
	"testing"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/game"
)

// firstPicker always places food on the lowest free cell.
type firstPicker struct{}

func (firstPicker) Pick(candidates []int) int { return candidates[0] }

func newTestSession(t *testing.T, width, height float64, moveEvery int) *Session {
	t.Helper()
	g, err := game.New(width, height, 20, firstPicker{})
	if err != nil {
		t.Fatalf("game.New failed: %v", err)
	}
	cfg := config.DefaultSnakeConfig()
	cfg.Timing.MoveEveryTicks = moveEvery
	cfg.Timing.MinMoveEveryTicks = 1
	config.ApplySnakePreset(&cfg, config.DifficultyFixed)
	return New(g, cfg, nil)
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestTickPacing(t *testing.T) {
	s := newTestSession(t, 200, 200, 4) // 10x10, head (5,5)

	events := []Event{s.Tick(frame(core.ActionRight))}
	for range 7 {
		events = append(events, s.Tick(frame()))
	}

	want := []Event{EventNone, EventNone, EventNone, EventMoved, EventNone, EventNone, EventNone, EventMoved}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("tick %d event = %v, expected %v", i, events[i], want[i])
		}
	}
	if head := s.Game().Head(); head != (game.Pos{X: 7, Y: 5}) {
		t.Errorf("head = %v, expected (7,5)", head)
	}
}

func TestTickAppliesTurnsInOrder(t *testing.T) {
	s := newTestSession(t, 60, 60, 1) // 3x3, head (1,1), food (0,0)
	s.Tick(frame(core.ActionLeft))
	s.Tick(frame(core.ActionDown)) // eat at (0,0), neck at (0,1)

	// Right is accepted, then Up is rejected because it points at the neck
	s.Tick(frame(core.ActionRight, core.ActionUp))
	if d := s.Game().CurrentDirection(); d != game.DirRight {
		t.Errorf("CurrentDirection() = %v, expected %v", d, game.DirRight)
	}
	if head := s.Game().Head(); head != (game.Pos{X: 1, Y: 0}) {
		t.Errorf("head = %v, expected (1,0)", head)
	}
}

func TestTickEvents(t *testing.T) {
	t.Run("ate", func(t *testing.T) {
		s := newTestSession(t, 60, 20, 1) // 3x1, head (1,0), food (0,0)
		if ev := s.Tick(frame(core.ActionLeft)); ev != EventAte {
			t.Errorf("event = %v, expected %v", ev, EventAte)
		}
		if s.Game().Len() != 2 {
			t.Errorf("Len() = %d, expected 2", s.Game().Len())
		}
	})

	t.Run("won", func(t *testing.T) {
		s := newTestSession(t, 40, 20, 1) // 2x1, head (1,0), food (0,0)
		if ev := s.Tick(frame(core.ActionLeft)); ev != EventWon {
			t.Errorf("event = %v, expected %v", ev, EventWon)
		}
		if ev := s.Tick(frame()); ev != EventNone {
			t.Errorf("event after win = %v, expected %v", ev, EventNone)
		}
	})

	t.Run("crashed", func(t *testing.T) {
		s := newTestSession(t, 60, 60, 1) // 3x3, head (1,1)
		s.Tick(frame(core.ActionDown))
		if ev := s.Tick(frame()); ev != EventCrashed {
			t.Errorf("event = %v, expected %v", ev, EventCrashed)
		}
		if s.Resets() != 1 || s.Game().Phase() != game.PhaseNotStarted {
			t.Errorf("after crash Resets() = %d Phase() = %v", s.Resets(), s.Game().Phase())
		}
	})

	t.Run("restarted", func(t *testing.T) {
		s := newTestSession(t, 200, 200, 1)
		s.Tick(frame(core.ActionUp))
		if ev := s.Tick(frame(core.ActionRestart, core.ActionLeft)); ev != EventRestarted {
			t.Errorf("event = %v, expected %v", ev, EventRestarted)
		}
		if s.Game().CurrentDirection() != game.DirNone {
			t.Error("restart should drop turns from the same frame")
		}
	})
}

func TestPause(t *testing.T) {
	s := newTestSession(t, 200, 200, 1)

	s.Tick(frame(core.ActionPause))
	if s.Paused() {
		t.Fatal("pausing before the first move should be ignored")
	}

	s.Tick(frame(core.ActionUp))
	s.Tick(frame(core.ActionPause))
	head := s.Game().Head()
	for range 3 {
		if ev := s.Tick(frame(core.ActionLeft)); ev != EventNone {
			t.Fatalf("event while paused = %v", ev)
		}
	}
	if s.Game().Head() != head || s.Game().CurrentDirection() != game.DirUp {
		t.Error("paused session should ignore input")
	}

	s.Tick(frame(core.ActionPause))
	if s.Paused() || s.Game().Head() == head {
		t.Error("unpausing should resume movement")
	}
}

func TestPauseCountsEveryPress(t *testing.T) {
	s := newTestSession(t, 200, 200, 1)
	s.Tick(frame(core.ActionUp))

	s.Tick(frame(core.ActionPause, core.ActionPause))
	if s.Paused() {
		t.Fatal("two presses in one tick should leave the session running")
	}

	s.Tick(frame(core.ActionPause, core.ActionPause, core.ActionPause))
	if !s.Paused() {
		t.Error("three presses in one tick should pause")
	}
}

func TestMoveEveryTicksFollowsLength(t *testing.T) {
	g, err := game.New(200, 200, 20, firstPicker{})
	if err != nil {
		t.Fatalf("game.New failed: %v", err)
	}
	cfg := config.DefaultSnakeConfig()
	cfg.Timing = config.TimingConfig{TickRate: 60, MoveEveryTicks: 10, MinMoveEveryTicks: 2}
	cfg.Difficulty = config.DifficultyConfig{
		Enabled:     true,
		Progression: config.ProgressionConfig{Type: "length", MaxAt: 1},
	}
	s := New(g, cfg, nil)

	if got := s.MoveEveryTicks(); got != 10 {
		t.Errorf("MoveEveryTicks() at length 1 = %d, expected 10", got)
	}

	// Food is at (0,0): go left to the wall, then down
	s.Tick(frame(core.ActionLeft))
	for s.Game().Head().X > 0 {
		s.Tick(frame())
	}
	s.Tick(frame(core.ActionDown))
	for s.Game().Len() == 1 {
		s.Tick(frame())
	}
	if got := s.MoveEveryTicks(); got != 2 {
		t.Errorf("MoveEveryTicks() at length 2 = %d, expected 2", got)
	}
}

func TestDirectionFor(t *testing.T) {
	tests := []struct {
		action core.Action
		want   game.Direction
	}{
		{core.ActionUp, game.DirUp},
		{core.ActionDown, game.DirDown},
		{core.ActionLeft, game.DirLeft},
		{core.ActionRight, game.DirRight},
		{core.ActionPause, game.DirNone},
	}
	for _, tc := range tests {
		if got := DirectionFor(tc.action); got != tc.want {
			t.Errorf("DirectionFor(%v) = %v, expected %v", tc.action, got, tc.want)
		}
	}
}
