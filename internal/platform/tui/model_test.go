package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/game"
)

// firstPicker always places food on the lowest free cell.
type firstPicker struct{}

func (firstPicker) Pick(candidates []int) int { return candidates[0] }

func testConfig(moveEvery int) config.SnakeConfig {
	cfg := config.DefaultSnakeConfig()
	cfg.Timing.MoveEveryTicks = moveEvery
	cfg.Timing.MinMoveEveryTicks = 1
	config.ApplySnakePreset(&cfg, config.DifficultyFixed)
	return cfg
}

func newTestModel(t *testing.T, width, height, tile float64, moveEvery int) (Model, *game.Game) {
	t.Helper()
	g, err := game.New(width, height, tile, firstPicker{})
	if err != nil {
		t.Fatalf("game.New failed: %v", err)
	}
	return NewModel(g, testConfig(moveEvery), 80, 30, nil), g
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		nm, ok := next.(Model)
		if !ok {
			t.Fatalf("Update returned %T, expected Model", next)
		}
		m = nm
	}
	return m
}

func ticks(n int) []tea.Msg {
	msgs := make([]tea.Msg, n)
	for i := range msgs {
		msgs[i] = TickMsg{}
	}
	return msgs
}

func TestKeyMapperMapKey(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap())

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"w", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}}, core.ActionUp, false},
		{"d", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}}, core.ActionRight, false},
		{"j", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}, core.ActionDown, false},
		{"pause", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}}, core.ActionPause, false},
		{"restart", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}}, core.ActionRestart, false},
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unmapped", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, core.ActionNone, false},
	}

	for _, tc := range tests {
		action, quit := km.MapKey(tc.msg)
		if action != tc.action || quit != tc.quit {
			t.Errorf("%s: MapKey = (%v, %v), expected (%v, %v)", tc.name, action, quit, tc.action, tc.quit)
		}
	}
}

func TestModelMovesEveryInterval(t *testing.T) {
	m, g := newTestModel(t, 200, 200, 20, 3) // 10x10, head (5,5)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m = send(t, m, ticks(2)...)
	if g.Head() != (game.Pos{X: 5, Y: 5}) {
		t.Fatalf("head moved before the interval elapsed: %v", g.Head())
	}

	m = send(t, m, ticks(1)...)
	if g.Head() != (game.Pos{X: 5, Y: 6}) {
		t.Fatalf("head = %v, expected (5,6) after one interval", g.Head())
	}

	send(t, m, ticks(3)...)
	if g.Head() != (game.Pos{X: 5, Y: 7}) {
		t.Errorf("head = %v, expected (5,7) after two intervals", g.Head())
	}
}

func TestModelResetsOnCollision(t *testing.T) {
	m, g := newTestModel(t, 60, 60, 20, 1) // 3x3, head (1,1)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = send(t, m, ticks(1)...)
	if g.Head() != (game.Pos{X: 2, Y: 1}) {
		t.Fatalf("head = %v, expected (2,1)", g.Head())
	}

	m = send(t, m, ticks(1)...) // into the right wall
	if g.Head() != (game.Pos{X: 1, Y: 1}) || g.Len() != 1 {
		t.Errorf("after collision head = %v len = %d, expected a fresh game", g.Head(), g.Len())
	}
	if g.Phase() != game.PhaseNotStarted {
		t.Errorf("Phase() = %v, expected %v", g.Phase(), game.PhaseNotStarted)
	}
	if m.session.Resets() != 1 {
		t.Errorf("Resets() = %d, expected 1", m.session.Resets())
	}
}

func TestModelPause(t *testing.T) {
	m, g := newTestModel(t, 200, 200, 20, 1)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = send(t, m, ticks(1)...)
	head := g.Head()

	m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	m = send(t, m, ticks(5)...)
	if g.Head() != head {
		t.Fatalf("game advanced while paused: %v -> %v", head, g.Head())
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("View() should show the pause overlay")
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	send(t, m, ticks(1)...)
	if g.Head() == head {
		t.Error("game should resume after unpausing")
	}
}

func TestModelRestart(t *testing.T) {
	m, g := newTestModel(t, 200, 200, 20, 1)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = send(t, m, ticks(2)...)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	send(t, m, ticks(1)...)

	if g.Head() != (game.Pos{X: 5, Y: 5}) || g.CurrentDirection() != game.DirNone {
		t.Errorf("after restart head = %v dir = %v", g.Head(), g.CurrentDirection())
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t, 200, 200, 20, 1)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("quit key should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit key should return tea.Quit")
	}
	if next.(Model).View() != "" {
		t.Error("View() after quit should be empty")
	}
}

func TestModelViewShowsHUDAndHelp(t *testing.T) {
	m, _ := newTestModel(t, 200, 200, 20, 1)
	view := m.View()

	for _, want := range []string{"length 1", "press an arrow key", "quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}
