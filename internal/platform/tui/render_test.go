package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/game"
)

func TestDrawGameLayout(t *testing.T) {
	g, err := game.New(60, 40, 20, firstPicker{}) // 3x2, head (1,1), food (0,0)
	if err != nil {
		t.Fatalf("game.New failed: %v", err)
	}
	s := core.NewScreen(20, 10)
	DrawGame(s, g, "")

	frame := BoardRect(s, g.Cols(), g.Rows())
	if frame != core.NewRect(6, 3, 8, 4) {
		t.Fatalf("BoardRect = %+v", frame)
	}
	if s.Get(6, 3) != '┌' || s.Get(13, 6) != '┘' {
		t.Errorf("frame corners missing:\n%s", s.String())
	}

	// Row 1 is the top board row on screen
	head := s.GetCell(9, 4)
	if head.Rune != '█' || head.Color != core.ColorSnake {
		t.Errorf("head cell = %+v", head)
	}
	food := s.GetCell(7, 5)
	if food.Rune != '●' || food.Color != core.ColorFood {
		t.Errorf("food cell = %+v", food)
	}
	if c := s.GetCell(11, 5); c.Color != core.ColorEmpty {
		t.Errorf("empty cell = %+v", c)
	}
	if !strings.HasPrefix(strings.TrimSpace(s.Row(0)), "length 1") {
		t.Errorf("HUD row = %q", s.Row(0))
	}
}

func TestDrawGameTooSmall(t *testing.T) {
	g, err := game.New(400, 400, 20, firstPicker{})
	if err != nil {
		t.Fatalf("game.New failed: %v", err)
	}
	s := core.NewScreen(30, 10)
	DrawGame(s, g, "")

	if !strings.Contains(s.String(), "terminal too small") {
		t.Errorf("expected a size warning, got:\n%s", s.String())
	}
}

func TestDrawOverlayBlanksBoardRow(t *testing.T) {
	g, err := game.New(200, 200, 20, firstPicker{}) // 10x10
	if err != nil {
		t.Fatalf("game.New failed: %v", err)
	}
	s := core.NewScreen(40, 20)
	DrawGame(s, g, "")
	DrawOverlay(s, g, "PAUSED")

	frame := BoardRect(s, g.Cols(), g.Rows())
	y := frame.Y + frame.H/2
	row := []rune(s.Row(y))
	for x := frame.X + 1; x < frame.Right()-1; x++ {
		if row[x] == '·' || row[x] == '█' {
			t.Fatalf("overlay row still shows tiles: %q", s.Row(y))
		}
	}
	if s.Get(frame.X, y) != '│' || s.Get(frame.Right()-1, y) != '│' {
		t.Errorf("overlay should keep the frame edges: %q", s.Row(y))
	}
	if !strings.Contains(s.Row(y), "PAUSED") {
		t.Errorf("overlay text missing: %q", s.Row(y))
	}
}

func TestRenderScreenPlainStyles(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab", core.ColorSnake)
	s.DrawText(2, 0, "cd", core.ColorFood)
	s.DrawText(0, 1, "xyz", core.ColorHUD)

	styles := Styles{core.ColorDefault: lipgloss.NewStyle()}
	if got, want := RenderScreen(s, styles), s.String(); got != want {
		t.Errorf("RenderScreen = %q, expected %q", got, want)
	}
}
