package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/game"
)

// cellsPerTile is the number of terminal columns one tile occupies.
// Terminal cells are roughly twice as tall as wide.
const cellsPerTile = 2

// Styles maps core.Color roles to lipgloss styles.
type Styles map[core.Color]lipgloss.Style

// NewStyles builds the styles for a palette.
func NewStyles(p config.PaletteConfig) Styles {
	fg := func(c core.Color) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(p.Color(c)))
	}
	return Styles{
		core.ColorDefault: lipgloss.NewStyle(),
		core.ColorSnake:   fg(core.ColorSnake),
		core.ColorEmpty:   fg(core.ColorEmpty),
		core.ColorFood:    fg(core.ColorFood),
		core.ColorHUD:     fg(core.ColorHUD),
		core.ColorOverlay: fg(core.ColorOverlay).Bold(true),
	}
}

// classColors maps render color classes to screen colors.
var classColors = map[game.ColorClass]core.Color{
	game.ClassSnake: core.ColorSnake,
	game.ClassEmpty: core.ColorEmpty,
	game.ClassFood:  core.ColorFood,
}

// classRunes are the glyphs drawn for each color class.
var classRunes = map[game.ColorClass]rune{
	game.ClassSnake: '█',
	game.ClassEmpty: '·',
	game.ClassFood:  '●',
}

// BoardRect returns where the framed board sits on a screen: centered
// horizontally, below the HUD row.
func BoardRect(s *core.Screen, cols, rows int) core.Rect {
	w := cols*cellsPerTile + 2
	h := rows + 2
	area := core.NewRect(0, 1, s.Width(), s.Height()-1)
	r := area.Centered(w, h)
	r.X = core.Clamp(r.X, 0, s.Width())
	r.Y = core.Clamp(r.Y, 1, s.Height())
	return r
}

// DrawGame rasterizes the game's tile instances onto the screen with a
// frame and a one-line HUD. Row 0 of the board is drawn at the bottom.
func DrawGame(s *core.Screen, g *game.Game, status string) {
	s.Clear()

	hud := fmt.Sprintf("length %d  dir %s", g.Len(), g.CurrentDirection())
	if status != "" {
		hud += "  " + status
	}
	s.DrawText(1, 0, hud, core.ColorHUD)

	frame := BoardRect(s, g.Cols(), g.Rows())
	if !s.Bounds().Contains(frame.Right()-1, frame.Bottom()-1) {
		s.DrawTextCentered(s.Height()/2,
			fmt.Sprintf("terminal too small: need %dx%d", frame.W, frame.Bottom()), core.ColorOverlay)
		return
	}
	s.DrawBox(frame, core.ColorHUD)

	rows := g.Rows()
	for _, in := range g.Instances() {
		x := frame.X + 1 + in.Col*cellsPerTile
		y := frame.Y + 1 + (rows - 1 - in.Row)
		for i := range cellsPerTile {
			s.Set(x+i, y, classRunes[in.ColorClass], classColors[in.ColorClass])
		}
	}
}

// DrawOverlay blanks the middle board row and writes a centered message on it.
func DrawOverlay(s *core.Screen, g *game.Game, text string) {
	frame := BoardRect(s, g.Cols(), g.Rows())
	y := frame.Y + frame.H/2
	s.DrawRect(core.NewRect(frame.X+1, y, frame.W-2, 1), ' ', core.ColorOverlay)
	s.DrawTextCentered(y, text, core.ColorOverlay)
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, styles Styles) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := styles[startColor]
			if !ok {
				style = styles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
