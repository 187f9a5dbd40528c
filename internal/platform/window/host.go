//go:build ebiten

package window

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/game"
	"github.com/vovakirdan/gridsnake/internal/platform/session"
)

const headless = false

// keyActions maps window keys to actions.
var keyActions = map[ebiten.Key]core.Action{
	ebiten.KeyArrowUp:    core.ActionUp,
	ebiten.KeyW:          core.ActionUp,
	ebiten.KeyArrowDown:  core.ActionDown,
	ebiten.KeyS:          core.ActionDown,
	ebiten.KeyArrowLeft:  core.ActionLeft,
	ebiten.KeyA:          core.ActionLeft,
	ebiten.KeyArrowRight: core.ActionRight,
	ebiten.KeyD:          core.ActionRight,
	ebiten.KeyP:          core.ActionPause,
	ebiten.KeyR:          core.ActionRestart,
}

// Host adapts a game session to the ebiten.Game interface.
type Host struct {
	session *session.Session
	game    *game.Game
	palette config.PaletteConfig
	logger  *log.Logger

	width, height int // Logical screen size in pixels
	background    color.Color
	white         *ebiten.Image
	vertices      []ebiten.Vertex
	indices       []uint16
	frame         core.InputFrame
}

// NewHost constructs a Host for the provided game.
func NewHost(g *game.Game, cfg config.SnakeConfig, logger *log.Logger) *Host {
	logger = loggerOrDiscard(logger)
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)

	r, gr, b := cfg.Palette.RGB(core.ColorDefault)
	width, height := g.Size()
	w, h := WindowSize(width, height, 1)

	return &Host{
		session:    session.New(g, cfg, logger),
		game:       g,
		palette:    cfg.Palette,
		logger:     logger,
		width:      w,
		height:     h,
		background: color.RGBA{R: r, G: gr, B: b, A: 0xff},
		white:      white,
		frame:      core.NewInputFrame(),
	}
}

// Update collects key presses and advances the session by one tick.
func (h *Host) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for k, a := range keyActions {
		if inpututil.IsKeyJustPressed(k) {
			h.frame.Set(a)
		}
	}

	if ev := h.session.Tick(h.frame); ev == session.EventCrashed || ev == session.EventWon {
		h.logger.Info("round ended", "event", ev, "resets", h.session.Resets())
	}
	h.frame.Clear()
	return nil
}

// Draw uploads the game's render vertices as colored triangles.
func (h *Host) Draw(screen *ebiten.Image) {
	screen.Fill(h.background)

	verts := h.game.RenderData()
	w, hh := float32(h.width), float32(h.height)

	h.vertices = h.vertices[:0]
	for _, v := range verts {
		x, y := ToPixel(v.Position, w, hh)
		c := ClassRGBA(h.palette, v.ColorClass)
		h.vertices = append(h.vertices, ebiten.Vertex{
			DstX: x, DstY: y,
			SrcX: 1, SrcY: 1,
			ColorR: c[0], ColorG: c[1], ColorB: c[2], ColorA: c[3],
		})
	}

	for _, batch := range Batches(len(h.vertices)) {
		n := batch[1] - batch[0]
		h.indices = h.indices[:0]
		for i := range n {
			h.indices = append(h.indices, uint16(i))
		}
		screen.DrawTriangles(h.vertices[batch[0]:batch[1]], h.indices, h.white, nil)
	}

	status := fmt.Sprintf("length %d", h.game.Len())
	switch {
	case h.game.Won():
		status += "  board filled - R to restart"
	case h.session.Paused():
		status += "  paused"
	case h.game.Phase() == game.PhaseNotStarted:
		status += "  press an arrow key"
	}
	ebitenutil.DebugPrint(screen, status)
}

// Layout returns the logical screen size.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	return h.width, h.height
}

// Run opens a window and plays until it is closed. scale multiplies the
// board size to get the initial window size.
func Run(g *game.Game, cfg config.SnakeConfig, scale float64, logger *log.Logger) error {
	host := NewHost(g, cfg, logger)

	ebiten.SetWindowTitle("gridsnake")
	width, height := g.Size()
	ebiten.SetWindowSize(WindowSize(width, height, scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Timing.TickRate)

	host.logger.Info("window opened", "cols", g.Cols(), "rows", g.Rows(), "tps", cfg.Timing.TickRate)
	if err := ebiten.RunGame(host); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
