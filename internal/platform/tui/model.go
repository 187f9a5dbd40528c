package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/game"
	"github.com/vovakirdan/gridsnake/internal/platform/session"
)

// helpStyle renders the footer help line.
var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model that drives one game in the terminal.
type Model struct {
	session    *session.Session
	game       *game.Game
	tickRate   int
	screen     *core.Screen
	styles     Styles
	keyMapper  *KeyMapper
	help       help.Model
	logger     *log.Logger
	inputFrame core.InputFrame
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil logger discards all output.
func NewModel(g *game.Game, cfg config.SnakeConfig, screenW, screenH int, logger *log.Logger) Model {
	s := session.New(g, cfg, logger)
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = false
	h.Width = screenW

	return Model{
		session:    s,
		game:       g,
		tickRate:   cfg.Timing.TickRate,
		screen:     core.NewScreen(screenW, screenH-1), // Last row holds the help line
		styles:     NewStyles(cfg.Palette),
		keyMapper:  NewKeyMapper(DefaultKeyMap()),
		help:       h,
		logger:     logger,
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("game started",
		"cols", m.game.Cols(), "rows", m.game.Rows(),
		"tick_rate", m.tickRate)
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height-1)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.session.Tick(m.inputFrame)
		m.inputFrame.Clear()
		return m, tickCmd(m.tickRate)
	}

	return m, nil
}

// handleKey records the key's action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.logger.Info("quit", "length", m.game.Len(), "resets", m.session.Resets())
		return m, tea.Quit
	}
	if key.Matches(msg, m.keyMapper.Keys().Help) {
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var status string
	if n := m.session.Resets(); n > 0 {
		status = fmt.Sprintf("game %d", n+1)
	}

	DrawGame(m.screen, m.game, status)
	switch {
	case m.game.Won():
		DrawOverlay(m.screen, m.game, "BOARD FILLED - press r")
	case m.session.Paused():
		DrawOverlay(m.screen, m.game, "PAUSED")
	case m.game.Phase() == game.PhaseNotStarted:
		DrawOverlay(m.screen, m.game, "press an arrow key")
	}

	return RenderScreen(m.screen, m.styles) + "\n" + helpStyle.Render(m.help.View(m.keyMapper.Keys()))
}

// Run starts the Bubble Tea program for the given game.
func Run(g *game.Game, cfg config.SnakeConfig, screenW, screenH int, logger *log.Logger) error {
	model := NewModel(g, cfg, screenW, screenH, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
