package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/balloon-drive/internal/balloons"
	"github.com/vovakirdan/balloon-drive/internal/core"
)

// footerRows is the space reserved below the playfield for the help line.
const footerRows = 1

// Model is the Bubble Tea model that hosts one game.
// Each TickMsg is a host frame callback: held keys are expired, then the
// game's clock decides how many simulation steps to run and renders.
type Model struct {
	game     *balloons.Game
	screen   *core.Screen
	palette  Palette
	keys     KeyMap
	help     help.Model
	hold     *KeyHold
	logger   *log.Logger
	config   core.RuntimeConfig
	start    time.Time
	quitting bool
}

// NewModel creates a Bubble Tea model for the given game.
// A nil logger discards log output.
func NewModel(game *balloons.Game, cfg core.RuntimeConfig, palette Palette, logger *log.Logger) Model {
	if cfg.HostRate <= 0 {
		cfg.HostRate = game.Config().Terminal.HostRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH-footerRows),
		palette: palette,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		hold:    NewKeyHold(game.Config().KeyHold()),
		logger:  logger,
		config:  cfg,
		start:   time.Now(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.HostRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	for _, ev := range m.hold.Press(m.keys.Direction(msg), now) {
		m.game.HandleKey(ev)
	}
	return m, nil
}

// handleResize processes window resize events.
// The world lives in logical coordinates, so only the buffer changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-footerRows)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one host frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	for _, ev := range m.hold.Expire(now) {
		m.game.HandleKey(ev)
	}

	stats := m.game.Frame(sinceMillis(m.start, now), balloons.ScreenRenderer{
		World:  m.game.World(),
		Screen: m.screen,
	})
	if stats.Dropped > 0 {
		m.logger.Warn("simulation fell behind", "steps", stats.Steps, "dropped", stats.Dropped)
	}

	return m, tickCmd(m.config.HostRate)
}

// saveScreenshot writes the current screen buffer to ~/.balloons/screenshots.
func (m *Model) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".balloons", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the last drawn frame plus the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.screen, m.palette) + "\n" + m.help.View(m.keys)
}

// Score returns the hosted game's score.
func (m Model) Score() int {
	return m.game.Score()
}

// Run starts the Bubble Tea program for game and blocks until the player
// quits. It returns the final score.
func Run(game *balloons.Game, cfg core.RuntimeConfig, logger *log.Logger) (int, error) {
	model := NewModel(game, cfg, NewPalette(nil), logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return 0, err
	}
	if m, ok := final.(Model); ok {
		return m.Score(), nil
	}
	return game.Score(), nil
}
