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

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

// Model is the Bubble Tea model running the invaders game.
type Model struct {
	game     *invaders.Game
	cfg      config.InvadersConfig
	runtime  core.RuntimeConfig
	screen   *core.Screen
	inputs   *core.InputManager
	holds    *holdTracker
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	now      func() time.Time
	quitting bool
}

// NewModel creates a model for a new game. A nil logger discards output.
func NewModel(cfg config.InvadersConfig, rt core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	keys := DefaultKeyMap()
	keys.Rebind(cfg.Input.Keys)

	inputs := core.NewInputManager()
	inputs.Bind()
	logger.Debug("input bound")

	return Model{
		game:    invaders.New(cfg),
		cfg:     cfg,
		runtime: rt,
		screen:  core.NewScreen(rt.ScreenW, rt.ScreenH),
		inputs:  inputs,
		holds:   newHoldTracker(cfg.Input.RepeatDelay, cfg.Input.HoldWindow),
		keys:    keys,
		help:    help.New(),
		logger:  logger,
		now:     time.Now,
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.inputs.Unbind()
		m.holds.Reset()
		m.logger.Info("quit", "state", m.game.State(), "score", m.game.Score())
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	if c, ok := m.keys.Control(msg); ok {
		m.inputs.SetHeld(c, true)
		m.holds.Press(c, m.now())
	}
	return m, nil
}

// handleResize processes window resize events. The field keeps its
// configured width and takes its height from the terminal aspect.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width

	bounds := fieldBounds(m.cfg.Field.Width, msg.Width, msg.Height)
	m.game.SetBounds(bounds)
	m.logger.Debug("resize", "cols", msg.Width, "rows", msg.Height, "field", bounds)

	return m, nil
}

// handleTick runs one game frame with the currently held controls.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	for _, c := range m.holds.Expire(now) {
		m.inputs.SetHeld(c, false)
	}

	prev := m.game.State()
	m.game.Tick(now, m.inputs.Snapshot())

	if state := m.game.State(); state != prev {
		m.logger.Info("state changed", "from", prev, "to", state, "score", m.game.Score())
		if state == invaders.StatePlaying {
			m.logger.Debug("session started", "invaders", len(m.game.Invaders()), "field", m.game.Bounds())
		}
	}

	return m, tickCmd(m.runtime.TickRate)
}

// fieldBounds returns a field of the given width whose height matches
// the aspect of the terminal rows below the HUD. Terminal cells are about
// twice as tall as they are wide.
func fieldBounds(width float64, cols, rows int) core.Bounds {
	if cols <= 0 || rows < 2 {
		return core.Bounds{}
	}
	return core.Bounds{
		W: width,
		H: width * float64(rows-1) * 2 / float64(cols),
	}
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	dir := filepath.Join(home, ".invaders", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}

	filename := fmt.Sprintf("invaders_%s.txt", m.now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.game.State() {
	case invaders.StateStartScreen:
		return m.titleView(m.now())
	case invaders.StateGameOver:
		return m.gameOverView()
	default:
		return m.playingView()
	}
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(cfg config.InvadersConfig, rt core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(cfg, rt, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
