package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/game"
)

// jumpHoldGrace is how long after the last jump key event the key is still
// considered held. Terminals report key repeats rather than releases, so the
// level-triggered "jump held" signal the game consumes is inferred from
// event recency. Auto-repeat starts only after the keyboard's typematic
// delay, and a grace long enough to bridge that delay would make a quick tap
// indistinguishable from a deliberate hold, so the practical hold length is
// capped at roughly this duration; keyboards with a short typematic delay
// can sustain longer holds through repeats.
const jumpHoldGrace = 150 * time.Millisecond

// Model is the Bubble Tea model driving the runner.
type Model struct {
	game   *game.Game
	screen *core.Screen
	keys   KeyMap
	help   help.Model
	logger *log.Logger

	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	heldUntil  time.Time // Jump considered held until this instant
	quitting   bool
	overLogged bool // Game over logged once per run
}

// NewModel creates a new Bubble Tea model for the runner.
func NewModel(g *game.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       g,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		logger:     logger,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("run started", "seed", m.config.Seed,
		"width", m.config.ScreenW, "height", m.config.ScreenH)
	return tickCmd(m.game.TickInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.logger.Info("quit", "score", m.gameState.Score, "best", m.gameState.Best)
		return m, tea.Quit

	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()

	case key.Matches(msg, m.keys.Jump):
		m.heldUntil = time.Now().Add(jumpHoldGrace)

	case key.Matches(msg, m.keys.Restart):
		if m.gameState.GameOver() {
			m.inputFrame.Set(core.ActionRestart)
		}
	}

	return m, nil
}

// handleResize processes window resize events. The current run restarts with
// the new dimensions; drawing never fails on a too-small window because the
// screen buffer clips out-of-bounds writes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if m.gameState.GameOver() {
		// Keep the game-over screen, but a restart must use the new geometry.
		m.game.Resize(m.config)
	} else {
		m.game.Reset(m.config)
	}

	m.logger.Debug("resize", "width", msg.Width, "height", msg.Height)
	return m, nil
}

// handleTick runs one simulation tick and schedules the next one, sized to
// the game's current interval minus the time this tick's work consumed.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	start := time.Now()

	// Level-triggered jump signal for this tick.
	if start.Before(m.heldUntil) {
		m.inputFrame.Set(core.ActionJump)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if m.gameState.GameOver() && !m.overLogged {
		m.logger.Info("game over", "score", m.gameState.Score, "best", m.gameState.Best)
		m.overLogged = true
	}
	if !m.gameState.GameOver() {
		m.overLogged = false
	}

	wait := m.game.TickInterval() - time.Since(start)
	return m, tickCmd(wait)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".runner", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
	m.logger.Debug("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program with the given model.
func Run(g *game.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(g, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: program failed: %w", err)
	}
	return nil
}
