package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tank-arena/internal/core"
	"github.com/vovakirdan/tank-arena/internal/platform/session"
	"github.com/vovakirdan/tank-arena/internal/registry"
	"github.com/vovakirdan/tank-arena/internal/storage"
)

// Options configures a game session.
type Options struct {
	Store       *storage.Store  // Nil disables score saving
	Logger      *log.Logger     // Nil discards logs
	Cues        session.CueSink // Nil plays nothing
	RepeatDelay int             // Hold for a fresh press, 0 = DefaultRepeatDelayTicks
	HoldTicks   int             // Hold added per repeat, 0 = DefaultHoldTicks
}

// Model is the Bubble Tea model for running an arena game.
type Model struct {
	game   registry.Game
	screen *core.Screen
	config core.RuntimeConfig
	rec    *session.Recorder
	logger *log.Logger

	keys  GameKeyMap
	help  help.Model
	held  *HoldTracker
	frame *core.InputFrame

	tick      *uint64 // Ticks since program start
	gameState core.GameState
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	rec := session.NewRecorder(game.ID(), cfg.Seed, session.Options{
		Store:  opts.Store,
		Logger: opts.Logger,
		Cues:   opts.Cues,
	})
	frame := core.NewInputFrame()

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		config: cfg,
		rec:    rec,
		logger: rec.Logger(),
		keys:   DefaultGameKeyMap(),
		help:   help.New(),
		held:   NewHoldTracker(opts.RepeatDelay, opts.HoldTicks),
		frame:  &frame,
		tick:   new(uint64),
	}
}

// Init starts the round and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("round started", "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
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
	res := m.keys.Map(msg)
	switch {
	case res.Quit:
		m.quitting = true
		return m, tea.Quit
	case res.Shot:
		m.saveScreenshot()
	case res.Held != 0:
		m.held.Press(res.Held, *m.tick)
	case res.Action != core.ActionNone:
		if res.Action == core.ActionPause {
			// Keys held into a pause would otherwise resume the round moving
			m.held.Release()
		}
		m.frame.Push(res.Action)
	}
	return m, nil
}

// handleResize keeps the round going; the game scales into any screen size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation step with the input gathered since the
// previous tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.frame.Held = m.held.Held(*m.tick)
	result := m.game.Step(*m.frame)
	m.frame.Clear()
	*m.tick++

	m.gameState = result.State
	m.rec.Observe(result)

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".tankarena", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// State returns the game state seen at the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
