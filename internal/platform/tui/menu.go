package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tank-arena/internal/config"
	"github.com/vovakirdan/tank-arena/internal/core"
	"github.com/vovakirdan/tank-arena/internal/registry"
	"github.com/vovakirdan/tank-arena/internal/storage"
)

var presets = []config.DifficultyPreset{config.DifficultyEasy, config.DifficultyNormal, config.DifficultyHard}

// MenuKeyMap defines key bindings for the variant picker.
type MenuKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Easier     key.Binding
	Harder     key.Binding
	Select     key.Binding
	Scoreboard key.Binding
	Quit       key.Binding
}

// ShortHelp implements help.KeyMap.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Easier, k.Harder, k.Select, k.Scoreboard, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultMenuKeyMap returns the default picker bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up:     upKey("variant"),
		Down:   downKey("variant"),
		Easier: leftKey("easier"),
		Harder: rightKey("harder"),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Scoreboard: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Quit: quitKey("quit"),
	}
}

// MenuModel is the Bubble Tea model for picking a variant and difficulty.
type MenuModel struct {
	items          []registry.GameInfo
	cursor         int
	preset         int // Index into presets
	best           map[string]int
	config         core.RuntimeConfig
	keys           MenuKeyMap
	help           help.Model
	quitting       bool
	selected       bool
	openScoreboard bool
}

// NewMenuModel creates a picker over the registered variants. store may be
// nil; it only supplies the best score shown next to each entry.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, preset config.DifficultyPreset) MenuModel {
	items := registry.List()
	best := make(map[string]int, len(items))
	if store != nil {
		for _, it := range items {
			if hs, err := store.HighScore(it.ID); err == nil {
				best[it.ID] = hs
			}
		}
	}

	m := MenuModel{
		items:  items,
		preset: 1,
		best:   best,
		config: cfg,
		keys:   DefaultMenuKeyMap(),
		help:   help.New(),
	}
	for i, p := range presets {
		if p == preset {
			m.preset = i
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.cursor = max(m.cursor-1, 0)

	case key.Matches(msg, m.keys.Down):
		m.cursor = min(m.cursor+1, max(len(m.items)-1, 0))

	case key.Matches(msg, m.keys.Easier):
		m.preset = max(m.preset-1, 0)

	case key.Matches(msg, m.keys.Harder):
		m.preset = min(m.preset+1, len(presets)-1)

	case key.Matches(msg, m.keys.Select):
		if len(m.items) > 0 {
			m.selected = true
			return m, tea.Quit
		}

	case key.Matches(msg, m.keys.Scoreboard):
		m.openScoreboard = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	width := m.config.ScreenW
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("  T A N K   A R E N A  ", width)))
	b.WriteString("\n\n")

	for i, it := range m.items {
		line := it.Title
		if hs := m.best[it.ID]; hs > 0 {
			line += fmt.Sprintf("  (best %d)", hs)
		}
		if i == m.cursor {
			b.WriteString(activeStyle.Render(centerText("> "+line, width)))
		} else {
			b.WriteString(centerText("  "+line, width))
		}
		b.WriteString("\n")
	}

	labels := make([]string, len(presets))
	for i, p := range presets {
		labels[i] = string(p)
	}
	b.WriteString("\n")
	b.WriteString(centerText("Difficulty: "+tabBar(labels, m.preset), width))
	b.WriteString("\n\n")
	b.WriteString(centerText(helpStyle.Render(m.help.View(m.keys)), width))
	b.WriteString("\n")
	return b.String()
}

// MenuResult holds the outcome of the picker.
type MenuResult struct {
	GameID          string
	Preset          config.DifficultyPreset
	Config          core.RuntimeConfig // Updated by resizes
	WantsScoreboard bool
	Quit            bool
}

// Result reports what the user chose.
func (m MenuModel) Result() MenuResult {
	res := MenuResult{
		Preset:          presets[m.preset],
		Config:          m.config,
		WantsScoreboard: m.openScoreboard,
		Quit:            m.quitting || (!m.selected && !m.openScoreboard),
	}
	if m.selected && len(m.items) > 0 {
		res.GameID = m.items[m.cursor].ID
	}
	return res
}

// RunMenu runs the picker and returns the selection.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig, preset config.DifficultyPreset) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(store, cfg, preset), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg, Quit: true}, err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.Result(), nil
}
