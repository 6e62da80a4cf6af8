package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tank-arena/internal/registry"
	"github.com/vovakirdan/tank-arena/internal/storage"
)

const scoreboardRounds = 100 // Rounds loaded per variant

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Prev key.Binding
	Next key.Binding
	Back key.Binding
}

// ShortHelp implements help.KeyMap.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Prev, k.Next, k.Back}
}

// FullHelp implements help.KeyMap.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultScoreboardKeyMap returns the scoreboard bindings. Tab and
// Shift+Tab switch variants as well as the arrows.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:   upKey("scroll"),
		Down: downKey("scroll"),
		Prev: leftKey("prev variant", "shift+tab"),
		Next: rightKey("next variant", "tab"),
		Back: quitKey("close"),
	}
}

// ScoreboardModel browses the recorded rounds of every variant.
type ScoreboardModel struct {
	store      *storage.Store
	games      []registry.GameInfo
	gameCursor int
	scores     []storage.RoundResult
	summary    storage.Summary

	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	width    int
	quitting bool
}

// NewScoreboardModel opens the scoreboard on the first variant.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store: store,
		games: registry.List(),
		table: table.New(
			table.WithColumns(scoreColumns(width)),
			table.WithHeight(tableHeight(height)),
			table.WithFocused(true),
			table.WithStyles(tableStyles()),
		),
		help:  help.New(),
		keys:  DefaultScoreboardKeyMap(),
		width: width,
	}
	m.selectGame(0)
	return m
}

func scoreColumns(width int) []table.Column {
	cols := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 8},
		{Title: "Level", Width: 6},
		{Title: "Ticks", Width: 8},
		{Title: "Date", Width: 12},
	}
	// Borders, padding and cell gaps take about 16 columns
	used := 16
	for _, c := range cols {
		used += c.Width
	}
	cols[len(cols)-1].Width += min(max(width-used, 0), 8)
	return cols
}

func tableHeight(height int) int {
	// Title, tabs, panel border, summary and help
	return max(height-10, 3)
}

// selectGame switches to the variant at index i, wrapping around.
func (m *ScoreboardModel) selectGame(i int) {
	if len(m.games) == 0 {
		return
	}
	m.gameCursor = (i%len(m.games) + len(m.games)) % len(m.games)
	id := m.games[m.gameCursor].ID

	m.scores, m.summary = nil, storage.Summary{GameID: id}
	if m.store != nil {
		if rounds, err := m.store.TopRounds(id, scoreboardRounds); err == nil {
			m.scores = rounds
		}
		if sum, err := m.store.Summarize(id); err == nil {
			m.summary = sum
		}
	}

	rows := make([]table.Row, len(m.scores))
	for i, r := range m.scores {
		rows[i] = table.Row{
			strconv.Itoa(i + 1),
			strconv.Itoa(r.Score),
			strconv.Itoa(r.Level),
			strconv.FormatInt(r.Ticks, 10),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// summaryLine describes all recorded rounds of the selected variant.
func (m ScoreboardModel) summaryLine() string {
	if m.summary.Rounds == 0 {
		return ""
	}
	return fmt.Sprintf("%d rounds  best %d  avg %.0f  max level %d",
		m.summary.Rounds, m.summary.Best, m.summary.Average, m.summary.MaxLevel)
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles variant switching and passes scrolling to the table.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Back):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Prev):
			m.selectGame(m.gameCursor - 1)
			return m, nil
		case key.Matches(msg, m.keys.Next):
			m.selectGame(m.gameCursor + 1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.table.SetColumns(scoreColumns(msg.Width))
		m.table.SetHeight(tableHeight(msg.Height))
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	title := "HIGH SCORES"
	ids := make([]string, len(m.games))
	for i, g := range m.games {
		ids[i] = g.ID
	}
	if len(m.games) > 0 {
		title += " - " + m.games[m.gameCursor].Title
	}

	body := emptyStyle.Render("No rounds recorded yet.\nFinish a round to set a high score!")
	if len(m.scores) > 0 {
		body = m.table.View()
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText(tabBar(ids, m.gameCursor), m.width))
	b.WriteString("\n\n")
	b.WriteString(panelStyle.Render(body))
	b.WriteString("\n")
	if line := m.summaryLine(); line != "" {
		b.WriteString(helpStyle.Render(line))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// RunScoreboard runs the scoreboard screen until the user leaves it.
func RunScoreboard(store *storage.Store, width, height int) error {
	_, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	return err
}
