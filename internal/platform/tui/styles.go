package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// Palette shared by the menu, the scoreboard and the help bar.
var (
	colorAccent = lipgloss.Color("229")
	colorTitle  = lipgloss.Color("2")
	colorSelect = lipgloss.Color("57")
	colorMuted  = lipgloss.Color("241")
	colorBorder = lipgloss.Color("240")
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(colorTitle)
	activeStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	helpStyle      = lipgloss.NewStyle().Foreground(colorMuted)
	tabStyle       = lipgloss.NewStyle().Foreground(colorMuted)
	activeTabStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Background(colorSelect)
	panelStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorBorder).Padding(0, 1)
	emptyStyle     = lipgloss.NewStyle().Foreground(colorMuted).Italic(true).Padding(1, 2)
)

func tableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colorBorder).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.Foreground(colorAccent).Background(colorSelect).Bold(false)
	return s
}

// Bindings used by more than one screen, so every screen navigates alike.

func upKey(desc string) key.Binding {
	return key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", desc))
}

func downKey(desc string) key.Binding {
	return key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", desc))
}

func leftKey(desc string, extra ...string) key.Binding {
	return key.NewBinding(key.WithKeys(append([]string{"left", "h"}, extra...)...), key.WithHelp("←/h", desc))
}

func rightKey(desc string, extra ...string) key.Binding {
	return key.NewBinding(key.WithKeys(append([]string{"right", "l"}, extra...)...), key.WithHelp("→/l", desc))
}

func quitKey(desc string) key.Binding {
	return key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q/esc", desc))
}

// tabBar renders labels in a row with the active one bracketed.
func tabBar(labels []string, active int) string {
	parts := make([]string, len(labels))
	for i, l := range labels {
		if i == active {
			parts[i] = activeTabStyle.Render("[" + l + "]")
		} else {
			parts[i] = tabStyle.Render(" " + l + " ")
		}
	}
	return strings.Join(parts, " ")
}

// centerText left-pads text to center it within width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
