package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tank-arena/internal/core"
)

// GameKeyMap defines the in-game key bindings.
type GameKeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Up         key.Binding
	Jump       key.Binding
	Shoot      key.Binding
	Restart    key.Binding
	Pause      key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Jump, k.Shoot, k.Pause, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Jump},
		{k.Shoot, k.Pause, k.Restart},
		{k.Screenshot, k.Quit},
	}
}

// DefaultGameKeyMap returns the default bindings: arrows to move, space to
// jump, s to shoot.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "climb"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "jump"),
		),
		Shoot: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "shoot"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("^s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyResult is what a single key message means to the game loop.
type KeyResult struct {
	Held   core.Key    // Movement key to hold, 0 if none
	Action core.Action // Edge action, ActionNone if none
	Quit   bool
	Shot   bool // Screenshot request
}

// Map translates a key message using the bindings.
func (k GameKeyMap) Map(msg tea.KeyMsg) KeyResult {
	switch {
	case key.Matches(msg, k.Quit):
		return KeyResult{Quit: true}
	case key.Matches(msg, k.Screenshot):
		return KeyResult{Shot: true}
	case key.Matches(msg, k.Left):
		return KeyResult{Held: core.KeyLeft}
	case key.Matches(msg, k.Right):
		return KeyResult{Held: core.KeyRight}
	case key.Matches(msg, k.Up):
		return KeyResult{Held: core.KeyUp}
	case key.Matches(msg, k.Jump):
		return KeyResult{Held: core.KeyJump}
	case key.Matches(msg, k.Shoot):
		return KeyResult{Action: core.ActionShoot}
	case key.Matches(msg, k.Restart):
		return KeyResult{Action: core.ActionRestart}
	case key.Matches(msg, k.Pause):
		return KeyResult{Action: core.ActionPause}
	}
	return KeyResult{}
}
