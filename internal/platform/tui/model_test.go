package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tank-arena/internal/arena"
	"github.com/vovakirdan/tank-arena/internal/config"
	"github.com/vovakirdan/tank-arena/internal/core"
	"github.com/vovakirdan/tank-arena/internal/storage"
)

// scriptedGame replays fixed step results and records its inputs.
type scriptedGame struct {
	results []core.StepResult
	inputs  []core.InputFrame
	resets  int
}

func (g *scriptedGame) ID() string { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }
func (g *scriptedGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *scriptedGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "scripted") }
func (g *scriptedGame) State() core.GameState { return core.GameState{} }
func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in.Clone())
	if len(g.inputs) <= len(g.results) {
		return g.results[len(g.inputs)-1]
	}
	return core.StepResult{}
}

type recordingCues struct {
	events []core.Event
}

func (c *recordingCues) Play(events []core.Event) {
	c.events = append(c.events, events...)
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	mm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return mm
}

func tick(t *testing.T, m Model, n int) Model {
	t.Helper()
	for range n {
		m = update(t, m, TickMsg(time.Now()))
	}
	return m
}

var testRuntime = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}

func TestModelHeldKeysAndActions(t *testing.T) {
	g := &scriptedGame{}
	m := NewModel(g, testRuntime, Options{RepeatDelay: 2, HoldTicks: 2})
	m.Init()
	if g.resets != 1 {
		t.Fatalf("Init should reset the game once, got %d", g.resets)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = update(t, m, runeKey('s'))
	m = update(t, m, runeKey('s'))
	m = tick(t, m, 3)

	if len(g.inputs) != 3 {
		t.Fatalf("steps = %d, want 3", len(g.inputs))
	}
	first := g.inputs[0]
	if !first.IsHeld(core.KeyLeft) || first.Count(core.ActionShoot) != 2 {
		t.Errorf("first frame = %+v, want left held and two shots", first)
	}
	if g.inputs[1].Has(core.ActionShoot) {
		t.Error("actions must fire once, not on every held frame")
	}
	if !g.inputs[1].IsHeld(core.KeyLeft) || g.inputs[2].IsHeld(core.KeyLeft) {
		t.Error("left should be held for exactly the hold window")
	}
}

func TestModelSavesScoreOncePerRound(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	over := core.GameState{Score: 50, Level: 1, GameOver: true}
	g := &scriptedGame{results: []core.StepResult{
		{State: core.GameState{Score: 50, Level: 1, Health: 10, Lives: 1}},
		{State: over, Events: []core.Event{{Kind: core.EventGameOver, Value: 50}}},
		{State: over},
		{State: core.GameState{Level: 1, Health: 100, Lives: 3}, Events: []core.Event{{Kind: core.EventRestart}}},
		{State: core.GameState{Score: 80, Level: 1, GameOver: true}, Events: []core.Event{{Kind: core.EventGameOver, Value: 80}}},
	}}
	cues := &recordingCues{}

	m := NewModel(g, testRuntime, Options{Store: store, Cues: cues})
	m.Init()
	m = tick(t, m, 5)

	rounds, err := store.TopRounds("scripted", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(rounds) != 2 || rounds[0].Score != 80 || rounds[1].Score != 50 {
		t.Fatalf("saved rounds = %+v, want 80 and 50", rounds)
	}
	if rounds[0].Seed != testRuntime.Seed {
		t.Errorf("seed = %d, want %d", rounds[0].Seed, testRuntime.Seed)
	}
	if rounds[0].Ticks != 1 {
		t.Errorf("second round lasted %d ticks, want 1", rounds[0].Ticks)
	}
	if len(cues.events) != 3 {
		t.Errorf("cue events = %d, want 3", len(cues.events))
	}
	if !m.State().GameOver {
		t.Error("model should report the last state")
	}
}

func TestModelDrivesArena(t *testing.T) {
	g, err := arena.New(arena.Drift, config.DefaultArenaConfig())
	if err != nil {
		t.Fatal(err)
	}
	m := NewModel(g, testRuntime, Options{})
	m.Init()

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = tick(t, m, DefaultRepeatDelayTicks+4)

	// A single press moves the tank until the repeat delay runs out.
	if x := g.World().Player().Box.X; x != 100+DefaultRepeatDelayTicks*5 {
		t.Errorf("player x = %d, want %d", x, 100+DefaultRepeatDelayTicks*5)
	}

	m = update(t, m, runeKey('s'))
	m = tick(t, m, 1)
	if g.World().Count(arena.KindProjectile) != 1 {
		t.Error("shoot key did not fire")
	}

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	view := m.View()
	if !strings.Contains(view, "Health: 100") {
		t.Errorf("view missing HUD:\n%s", view)
	}
	if !strings.Contains(view, "shoot") {
		t.Error("view missing help bar")
	}
}

func TestModelPauseReleasesHeldKeys(t *testing.T) {
	g := &scriptedGame{}
	m := NewModel(g, testRuntime, Options{})
	m.Init()

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = update(t, m, runeKey('p'))
	m = tick(t, m, 1)
	m = update(t, m, runeKey('p'))
	m = tick(t, m, 1)

	for i, in := range g.inputs {
		if in.IsHeld(core.KeyRight) {
			t.Errorf("frame %d: right still held across a pause", i)
		}
		if !in.Has(core.ActionPause) {
			t.Errorf("frame %d: missing pause toggle", i)
		}
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&scriptedGame{}, testRuntime, Options{})
	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if next.(Model).View() != "" {
		t.Error("quitting model should render nothing")
	}
}
