package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tank-arena/internal/config"
	"github.com/vovakirdan/tank-arena/internal/storage"
)

func menuKey(t *testing.T, m MenuModel, msg tea.KeyMsg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(MenuModel)
}

func TestMenuSelectsVariantAndPreset(t *testing.T) {
	m := NewMenuModel(nil, testRuntime, "")
	if got := m.Result().Preset; got != config.DifficultyNormal {
		t.Fatalf("default preset = %q, want normal", got)
	}

	m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyDown}) // Clamped at the last entry
	m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = menuKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	res := m.Result()
	if res.Quit || res.WantsScoreboard {
		t.Fatalf("result = %+v, want a selection", res)
	}
	if res.GameID != "drift" || res.Preset != config.DifficultyHard {
		t.Errorf("selected %q/%q, want drift/hard", res.GameID, res.Preset)
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := menuKey(t, NewMenuModel(nil, testRuntime, config.DifficultyEasy), tea.KeyMsg{Type: tea.KeyTab})
	if res := m.Result(); !res.WantsScoreboard || res.Quit || res.Preset != config.DifficultyEasy {
		t.Errorf("tab result = %+v", res)
	}

	m = menuKey(t, NewMenuModel(nil, testRuntime, ""), runeKey('q'))
	if !m.Result().Quit || m.View() != "" {
		t.Error("q should quit")
	}
}

func TestMenuShowsBestScores(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	if _, err := store.SaveRound(storage.RoundResult{GameID: "descent", Score: 330, Level: 3}); err != nil {
		t.Fatal(err)
	}

	view := NewMenuModel(store, testRuntime, "").View()
	if !strings.Contains(view, "Tank Arena: Descent  (best 330)") {
		t.Errorf("menu missing best score:\n%s", view)
	}
	if !strings.Contains(view, "[normal]") {
		t.Errorf("menu missing difficulty:\n%s", view)
	}
}
