package session

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tank-arena/internal/core"
	"github.com/vovakirdan/tank-arena/internal/storage"
)

type recordingCues struct {
	calls int
}

func (c *recordingCues) Play([]core.Event) { c.calls++ }

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func gameOver(score int) core.StepResult {
	return core.StepResult{
		State:  core.GameState{Score: score, Level: 2, GameOver: true},
		Events: []core.Event{{Kind: core.EventGameOver, Value: score}},
	}
}

func TestRecorderSavesFinishedRounds(t *testing.T) {
	store := openStore(t)
	r := NewRecorder("drift", 7, Options{Store: store})

	r.Observe(core.StepResult{})
	r.Observe(core.StepResult{})
	r.Observe(gameOver(40))
	r.Observe(gameOver(40))
	r.Observe(core.StepResult{Events: []core.Event{{Kind: core.EventRestart}}})
	r.Observe(gameOver(0))
	r.Observe(core.StepResult{Events: []core.Event{{Kind: core.EventRestart}}})
	r.Observe(core.StepResult{})
	r.Observe(gameOver(90))

	rounds, err := store.TopRounds("drift", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(rounds) != 2 {
		t.Fatalf("saved %d rounds, want 2: %+v", len(rounds), rounds)
	}

	tests := []struct {
		score int
		ticks int64
	}{
		{90, 2},
		{40, 3},
	}
	for i, tt := range tests {
		got := rounds[i]
		if got.Score != tt.score || got.Ticks != tt.ticks || got.Level != 2 || got.Seed != 7 {
			t.Errorf("round %d = %+v, want score %d ticks %d", i, got, tt.score, tt.ticks)
		}
	}
	if r.Ticks() != 9 {
		t.Errorf("Ticks = %d, want 9", r.Ticks())
	}
}

func TestRecorderWithoutStore(t *testing.T) {
	cues := &recordingCues{}
	r := NewRecorder("descent", 1, Options{Cues: cues})

	r.Observe(gameOver(10))
	r.Observe(core.StepResult{})
	r.Observe(core.StepResult{Events: []core.Event{{Kind: core.EventShot}}})

	if cues.calls != 2 {
		t.Errorf("cue calls = %d, want 2 (only ticks with events)", cues.calls)
	}
}

func TestRecorderLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	r := NewRecorder("drift", 1, Options{Logger: logger})
	r.Observe(core.StepResult{
		State: core.GameState{Score: 100, Level: 2},
		Events: []core.Event{
			{Kind: core.EventLevelUp, Value: 2},
			{Kind: core.EventLifeLost, Value: 2},
		},
	})

	out := buf.String()
	for _, want := range []string{"level up", "life lost", "game=drift"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
}
