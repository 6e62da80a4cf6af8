package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsRounds(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveRound(RoundResult{GameID: "drift", Score: 70}); err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("drift")
	if err != nil || high != 70 {
		t.Errorf("HighScore() = %d, %v; want 70", high, err)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	rounds := []RoundResult{
		{GameID: "drift", Score: 100, Level: 2, Ticks: 900, Seed: 1},
		{GameID: "drift", Score: 50, Level: 1, Ticks: 400, Seed: 2},
		{GameID: "drift", Score: 200, Level: 3, Ticks: 2000, Seed: 3},
		{GameID: "descent", Score: 500, Level: 6, Ticks: 5000, Seed: 4},
	}
	for _, r := range rounds {
		if _, err := store.SaveRound(r); err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
	}

	top, err := store.TopRounds("drift", 10)
	if err != nil {
		t.Fatalf("TopRounds() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 rounds, got %d", len(top))
	}
	if top[0].Score != 200 || top[1].Score != 100 || top[2].Score != 50 {
		t.Errorf("Rounds not sorted by score: %+v", top)
	}
	if top[0].Level != 3 || top[0].Ticks != 2000 || top[0].Seed != 3 {
		t.Errorf("Round fields not stored: %+v", top[0])
	}
	if top[0].CreatedAt.IsZero() {
		t.Error("CreatedAt not populated")
	}

	descent, err := store.TopRounds("descent", 10)
	if err != nil {
		t.Fatalf("TopRounds() failed: %v", err)
	}
	if len(descent) != 1 {
		t.Errorf("Expected 1 descent round, got %d", len(descent))
	}
}

func TestStoreTopRoundsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		store.SaveRound(RoundResult{GameID: "test", Score: (i + 1) * 100})
	}

	top, err := store.TopRounds("test", 3)
	if err != nil {
		t.Fatalf("TopRounds() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("Expected 3 rounds with limit, got %d", len(top))
	}
	if top[0].Score != 500 || top[1].Score != 400 || top[2].Score != 300 {
		t.Errorf("Rounds not in expected order: %v", top)
	}

	all, _ := store.TopRounds("test", 0)
	if len(all) != 5 {
		t.Errorf("Default limit should cover 5 rounds, got %d", len(all))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("drift")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	for _, s := range []int{100, 300, 200} {
		store.SaveRound(RoundResult{GameID: "drift", Score: s})
	}

	high, err = store.HighScore("drift")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreSummarize(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Summarize("drift")
	if err != nil {
		t.Fatalf("Summarize() failed: %v", err)
	}
	if empty.Rounds != 0 || empty.Best != 0 {
		t.Errorf("empty summary = %+v", empty)
	}

	store.SaveRound(RoundResult{GameID: "drift", Score: 100, Level: 2})
	store.SaveRound(RoundResult{GameID: "drift", Score: 300, Level: 4})

	sum, err := store.Summarize("drift")
	if err != nil {
		t.Fatalf("Summarize() failed: %v", err)
	}
	if sum.Rounds != 2 || sum.Best != 300 || sum.Average != 200 || sum.MaxLevel != 4 {
		t.Errorf("summary = %+v", sum)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveRound(RoundResult{GameID: "drift", Score: 100})
	store.SaveRound(RoundResult{GameID: "drift", Score: 200})
	store.SaveRound(RoundResult{GameID: "descent", Score: 300})

	if err := store.ClearScores("drift"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	drift, _ := store.TopRounds("drift", 10)
	if len(drift) != 0 {
		t.Errorf("Expected 0 drift rounds after clear, got %d", len(drift))
	}

	descent, _ := store.TopRounds("descent", 10)
	if len(descent) != 1 {
		t.Errorf("Descent rounds should not be affected by clearing drift")
	}
}
