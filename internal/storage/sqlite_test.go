package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
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
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.SaveScore("hexmines", 120)
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("Second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("hexmines")
	if err != nil || high != 120 {
		t.Errorf("HighScore after reopen = %d, %v; expected 120", high, err)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("hexmines", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("hexmines_pointy", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("hexmines", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	expected := []int{200, 100, 50}
	for i, want := range expected {
		if scores[i].Score != want {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, want)
		}
	}

	pointy, err := store.TopScores("hexmines_pointy", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(pointy) != 1 {
		t.Errorf("Expected 1 pointy score, got %d", len(pointy))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100)
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("hexmines")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("hexmines", 100)
	store.SaveScore("hexmines", 300)
	store.SaveScore("hexmines", 200)

	high, err = store.HighScore("hexmines")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("hexmines", 100)
	store.SaveScore("hexmines", 200)
	store.SaveScore("hexmines_pointy", 300)
	store.SaveResult(GameResult{GameID: "hexmines", Difficulty: "easy", Won: true})

	if err := store.ClearScores("hexmines"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("hexmines", 10); len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if stats, _ := store.WinRate("hexmines", ""); stats.Played != 0 {
		t.Errorf("Expected results cleared, got %+v", stats)
	}
	if scores, _ := store.TopScores("hexmines_pointy", 10); len(scores) != 1 {
		t.Error("Other games should not be affected by clear")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("hexmines")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	store.SaveScore("hexmines", 100)
	store.SaveScore("hexmines", 300)

	stats, err = store.GetGameStats("hexmines")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.TotalScore != 400 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, expected 200", stats.AvgScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestParseTimestamp(t *testing.T) {
	got := parseTimestamp("2024-03-01 12:30:45")
	if got.Year() != 2024 || got.Month() != 3 || got.Hour() != 12 || got.Second() != 45 {
		t.Errorf("parseTimestamp() = %v", got)
	}
	if !parseTimestamp("garbage").IsZero() {
		t.Error("Unparseable text should give zero time")
	}
	if !parseTimestamp(nil).IsZero() {
		t.Error("nil should give zero time")
	}
}

func TestResultIDUnique(t *testing.T) {
	store := openTestStore(t)

	id := uuid.New()
	if _, err := store.SaveResult(GameResult{ResultID: id, GameID: "hexmines", Difficulty: "easy"}); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	if _, err := store.SaveResult(GameResult{ResultID: id, GameID: "hexmines", Difficulty: "easy"}); err == nil {
		t.Error("Saving a duplicate result ID should fail")
	}
}
