package storage

import (
	"testing"

	"github.com/google/uuid"
)

func TestSaveResultAssignsID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveResult(GameResult{
		GameID:       "hexmines",
		Difficulty:   "medium",
		Columns:      12,
		Rows:         9,
		Mines:        15,
		Won:          true,
		Revealed:     93,
		Score:        2360,
		DurationSecs: 84,
	})
	if err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	if id == uuid.Nil {
		t.Fatal("SaveResult() should assign a result ID")
	}

	results, err := store.RecentResults(10)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}

	r := results[0]
	if r.ResultID != id {
		t.Errorf("ResultID = %v, expected %v", r.ResultID, id)
	}
	if r.Columns != 12 || r.Rows != 9 || r.Mines != 15 || !r.Won || r.Revealed != 93 {
		t.Errorf("Unexpected result fields: %+v", r)
	}
	if r.Score != 2360 || r.DurationSecs != 84 || r.Difficulty != "medium" {
		t.Errorf("Unexpected result fields: %+v", r)
	}
	if r.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestRecentResultsOrderAndLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		if _, err := store.SaveResult(GameResult{GameID: "hexmines", Difficulty: "easy", Score: i}); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	results, err := store.RecentResults(3)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}
	// Newest first
	for i, want := range []int{4, 3, 2} {
		if results[i].Score != want {
			t.Errorf("results[%d].Score = %d, expected %d", i, results[i].Score, want)
		}
	}
}

func TestWinRate(t *testing.T) {
	store := openTestStore(t)

	records := []struct {
		game       string
		difficulty string
		won        bool
	}{
		{"hexmines", "easy", true},
		{"hexmines", "easy", true},
		{"hexmines", "easy", false},
		{"hexmines", "hard", false},
		{"hexmines_pointy", "easy", true},
	}
	for _, rec := range records {
		if _, err := store.SaveResult(GameResult{GameID: rec.game, Difficulty: rec.difficulty, Won: rec.won}); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	tests := []struct {
		name       string
		difficulty string
		played     int
		won        int
	}{
		{"all", "", 4, 2},
		{"easy", "easy", 3, 2},
		{"hard", "hard", 1, 0},
		{"none", "impossible", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats, err := store.WinRate("hexmines", tt.difficulty)
			if err != nil {
				t.Fatalf("WinRate() failed: %v", err)
			}
			if stats.Played != tt.played || stats.Won != tt.won {
				t.Errorf("WinRate(%q) = %+v, expected %d/%d", tt.difficulty, stats, tt.won, tt.played)
			}
		})
	}

	if r := (WinStats{}).Rate(); r != 0 {
		t.Errorf("Rate of no games = %v", r)
	}
	if r := (WinStats{Played: 4, Won: 1}).Rate(); r != 0.25 {
		t.Errorf("Rate = %v, expected 0.25", r)
	}
}
