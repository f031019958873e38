package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// GameResult is the record of one finished board.
type GameResult struct {
	ResultID     uuid.UUID
	GameID       string
	Difficulty   string
	Columns      int
	Rows         int
	Mines        int
	Won          bool
	Revealed     int
	Score        int
	DurationSecs int
	CreatedAt    time.Time
}

// SaveResult records a finished game. A zero ResultID is replaced by a new
// random UUID. Returns the stored ResultID.
func (s *Store) SaveResult(r GameResult) (uuid.UUID, error) {
	if r.ResultID == uuid.Nil {
		r.ResultID = uuid.New()
	}

	_, err := s.db.Exec(
		`INSERT INTO results
		 (result_id, game_id, difficulty, board_columns, board_rows, mines, won, revealed, score, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ResultID.String(),
		r.GameID,
		r.Difficulty,
		r.Columns,
		r.Rows,
		r.Mines,
		r.Won,
		r.Revealed,
		r.Score,
		r.DurationSecs,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("storage: cannot save result: %w", err)
	}
	return r.ResultID, nil
}

// RecentResults returns the latest results across all games, newest first.
func (s *Store) RecentResults(limit int) ([]GameResult, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT result_id, game_id, difficulty, board_columns, board_rows, mines, won,
		        revealed, score, duration_secs, created_at
		 FROM results
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []GameResult
	for rows.Next() {
		var r GameResult
		var resultID string
		var createdAt any
		if err := rows.Scan(
			&resultID,
			&r.GameID,
			&r.Difficulty,
			&r.Columns,
			&r.Rows,
			&r.Mines,
			&r.Won,
			&r.Revealed,
			&r.Score,
			&r.DurationSecs,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		r.ResultID, err = uuid.Parse(resultID)
		if err != nil {
			return nil, fmt.Errorf("storage: bad result id %q: %w", resultID, err)
		}
		r.CreatedAt = parseTimestamp(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// WinStats counts played and won boards.
type WinStats struct {
	Played int
	Won    int
}

// Rate returns the fraction of boards won, or 0 when none were played.
func (w WinStats) Rate() float64 {
	if w.Played == 0 {
		return 0
	}
	return float64(w.Won) / float64(w.Played)
}

// WinRate aggregates results for a game. An empty difficulty covers all presets.
func (s *Store) WinRate(gameID, difficulty string) (WinStats, error) {
	var stats WinStats
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(won), 0)
		 FROM results
		 WHERE game_id = ? AND (? = '' OR difficulty = ?)`,
		gameID, difficulty, difficulty,
	).Scan(&stats.Played, &stats.Won)
	if err != nil {
		return WinStats{}, fmt.Errorf("storage: cannot query win rate: %w", err)
	}
	return stats, nil
}
