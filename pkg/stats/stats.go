// Package stats persists finished game results and reports per-user
// aggregates, broken down by opponent.
package stats

import (
	"context"
	"database/sql"
	"time"

	"cribbage-server/pkg/db"
)

// GameResult is one finished game from the user's point of view
type GameResult struct {
	ID            int64     `json:"id"`
	UserID        string    `json:"userId"`
	Opponent      string    `json:"opponent"`
	UserScore     int       `json:"userScore"`
	OpponentScore int       `json:"opponentScore"`
	Won           bool      `json:"won"`
	Rounds        int       `json:"rounds"`
	PegPoints     int       `json:"pegPoints"`
	HandPoints    int       `json:"handPoints"`
	CribPoints    int       `json:"cribPoints"`
	Created       time.Time `json:"created"`
}

// OpponentStats aggregates a user's games against a single opponent.
// The averages are per game.
type OpponentStats struct {
	Games            int     `json:"games"`
	Wins             int     `json:"wins"`
	AvgUserScore     float64 `json:"avgUserScore"`
	AvgOpponentScore float64 `json:"avgOpponentScore"`
	AvgPegPoints     float64 `json:"avgPegPoints"`
	AvgHandPoints    float64 `json:"avgHandPoints"`
	AvgCribPoints    float64 `json:"avgCribPoints"`
}

// UserStats is the per-user report
type UserStats struct {
	UserID    string                    `json:"userId"`
	Games     int                       `json:"games"`
	Wins      int                       `json:"wins"`
	Opponents map[string]*OpponentStats `json:"opponents"`
}

// Store reads and writes game results
type Store struct {
	db *sql.DB
}

// NewStore returns a store backed by the database
func NewStore(database *sql.DB) *Store {
	return &Store{db: database}
}

// Record saves a finished game
func (s *Store) Record(ctx context.Context, gr GameResult) error {
	const query = `
INSERT INTO game_results (user_id, opponent, user_score, opponent_score, won, rounds, peg_points, hand_points, crib_points)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := s.db.ExecContext(ctx, query,
		gr.UserID, gr.Opponent, gr.UserScore, gr.OpponentScore, gr.Won, gr.Rounds,
		gr.PegPoints, gr.HandPoints, gr.CribPoints)
	return err
}

// ResultsForUser returns the user's games, most recent first
func (s *Store) ResultsForUser(ctx context.Context, userID string) ([]*GameResult, error) {
	const query = `
SELECT id, user_id, opponent, user_score, opponent_score, won, rounds, peg_points, hand_points, crib_points, created
FROM game_results
WHERE user_id = $1
ORDER BY created DESC, id DESC`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := make([]*GameResult, 0)
	for rows.Next() {
		gr, err := gameResultFromScanner(rows)
		if err != nil {
			return nil, err
		}

		results = append(results, gr)
	}

	return results, rows.Err()
}

// UserStats returns the user's aggregate report
func (s *Store) UserStats(ctx context.Context, userID string) (*UserStats, error) {
	results, err := s.ResultsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return Aggregate(userID, results), nil
}

func gameResultFromScanner(scanner db.Scanner) (*GameResult, error) {
	var gr GameResult
	if err := scanner.Scan(&gr.ID, &gr.UserID, &gr.Opponent, &gr.UserScore,
		&gr.OpponentScore, &gr.Won, &gr.Rounds, &gr.PegPoints, &gr.HandPoints,
		&gr.CribPoints, &gr.Created); err != nil {
		return nil, err
	}

	return &gr, nil
}

// Aggregate rolls raw results up into a per-opponent report
func Aggregate(userID string, results []*GameResult) *UserStats {
	stats := &UserStats{
		UserID:    userID,
		Opponents: make(map[string]*OpponentStats),
	}

	totals := make(map[string][5]int)
	for _, gr := range results {
		stats.Games++
		if gr.Won {
			stats.Wins++
		}

		os, ok := stats.Opponents[gr.Opponent]
		if !ok {
			os = &OpponentStats{}
			stats.Opponents[gr.Opponent] = os
		}

		os.Games++
		if gr.Won {
			os.Wins++
		}

		t := totals[gr.Opponent]
		t[0] += gr.UserScore
		t[1] += gr.OpponentScore
		t[2] += gr.PegPoints
		t[3] += gr.HandPoints
		t[4] += gr.CribPoints
		totals[gr.Opponent] = t
	}

	for name, os := range stats.Opponents {
		t := totals[name]
		games := float64(os.Games)
		os.AvgUserScore = float64(t[0]) / games
		os.AvgOpponentScore = float64(t[1]) / games
		os.AvgPegPoints = float64(t[2]) / games
		os.AvgHandPoints = float64(t[3]) / games
		os.AvgCribPoints = float64(t[4]) / games
	}

	return stats
}
