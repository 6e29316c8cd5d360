// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/danielhkuo/quickly-score/models"
)

// ComputeResults ranks every contestant by total score, highest first. Ties
// keep id order. Contestants without scores are included with zeros.
func (s *Service) ComputeResults(ctx context.Context) ([]models.ContestantResult, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT
			c.id, c.name, c.info,
			COUNT(DISTINCT s.judge_id) AS judge_count,
			COALESCE(SUM(s.value), 0) AS total_score
		FROM contestant c
		LEFT JOIN score s ON c.id = s.contestant_id
		GROUP BY c.id, c.name, c.info
		ORDER BY total_score DESC, c.id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query results: %w", err)
	}
	defer rows.Close()

	results := []models.ContestantResult{}
	for rows.Next() {
		var r models.ContestantResult
		if err := rows.Scan(&r.ID, &r.Name, &r.Info, &r.JudgeCount, &r.TotalScore); err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		r.FinalAverage = finalAverage(r.TotalScore, r.JudgeCount)
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read results: %w", err)
	}

	return results, nil
}

// finalAverage is the per-judge average rounded to 2 decimal places.
func finalAverage(total int64, judges int) float64 {
	if judges <= 0 {
		return 0
	}
	return math.Round(float64(total)/float64(judges)*100) / 100
}

// ResetContestant deletes all scores of a contestant and returns how many
// were removed. Zero is not an error.
func (s *Service) ResetContestant(ctx context.Context, contestantID int64) (int64, error) {
	if contestantID <= 0 {
		return 0, fmt.Errorf("%w: contestant_id is required", ErrValidation)
	}

	res, err := s.db.ExecContext(ctx, `DELETE FROM score WHERE contestant_id = $1`, contestantID)
	if err != nil {
		return 0, fmt.Errorf("failed to reset scores: %w", err)
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}

	if deleted == 0 {
		slog.Info("reset requested for contestant without scores", "contestant_id", contestantID)
	} else {
		slog.Info("contestant scores reset", "contestant_id", contestantID, "deleted", deleted)
	}
	return deleted, nil
}
