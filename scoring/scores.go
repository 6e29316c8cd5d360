// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/danielhkuo/quickly-score/models"
)

// ScoreItem is one judge's value for one rubric item.
type ScoreItem struct {
	RubricItemID int64 `json:"item_id" validate:"gt=0"`
	Value        int   `json:"score"`
}

// SubmitScoresInput is a judge's full score sheet for one contestant.
type SubmitScoresInput struct {
	ContestantID int64       `json:"contestant_id" validate:"gt=0"`
	JudgeID      string      `json:"judge_id" validate:"required"`
	Items        []ScoreItem `json:"scores" validate:"required,min=1,dive"`
}

// SubmitScores replaces the judge's score sheet for the contestant open for
// scoring. The previous sheet is deleted and the new one written in a single
// transaction, so either the whole new sheet is visible or the old one is.
func (s *Service) SubmitScores(ctx context.Context, in SubmitScoresInput) error {
	start := time.Now()
	in.JudgeID = strings.TrimSpace(in.JudgeID)

	if err := s.validateInput(in); err != nil {
		s.metrics.ObserveSubmission("invalid", time.Since(start))
		return err
	}

	if !s.session.IsOpenFor(in.ContestantID) {
		s.metrics.ObserveSubmission("closed", time.Since(start))
		return fmt.Errorf("%w: contestant %d", ErrSessionClosed, in.ContestantID)
	}

	if err := s.replaceScoreSheet(ctx, in); err != nil {
		slog.Error("score submission rolled back", "error", err,
			"contestant_id", in.ContestantID, "judge_id", in.JudgeID)
		s.metrics.ObserveSubmission("failed", time.Since(start))
		return fmt.Errorf("%w: %w", ErrSubmission, err)
	}

	s.metrics.ObserveSubmission("ok", time.Since(start))
	slog.Info("scores submitted",
		"contestant_id", in.ContestantID, "judge_id", in.JudgeID, "items", len(in.Items))
	return nil
}

func (s *Service) replaceScoreSheet(ctx context.Context, in SubmitScoresInput) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		DELETE FROM score WHERE contestant_id = $1 AND judge_id = $2
	`, in.ContestantID, in.JudgeID)
	if err != nil {
		return fmt.Errorf("failed to delete old scores: %w", err)
	}

	// A repeated item within one sheet keeps its last value
	for _, item := range in.Items {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO score (contestant_id, rubric_item_id, value, judge_id)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (contestant_id, rubric_item_id, judge_id)
			DO UPDATE SET value = excluded.value
		`, in.ContestantID, item.RubricItemID, item.Value, in.JudgeID)
		if err != nil {
			return fmt.Errorf("failed to insert score for item %d: %w", item.RubricItemID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// ListScores returns every score a contestant has received, ordered by judge
// then item.
func (s *Service) ListScores(ctx context.Context, contestantID int64) ([]models.Score, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, contestant_id, rubric_item_id, value, judge_id
		FROM score
		WHERE contestant_id = $1
		ORDER BY judge_id, rubric_item_id
	`, contestantID)
	if err != nil {
		return nil, fmt.Errorf("failed to query scores: %w", err)
	}
	defer rows.Close()

	scores := []models.Score{}
	for rows.Next() {
		var sc models.Score
		if err := rows.Scan(&sc.ID, &sc.ContestantID, &sc.RubricItemID, &sc.Value, &sc.JudgeID); err != nil {
			return nil, fmt.Errorf("failed to scan score: %w", err)
		}
		scores = append(scores, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read scores: %w", err)
	}

	return scores, nil
}
