// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/danielhkuo/quickly-score/models"
)

type contestantInput struct {
	Name string `json:"name" validate:"required"`
}

// ListContestants returns all contestants ordered by id.
func (s *Service) ListContestants(ctx context.Context) ([]models.Contestant, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, info
		FROM contestant
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query contestants: %w", err)
	}
	defer rows.Close()

	contestants := []models.Contestant{}
	for rows.Next() {
		var c models.Contestant
		if err := rows.Scan(&c.ID, &c.Name, &c.Info); err != nil {
			return nil, fmt.Errorf("failed to scan contestant: %w", err)
		}
		contestants = append(contestants, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read contestants: %w", err)
	}

	return contestants, nil
}

// GetContestant loads a single contestant.
func (s *Service) GetContestant(ctx context.Context, id int64) (*models.Contestant, error) {
	var c models.Contestant
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, info FROM contestant WHERE id = $1
	`, id).Scan(&c.ID, &c.Name, &c.Info)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: contestant %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query contestant: %w", err)
	}
	return &c, nil
}

// CreateContestant adds a contestant. Name must be non-blank.
func (s *Service) CreateContestant(ctx context.Context, name, info string) (*models.Contestant, error) {
	name = strings.TrimSpace(name)
	if err := s.validateInput(contestantInput{Name: name}); err != nil {
		return nil, err
	}

	c := models.Contestant{Name: name, Info: info}
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO contestant (name, info)
		VALUES ($1, $2)
		RETURNING id
	`, c.Name, c.Info).Scan(&c.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert contestant: %w", err)
	}

	slog.Info("contestant created", "contestant_id", c.ID)
	return &c, nil
}

// UpdateContestant overwrites name and info and returns the changed-row count.
func (s *Service) UpdateContestant(ctx context.Context, id int64, name, info string) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		UPDATE contestant SET name = $1, info = $2 WHERE id = $3
	`, name, info, id)
	if err != nil {
		return 0, fmt.Errorf("failed to update contestant: %w", err)
	}
	return res.RowsAffected()
}

// DeleteContestant removes a contestant and, by cascade, its scores.
func (s *Service) DeleteContestant(ctx context.Context, id int64) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM contestant WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete contestant: %w", err)
	}

	changes, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if changes == 0 {
		return 0, fmt.Errorf("%w: contestant %d", ErrNotFound, id)
	}

	slog.Info("contestant deleted", "contestant_id", id)
	return changes, nil
}
