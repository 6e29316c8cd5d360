// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/danielhkuo/quickly-score/db"
	"github.com/danielhkuo/quickly-score/models"
)

type rubricSetInput struct {
	Name string `json:"name" validate:"required"`
}

type rubricItemInput struct {
	SetID    int64  `json:"set_id" validate:"gt=0"`
	Name     string `json:"name" validate:"required"`
	MaxScore int    `json:"max_score" validate:"required"`
}

// ListRubricSets returns all rubric sets ordered by id.
func (s *Service) ListRubricSets(ctx context.Context) ([]models.RubricSet, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM rubric_set ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query rubric sets: %w", err)
	}
	defer rows.Close()

	sets := []models.RubricSet{}
	for rows.Next() {
		var rs models.RubricSet
		if err := rows.Scan(&rs.ID, &rs.Name); err != nil {
			return nil, fmt.Errorf("failed to scan rubric set: %w", err)
		}
		sets = append(sets, rs)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read rubric sets: %w", err)
	}

	return sets, nil
}

// CreateRubricSet adds a named set. Names are unique and case-sensitive.
func (s *Service) CreateRubricSet(ctx context.Context, name string) (*models.RubricSet, error) {
	name = strings.TrimSpace(name)
	if err := s.validateInput(rubricSetInput{Name: name}); err != nil {
		return nil, err
	}

	rs := models.RubricSet{Name: name}
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO rubric_set (name) VALUES ($1) RETURNING id
	`, name).Scan(&rs.ID)
	if db.IsUniqueViolation(err) {
		return nil, fmt.Errorf("%w: rubric set %q", ErrDuplicateName, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to insert rubric set: %w", err)
	}

	slog.Info("rubric set created", "set_id", rs.ID, "name", name)
	return &rs, nil
}

// DeleteRubricSet removes a set, its items and their scores.
func (s *Service) DeleteRubricSet(ctx context.Context, id int64) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM rubric_set WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete rubric set: %w", err)
	}

	changes, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if changes == 0 {
		return 0, fmt.Errorf("%w: rubric set %d", ErrNotFound, id)
	}

	slog.Info("rubric set deleted", "set_id", id)
	return changes, nil
}

// ListRubricItems returns the items of one set ordered by id.
func (s *Service) ListRubricItems(ctx context.Context, setID int64) ([]models.RubricItem, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, set_id, name, description, max_score
		FROM rubric_item
		WHERE set_id = $1
		ORDER BY id ASC
	`, setID)
	if err != nil {
		return nil, fmt.Errorf("failed to query rubric items: %w", err)
	}
	defer rows.Close()

	items := []models.RubricItem{}
	for rows.Next() {
		var it models.RubricItem
		if err := rows.Scan(&it.ID, &it.SetID, &it.Name, &it.Description, &it.MaxScore); err != nil {
			return nil, fmt.Errorf("failed to scan rubric item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read rubric items: %w", err)
	}

	return items, nil
}

// CreateRubricItem adds an item to a set. Name and a non-zero max score are
// required; an unknown set is reported as ErrNotFound.
func (s *Service) CreateRubricItem(ctx context.Context, setID int64, name, description string, maxScore int) (*models.RubricItem, error) {
	name = strings.TrimSpace(name)
	if err := s.validateInput(rubricItemInput{SetID: setID, Name: name, MaxScore: maxScore}); err != nil {
		return nil, err
	}

	it := models.RubricItem{SetID: setID, Name: name, Description: description, MaxScore: maxScore}
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO rubric_item (name, description, max_score, set_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, it.Name, it.Description, it.MaxScore, it.SetID).Scan(&it.ID)
	if db.IsForeignKeyViolation(err) {
		return nil, fmt.Errorf("%w: rubric set %d", ErrNotFound, setID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to insert rubric item: %w", err)
	}

	slog.Info("rubric item created", "item_id", it.ID, "set_id", setID)
	return &it, nil
}

// UpdateRubricItem overwrites an item's fields and returns the changed-row count.
func (s *Service) UpdateRubricItem(ctx context.Context, id int64, name, description string, maxScore int) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		UPDATE rubric_item SET name = $1, description = $2, max_score = $3 WHERE id = $4
	`, name, description, maxScore, id)
	if err != nil {
		return 0, fmt.Errorf("failed to update rubric item: %w", err)
	}
	return res.RowsAffected()
}

// DeleteRubricItem removes an item and, by cascade, its scores.
func (s *Service) DeleteRubricItem(ctx context.Context, id int64) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM rubric_item WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete rubric item: %w", err)
	}

	changes, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if changes == 0 {
		return 0, fmt.Errorf("%w: rubric item %d", ErrNotFound, id)
	}

	slog.Info("rubric item deleted", "item_id", id)
	return changes, nil
}
