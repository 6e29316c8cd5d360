// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/quickly-score/models"
	"github.com/danielhkuo/quickly-score/sheets"
)

// ImportRubricSets parses an uploaded rubric sheet and imports its rows.
func (s *Service) ImportRubricSets(ctx context.Context, filename string, r io.Reader) (*models.ImportResult, error) {
	rows, err := sheets.ReadRubricRows(filename, r)
	if err != nil {
		return nil, err
	}
	return s.ImportRubricRows(ctx, rows)
}

// ImportContestants parses an uploaded contestant sheet and imports its rows.
func (s *Service) ImportContestants(ctx context.Context, filename string, r io.Reader) (*models.ImportResult, error) {
	rows, err := sheets.ReadContestantRows(filename, r)
	if err != nil {
		return nil, err
	}
	return s.ImportContestantRows(ctx, rows)
}

// ImportRubricRows creates rubric items, creating or reusing sets by exact
// name. Rows missing a set name, item name or positive max score are
// skipped and reported. The whole import is one transaction.
func (s *Service) ImportRubricRows(ctx context.Context, rows []models.RubricRow) (*models.ImportResult, error) {
	result := &models.ImportResult{Processed: len(rows), Skipped: []models.RowDiagnostic{}}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to begin transaction: %w", ErrImport, err)
	}
	defer tx.Rollback()

	// set name -> id, scoped to this import
	setIDs := make(map[string]int64)

	for i, row := range rows {
		if reason := rubricRowProblem(row); reason != "" {
			result.Skipped = append(result.Skipped, models.RowDiagnostic{Row: i + 1, Reason: reason})
			continue
		}

		setID, ok := setIDs[row.SetName]
		if !ok {
			setID, err = resolveRubricSet(ctx, tx, row.SetName)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d: %w", ErrImport, i+1, err)
			}
			setIDs[row.SetName] = setID
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO rubric_item (name, description, max_score, set_id)
			VALUES ($1, $2, $3, $4)
		`, row.ItemName, row.Description, row.MaxScore, setID)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: failed to insert rubric item: %w", ErrImport, i+1, err)
		}
		result.Inserted++
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%w: failed to commit transaction: %w", ErrImport, err)
	}

	s.metrics.AddImportRows("rubric", result.Inserted, len(result.Skipped))
	slog.Info("rubric import finished",
		"rows", humanize.Comma(int64(result.Processed)),
		"inserted", humanize.Comma(int64(result.Inserted)),
		"sets", len(setIDs),
		"skipped", len(result.Skipped))
	return result, nil
}

func rubricRowProblem(row models.RubricRow) string {
	switch {
	case strings.TrimSpace(row.SetName) == "":
		return "missing set name"
	case strings.TrimSpace(row.ItemName) == "":
		return "missing item name"
	case row.MaxScore <= 0:
		return "max score must be positive"
	}
	return ""
}

// resolveRubricSet finds a set by exact name or creates it.
func resolveRubricSet(ctx context.Context, tx *sql.Tx, name string) (int64, error) {
	var id int64
	err := tx.QueryRowContext(ctx, `SELECT id FROM rubric_set WHERE name = $1`, name).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("failed to query rubric set: %w", err)
	}

	err = tx.QueryRowContext(ctx, `INSERT INTO rubric_set (name) VALUES ($1) RETURNING id`, name).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert rubric set: %w", err)
	}
	return id, nil
}

// ImportContestantRows inserts a contestant per row with a non-blank name.
// Blank rows are skipped and reported. The batch is one transaction.
func (s *Service) ImportContestantRows(ctx context.Context, rows []models.ContestantRow) (*models.ImportResult, error) {
	result := &models.ImportResult{Processed: len(rows), Skipped: []models.RowDiagnostic{}}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to begin transaction: %w", ErrImport, err)
	}
	defer tx.Rollback()

	for i, row := range rows {
		name := strings.TrimSpace(row.Name)
		if name == "" {
			result.Skipped = append(result.Skipped, models.RowDiagnostic{Row: i + 1, Reason: "missing name"})
			continue
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO contestant (name, info) VALUES ($1, $2)
		`, name, row.Info)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: failed to insert contestant: %w", ErrImport, i+1, err)
		}
		result.Inserted++
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%w: failed to commit transaction: %w", ErrImport, err)
	}

	s.metrics.AddImportRows("contestant", result.Inserted, len(result.Skipped))
	slog.Info("contestant import finished",
		"rows", humanize.Comma(int64(result.Processed)),
		"inserted", humanize.Comma(int64(result.Inserted)),
		"skipped", len(result.Skipped))
	return result, nil
}
