// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/danielhkuo/quickly-score/metrics"
	"github.com/danielhkuo/quickly-score/models"
)

// Service is the scoring core. It owns the live session and all access to
// the relational store.
type Service struct {
	db       *sql.DB
	session  *Session
	metrics  *metrics.Metrics
	validate *validator.Validate
}

// NewService creates a service with a fresh session. m may be nil.
func NewService(db *sql.DB, m *metrics.Metrics) *Service {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report json names in validation messages
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	return &Service{
		db:       db,
		session:  NewSession(),
		metrics:  m,
		validate: v,
	}
}

// Session exposes the live session owned by the service.
func (s *Service) Session() *Session {
	return s.session
}

// validateInput runs struct validation and wraps failures as ErrValidation.
func (s *Service) validateInput(v any) error {
	err := s.validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, describeFieldError(fe))
		}
		return fmt.Errorf("%w: %s", ErrValidation, strings.Join(msgs, "; "))
	}
	return fmt.Errorf("%w: %v", ErrValidation, err)
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "min":
		return fe.Field() + " must have at least " + fe.Param() + " entries"
	case "gt":
		return fe.Field() + " must be greater than " + fe.Param()
	default:
		return fe.Field() + " is invalid"
	}
}

// ActivateRubricSet puts a rubric set in force for live scoring.
func (s *Service) ActivateRubricSet(ctx context.Context, setID int64) error {
	var exists bool
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM rubric_set WHERE id = $1)
	`, setID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to query rubric set: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: rubric set %d", ErrNotFound, setID)
	}

	s.session.Activate(setID)
	s.metrics.SessionEvent("activate")
	slog.Info("rubric set activated", "set_id", setID)
	return nil
}

// StartScoring opens the scoring channel for a contestant, replacing any
// contestant that was open.
func (s *Service) StartScoring(ctx context.Context, contestantID int64) error {
	previous, err := s.session.Start(contestantID)
	if err != nil {
		return err
	}

	s.metrics.SessionEvent("start")
	if previous != nil && *previous != contestantID {
		slog.Info("scoring switched contestant", "previous_contestant_id", *previous, "contestant_id", contestantID)
	} else {
		slog.Info("scoring started", "contestant_id", contestantID)
	}
	return nil
}

// StopScoring closes the scoring channel.
func (s *Service) StopScoring(ctx context.Context) {
	s.session.Stop()
	s.metrics.SessionEvent("stop")
	slog.Info("scoring stopped")
}

// Current returns the contestant open for scoring and the items of the
// active rubric set. Both are empty when either is not set.
func (s *Service) Current(ctx context.Context) (*models.Contestant, []models.RubricItem, error) {
	setID, contestantID := s.session.State()
	if setID == nil || contestantID == nil {
		return nil, []models.RubricItem{}, nil
	}

	contestant, err := s.GetContestant(ctx, *contestantID)
	if err != nil {
		return nil, nil, err
	}

	items, err := s.ListRubricItems(ctx, *setID)
	if err != nil {
		return nil, nil, err
	}

	return contestant, items, nil
}
