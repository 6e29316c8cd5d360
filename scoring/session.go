// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package scoring

import (
	"fmt"
	"sync"
)

// Session tracks which rubric set is in force and which contestant is open
// for scoring. The two are toggled independently. The zero value has
// nothing active.
type Session struct {
	mu                 sync.RWMutex
	activeRubricSetID  *int64
	activeContestantID *int64
}

// NewSession returns a session with nothing active.
func NewSession() *Session {
	return &Session{}
}

// Activate puts a rubric set in force. The open contestant is untouched.
func (s *Session) Activate(setID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeRubricSetID = &setID
}

// Start opens scoring for a contestant and returns the contestant that was
// open before, if any. Requires an active rubric set.
func (s *Session) Start(contestantID int64) (previous *int64, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.activeRubricSetID == nil {
		return nil, fmt.Errorf("%w: no active rubric set", ErrPrecondition)
	}

	previous = s.activeContestantID
	s.activeContestantID = &contestantID
	return previous, nil
}

// Stop closes scoring. The active rubric set stays in force.
func (s *Session) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeContestantID = nil
}

// State returns copies of the active ids; nil means not set.
func (s *Session) State() (rubricSetID, contestantID *int64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyID(s.activeRubricSetID), copyID(s.activeContestantID)
}

// IsOpenFor reports whether contestantID is the contestant open for scoring.
func (s *Session) IsOpenFor(contestantID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeContestantID != nil && *s.activeContestantID == contestantID
}

func copyID(id *int64) *int64 {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
