// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"net/http"

	"github.com/danielhkuo/quickly-score/cliparse"
	"github.com/danielhkuo/quickly-score/middleware"
	"github.com/danielhkuo/quickly-score/models"
	"github.com/danielhkuo/quickly-score/scoring"
)

type LiveHandler struct {
	svc *scoring.Service
	cfg cliparse.Config
}

func NewLiveHandler(svc *scoring.Service, cfg cliparse.Config) *LiveHandler {
	return &LiveHandler{svc: svc, cfg: cfg}
}

// ActivateSet handles POST /api/live/active-set/{setId}
func (h *LiveHandler) ActivateSet(w http.ResponseWriter, r *http.Request) {
	setID, ok := pathID(r, "setId")
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "valid rubric set id is required")
		return
	}

	if err := h.svc.ActivateRubricSet(r.Context(), setID); err != nil {
		serviceError(w, r, err, "Failed to activate rubric set")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: fmt.Sprintf("rubric set %d activated", setID),
	})
}

// Start handles POST /api/live/start/{contestantId}
func (h *LiveHandler) Start(w http.ResponseWriter, r *http.Request) {
	contestantID, ok := pathID(r, "contestantId")
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "valid contestant id is required")
		return
	}

	if err := h.svc.StartScoring(r.Context(), contestantID); err != nil {
		serviceError(w, r, err, "Failed to start scoring")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: fmt.Sprintf("scoring started for contestant %d", contestantID),
	})
}

// Stop handles POST /api/live/stop
func (h *LiveHandler) Stop(w http.ResponseWriter, r *http.Request) {
	h.svc.StopScoring(r.Context())
	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: "scoring stopped"})
}

// Current handles GET /api/live/current
// Returns the contestant open for scoring and the active rubric items
func (h *LiveHandler) Current(w http.ResponseWriter, r *http.Request) {
	contestant, items, err := h.svc.Current(r.Context())
	if err != nil {
		serviceError(w, r, err, "Failed to load current contestant")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.CurrentResponse{
		Contestant:  contestant,
		RubricItems: items,
	})
}

// Status handles GET /api/live/status
func (h *LiveHandler) Status(w http.ResponseWriter, r *http.Request) {
	setID, contestantID := h.svc.Session().State()
	middleware.JSONResponse(w, http.StatusOK, models.LiveStatusResponse{
		ActiveRubricSetID:  setID,
		ActiveContestantID: contestantID,
	})
}

// SubmitScores handles POST /api/scores
func (h *LiveHandler) SubmitScores(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitScoresRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	in := scoring.SubmitScoresInput{
		ContestantID: req.ContestantID,
		JudgeID:      req.JudgeID,
		Items:        make([]scoring.ScoreItem, 0, len(req.Scores)),
	}
	for _, s := range req.Scores {
		in.Items = append(in.Items, scoring.ScoreItem{RubricItemID: s.RubricItemID, Value: s.Value})
	}

	if err := h.svc.SubmitScores(r.Context(), in); err != nil {
		serviceError(w, r, err, "Score submission failed, please retry")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.MessageResponse{Message: "scores submitted"})
}
