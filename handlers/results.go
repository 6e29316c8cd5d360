// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/quickly-score/cliparse"
	"github.com/danielhkuo/quickly-score/middleware"
	"github.com/danielhkuo/quickly-score/models"
	"github.com/danielhkuo/quickly-score/scoring"
)

type ResultsHandler struct {
	svc *scoring.Service
	cfg cliparse.Config
}

func NewResultsHandler(svc *scoring.Service, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{svc: svc, cfg: cfg}
}

// GetResults handles GET /api/results
// Live ranking by total score; not a final settlement
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	results, err := h.svc.ComputeResults(r.Context())
	if err != nil {
		serviceError(w, r, err, "Database error")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, results)
}

// GetScores handles GET /api/results/{contestantId}/scores
func (h *ResultsHandler) GetScores(w http.ResponseWriter, r *http.Request) {
	contestantID, ok := pathID(r, "contestantId")
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "valid contestant id is required")
		return
	}

	scores, err := h.svc.ListScores(r.Context(), contestantID)
	if err != nil {
		serviceError(w, r, err, "Database error")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, scores)
}

// Reset handles DELETE /api/results/{contestantId}
func (h *ResultsHandler) Reset(w http.ResponseWriter, r *http.Request) {
	contestantID, ok := pathID(r, "contestantId")
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "contestant id is required")
		return
	}

	deleted, err := h.svc.ResetContestant(r.Context(), contestantID)
	if err != nil {
		serviceError(w, r, err, "Failed to reset scores")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ResetResponse{Message: "reset", DeletedCount: deleted})
}
