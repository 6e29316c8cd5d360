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

type ContestantHandler struct {
	svc *scoring.Service
	cfg cliparse.Config
}

func NewContestantHandler(svc *scoring.Service, cfg cliparse.Config) *ContestantHandler {
	return &ContestantHandler{svc: svc, cfg: cfg}
}

// List handles GET /api/contestants
func (h *ContestantHandler) List(w http.ResponseWriter, r *http.Request) {
	contestants, err := h.svc.ListContestants(r.Context())
	if err != nil {
		serviceError(w, r, err, "Database error")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, contestants)
}

// Create handles POST /api/contestants
func (h *ContestantHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateContestantRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	contestant, err := h.svc.CreateContestant(r.Context(), req.Name, req.Info)
	if err != nil {
		serviceError(w, r, err, "Failed to create contestant")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, contestant)
}

// Update handles PUT /api/contestants/{id}
func (h *ContestantHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "valid contestant id is required")
		return
	}

	var req models.UpdateContestantRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	changes, err := h.svc.UpdateContestant(r.Context(), id, req.Name, req.Info)
	if err != nil {
		serviceError(w, r, err, "Failed to update contestant")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ChangesResponse{Message: "success", Changes: changes})
}

// Delete handles DELETE /api/contestants/{id}
func (h *ContestantHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "valid contestant id is required")
		return
	}

	changes, err := h.svc.DeleteContestant(r.Context(), id)
	if err != nil {
		serviceError(w, r, err, "Failed to delete contestant")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ChangesResponse{Message: "deleted", Changes: changes})
}

// Import handles POST /api/contestants/import
// Expects a multipart upload in the contestantsFile field
func (h *ContestantHandler) Import(w http.ResponseWriter, r *http.Request) {
	file, filename, ok := uploadedFile(w, r, "contestantsFile", h.cfg.UploadLimitMB)
	if !ok {
		return
	}
	defer file.Close()

	result, err := h.svc.ImportContestants(r.Context(), filename, file)
	if err != nil {
		serviceError(w, r, err, "Contestant import failed")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, result)
}
