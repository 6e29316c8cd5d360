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

type RubricHandler struct {
	svc *scoring.Service
	cfg cliparse.Config
}

func NewRubricHandler(svc *scoring.Service, cfg cliparse.Config) *RubricHandler {
	return &RubricHandler{svc: svc, cfg: cfg}
}

// ListSets handles GET /api/rubric-sets
func (h *RubricHandler) ListSets(w http.ResponseWriter, r *http.Request) {
	sets, err := h.svc.ListRubricSets(r.Context())
	if err != nil {
		serviceError(w, r, err, "Database error")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, sets)
}

// CreateSet handles POST /api/rubric-sets
func (h *RubricHandler) CreateSet(w http.ResponseWriter, r *http.Request) {
	var req models.CreateRubricSetRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	set, err := h.svc.CreateRubricSet(r.Context(), req.Name)
	if err != nil {
		serviceError(w, r, err, "Failed to create rubric set")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, set)
}

// DeleteSet handles DELETE /api/rubric-sets/{id}
func (h *RubricHandler) DeleteSet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "valid rubric set id is required")
		return
	}

	changes, err := h.svc.DeleteRubricSet(r.Context(), id)
	if err != nil {
		serviceError(w, r, err, "Failed to delete rubric set")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ChangesResponse{Message: "deleted", Changes: changes})
}

// ImportSets handles POST /api/rubric-sets/import
// Expects a multipart upload in the rubricFile field
func (h *RubricHandler) ImportSets(w http.ResponseWriter, r *http.Request) {
	file, filename, ok := uploadedFile(w, r, "rubricFile", h.cfg.UploadLimitMB)
	if !ok {
		return
	}
	defer file.Close()

	result, err := h.svc.ImportRubricSets(r.Context(), filename, file)
	if err != nil {
		serviceError(w, r, err, "Rubric import failed, check the file contents")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, result)
}

// ListItems handles GET /api/rubric-sets/{setId}/items
func (h *RubricHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	setID, ok := pathID(r, "setId")
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "valid rubric set id is required")
		return
	}

	items, err := h.svc.ListRubricItems(r.Context(), setID)
	if err != nil {
		serviceError(w, r, err, "Database error")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, items)
}

// CreateItem handles POST /api/rubric-sets/{setId}/items
func (h *RubricHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	setID, ok := pathID(r, "setId")
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "valid rubric set id is required")
		return
	}

	var req models.CreateRubricItemRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	item, err := h.svc.CreateRubricItem(r.Context(), setID, req.Name, req.Description, req.MaxScore)
	if err != nil {
		serviceError(w, r, err, "Failed to create rubric item")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, item)
}

// UpdateItem handles PUT /api/rubric-items/{id}
func (h *RubricHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "valid rubric item id is required")
		return
	}

	var req models.UpdateRubricItemRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	changes, err := h.svc.UpdateRubricItem(r.Context(), id, req.Name, req.Description, req.MaxScore)
	if err != nil {
		serviceError(w, r, err, "Failed to update rubric item")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ChangesResponse{Message: "success", Changes: changes})
}

// DeleteItem handles DELETE /api/rubric-items/{id}
func (h *RubricHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "valid rubric item id is required")
		return
	}

	changes, err := h.svc.DeleteRubricItem(r.Context(), id)
	if err != nil {
		serviceError(w, r, err, "Failed to delete rubric item")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ChangesResponse{Message: "deleted", Changes: changes})
}
