// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/quickly-score/middleware"
	"github.com/danielhkuo/quickly-score/scoring"
)

// statusFor maps scoring error kinds to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, scoring.ErrValidation), errors.Is(err, scoring.ErrParse):
		return http.StatusBadRequest
	case errors.Is(err, scoring.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, scoring.ErrDuplicateName), errors.Is(err, scoring.ErrPrecondition):
		return http.StatusConflict
	case errors.Is(err, scoring.ErrSessionClosed):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// serviceError writes err as a JSON error. Server errors are logged and their
// detail is replaced by fallback.
func serviceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		slog.Error(fallback, "error", err, "request_id", middleware.RequestID(r.Context()))
		middleware.ErrorResponse(w, status, fallback)
		return
	}
	middleware.ErrorResponse(w, status, err.Error())
}

// pathID parses a positive integer path value
func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
