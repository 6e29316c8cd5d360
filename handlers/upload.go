// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"mime/multipart"
	"net/http"

	"github.com/danielhkuo/quickly-score/middleware"
)

// uploadedFile reads one multipart file field, capped at limitMB.
// On failure it writes the error response and returns ok=false.
func uploadedFile(w http.ResponseWriter, r *http.Request, field string, limitMB int) (multipart.File, string, bool) {
	limit := int64(limitMB) << 20
	r.Body = http.MaxBytesReader(w, r.Body, limit)

	if err := r.ParseMultipartForm(limit); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid upload: "+err.Error())
		return nil, "", false
	}

	file, header, err := r.FormFile(field)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "No file uploaded in "+field)
		return nil, "", false
	}

	return file, header.Filename, true
}
