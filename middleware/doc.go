// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Every request gets an id (taken from X-Request-ID or generated with
google/uuid) that is echoed in the response header, stored in the request
context and attached to the start/completion log lines:

	id := middleware.RequestID(r.Context())

# Metrics

WithMetrics records request count and latency per route pattern:

	middleware.WithMetrics(m, middleware.WithLogging(handler))

A nil *metrics.Metrics leaves the handler unwrapped.

# CORS Middleware

Enable cross-origin requests for the judging frontend:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

	var req models.CreateContestantRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

	ip := middleware.GetClientIP(r)

Handles X-Forwarded-For and X-Real-IP. Used in request logs.
*/
package middleware
