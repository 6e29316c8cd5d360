// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Quickly Score API.

# Handler Types

Each handler is a struct with the scoring service and config:

  - ContestantHandler: Contestant CRUD and sheet import
  - RubricHandler: Rubric set and item CRUD and sheet import
  - LiveHandler: Live session control and score submission
  - ResultsHandler: Ranking, per-contestant scores and reset

	liveHandler := handlers.NewLiveHandler(svc, cfg)

# Live Scoring Flow

	POST /api/live/active-set/{setId}   → ActivateSet
	POST /api/live/start/{contestantId} → Start (needs an active set)
	GET  /api/live/current              → Current (what judges should score)
	POST /api/scores                    → SubmitScores (open contestant only)
	POST /api/live/stop                 → Stop

A judge submitting again for the same contestant replaces their whole
score sheet.

# Error Mapping

Errors from the scoring package map to status codes:

	ErrValidation, ErrParse          → 400
	ErrNotFound                      → 404
	ErrDuplicateName, ErrPrecondition → 409
	ErrSessionClosed                 → 403
	anything else                    → 500 (logged, detail hidden)
*/
package handlers
