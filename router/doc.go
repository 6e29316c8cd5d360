// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes using Go 1.22+ pattern matching.

# Usage

	svc := scoring.NewService(conn, m)
	mux := router.NewRouter(svc, cfg, m)
	server := http.Server{Handler: middleware.CORS(mux)}

# Routes

Health, metrics and root:

	GET    /health
	GET    /metrics                           (only when metrics are enabled)
	GET    /

Contestants:

	GET    /api/contestants
	POST   /api/contestants
	POST   /api/contestants/import            (multipart: contestantsFile)
	PUT    /api/contestants/{id}
	DELETE /api/contestants/{id}

Rubrics:

	GET    /api/rubric-sets
	POST   /api/rubric-sets
	POST   /api/rubric-sets/import            (multipart: rubricFile)
	DELETE /api/rubric-sets/{id}
	GET    /api/rubric-sets/{setId}/items
	POST   /api/rubric-sets/{setId}/items
	PUT    /api/rubric-items/{id}
	DELETE /api/rubric-items/{id}

Live scoring:

	POST   /api/live/active-set/{setId}
	POST   /api/live/start/{contestantId}
	POST   /api/live/stop
	GET    /api/live/current
	GET    /api/live/status
	POST   /api/scores

Results:

	GET    /api/results
	GET    /api/results/{contestantId}/scores
	DELETE /api/results/{contestantId}

All /api routes are wrapped with request logging and, when enabled, metrics.
*/
package router
