// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/quickly-score/cliparse"
	"github.com/danielhkuo/quickly-score/handlers"
	"github.com/danielhkuo/quickly-score/metrics"
	"github.com/danielhkuo/quickly-score/middleware"
	"github.com/danielhkuo/quickly-score/scoring"
)

// NewRouter registers all routes. m may be nil when metrics are disabled.
func NewRouter(svc *scoring.Service, cfg cliparse.Config, m *metrics.Metrics) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	contestantHandler := handlers.NewContestantHandler(svc, cfg)
	rubricHandler := handlers.NewRubricHandler(svc, cfg)
	liveHandler := handlers.NewLiveHandler(svc, cfg)
	resultsHandler := handlers.NewResultsHandler(svc, cfg)

	wrap := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithMetrics(m, middleware.WithLogging(h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	if m != nil {
		mux.Handle("GET /metrics", m.Handler())
	}

	// Contestants
	mux.HandleFunc("GET /api/contestants", wrap(contestantHandler.List))
	mux.HandleFunc("POST /api/contestants", wrap(contestantHandler.Create))
	mux.HandleFunc("POST /api/contestants/import", wrap(contestantHandler.Import))
	mux.HandleFunc("PUT /api/contestants/{id}", wrap(contestantHandler.Update))
	mux.HandleFunc("DELETE /api/contestants/{id}", wrap(contestantHandler.Delete))

	// Rubric sets and items
	mux.HandleFunc("GET /api/rubric-sets", wrap(rubricHandler.ListSets))
	mux.HandleFunc("POST /api/rubric-sets", wrap(rubricHandler.CreateSet))
	mux.HandleFunc("POST /api/rubric-sets/import", wrap(rubricHandler.ImportSets))
	mux.HandleFunc("DELETE /api/rubric-sets/{id}", wrap(rubricHandler.DeleteSet))
	mux.HandleFunc("GET /api/rubric-sets/{setId}/items", wrap(rubricHandler.ListItems))
	mux.HandleFunc("POST /api/rubric-sets/{setId}/items", wrap(rubricHandler.CreateItem))
	mux.HandleFunc("PUT /api/rubric-items/{id}", wrap(rubricHandler.UpdateItem))
	mux.HandleFunc("DELETE /api/rubric-items/{id}", wrap(rubricHandler.DeleteItem))

	// Live control and scoring
	mux.HandleFunc("POST /api/live/active-set/{setId}", wrap(liveHandler.ActivateSet))
	mux.HandleFunc("POST /api/live/start/{contestantId}", wrap(liveHandler.Start))
	mux.HandleFunc("POST /api/live/stop", wrap(liveHandler.Stop))
	mux.HandleFunc("GET /api/live/current", wrap(liveHandler.Current))
	mux.HandleFunc("GET /api/live/status", wrap(liveHandler.Status))
	mux.HandleFunc("POST /api/scores", wrap(liveHandler.SubmitScores))

	// Results
	mux.HandleFunc("GET /api/results", wrap(resultsHandler.GetResults))
	mux.HandleFunc("GET /api/results/{contestantId}/scores", wrap(resultsHandler.GetScores))
	mux.HandleFunc("DELETE /api/results/{contestantId}", wrap(resultsHandler.Reset))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("quickly-score API v1"))
	})

	return mux
}
