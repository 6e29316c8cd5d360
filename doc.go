// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Quickly Score API server.

Quickly Score runs live scoring for a competition: contestants, rubric sets
with scored items, judges' score sheets and a live ranking. One rubric set is
in force at a time and one contestant is open for scoring at a time.

# Starting the Server

With no configuration the server uses a SQLite file named scoring.db:

	go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..."

# Configuration

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): SQLite path or PostgreSQL connection string
  - UPLOAD_LIMIT_MB (-upload-limit): Import upload limit (default: 10)
  - METRICS_ENABLED (-metrics): Serve /metrics (default: true)

Values may also come from a .env file (-env-file).

# Architecture

  - scoring: Live session, score submission, ranking, imports, CRUD
  - sheets: CSV/XLSX import parsing
  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, metrics, JSON helpers
  - metrics: Prometheus collectors
  - models: Request/response and domain types
  - db: Connections, schema, constraint error helpers
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
