// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: SQLite file path or PostgreSQL connection string (default: scoring.db)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - UploadLimitMB: Max size of an import upload (default: 10)
  - MetricsEnabled: Serve Prometheus metrics on /metrics (default: true)

# CLI Flags

	-p             Server port
	-d             Database URL
	-t             Database type
	-env-file      Dotenv file to load (default: .env)
	-upload-limit  Import upload limit in MB
	-metrics       true or false

# Environment Variables

Flags fall back to environment variables:

	PORT            → -p
	DATABASE_URL    → -d
	DATABASE_TYPE   → -t
	UPLOAD_LIMIT_MB → -upload-limit
	METRICS_ENABLED → -metrics

Variables from the dotenv file never override ones already set in the
process environment. CLI flags take precedence over both.

# Validation

ParseFlags returns an error if:

  - DATABASE_TYPE is not sqlite or postgres
  - postgres is selected without a DATABASE_URL
  - a numeric or boolean value fails to parse
*/
package cliparse
