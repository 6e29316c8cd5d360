// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Supported database types
const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
)

type Config struct {
	Port           int
	DatabaseURL    string
	DatabaseType   string
	EnvFile        string
	UploadLimitMB  int
	MetricsEnabled bool
}

// ParseFlags validates flags and fills the rest from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var metrics string

	fs := flag.NewFlagSet("quickly-score", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL (file path for sqlite)")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.EnvFile, "env-file", ".env", "Optional dotenv file")
	fs.IntVar(&cfg.UploadLimitMB, "upload-limit", 0, "Max import upload size in MB")
	fs.StringVar(&metrics, "metrics", "", "Expose /metrics (true or false)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// A missing .env is normal in production
	if cfg.EnvFile != "" {
		if err := godotenv.Load(cfg.EnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", cfg.EnvFile, err)
		} else if err == nil {
			slog.Info("loaded env file", "path", cfg.EnvFile)
		}
	}

	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3318 // default
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = DatabaseSQLite
		}
	}
	if cfg.DatabaseType != DatabaseSQLite && cfg.DatabaseType != DatabasePostgres {
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType == DatabasePostgres {
			return Config{}, errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = "scoring.db"
	}

	if cfg.UploadLimitMB == 0 {
		if limitStr := os.Getenv("UPLOAD_LIMIT_MB"); limitStr != "" {
			limit, err := strconv.Atoi(limitStr)
			if err != nil {
				return Config{}, errors.New("invalid UPLOAD_LIMIT_MB env variable")
			}
			cfg.UploadLimitMB = limit
		} else {
			cfg.UploadLimitMB = 10
		}
	}
	if cfg.UploadLimitMB < 0 {
		return Config{}, errors.New("upload limit must be positive")
	}

	if metrics == "" {
		metrics = os.Getenv("METRICS_ENABLED")
	}
	cfg.MetricsEnabled = true
	if metrics != "" {
		enabled, err := strconv.ParseBool(metrics)
		if err != nil {
			return Config{}, errors.New("invalid metrics setting")
		}
		cfg.MetricsEnabled = enabled
	}

	return cfg, nil
}
