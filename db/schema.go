// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	"github.com/danielhkuo/quickly-score/cliparse"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, dbType string) error {
	var ddl string
	switch dbType {
	case cliparse.DatabaseSQLite:
		ddl = sqliteSchema
	case cliparse.DatabasePostgres:
		ddl = postgresSchema
	default:
		return fmt.Errorf("unsupported database type %q", dbType)
	}

	_, err := db.Exec(ddl)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const sqliteSchema = `
-- Contestants
CREATE TABLE IF NOT EXISTS contestant (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    info TEXT NOT NULL DEFAULT ''
);

-- Rubric sets
CREATE TABLE IF NOT EXISTS rubric_set (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL UNIQUE
);

-- Rubric items
CREATE TABLE IF NOT EXISTS rubric_item (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    set_id INTEGER NOT NULL REFERENCES rubric_set(id) ON DELETE CASCADE,
    name TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    max_score INTEGER NOT NULL DEFAULT 10
);

CREATE INDEX IF NOT EXISTS idx_rubric_item_set_id ON rubric_item(set_id);

-- Scores
CREATE TABLE IF NOT EXISTS score (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    contestant_id INTEGER NOT NULL REFERENCES contestant(id) ON DELETE CASCADE,
    rubric_item_id INTEGER NOT NULL REFERENCES rubric_item(id) ON DELETE CASCADE,
    value INTEGER NOT NULL,
    judge_id TEXT NOT NULL,
    UNIQUE (contestant_id, rubric_item_id, judge_id)
);

CREATE INDEX IF NOT EXISTS idx_score_contestant_judge ON score(contestant_id, judge_id);
CREATE INDEX IF NOT EXISTS idx_score_rubric_item_id ON score(rubric_item_id);
`

const postgresSchema = `
-- Contestants
CREATE TABLE IF NOT EXISTS contestant (
    id BIGSERIAL PRIMARY KEY,
    name TEXT NOT NULL,
    info TEXT NOT NULL DEFAULT ''
);

-- Rubric sets
CREATE TABLE IF NOT EXISTS rubric_set (
    id BIGSERIAL PRIMARY KEY,
    name TEXT NOT NULL UNIQUE
);

-- Rubric items
CREATE TABLE IF NOT EXISTS rubric_item (
    id BIGSERIAL PRIMARY KEY,
    set_id BIGINT NOT NULL REFERENCES rubric_set(id) ON DELETE CASCADE,
    name TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    max_score INTEGER NOT NULL DEFAULT 10
);

CREATE INDEX IF NOT EXISTS idx_rubric_item_set_id ON rubric_item(set_id);

-- Scores
CREATE TABLE IF NOT EXISTS score (
    id BIGSERIAL PRIMARY KEY,
    contestant_id BIGINT NOT NULL REFERENCES contestant(id) ON DELETE CASCADE,
    rubric_item_id BIGINT NOT NULL REFERENCES rubric_item(id) ON DELETE CASCADE,
    value INTEGER NOT NULL,
    judge_id TEXT NOT NULL,
    UNIQUE (contestant_id, rubric_item_id, judge_id)
);

CREATE INDEX IF NOT EXISTS idx_score_contestant_judge ON score(contestant_id, judge_id);
CREATE INDEX IF NOT EXISTS idx_score_rubric_item_id ON score(rubric_item_id);
`
