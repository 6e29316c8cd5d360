// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles connections, schema creation and driver error
classification.

# Connecting

Open selects the driver from the configured database type:

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

SQLite (modernc.org/sqlite) is the default. Every SQLite connection is opened
with foreign_keys enabled and the pool is limited to one connection.
PostgreSQL goes through github.com/lib/pq.

# Schema Creation

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - contestant: People being scored
  - rubric_set: Named scoring groups (unique name)
  - rubric_item: Criteria with a max score, owned by a set
  - score: One judge's value for one item and one contestant

# Relationships

	rubric_set 1──* rubric_item
	rubric_item 1──* score
	contestant 1──* score

All foreign keys use ON DELETE CASCADE. score has a UNIQUE constraint on
(contestant_id, rubric_item_id, judge_id).

# Errors

IsUniqueViolation and IsForeignKeyViolation recognise constraint failures
from both drivers.
*/
package db
