// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// The schema is written in the subset of SQL that both SQLite and
// PostgreSQL accept.
const schema = `
-- Session state (single row)
CREATE TABLE IF NOT EXISTS session_state (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    session_id TEXT NOT NULL,
    admin_identity TEXT NOT NULL DEFAULT '',
    status TEXT NOT NULL DEFAULT 'RegisteringVoters',
    bootstrapped BOOLEAN NOT NULL DEFAULT FALSE,
    winner_resolved BOOLEAN NOT NULL DEFAULT FALSE,
    winning_proposal_id INTEGER NOT NULL DEFAULT 0,
    last_timestamp BIGINT NOT NULL DEFAULT 0,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

-- Voters
CREATE TABLE IF NOT EXISTS voter (
    identity TEXT PRIMARY KEY,
    display_name TEXT NOT NULL,
    is_registered BOOLEAN NOT NULL DEFAULT TRUE,
    has_voted BOOLEAN NOT NULL DEFAULT FALSE,
    voted_proposal_id INTEGER,
    registered_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

-- Proposals (id is the insertion index)
CREATE TABLE IF NOT EXISTS proposal (
    id INTEGER PRIMARY KEY,
    description TEXT NOT NULL UNIQUE,
    proposer TEXT NOT NULL REFERENCES voter(identity),
    vote_count BIGINT NOT NULL DEFAULT 0,
    momentum BIGINT NOT NULL DEFAULT 0
);

-- Audit trail
CREATE TABLE IF NOT EXISTS event_log (
    id TEXT PRIMARY KEY,
    session_id TEXT NOT NULL,
    kind TEXT NOT NULL,
    identity TEXT,
    proposal_id INTEGER,
    previous_status TEXT,
    next_status TEXT,
    occurred_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_event_log_occurred_at ON event_log(occurred_at);
`
