// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections and schema creation.

# Connections

Open accepts the database type from configuration:

	conn, err := db.Open(db.TypeSQLite, "file:quickly-vote.db")
	conn, err := db.Open(db.TypePostgres, "postgres://...")

SQLite (modernc.org/sqlite) is the default; PostgreSQL uses lib/pq.
Queries are written with ? placeholders and passed through Rebind.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - session_state: single row with phase, bootstrap flag and winner
  - voter: whitelisted identities and their vote
  - proposal: proposals by insertion index, vote count and momentum
  - event_log: audit trail of session events

# Relationships

	voter 1──* proposal (proposer)
	voter *──1 proposal (voted_proposal_id)
*/
package db
