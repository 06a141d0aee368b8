// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package audit

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/danielhkuo/quickly-vote/db"
	"github.com/danielhkuo/quickly-vote/session"
)

// Table appends events to the event_log table. Write failures are logged
// and dropped.
type Table struct {
	db     *sql.DB
	dbType string
	logger *slog.Logger
}

func NewTable(conn *sql.DB, dbType string, logger *slog.Logger) *Table {
	if logger == nil {
		logger = slog.Default()
	}
	return &Table{db: conn, dbType: dbType, logger: logger}
}

func (t *Table) Notify(ctx context.Context, e session.Event) {
	var identity, previous, next sql.NullString
	var proposalID sql.NullInt64

	switch e.Kind {
	case session.EventVoterRegistered:
		identity = sql.NullString{String: e.Identity, Valid: true}
	case session.EventProposalRegistered:
		identity = sql.NullString{String: e.Identity, Valid: e.Identity != ""}
		proposalID = sql.NullInt64{Int64: int64(e.ProposalID), Valid: true}
	case session.EventVoted:
		identity = sql.NullString{String: e.Identity, Valid: true}
		proposalID = sql.NullInt64{Int64: int64(e.ProposalID), Valid: true}
	case session.EventWorkflowStatusChanged:
		previous = sql.NullString{String: e.Previous.String(), Valid: true}
		next = sql.NullString{String: e.Next.String(), Valid: true}
	}

	_, err := t.db.ExecContext(ctx, db.Rebind(t.dbType, `
		INSERT INTO event_log (id, session_id, kind, identity, proposal_id, previous_status, next_status, occurred_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`), e.ID, e.SessionID, string(e.Kind), identity, proposalID, previous, next, e.OccurredAt)
	if err != nil {
		t.logger.Error("failed to record event", "event_id", e.ID, "kind", string(e.Kind), "error", err)
	}
}

func (t *Table) Recent(ctx context.Context, limit int) ([]session.Event, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := t.db.QueryContext(ctx, db.Rebind(t.dbType, `
		SELECT id, session_id, kind, identity, proposal_id, previous_status, next_status, occurred_at
		FROM event_log
		ORDER BY occurred_at DESC, id DESC
		LIMIT ?
	`), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	var events []session.Event
	for rows.Next() {
		var e session.Event
		var kind string
		var identity, previous, next sql.NullString
		var proposalID sql.NullInt64
		if err := rows.Scan(&e.ID, &e.SessionID, &kind, &identity, &proposalID, &previous, &next, &e.OccurredAt); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		e.Kind = session.EventKind(kind)
		e.Identity = identity.String
		e.ProposalID = int(proposalID.Int64)
		if previous.Valid {
			if e.Previous, err = session.ParseStatus(previous.String); err != nil {
				return nil, err
			}
		}
		if next.Valid {
			if e.Next, err = session.ParseStatus(next.String); err != nil {
				return nil, err
			}
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read events: %w", err)
	}

	// newest last
	for i, j := 0, len(events)-1; i < j; i, j = i+1, j-1 {
		events[i], events[j] = events[j], events[i]
	}
	return events, nil
}
