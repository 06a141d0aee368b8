// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/danielhkuo/quickly-vote/db"
	"github.com/danielhkuo/quickly-vote/session"
)

// SQL persists session state in the tables created by db.CreateSchema.
type SQL struct {
	db     *sql.DB
	dbType string
	logger *slog.Logger
}

func NewSQL(conn *sql.DB, dbType string, logger *slog.Logger) *SQL {
	if logger == nil {
		logger = slog.Default()
	}
	return &SQL{db: conn, dbType: dbType, logger: logger}
}

func (s *SQL) q(query string) string {
	return db.Rebind(s.dbType, query)
}

func (s *SQL) Load(ctx context.Context) (session.Snapshot, error) {
	var snap session.Snapshot
	var status string
	var lastTimestamp int64

	err := s.db.QueryRowContext(ctx, s.q(`
		SELECT session_id, admin_identity, status, bootstrapped, winner_resolved, winning_proposal_id, last_timestamp
		FROM session_state
		WHERE id = 1
	`)).Scan(&snap.SessionID, &snap.Admin, &status, &snap.Bootstrapped, &snap.WinnerResolved, &snap.WinningProposalID, &lastTimestamp)
	if errors.Is(err, sql.ErrNoRows) {
		return session.Snapshot{}, nil
	}
	if err != nil {
		return session.Snapshot{}, fmt.Errorf("failed to query session state: %w", err)
	}
	if snap.Status, err = session.ParseStatus(status); err != nil {
		return session.Snapshot{}, err
	}
	snap.LastTimestamp = uint64(lastTimestamp)

	voters, err := s.loadVoters(ctx)
	if err != nil {
		return session.Snapshot{}, err
	}
	snap.Voters = voters

	proposals, err := s.loadProposals(ctx)
	if err != nil {
		return session.Snapshot{}, err
	}
	snap.Proposals = proposals

	s.logger.Info("session state loaded",
		"session_id", snap.SessionID,
		"status", snap.Status,
		"voters", len(voters),
		"proposals", len(proposals),
	)
	return snap, nil
}

func (s *SQL) loadVoters(ctx context.Context) ([]session.Voter, error) {
	rows, err := s.db.QueryContext(ctx, s.q(`
		SELECT identity, display_name, is_registered, has_voted, voted_proposal_id
		FROM voter
		ORDER BY identity
	`))
	if err != nil {
		return nil, fmt.Errorf("failed to query voters: %w", err)
	}
	defer rows.Close()

	var voters []session.Voter
	for rows.Next() {
		var v session.Voter
		var votedFor sql.NullInt64
		if err := rows.Scan(&v.Identity, &v.DisplayName, &v.IsRegistered, &v.HasVoted, &votedFor); err != nil {
			return nil, fmt.Errorf("failed to scan voter: %w", err)
		}
		if votedFor.Valid {
			id := int(votedFor.Int64)
			v.VotedProposalID = &id
		}
		voters = append(voters, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read voters: %w", err)
	}
	return voters, nil
}

func (s *SQL) loadProposals(ctx context.Context) ([]session.Proposal, error) {
	rows, err := s.db.QueryContext(ctx, s.q(`
		SELECT id, description, proposer, vote_count, momentum
		FROM proposal
		ORDER BY id
	`))
	if err != nil {
		return nil, fmt.Errorf("failed to query proposals: %w", err)
	}
	defer rows.Close()

	var proposals []session.Proposal
	for rows.Next() {
		var p session.Proposal
		var voteCount, momentum int64
		if err := rows.Scan(&p.ID, &p.Description, &p.Proposer, &voteCount, &momentum); err != nil {
			return nil, fmt.Errorf("failed to scan proposal: %w", err)
		}
		p.VoteCount = uint64(voteCount)
		p.Momentum = uint64(momentum)
		proposals = append(proposals, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read proposals: %w", err)
	}
	return proposals, nil
}

// Commit writes the change in a single transaction.
func (s *SQL) Commit(ctx context.Context, change session.Change) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, s.q(`
		INSERT INTO session_state (id, session_id, admin_identity, status, bootstrapped, winner_resolved, winning_proposal_id, last_timestamp, updated_at)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (id) DO UPDATE SET
			session_id = excluded.session_id,
			admin_identity = excluded.admin_identity,
			status = excluded.status,
			bootstrapped = excluded.bootstrapped,
			winner_resolved = excluded.winner_resolved,
			winning_proposal_id = excluded.winning_proposal_id,
			last_timestamp = excluded.last_timestamp,
			updated_at = excluded.updated_at
	`), change.SessionID, change.Admin, change.Status.String(), change.Bootstrapped, change.WinnerResolved, change.WinningProposalID, int64(change.LastTimestamp))
	if err != nil {
		return fmt.Errorf("failed to save session state: %w", err)
	}

	for _, v := range change.Voters {
		var votedFor sql.NullInt64
		if v.VotedProposalID != nil {
			votedFor = sql.NullInt64{Int64: int64(*v.VotedProposalID), Valid: true}
		}
		_, err = tx.ExecContext(ctx, s.q(`
			INSERT INTO voter (identity, display_name, is_registered, has_voted, voted_proposal_id)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT (identity) DO UPDATE SET
				display_name = excluded.display_name,
				is_registered = excluded.is_registered,
				has_voted = excluded.has_voted,
				voted_proposal_id = excluded.voted_proposal_id
		`), v.Identity, v.DisplayName, v.IsRegistered, v.HasVoted, votedFor)
		if err != nil {
			return fmt.Errorf("failed to save voter %s: %w", v.Identity, err)
		}
	}

	if p := change.Proposal; p != nil {
		_, err = tx.ExecContext(ctx, s.q(`
			INSERT INTO proposal (id, description, proposer, vote_count, momentum)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT (id) DO UPDATE SET
				vote_count = excluded.vote_count,
				momentum = excluded.momentum
		`), p.ID, p.Description, p.Proposer, int64(p.VoteCount), int64(p.Momentum))
		if err != nil {
			if db.IsUniqueViolation(err) {
				return fmt.Errorf("%w: %q", session.ErrDuplicateProposal, p.Description)
			}
			return fmt.Errorf("failed to save proposal %d: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
