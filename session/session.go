// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store persists session state. Commit must apply the whole change or none
// of it.
type Store interface {
	Load(ctx context.Context) (Snapshot, error)
	Commit(ctx context.Context, change Change) error
}

// Notifier receives events after each successful operation. Delivery is
// fire-and-forget.
type Notifier interface {
	Notify(ctx context.Context, event Event)
}

// Clock supplies vote timestamps.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Snapshot is the persisted state a session is restored from.
type Snapshot struct {
	SessionID         string
	Admin             string
	Status            Status
	Bootstrapped      bool
	Voters            []Voter
	Proposals         []Proposal
	WinnerResolved    bool
	WinningProposalID int
	LastTimestamp     uint64
}

// Change is written to the Store by every mutating operation. The scalar
// fields always hold the post-operation values; Voters and Proposal hold only
// the records that were created or modified.
type Change struct {
	SessionID         string
	Admin             string
	Status            Status
	Bootstrapped      bool
	WinnerResolved    bool
	WinningProposalID int
	LastTimestamp     uint64
	Voters            []Voter
	Proposal          *Proposal
}

type Options struct {
	Store    Store
	Notifier Notifier
	Clock    Clock
	Logger   *slog.Logger
}

// Session owns one voting process. All mutating operations hold the write
// lock for their whole check, persist, apply and notify sequence.
type Session struct {
	mu sync.RWMutex

	id                string
	admin             string
	status            Status
	bootstrapped      bool
	voters            map[string]*Voter
	proposals         []Proposal
	winnerResolved    bool
	winningProposalID int
	lastTimestamp     uint64

	store    Store
	notifier Notifier
	clock    Clock
	logger   *slog.Logger
}

// New creates a session administered by admin, restoring any state the
// store already holds.
func New(ctx context.Context, admin string, opts Options) (*Session, error) {
	if strings.TrimSpace(admin) == "" {
		return nil, fmt.Errorf("%w: administrator identity is required", ErrInvalidInput)
	}

	s := &Session{
		admin:    admin,
		voters:   make(map[string]*Voter),
		store:    opts.Store,
		notifier: opts.Notifier,
		clock:    opts.Clock,
		logger:   opts.Logger,
	}
	if s.clock == nil {
		s.clock = SystemClock{}
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}

	if s.store != nil {
		snap, err := s.store.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load session: %w", err)
		}
		if err := s.restore(snap); err != nil {
			return nil, err
		}
	}
	if s.id == "" {
		s.id = uuid.New().String()
	}

	s.logger.Info("session ready",
		"session_id", s.id,
		"status", s.status,
		"voters", len(s.voters),
		"proposals", len(s.proposals),
	)
	return s, nil
}

func (s *Session) restore(snap Snapshot) error {
	if snap.Admin != "" && snap.Admin != s.admin {
		return fmt.Errorf("%w: stored session is administered by %q, not %q", ErrAdminMismatch, snap.Admin, s.admin)
	}
	s.id = snap.SessionID
	s.status = snap.Status
	s.bootstrapped = snap.Bootstrapped
	for _, v := range snap.Voters {
		s.voters[v.Identity] = &v
	}
	for i, p := range snap.Proposals {
		if p.ID != i {
			return fmt.Errorf("corrupt snapshot: proposal at position %d has id %d", i, p.ID)
		}
	}
	s.proposals = append([]Proposal(nil), snap.Proposals...)
	if snap.WinnerResolved {
		if snap.WinningProposalID < 0 || snap.WinningProposalID >= len(s.proposals) {
			return errors.New("corrupt snapshot: winning proposal out of range")
		}
		s.winnerResolved = true
		s.winningProposalID = snap.WinningProposalID
	}
	s.lastTimestamp = snap.LastTimestamp
	return nil
}

// ID identifies the session in logs and the audit trail.
func (s *Session) ID() string { return s.id }

// Admin returns the administrator identity.
func (s *Session) Admin() string { return s.admin }

func (s *Session) change() Change {
	return Change{
		SessionID:         s.id,
		Admin:             s.admin,
		Status:            s.status,
		Bootstrapped:      s.bootstrapped,
		WinnerResolved:    s.winnerResolved,
		WinningProposalID: s.winningProposalID,
		LastTimestamp:     s.lastTimestamp,
	}
}

func (s *Session) commit(ctx context.Context, change Change) error {
	if s.store == nil {
		return nil
	}
	if err := s.store.Commit(ctx, change); err != nil {
		s.logger.Error("session commit failed", "session_id", s.id, "error", err)
		return fmt.Errorf("failed to persist session change: %w", err)
	}
	return nil
}

func (s *Session) emit(ctx context.Context, e Event) {
	if s.notifier == nil {
		return
	}
	e.ID = uuid.New().String()
	e.SessionID = s.id
	e.OccurredAt = s.clock.Now().UTC()
	s.notifier.Notify(ctx, e)
}

// timestamp reads the clock as Unix seconds, never going backwards across
// the session's lifetime, restarts included.
func (s *Session) timestamp() uint64 {
	var ts uint64
	if unix := s.clock.Now().Unix(); unix > 0 {
		ts = uint64(unix)
	}
	if ts < s.lastTimestamp {
		ts = s.lastTimestamp
	}
	return ts
}
