// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package audit

import (
	"context"
	"log/slog"

	"github.com/danielhkuo/quickly-vote/session"
)

// Source returns the most recent events, newest last.
type Source interface {
	Recent(ctx context.Context, limit int) ([]session.Event, error)
}

// Fanout delivers each event to every notifier in order.
type Fanout []session.Notifier

func (f Fanout) Notify(ctx context.Context, e session.Event) {
	for _, n := range f {
		if n != nil {
			n.Notify(ctx, e)
		}
	}
}

// Logger writes events to a structured log.
type Logger struct {
	logger *slog.Logger
}

func NewLogger(logger *slog.Logger) *Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return &Logger{logger: logger}
}

func (l *Logger) Notify(ctx context.Context, e session.Event) {
	attrs := []any{
		"event_id", e.ID,
		"session_id", e.SessionID,
		"kind", string(e.Kind),
	}
	switch e.Kind {
	case session.EventVoterRegistered:
		attrs = append(attrs, "identity", e.Identity)
	case session.EventProposalRegistered:
		attrs = append(attrs, "proposal_id", e.ProposalID)
	case session.EventVoted:
		attrs = append(attrs, "identity", e.Identity, "proposal_id", e.ProposalID)
	case session.EventWorkflowStatusChanged:
		attrs = append(attrs, "previous", e.Previous.String(), "next", e.Next.String())
	}
	l.logger.InfoContext(ctx, "session event", attrs...)
}
