// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"context"
	"fmt"
	"strings"
)

// Proposal is an entry in the ledger. ID is its insertion index and never
// changes.
type Proposal struct {
	ID          int
	Description string
	Proposer    string
	VoteCount   uint64
	Momentum    uint64
}

// SubmitProposal appends a proposal from a registered voter while proposal
// registration is open and returns its ID.
func (s *Session) SubmitProposal(ctx context.Context, caller, description string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != ProposalsRegistrationStarted {
		return 0, fmt.Errorf("%w: proposal registration is not open (%s)", ErrInvalidPhase, s.status)
	}
	if !s.isEligible(caller) {
		return 0, fmt.Errorf("%w: %q is not a registered voter", ErrUnauthorized, caller)
	}
	if strings.TrimSpace(description) == "" {
		return 0, fmt.Errorf("%w: description is required", ErrInvalidInput)
	}
	if _, ok := s.findProposal(description); ok {
		return 0, fmt.Errorf("%w: %q", ErrDuplicateProposal, description)
	}

	p := Proposal{
		ID:          len(s.proposals),
		Description: description,
		Proposer:    caller,
	}
	change := s.change()
	change.Proposal = &p
	if err := s.commit(ctx, change); err != nil {
		return 0, err
	}

	s.proposals = append(s.proposals, p)
	s.logger.Info("proposal registered", "session_id", s.id, "proposal_id", p.ID, "proposer", caller)
	s.emit(ctx, Event{Kind: EventProposalRegistered, Identity: caller, ProposalID: p.ID})
	return p.ID, nil
}

// Proposals returns the ledger in insertion order.
func (s *Session) Proposals() []Proposal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Proposal(nil), s.proposals...)
}

// FindProposal returns the ID of the proposal with exactly this description.
func (s *Session) FindProposal(description string) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findProposal(description)
}

// findProposal scans the ledger linearly; first match wins.
func (s *Session) findProposal(description string) (int, bool) {
	for i := range s.proposals {
		if s.proposals[i].Description == description {
			return i, true
		}
	}
	return 0, false
}

// recordVote returns the proposal with one more vote cast at timestamp.
func recordVote(p Proposal, timestamp uint64) Proposal {
	p.VoteCount++
	p.Momentum += timestamp
	return p
}

func (s *Session) totalVotes() uint64 {
	var total uint64
	for _, p := range s.proposals {
		total += p.VoteCount
	}
	return total
}
