// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"context"
	"fmt"
)

// Vote casts caller's single vote for the proposal with exactly this
// description and returns the proposal ID.
func (s *Session) Vote(ctx context.Context, caller, description string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != VotingSessionStarted {
		return 0, fmt.Errorf("%w: voting is not open (%s)", ErrInvalidPhase, s.status)
	}
	voter, ok := s.voters[caller]
	if !ok || !voter.IsRegistered {
		return 0, fmt.Errorf("%w: %q is not a registered voter", ErrUnauthorized, caller)
	}
	if voter.HasVoted {
		return 0, fmt.Errorf("%w: %s", ErrAlreadyVoted, caller)
	}
	id, ok := s.findProposal(description)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownProposal, description)
	}

	ts := s.timestamp()
	updatedVoter := voter.clone()
	updatedVoter.HasVoted = true
	updatedVoter.VotedProposalID = &id
	updatedProposal := recordVote(s.proposals[id], ts)

	change := s.change()
	change.Voters = []Voter{updatedVoter}
	change.Proposal = &updatedProposal
	change.LastTimestamp = ts
	if err := s.commit(ctx, change); err != nil {
		return 0, err
	}

	s.voters[caller] = &updatedVoter
	s.proposals[id] = updatedProposal
	s.lastTimestamp = ts

	s.logger.Info("vote cast", "session_id", s.id, "identity", caller, "proposal_id", id)
	s.emit(ctx, Event{Kind: EventVoted, Identity: caller, ProposalID: id})
	return id, nil
}
