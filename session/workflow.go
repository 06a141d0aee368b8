// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"context"
	"fmt"
)

// Transition is an administrator request to move the workflow forward.
type Transition int

const (
	TransitionStartProposals Transition = iota
	TransitionEndProposals
	TransitionStartVoting
	TransitionEndVoting
	TransitionTally
)

var transitionNames = [...]string{
	TransitionStartProposals: "start-proposals",
	TransitionEndProposals:   "end-proposals",
	TransitionStartVoting:    "start-voting",
	TransitionEndVoting:      "end-voting",
	TransitionTally:          "tally",
}

func (t Transition) String() string {
	if t < 0 || int(t) >= len(transitionNames) {
		return fmt.Sprintf("Transition(%d)", int(t))
	}
	return transitionNames[t]
}

// ParseTransition maps a transition name such as "start-voting" to its value.
func ParseTransition(name string) (Transition, error) {
	for i, n := range transitionNames {
		if n == name {
			return Transition(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown transition %q", ErrInvalidInput, name)
}

// nextStatus is the whole state machine. Anything not listed is rejected and
// the current status is returned unchanged.
func nextStatus(current Status, t Transition) (Status, error) {
	switch {
	case current == RegisteringVoters && t == TransitionStartProposals:
		return ProposalsRegistrationStarted, nil
	case current == ProposalsRegistrationStarted && t == TransitionEndProposals:
		return ProposalsRegistrationEnded, nil
	case current == ProposalsRegistrationEnded && t == TransitionStartVoting:
		return VotingSessionStarted, nil
	case current == VotingSessionStarted && t == TransitionEndVoting:
		return VotingSessionEnded, nil
	case current == VotingSessionEnded && t == TransitionTally:
		return VotesTallied, nil
	}
	return current, fmt.Errorf("%w: cannot %s while %s", ErrInvalidPhase, t, current)
}

// Advance applies an administrator transition and returns the status before
// and after it. Closing proposal registration needs at least one proposal,
// closing voting needs at least one vote, and the tally transition resolves
// the winner in the same commit.
func (s *Session) Advance(ctx context.Context, caller string, t Transition) (previous, next Status, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if caller != s.admin {
		return s.status, s.status, fmt.Errorf("%w: only the administrator can %s", ErrUnauthorized, t)
	}

	previous = s.status
	next, err = nextStatus(previous, t)
	if err != nil {
		return previous, previous, err
	}

	switch t {
	case TransitionEndProposals:
		if len(s.proposals) == 0 {
			return previous, previous, fmt.Errorf("%w: no proposals registered", ErrPrerequisiteNotMet)
		}
	case TransitionEndVoting:
		if s.totalVotes() == 0 {
			return previous, previous, fmt.Errorf("%w: no votes cast", ErrPrerequisiteNotMet)
		}
	}

	change := s.change()
	change.Status = next

	winner := -1
	if t == TransitionTally {
		id, ok := resolveWinner(s.proposals)
		if !ok {
			return previous, previous, fmt.Errorf("%w: no proposals to tally", ErrPrerequisiteNotMet)
		}
		winner = id
		change.WinnerResolved = true
		change.WinningProposalID = id
	}

	if err := s.commit(ctx, change); err != nil {
		return previous, previous, err
	}

	s.status = next
	if winner >= 0 {
		s.winnerResolved = true
		s.winningProposalID = winner
		s.logger.Info("votes tallied",
			"session_id", s.id,
			"winning_proposal_id", winner,
			"vote_count", s.proposals[winner].VoteCount,
		)
	}

	s.logger.Info("workflow status changed", "session_id", s.id, "previous", previous, "next", next)
	s.emit(ctx, Event{Kind: EventWorkflowStatusChanged, Previous: previous, Next: next})
	return previous, next, nil
}

func (s *Session) StartProposalsRegistration(ctx context.Context, caller string) error {
	_, _, err := s.Advance(ctx, caller, TransitionStartProposals)
	return err
}

func (s *Session) EndProposalsRegistration(ctx context.Context, caller string) error {
	_, _, err := s.Advance(ctx, caller, TransitionEndProposals)
	return err
}

func (s *Session) StartVotingSession(ctx context.Context, caller string) error {
	_, _, err := s.Advance(ctx, caller, TransitionStartVoting)
	return err
}

func (s *Session) EndVotingSession(ctx context.Context, caller string) error {
	_, _, err := s.Advance(ctx, caller, TransitionEndVoting)
	return err
}

// TallyVotes closes the session and resolves the winner.
func (s *Session) TallyVotes(ctx context.Context, caller string) error {
	_, _, err := s.Advance(ctx, caller, TransitionTally)
	return err
}

// Status returns the current workflow phase.
func (s *Session) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}
