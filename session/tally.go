// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import "fmt"

// resolveWinner picks the proposal with the most votes. Ties go to the
// contender with the smallest momentum, then to the lowest ID.
func resolveWinner(proposals []Proposal) (int, bool) {
	if len(proposals) == 0 {
		return 0, false
	}

	var maxVotes uint64
	for _, p := range proposals {
		if p.VoteCount > maxVotes {
			maxVotes = p.VoteCount
		}
	}

	var contenders []int
	for i, p := range proposals {
		if p.VoteCount == maxVotes {
			contenders = append(contenders, i)
		}
	}

	winner := contenders[0]
	for _, id := range contenders[1:] {
		if proposals[id].Momentum < proposals[winner].Momentum {
			winner = id
		}
	}
	return winner, true
}

// Winner returns the winning proposal ID once votes are tallied.
func (s *Session) Winner() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.winnerResolved {
		return 0, fmt.Errorf("%w: votes have not been tallied (%s)", ErrWinnerNotFound, s.status)
	}
	return s.winningProposalID, nil
}

// WinningProposal returns a copy of the winning proposal once votes are
// tallied.
func (s *Session) WinningProposal() (Proposal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.winnerResolved {
		return Proposal{}, fmt.Errorf("%w: votes have not been tallied (%s)", ErrWinnerNotFound, s.status)
	}
	return s.proposals[s.winningProposalID], nil
}
