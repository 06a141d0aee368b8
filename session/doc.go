// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session implements a whitelisted, multi-phase voting process.

# Workflow

A session moves through six phases, strictly forward, each step triggered by
the administrator:

	RegisteringVoters
	  → ProposalsRegistrationStarted
	  → ProposalsRegistrationEnded    (needs ≥1 proposal)
	  → VotingSessionStarted
	  → VotingSessionEnded            (needs ≥1 vote)
	  → VotesTallied                  (resolves the winner)

	s, err := session.New(ctx, "admin", session.Options{Store: st})
	err = s.Register(ctx, "admin", "alice", "Alice")
	err = s.StartProposalsRegistration(ctx, "admin")
	id, err := s.SubmitProposal(ctx, "alice", "Move standup to 10am")

# Registry

Register whitelists an identity. The first successful registration also
registers the administrator with DefaultAdminName.

# Voting

Each registered voter casts one vote, addressed by the exact proposal
description. A vote adds one to the proposal's VoteCount and the current Unix
timestamp to its Momentum.

# Tally

The proposal with the most votes wins. Ties are broken in favour of the
contender with the smallest Momentum, i.e. the one whose votes arrived
earliest, then the lowest ID.

# Errors

Every operation returns one of the sentinel errors (ErrUnauthorized,
ErrInvalidPhase, ...) wrapped with detail; match them with errors.Is. A failed
operation never changes state.

# Collaborators

Store persists each change before it is applied in memory, Notifier receives
events after the change is applied, and Clock supplies vote timestamps.
Proposal lookup by description is a linear scan.
*/
package session
