// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// DefaultAdminName is the display name given to the administrator when it is
// bootstrapped into the registry.
const DefaultAdminName = "Administrator"

// Voter is a whitelisted identity.
type Voter struct {
	Identity        string
	DisplayName     string
	IsRegistered    bool
	HasVoted        bool
	VotedProposalID *int
}

func (v Voter) clone() Voter {
	if v.VotedProposalID != nil {
		id := *v.VotedProposalID
		v.VotedProposalID = &id
	}
	return v
}

// Register whitelists identity. Only the administrator may call it, and only
// while voters are being registered. The first successful call also registers
// the administrator.
func (s *Session) Register(ctx context.Context, caller, identity, displayName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if caller != s.admin {
		return fmt.Errorf("%w: only the administrator can register voters", ErrUnauthorized)
	}
	if s.status != RegisteringVoters {
		return fmt.Errorf("%w: voter registration is closed (%s)", ErrInvalidPhase, s.status)
	}
	if strings.TrimSpace(identity) == "" {
		return fmt.Errorf("%w: identity is required", ErrInvalidInput)
	}
	if strings.TrimSpace(displayName) == "" {
		return fmt.Errorf("%w: display name is required", ErrInvalidInput)
	}

	var created []Voter
	if !s.bootstrapped {
		name := DefaultAdminName
		if identity == s.admin {
			name = displayName
		}
		created = append(created, Voter{Identity: s.admin, DisplayName: name, IsRegistered: true})
	}
	if identity != s.admin || s.bootstrapped {
		if v, ok := s.voters[identity]; ok && v.IsRegistered {
			return fmt.Errorf("%w: %s", ErrAlreadyRegistered, identity)
		}
		created = append(created, Voter{Identity: identity, DisplayName: displayName, IsRegistered: true})
	}

	change := s.change()
	change.Status = RegisteringVoters
	change.Bootstrapped = true
	change.Voters = created
	if err := s.commit(ctx, change); err != nil {
		return err
	}

	if !s.bootstrapped {
		s.logger.Info("registry bootstrapped", "session_id", s.id, "admin", s.admin)
	}
	s.status = RegisteringVoters
	s.bootstrapped = true
	for _, v := range created {
		s.voters[v.Identity] = &v
		s.logger.Info("voter registered", "session_id", s.id, "identity", v.Identity)
		s.emit(ctx, Event{Kind: EventVoterRegistered, Identity: v.Identity})
	}
	return nil
}

// IsEligible reports whether identity may propose and vote.
func (s *Session) IsEligible(identity string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isEligible(identity)
}

func (s *Session) isEligible(identity string) bool {
	v, ok := s.voters[identity]
	return ok && v.IsRegistered
}

// Voter returns a copy of the voter record for identity.
func (s *Session) Voter(identity string) (Voter, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.voters[identity]
	if !ok {
		return Voter{}, false
	}
	return v.clone(), true
}

// Voters lists every registered voter ordered by identity.
func (s *Session) Voters() []Voter {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Voter, 0, len(s.voters))
	for _, v := range s.voters {
		out = append(out, v.clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Identity < out[j].Identity })
	return out
}
