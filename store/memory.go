// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/danielhkuo/quickly-vote/session"
)

// Memory keeps session state in process memory. It is used for the
// "memory" database type and in tests.
type Memory struct {
	mu        sync.Mutex
	state     session.Change
	voters    map[string]session.Voter
	proposals []session.Proposal
	commits   int
}

func NewMemory() *Memory {
	return &Memory{voters: make(map[string]session.Voter)}
}

func (m *Memory) Load(_ context.Context) (session.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	snap := session.Snapshot{
		SessionID:         m.state.SessionID,
		Admin:             m.state.Admin,
		Status:            m.state.Status,
		Bootstrapped:      m.state.Bootstrapped,
		WinnerResolved:    m.state.WinnerResolved,
		WinningProposalID: m.state.WinningProposalID,
		LastTimestamp:     m.state.LastTimestamp,
		Proposals:         append([]session.Proposal(nil), m.proposals...),
	}
	for _, v := range m.voters {
		snap.Voters = append(snap.Voters, copyVoter(v))
	}
	sort.Slice(snap.Voters, func(i, j int) bool { return snap.Voters[i].Identity < snap.Voters[j].Identity })
	return snap, nil
}

func (m *Memory) Commit(_ context.Context, change session.Change) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if p := change.Proposal; p != nil && (p.ID < 0 || p.ID > len(m.proposals)) {
		return fmt.Errorf("proposal id %d out of sequence (have %d)", p.ID, len(m.proposals))
	}

	m.state = session.Change{
		SessionID:         change.SessionID,
		Admin:             change.Admin,
		Status:            change.Status,
		Bootstrapped:      change.Bootstrapped,
		WinnerResolved:    change.WinnerResolved,
		WinningProposalID: change.WinningProposalID,
		LastTimestamp:     change.LastTimestamp,
	}
	for _, v := range change.Voters {
		m.voters[v.Identity] = copyVoter(v)
	}
	if p := change.Proposal; p != nil {
		if p.ID == len(m.proposals) {
			m.proposals = append(m.proposals, *p)
		} else {
			m.proposals[p.ID] = *p
		}
	}
	m.commits++
	return nil
}

// Commits returns how many changes have been committed.
func (m *Memory) Commits() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.commits
}

func copyVoter(v session.Voter) session.Voter {
	if v.VotedProposalID != nil {
		id := *v.VotedProposalID
		v.VotedProposalID = &id
	}
	return v
}
