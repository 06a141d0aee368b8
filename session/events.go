// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import "time"

type EventKind string

const (
	EventVoterRegistered       EventKind = "VoterRegistered"
	EventWorkflowStatusChanged EventKind = "WorkflowStatusChanged"
	EventProposalRegistered    EventKind = "ProposalRegistered"
	EventVoted                 EventKind = "Voted"
)

// Event is a notification emitted after a successful operation.
//
// Identity is set for VoterRegistered and Voted, ProposalID for
// ProposalRegistered and Voted, Previous and Next for WorkflowStatusChanged.
type Event struct {
	ID         string
	SessionID  string
	Kind       EventKind
	Identity   string
	ProposalID int
	Previous   Status
	Next       Status
	OccurredAt time.Time
}
