package models

import "time"

// Request types

type RegisterVoterRequest struct {
	Identity    string `json:"identity"`
	DisplayName string `json:"display_name"`
}

type SubmitProposalRequest struct {
	Description string `json:"description"`
}

type VoteRequest struct {
	Description string `json:"description"`
}

// Response types

type RegisterVoterResponse struct {
	Identity      string `json:"identity"`
	IdentityToken string `json:"identity_token"`
}

type SubmitProposalResponse struct {
	ProposalID int `json:"proposal_id"`
}

type VoteResponse struct {
	ProposalID int    `json:"proposal_id"`
	Message    string `json:"message"`
}

type StatusResponse struct {
	SessionID string `json:"session_id"`
	Status    string `json:"status"`
}

type TransitionResponse struct {
	Previous string `json:"previous"`
	Status   string `json:"status"`
}

type WinnerResponse struct {
	ProposalID int `json:"proposal_id"`
}

// Domain types

type Voter struct {
	Identity        string `json:"identity"`
	DisplayName     string `json:"display_name"`
	IsRegistered    bool   `json:"is_registered"`
	HasVoted        bool   `json:"has_voted"`
	VotedProposalID *int   `json:"voted_proposal_id,omitempty"`
}

type Proposal struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
	Proposer    string `json:"proposer"`
	VoteCount   uint64 `json:"vote_count"`
	Momentum    uint64 `json:"momentum"`
}

type Event struct {
	ID         string    `json:"id"`
	Kind       string    `json:"kind"`
	Identity   string    `json:"identity,omitempty"`
	ProposalID *int      `json:"proposal_id,omitempty"`
	Previous   string    `json:"previous,omitempty"`
	Next       string    `json:"next,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
