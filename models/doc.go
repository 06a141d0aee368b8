// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - RegisterVoterRequest: identity, display_name
  - SubmitProposalRequest: description
  - VoteRequest: description

# Response Types

Types for JSON responses:

  - RegisterVoterResponse: identity, identity_token
  - SubmitProposalResponse: proposal_id
  - VoteResponse: proposal_id, message
  - StatusResponse: session_id, status
  - TransitionResponse: previous, status
  - WinnerResponse: proposal_id
  - ErrorResponse: error, message

# Domain Types

JSON views of session records:

  - Voter: whitelist entry and its vote
  - Proposal: description, vote count and momentum
  - Event: audit trail entry

Status values are the workflow phase names, for example
"RegisteringVoters" or "VotesTallied".
*/
package models
