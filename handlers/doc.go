// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Quickly Vote API.

# Handler Types

Each handler is a struct with session and config dependencies:

  - VoterHandler: Voter registration and the voter list
  - ProposalHandler: Proposal submission and the proposal list
  - VotingHandler: Vote casting
  - WorkflowHandler: Session status and administrator transitions
  - ResultsHandler: Winner, winning proposal and the event trail

Handlers are created via constructor functions:

	voterHandler := handlers.NewVoterHandler(sess, cfg)

# Session Lifecycle

The administrator moves the session forward one phase at a time:

	POST /voters                     → RegisterVoter (returns identity_token)
	POST /workflow/start-proposals   → proposals open
	POST /workflow/end-proposals     → needs ≥1 proposal
	POST /workflow/start-voting      → voting opens
	POST /workflow/end-voting        → needs ≥1 vote
	POST /workflow/tally             → winner resolved

# Voting Flow

Registered voters submit proposals and vote by exact description:

	POST /proposals → SubmitProposal
	POST /votes     → Vote (once per voter)

Mutating requests require the X-Identity and X-Identity-Token headers.

# Errors

Session errors map to status codes: unauthorized 403, invalid input 400,
unknown proposal or no winner yet 404, wrong phase or duplicates 409, unmet
prerequisites 412.
*/
package handlers
