// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Quickly Vote API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(sess, events, cfg)

# Endpoints

Health:

	GET /health

Workflow (transitions require the administrator identity):

	GET  /status                 - Current phase
	POST /workflow/{transition}  - start-proposals, end-proposals,
	                               start-voting, end-voting, tally

Voter registry (registration requires the administrator identity):

	POST /voters            - Whitelist a voter, returns its identity token
	GET  /voters            - List voters
	GET  /voters/{identity} - Voter details

Proposals and votes (registered voters, X-Identity + X-Identity-Token):

	POST /proposals - Submit a proposal
	GET  /proposals - List proposals in ID order
	POST /votes     - Vote for a proposal by description

Results (public):

	GET /results/winner           - Winning proposal ID (tallied only)
	GET /results/winning-proposal - Winning proposal record
	GET /events                   - Recent session events, oldest first

# Handler Initialization

The router creates handler instances with dependency injection:

	voterHandler := handlers.NewVoterHandler(sess, cfg)
	resultsHandler := handlers.NewResultsHandler(sess, events, cfg)

All handlers share the one session and the configuration.
*/
package router
