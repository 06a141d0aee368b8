// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/quickly-vote/audit"
	"github.com/danielhkuo/quickly-vote/cliparse"
	"github.com/danielhkuo/quickly-vote/handlers"
	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/session"
)

func NewRouter(s *session.Session, events audit.Source, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	voterHandler := handlers.NewVoterHandler(s, cfg)
	proposalHandler := handlers.NewProposalHandler(s, cfg)
	votingHandler := handlers.NewVotingHandler(s, cfg)
	workflowHandler := handlers.NewWorkflowHandler(s, cfg)
	resultsHandler := handlers.NewResultsHandler(s, events, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Workflow (admin transitions)
	mux.HandleFunc("GET /status", middleware.WithLogging(workflowHandler.GetStatus))
	mux.HandleFunc("POST /workflow/{transition}", middleware.WithLogging(workflowHandler.Advance))

	// Voter registry
	mux.HandleFunc("POST /voters", middleware.WithLogging(voterHandler.RegisterVoter))
	mux.HandleFunc("GET /voters", middleware.WithLogging(voterHandler.ListVoters))
	mux.HandleFunc("GET /voters/{identity}", middleware.WithLogging(voterHandler.GetVoter))

	// Proposals and votes (registered voters)
	mux.HandleFunc("POST /proposals", middleware.WithLogging(proposalHandler.SubmitProposal))
	mux.HandleFunc("GET /proposals", middleware.WithLogging(proposalHandler.ListProposals))
	mux.HandleFunc("POST /votes", middleware.WithLogging(votingHandler.Vote))

	// Results (public)
	mux.HandleFunc("GET /results/winner", middleware.WithLogging(resultsHandler.GetWinner))
	mux.HandleFunc("GET /results/winning-proposal", middleware.WithLogging(resultsHandler.GetWinningProposal))
	mux.HandleFunc("GET /events", middleware.WithLogging(resultsHandler.GetEvents))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("quickly-vote API v1"))
	})

	return mux
}
