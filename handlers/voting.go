// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/quickly-vote/cliparse"
	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/session"
)

type VotingHandler struct {
	session *session.Session
	cfg     cliparse.Config
}

func NewVotingHandler(s *session.Session, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{session: s, cfg: cfg}
}

// Vote handles POST /votes
func (h *VotingHandler) Vote(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r, h.cfg)
	if !ok {
		return
	}

	// Parse request
	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	id, err := h.session.Vote(r.Context(), caller, req.Description)
	if err != nil {
		writeSessionError(w, err, "cast vote")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.VoteResponse{
		ProposalID: id,
		Message:    "Vote recorded",
	})
}
