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

type ProposalHandler struct {
	session *session.Session
	cfg     cliparse.Config
}

func NewProposalHandler(s *session.Session, cfg cliparse.Config) *ProposalHandler {
	return &ProposalHandler{session: s, cfg: cfg}
}

// SubmitProposal handles POST /proposals
func (h *ProposalHandler) SubmitProposal(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r, h.cfg)
	if !ok {
		return
	}

	var req models.SubmitProposalRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	id, err := h.session.SubmitProposal(r.Context(), caller, req.Description)
	if err != nil {
		writeSessionError(w, err, "submit proposal")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitProposalResponse{
		ProposalID: id,
	})
}

// ListProposals handles GET /proposals
func (h *ProposalHandler) ListProposals(w http.ResponseWriter, r *http.Request) {
	proposals := h.session.Proposals()
	out := make([]models.Proposal, 0, len(proposals))
	for _, p := range proposals {
		out = append(out, toProposal(p))
	}
	middleware.JSONResponse(w, http.StatusOK, out)
}

func toProposal(p session.Proposal) models.Proposal {
	return models.Proposal{
		ID:          p.ID,
		Description: p.Description,
		Proposer:    p.Proposer,
		VoteCount:   p.VoteCount,
		Momentum:    p.Momentum,
	}
}
