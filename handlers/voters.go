// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/quickly-vote/auth"
	"github.com/danielhkuo/quickly-vote/cliparse"
	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/session"
)

type VoterHandler struct {
	session *session.Session
	cfg     cliparse.Config
}

func NewVoterHandler(s *session.Session, cfg cliparse.Config) *VoterHandler {
	return &VoterHandler{session: s, cfg: cfg}
}

// RegisterVoter handles POST /voters
func (h *VoterHandler) RegisterVoter(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r, h.cfg)
	if !ok {
		return
	}

	var req models.RegisterVoterRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.session.Register(r.Context(), caller, req.Identity, req.DisplayName); err != nil {
		writeSessionError(w, err, "register voter")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.RegisterVoterResponse{
		Identity:      req.Identity,
		IdentityToken: auth.GenerateIdentityToken(req.Identity, h.cfg.IdentitySalt),
	})
}

// ListVoters handles GET /voters
func (h *VoterHandler) ListVoters(w http.ResponseWriter, r *http.Request) {
	voters := h.session.Voters()
	out := make([]models.Voter, 0, len(voters))
	for _, v := range voters {
		out = append(out, toVoter(v))
	}
	middleware.JSONResponse(w, http.StatusOK, out)
}

// GetVoter handles GET /voters/{identity}
func (h *VoterHandler) GetVoter(w http.ResponseWriter, r *http.Request) {
	identity := r.PathValue("identity")
	if identity == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "identity is required")
		return
	}

	v, ok := h.session.Voter(identity)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Voter not found")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, toVoter(v))
}

func toVoter(v session.Voter) models.Voter {
	return models.Voter{
		Identity:        v.Identity,
		DisplayName:     v.DisplayName,
		IsRegistered:    v.IsRegistered,
		HasVoted:        v.HasVoted,
		VotedProposalID: v.VotedProposalID,
	}
}
