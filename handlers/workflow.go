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

type WorkflowHandler struct {
	session *session.Session
	cfg     cliparse.Config
}

func NewWorkflowHandler(s *session.Session, cfg cliparse.Config) *WorkflowHandler {
	return &WorkflowHandler{session: s, cfg: cfg}
}

// GetStatus handles GET /status
func (h *WorkflowHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.StatusResponse{
		SessionID: h.session.ID(),
		Status:    h.session.Status().String(),
	})
}

// Advance handles POST /workflow/{transition}
// Valid transitions: start-proposals, end-proposals, start-voting,
// end-voting, tally
func (h *WorkflowHandler) Advance(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r, h.cfg)
	if !ok {
		return
	}

	transition, err := session.ParseTransition(r.PathValue("transition"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, err.Error())
		return
	}

	previous, next, err := h.session.Advance(r.Context(), caller, transition)
	if err != nil {
		writeSessionError(w, err, transition.String())
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.TransitionResponse{
		Previous: previous.String(),
		Status:   next.String(),
	})
}
