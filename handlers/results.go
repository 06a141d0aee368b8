// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/quickly-vote/audit"
	"github.com/danielhkuo/quickly-vote/cliparse"
	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/session"
)

type ResultsHandler struct {
	session *session.Session
	events  audit.Source
	cfg     cliparse.Config
}

func NewResultsHandler(s *session.Session, events audit.Source, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{session: s, events: events, cfg: cfg}
}

// GetWinner handles GET /results/winner
// Results are public, but only exist once votes are tallied
func (h *ResultsHandler) GetWinner(w http.ResponseWriter, r *http.Request) {
	id, err := h.session.Winner()
	if err != nil {
		writeSessionError(w, err, "get winner")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.WinnerResponse{ProposalID: id})
}

// GetWinningProposal handles GET /results/winning-proposal
func (h *ResultsHandler) GetWinningProposal(w http.ResponseWriter, r *http.Request) {
	p, err := h.session.WinningProposal()
	if err != nil {
		writeSessionError(w, err, "get winning proposal")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, toProposal(p))
}

// GetEvents handles GET /events?limit=N
func (h *ResultsHandler) GetEvents(w http.ResponseWriter, r *http.Request) {
	limit := 100
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			middleware.ErrorResponse(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	if h.events == nil {
		middleware.JSONResponse(w, http.StatusOK, []models.Event{})
		return
	}

	events, err := h.events.Recent(r.Context(), limit)
	if err != nil {
		slog.Error("failed to query events", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	out := make([]models.Event, 0, len(events))
	for _, e := range events {
		out = append(out, toEvent(e))
	}
	middleware.JSONResponse(w, http.StatusOK, out)
}

func toEvent(e session.Event) models.Event {
	out := models.Event{
		ID:         e.ID,
		Kind:       string(e.Kind),
		Identity:   e.Identity,
		OccurredAt: e.OccurredAt,
	}
	switch e.Kind {
	case session.EventProposalRegistered, session.EventVoted:
		id := e.ProposalID
		out.ProposalID = &id
	case session.EventWorkflowStatusChanged:
		out.Previous = e.Previous.String()
		out.Next = e.Next.String()
	}
	return out
}
