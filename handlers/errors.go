// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickly-vote/auth"
	"github.com/danielhkuo/quickly-vote/cliparse"
	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/session"
)

// statusForError maps session errors to HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, session.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, session.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, session.ErrUnknownProposal), errors.Is(err, session.ErrWinnerNotFound):
		return http.StatusNotFound
	case errors.Is(err, session.ErrInvalidPhase),
		errors.Is(err, session.ErrDuplicateProposal),
		errors.Is(err, session.ErrAlreadyRegistered),
		errors.Is(err, session.ErrAlreadyVoted):
		return http.StatusConflict
	case errors.Is(err, session.ErrPrerequisiteNotMet):
		return http.StatusPreconditionFailed
	default:
		return http.StatusInternalServerError
	}
}

// writeSessionError writes err as a JSON error. Unexpected errors are logged
// and not echoed to the client.
func writeSessionError(w http.ResponseWriter, err error, op string) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		slog.Error("session operation failed", "op", op, "error", err)
		middleware.ErrorResponse(w, status, "Failed to "+op)
		return
	}
	middleware.ErrorResponse(w, status, err.Error())
}

// requireCaller resolves the caller identity or writes a 401.
func requireCaller(w http.ResponseWriter, r *http.Request, cfg cliparse.Config) (string, bool) {
	caller, err := auth.ResolveCaller(r, cfg.IdentitySalt)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid identity: "+err.Error())
		return "", false
	}
	return caller, true
}
