// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/quickly-vote/session"
)

func TestStatusForError(t *testing.T) {
	tests := []struct {
		err      error
		expected int
	}{
		{session.ErrUnauthorized, http.StatusForbidden},
		{session.ErrInvalidInput, http.StatusBadRequest},
		{session.ErrUnknownProposal, http.StatusNotFound},
		{session.ErrWinnerNotFound, http.StatusNotFound},
		{session.ErrInvalidPhase, http.StatusConflict},
		{session.ErrDuplicateProposal, http.StatusConflict},
		{session.ErrAlreadyRegistered, http.StatusConflict},
		{session.ErrAlreadyVoted, http.StatusConflict},
		{session.ErrPrerequisiteNotMet, http.StatusPreconditionFailed},
		{fmt.Errorf("wrapped: %w", session.ErrAlreadyVoted), http.StatusConflict},
		{errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			if got := statusForError(tt.err); got != tt.expected {
				t.Errorf("statusForError(%v) = %d, want %d", tt.err, got, tt.expected)
			}
		})
	}
}

func TestWriteSessionErrorHidesInternalErrors(t *testing.T) {
	w := httptest.NewRecorder()

	writeSessionError(w, errors.New("pq: password authentication failed"), "cast vote")

	if w.Code != http.StatusInternalServerError {
		t.Errorf("Expected 500, got %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "password") {
		t.Errorf("Internal error leaked to client: %s", w.Body.String())
	}
}
