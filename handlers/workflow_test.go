// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/session"
	"github.com/danielhkuo/quickly-vote/testutil"
)

func advanceRequest(transition string, headers map[string]string) *http.Request {
	req := testutil.MakeRequest("POST", "/workflow/"+transition, nil, headers)
	req.SetPathValue("transition", transition)
	return req
}

func TestAdvanceWorkflow(t *testing.T) {
	cfg := testutil.GetTestConfig()
	s := testutil.NewTestSession(t, cfg, nil, nil)
	handler := NewWorkflowHandler(s, cfg)
	admin := testutil.IdentityHeaders(cfg.AdminIdentity, cfg)

	testutil.RegisterTestVoters(t, s, "alice")

	tests := []struct {
		name           string
		transition     string
		headers        map[string]string
		expectedStatus int
		expectedPhase  string
	}{
		{"unknown transition", "reopen", admin, http.StatusNotFound, ""},
		{"voter cannot advance", "start-proposals", testutil.IdentityHeaders("alice", cfg), http.StatusForbidden, ""},
		{"no identity", "start-proposals", nil, http.StatusUnauthorized, ""},
		{"out of order", "start-voting", admin, http.StatusConflict, ""},
		{"open proposals", "start-proposals", admin, http.StatusOK, "ProposalsRegistrationStarted"},
		{"close without proposals", "end-proposals", admin, http.StatusPreconditionFailed, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			handler.Advance(w, advanceRequest(tt.transition, tt.headers))

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if w.Code == http.StatusOK {
				var resp models.TransitionResponse
				testutil.AssertJSON(t, w, &resp)
				if resp.Status != tt.expectedPhase {
					t.Errorf("Expected status %s, got %s", tt.expectedPhase, resp.Status)
				}
				if resp.Previous != "RegisteringVoters" {
					t.Errorf("Expected previous RegisteringVoters, got %s", resp.Previous)
				}
			}
		})
	}

	if s.Status() != session.ProposalsRegistrationStarted {
		t.Errorf("Expected ProposalsRegistrationStarted, got %s", s.Status())
	}
}

func TestGetStatus(t *testing.T) {
	cfg := testutil.GetTestConfig()
	s := testutil.NewTestSession(t, cfg, nil, nil)
	handler := NewWorkflowHandler(s, cfg)

	w := httptest.NewRecorder()
	handler.GetStatus(w, testutil.MakeRequest("GET", "/status", nil, nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	var resp models.StatusResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Status != "RegisteringVoters" {
		t.Errorf("Expected RegisteringVoters, got %s", resp.Status)
	}
	if resp.SessionID != s.ID() {
		t.Errorf("Expected session ID %s, got %s", s.ID(), resp.SessionID)
	}
}
