// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/quickly-vote/auth"
	"github.com/danielhkuo/quickly-vote/cliparse"
	"github.com/danielhkuo/quickly-vote/db"
	"github.com/danielhkuo/quickly-vote/session"
)

// TestDBURL is an in-memory SQLite database private to one connection
const TestDBURL = ":memory:"

// SetupTestDB creates a fresh test database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.TypeSQLite, TestDBURL)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := db.CreateSchema(conn); err != nil {
		conn.Close()
		t.Fatalf("Failed to create schema: %v", err)
	}
	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          3318,
		DatabaseType:  cliparse.DatabaseMemory,
		AdminIdentity: "admin",
		IdentitySalt:  "test-identity-salt",
	}
}

// DiscardLogger returns a logger that drops everything
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// NewTestSession creates a session administered by cfg.AdminIdentity.
// store and notifier may be nil.
func NewTestSession(t *testing.T, cfg cliparse.Config, store session.Store, notifier session.Notifier) *session.Session {
	t.Helper()

	s, err := session.New(context.Background(), cfg.AdminIdentity, session.Options{
		Store:    store,
		Notifier: notifier,
		Logger:   DiscardLogger(),
	})
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}
	return s
}

// IdentityHeaders returns the headers that authenticate a request as identity
func IdentityHeaders(identity string, cfg cliparse.Config) map[string]string {
	return map[string]string{
		auth.HeaderIdentity:      identity,
		auth.HeaderIdentityToken: auth.GenerateIdentityToken(identity, cfg.IdentitySalt),
	}
}

// RegisterTestVoters registers each identity as the administrator.
// The first call bootstraps the administrator too.
func RegisterTestVoters(t *testing.T, s *session.Session, identities ...string) {
	t.Helper()

	ctx := context.Background()
	for _, id := range identities {
		if err := s.Register(ctx, s.Admin(), id, id); err != nil {
			t.Fatalf("Failed to register %s: %v", id, err)
		}
	}
}

// AdvanceTo drives the workflow forward until it reaches target
func AdvanceTo(t *testing.T, s *session.Session, target session.Status) {
	t.Helper()

	steps := []session.Transition{
		session.TransitionStartProposals,
		session.TransitionEndProposals,
		session.TransitionStartVoting,
		session.TransitionEndVoting,
		session.TransitionTally,
	}
	ctx := context.Background()
	for _, step := range steps {
		if s.Status() == target {
			return
		}
		if _, _, err := s.Advance(ctx, s.Admin(), step); err != nil {
			t.Fatalf("Failed to %s: %v", step, err)
		}
	}
	if s.Status() != target {
		t.Fatalf("Could not reach status %s, stuck at %s", target, s.Status())
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
