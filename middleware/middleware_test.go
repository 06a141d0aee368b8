// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/quickly-vote/auth"
	"github.com/danielhkuo/quickly-vote/models"
)

// captureLogs routes the default logger into a buffer for the test
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func decodeLogLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var line map[string]interface{}
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line); err != nil {
		t.Fatalf("Failed to decode log line %q: %v", buf.String(), err)
	}
	return line
}

func TestWithLogging(t *testing.T) {
	testCases := []struct {
		name          string
		identity      string
		handler       http.HandlerFunc
		expectedCode  int
		expectedLevel string
	}{
		{
			name:     "vote recorded",
			identity: "alice",
			handler: func(w http.ResponseWriter, r *http.Request) {
				JSONResponse(w, http.StatusCreated, models.VoteResponse{ProposalID: 1, Message: "Vote recorded"})
			},
			expectedCode:  http.StatusCreated,
			expectedLevel: "INFO",
		},
		{
			name:     "body without explicit header",
			identity: "bob",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("OK"))
			},
			expectedCode:  http.StatusOK,
			expectedLevel: "INFO",
		},
		{
			name:     "already voted",
			identity: "alice",
			handler: func(w http.ResponseWriter, r *http.Request) {
				ErrorResponse(w, http.StatusConflict, "voter already voted")
			},
			expectedCode:  http.StatusConflict,
			expectedLevel: "WARN",
		},
		{
			name: "store failure",
			handler: func(w http.ResponseWriter, r *http.Request) {
				ErrorResponse(w, http.StatusInternalServerError, "Failed to cast vote")
			},
			expectedCode:  http.StatusInternalServerError,
			expectedLevel: "ERROR",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			logs := captureLogs(t)

			req := httptest.NewRequest("POST", "/votes", nil)
			if tc.identity != "" {
				req.Header.Set(auth.HeaderIdentity, tc.identity)
			}
			w := httptest.NewRecorder()

			WithLogging(tc.handler)(w, req)

			if w.Code != tc.expectedCode {
				t.Errorf("Expected response status %d, got %d", tc.expectedCode, w.Code)
			}

			line := decodeLogLine(t, logs)
			if line["msg"] != "request completed" {
				t.Errorf("Unexpected message %v", line["msg"])
			}
			if line["level"] != tc.expectedLevel {
				t.Errorf("Expected level %s, got %v", tc.expectedLevel, line["level"])
			}
			if line["identity"] != tc.identity {
				t.Errorf("Expected identity %q, got %v", tc.identity, line["identity"])
			}
			if status, _ := line["status"].(float64); int(status) != tc.expectedCode {
				t.Errorf("Expected logged status %d, got %v", tc.expectedCode, line["status"])
			}
			if line["path"] != "/votes" || line["method"] != "POST" {
				t.Errorf("Unexpected method/path in log: %v %v", line["method"], line["path"])
			}
		})
	}
}

func TestStatusRecorderKeepsFirstCode(t *testing.T) {
	w := httptest.NewRecorder()
	rec := &statusRecorder{ResponseWriter: w}

	rec.WriteHeader(http.StatusForbidden)
	rec.WriteHeader(http.StatusOK)

	if rec.status != http.StatusForbidden {
		t.Errorf("Expected recorded status 403, got %d", rec.status)
	}
}

func TestErrorResponse(t *testing.T) {
	testCases := []struct {
		name          string
		statusCode    int
		message       string
		expectedError string
	}{
		{"missing identity", http.StatusUnauthorized, "Invalid identity: missing identity", "Unauthorized"},
		{"not the administrator", http.StatusForbidden, "only the administrator can tally", "Forbidden"},
		{"unknown proposal", http.StatusNotFound, "unknown proposal: \"Z\"", "Not Found"},
		{"closing without votes", http.StatusPreconditionFailed, "prerequisite not met: no votes cast", "Precondition Failed"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			ErrorResponse(w, tc.statusCode, tc.message)

			if w.Code != tc.statusCode {
				t.Errorf("Expected status %d, got %d", tc.statusCode, w.Code)
			}
			if w.Header().Get("Content-Type") != "application/json" {
				t.Error("Expected Content-Type 'application/json'")
			}

			var resp models.ErrorResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("Failed to decode error response: %v", err)
			}
			if resp.Error != tc.expectedError || resp.Message != tc.message {
				t.Errorf("Expected %q/%q, got %q/%q", tc.expectedError, tc.message, resp.Error, resp.Message)
			}
		})
	}
}

func TestParseJSONBody(t *testing.T) {
	t.Run("vote request", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/votes", strings.NewReader(`{"description":"Plant a tree"}`))

		var parsed models.VoteRequest
		if err := ParseJSONBody(req, &parsed); err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
		if parsed.Description != "Plant a tree" {
			t.Errorf("Expected description 'Plant a tree', got '%s'", parsed.Description)
		}
	})

	t.Run("empty body", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/votes", strings.NewReader(""))

		var parsed models.VoteRequest
		if err := ParseJSONBody(req, &parsed); err == nil {
			t.Error("Expected error for empty body")
		}
	})

	t.Run("oversized body", func(t *testing.T) {
		huge := `{"description":"` + strings.Repeat("x", MaxBodyBytes) + `"}`
		req := httptest.NewRequest("POST", "/proposals", strings.NewReader(huge))

		var parsed models.SubmitProposalRequest
		if err := ParseJSONBody(req, &parsed); err == nil {
			t.Error("Expected error for a body over the limit")
		}
	})
}

func TestCORS(t *testing.T) {
	reached := false
	handler := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("preflight for a vote", func(t *testing.T) {
		reached = false
		req := httptest.NewRequest(http.MethodOptions, "/votes", nil)
		req.Header.Set("Origin", "https://vote.example.com")
		req.Header.Set("Access-Control-Request-Headers", "x-identity, x-identity-token")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Errorf("Expected 204, got %d", w.Code)
		}
		if reached {
			t.Error("Preflight must not reach the router")
		}
		allowed := w.Header().Get("Access-Control-Allow-Headers")
		for _, h := range []string{auth.HeaderIdentity, auth.HeaderIdentityToken} {
			if !strings.Contains(allowed, h) {
				t.Errorf("Expected %s in allowed headers %q", h, allowed)
			}
		}
		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://vote.example.com" {
			t.Errorf("Expected origin to be reflected, got %q", got)
		}
		if w.Header().Get("Vary") != "Origin" {
			t.Error("Expected Vary: Origin when reflecting the origin")
		}
	})

	t.Run("only served methods advertised", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest("GET", "/status", nil))

		methods := w.Header().Get("Access-Control-Allow-Methods")
		if methods != "GET, POST, OPTIONS" {
			t.Errorf("Unexpected allowed methods %q", methods)
		}
		if !reached {
			t.Error("Expected GET to reach the router")
		}
	})
}

func TestGetClientIP(t *testing.T) {
	testCases := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		expected   string
	}{
		{"proxy chain with spaces", map[string]string{"X-Forwarded-For": " 203.0.113.5 , 10.0.0.1"}, "10.0.0.2:443", "203.0.113.5"},
		{"blank forwarded header falls through", map[string]string{"X-Forwarded-For": " ,10.0.0.1", "X-Real-IP": "198.51.100.7"}, "10.0.0.2:443", "198.51.100.7"},
		{"bracketed IPv6 remote", nil, "[2001:db8::1]:8080", "2001:db8::1"},
		{"remote without port", nil, "192.0.2.10", "192.0.2.10"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tc.remoteAddr
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}

			if got := GetClientIP(req); got != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, got)
			}
		})
	}
}
