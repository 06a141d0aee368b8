// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestGenerateIdentityToken(t *testing.T) {
	salt := "test-salt"

	token1 := GenerateIdentityToken("alice", salt)
	token2 := GenerateIdentityToken("alice", salt)
	if token1 != token2 {
		t.Error("Expected deterministic tokens for the same identity and salt")
	}
	if token1 == GenerateIdentityToken("bob", salt) {
		t.Error("Expected different tokens for different identities")
	}
	if token1 == GenerateIdentityToken("alice", "other-salt") {
		t.Error("Expected different tokens for different salts")
	}
	if strings.Contains(token1, "=") {
		t.Error("Token should not contain padding")
	}
}

func TestValidateIdentityToken(t *testing.T) {
	salt := "test-salt"
	token := GenerateIdentityToken("alice", salt)

	tests := []struct {
		name     string
		identity string
		token    string
		wantErr  error
	}{
		{"valid token", "alice", token, nil},
		{"wrong identity", "bob", token, ErrInvalidToken},
		{"empty token", "alice", "", ErrInvalidToken},
		{"tampered token", "alice", token + "x", ErrInvalidToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateIdentityToken(tt.identity, tt.token, salt)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestResolveCaller(t *testing.T) {
	salt := "test-salt"

	tests := []struct {
		name     string
		identity string
		token    string
		want     string
		wantErr  error
	}{
		{"valid headers", "alice", GenerateIdentityToken("alice", salt), "alice", nil},
		{"missing identity", "", GenerateIdentityToken("alice", salt), "", ErrMissingIdentity},
		{"bad token", "alice", "nope", "", ErrInvalidToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			if tt.identity != "" {
				req.Header.Set(HeaderIdentity, tt.identity)
			}
			req.Header.Set(HeaderIdentityToken, tt.token)

			got, err := ResolveCaller(req, salt)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Expected %v, got %v", tt.wantErr, err)
			}
			if got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}
