// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"
)

// Request headers carrying the caller identity.
const (
	HeaderIdentity      = "X-Identity"
	HeaderIdentityToken = "X-Identity-Token"
)

var (
	ErrMissingIdentity = errors.New("missing identity")
	ErrInvalidToken    = errors.New("invalid identity token")
)

// GenerateIdentityToken creates an HMAC-based token for an identity
// This is deterministic and verifiable
func GenerateIdentityToken(identity, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(identity))
	sum := h.Sum(nil)
	// Use URL-safe base64 and trim padding for cleaner tokens
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// ValidateIdentityToken checks if the provided token belongs to the identity
func ValidateIdentityToken(identity, token, salt string) error {
	expected := GenerateIdentityToken(identity, salt)
	if !hmac.Equal([]byte(token), []byte(expected)) {
		return ErrInvalidToken
	}
	return nil
}

// ResolveCaller returns the identity a request is made on behalf of.
func ResolveCaller(r *http.Request, salt string) (string, error) {
	identity := strings.TrimSpace(r.Header.Get(HeaderIdentity))
	if identity == "" {
		return "", ErrMissingIdentity
	}
	if err := ValidateIdentityToken(identity, r.Header.Get(HeaderIdentityToken), salt); err != nil {
		return "", err
	}
	return identity, nil
}
