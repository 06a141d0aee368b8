// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth resolves caller identities from requests.

# Identity Tokens

Identity tokens use HMAC-SHA256 to create deterministic, verifiable tokens:

	token := auth.GenerateIdentityToken("alice", salt)
	err := auth.ValidateIdentityToken("alice", token, salt)

The token is URL-safe base64 encoded without padding. Since it's
deterministic, the same identity and salt always produce the same token, so
tokens never need to be stored.

The administrator hands a voter its token when registering it. The
administrator's own token is printed by the -show-admin-token flag.

# Request Headers

Callers identify themselves with two headers:

	X-Identity:       alice
	X-Identity-Token: <token>

ResolveCaller checks both and returns the identity:

	caller, err := auth.ResolveCaller(r, cfg.IdentitySalt)
*/
package auth
