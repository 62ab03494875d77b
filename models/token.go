// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the claim set carried by every issued access token.
//
// User holds the identity payload supplied by the caller at issuance time.
// It is embedded as-is and returned unchanged after verification.
type TokenClaims struct {
	// User is the caller supplied identity payload (e.g. {"email": "..."}).
	User map[string]any `json:"user"`

	// RegisteredClaims provides access to the standard JWT claim set
	// (iss, iat, exp) as defined by RFC 7519.
	jwt.RegisteredClaims
}

// Token wraps a JWT token with convenience accessors for authentication flows.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"token"`

	// Identity is the decoded payload. Populated only for verified tokens.
	Identity Identity `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

// Identity is the verified caller identity attached to a request context
// by the authentication middleware.
type Identity struct {
	// Email is the "email" field of the token payload, if it was a string.
	Email string

	// Payload is the complete decoded payload.
	Payload map[string]any
}

// NewIdentity builds an Identity from a decoded token payload.
func NewIdentity(payload map[string]any) Identity {
	email, _ := payload["email"].(string)
	return Identity{Email: email, Payload: payload}
}
