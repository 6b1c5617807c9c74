// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Workstream HQ

package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// ServiceToken wraps the JWT presented by a calling service on the vault API.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [jwt.RegisteredClaims] for standard claim access (subject, expiry, etc.).
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
type ServiceToken struct {
	// Token is the underlying JWT used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides access to the standard JWT claim set
	// (sub, exp, iat, nbf, iss, aud, jti) as defined by RFC 7519.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// CallerID is the calling service's identifier extracted from the
	// "sub" claim. Internal server-side cache.
	CallerID string `json:"-"`
}

// GetCallerID extracts the caller identifier from the token's "sub" claim.
//
// Returns an error if the subject claim is missing or empty.
func (t *ServiceToken) GetCallerID() (string, error) {
	callerID, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting caller id from token: %w", err)
	}
	if callerID == "" {
		return "", fmt.Errorf("empty subject claim in service token")
	}

	return callerID, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *ServiceToken) String() string {
	return t.SignedString
}
