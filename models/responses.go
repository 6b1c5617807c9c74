// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Workstream HQ

package models

// StoreTokenResponse is what the vault echoes back after a successful store:
// the persisted record with the ciphertext redacted.
type StoreTokenResponse struct {
	Record CredentialRecord `json:"record"`
}

// AccessTokenResponse is the read-side response. Found is false when no
// record matched through any fallback path; absence is not an error.
type AccessTokenResponse struct {
	Found bool         `json:"found"`
	Token *AccessToken `json:"accessToken,omitempty"`
}

// ErrorResponse is the JSON error body for the vault API.
type ErrorResponse struct {
	Error string `json:"error"`
}
