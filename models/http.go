// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Workstream HQ

package models

// StoreTokenRequest is the write-side payload of the vault API. Token is the
// plaintext secret to seal; it is encrypted before anything touches storage
// and never appears in responses or logs.
type StoreTokenRequest struct {
	Token     string        `json:"token"`
	TokenType string        `json:"tokenType,omitempty"`
	Scope     string        `json:"scope,omitempty"`
	UserID    string        `json:"userId,omitempty"`
	Context   TenantContext `json:"context"`

	CredentialName string `json:"credentialName,omitempty"`
	ConnectorName  string `json:"connectorName,omitempty"`
	ExpiresAt      string `json:"expiresAt,omitempty"`

	// RemoteAccountID and CloudClass let a caller pin the route explicitly,
	// bypassing the account-directory lookup.
	RemoteAccountID string     `json:"remoteAccountId,omitempty"`
	CloudClass      CloudClass `json:"cloudClass,omitempty"`
}

// TokenQuery is the read-side request: the tenant fields the caller knows.
// Missing fields impose no constraint during matching.
type TokenQuery struct {
	UserID  string        `json:"userId,omitempty"`
	Context TenantContext `json:"context"`

	// RemoteAccountID and CloudClass optionally pin the route, same as on
	// the write side.
	RemoteAccountID string     `json:"remoteAccountId,omitempty"`
	CloudClass      CloudClass `json:"cloudClass,omitempty"`
}

// NameQuery resolves a credential by its opaque credential or connector name
// instead of the tenant-context ladder.
type NameQuery struct {
	CredentialName string `json:"credentialName,omitempty"`
	ConnectorName  string `json:"connectorName,omitempty"`

	UserID  string        `json:"userId,omitempty"`
	Context TenantContext `json:"context"`

	RemoteAccountID string     `json:"remoteAccountId,omitempty"`
	CloudClass      CloudClass `json:"cloudClass,omitempty"`
}
