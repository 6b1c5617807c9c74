// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Workstream HQ

package models

// EntityTypeCredential tags every vault item so that full scans can tell
// credential records apart from other entities sharing the table.
const EntityTypeCredential = "CREDENTIAL"

// RedactedSecret replaces the ciphertext whenever a credential record is
// echoed back to a caller or written to a log.
const RedactedSecret = "[REDACTED]"

// CredentialRecord is one stored secret for one tenant context. It is owned
// exclusively by the vault service: created on store, superseded (never
// mutated in place) on a later store for the same uniqueness key.
// ExpiresAt is advisory metadata only; the vault never enforces it.
type CredentialRecord struct {
	ID             string        `json:"id"`
	UserID         string        `json:"userId,omitempty"`
	Context        TenantContext `json:"context"`
	CredentialName string        `json:"credentialName,omitempty"`
	ConnectorName  string        `json:"connectorName,omitempty"`

	// EncryptedSecret holds the serialized opaque form of the at-rest
	// secret; see [EncryptedSecret.Serialize].
	EncryptedSecret string `json:"encryptedSecret"`

	TokenType string `json:"tokenType"`
	Scope     string `json:"scope,omitempty"`

	// Routing metadata captured at write time so operators can reconstruct
	// which physical store holds the record without re-resolving.
	RemoteAccountID string     `json:"remoteAccountId,omitempty"`
	CloudClass      CloudClass `json:"cloudClass,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
	ExpiresAt string `json:"expiresAt,omitempty"`
}

// Redacted returns a copy of the record safe to hand back to callers:
// the ciphertext is never echoed out of the vault.
func (c CredentialRecord) Redacted() CredentialRecord {
	out := c
	out.EncryptedSecret = RedactedSecret
	return out
}

// AccessToken is the decrypted read-side result: the plaintext token together
// with the metadata of the record it came from (already redacted).
type AccessToken struct {
	Token     string           `json:"token"`
	TokenType string           `json:"tokenType"`
	Scope     string           `json:"scope,omitempty"`
	Timestamp string           `json:"timestamp"`
	Record    CredentialRecord `json:"record"`
}
