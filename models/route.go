// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Workstream HQ

package models

// CloudClass is the normalized cloud classification of a tenant's dedicated
// store. Only two classes exist; anything the account directory reports is
// collapsed onto one of them, defaulting to public when ambiguous.
type CloudClass string

const (
	CloudPublic  CloudClass = "public"
	CloudPrivate CloudClass = "private"
)

// RouteDecision is the per-call outcome of tenant routing. An empty
// RemoteAccountID means "use the shared administrative store". The decision
// is derived on every vault call and never persisted as its own entity.
type RouteDecision struct {
	RemoteAccountID string     `json:"remoteAccountId,omitempty"`
	CloudClass      CloudClass `json:"cloudClass"`
}

// Dedicated reports whether the tenant routes to its own remote store.
func (r RouteDecision) Dedicated() bool {
	return r.RemoteAccountID != ""
}

// AccountRoute is what the external account directory knows about a tenant:
// its remote account identifier (empty when none is recorded) and the raw,
// free-text cloud classification exactly as the directory stores it.
type AccountRoute struct {
	RemoteAccountID string `json:"remoteAccountId,omitempty"`
	CloudType       string `json:"cloudType,omitempty"`
}
