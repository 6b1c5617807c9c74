// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Workstream HQ

// Package service holds the business logic of the credential vault: sealing
// and opening secrets, routing them to the right physical store, and walking
// the degraded-match ladder on reads. Handlers stay thin and delegate here.
package service

import (
	"context"

	"github.com/workstreamhq/credvault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/vault_service_mock.go -package=mock

// VaultService is the vault's write and read surface.
//
// Absence of a matching credential on the read side is a nil result, never
// an error; callers decide what "not found" means to them.
type VaultService interface {
	// StoreAccessToken encrypts the plaintext token, resolves the target
	// store, and persists the credential record (plus a user-scoped
	// secondary record when a user id is supplied). The returned record
	// has its ciphertext redacted.
	StoreAccessToken(ctx context.Context, req models.StoreTokenRequest) (models.CredentialRecord, error)

	// GetAccessToken resolves a credential through the context-key ladder,
	// the full-scan fallback, and finally the DEFAULT partition, returning
	// the decrypted token or nil when nothing matches.
	GetAccessToken(ctx context.Context, query models.TokenQuery) (*models.AccessToken, error)

	// GetAccessTokenByName resolves a credential by its credential or
	// connector name, falling back to the context-key ladder when the
	// name-scoped scan yields nothing.
	GetAccessTokenByName(ctx context.Context, query models.NameQuery) (*models.AccessToken, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
