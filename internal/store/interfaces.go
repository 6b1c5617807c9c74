// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Workstream HQ

// Package store implements the two interchangeable persistence backends of
// the credential vault: a DynamoDB key/value store and a relational store
// reachable through pgx or sqlite. The active backend is selected once at
// startup from configuration; vault code only ever sees the interfaces
// defined here.
package store

import (
	"context"

	"github.com/workstreamhq/credvault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Item is one key/value record as the generic adapter sees it: attribute
// name to attribute value. Conversion to the wire representation of the
// physical store happens inside the adapter.
type Item map[string]any

// KeyValueStore is the uniform contract over the key/value backend.
// "No matching item" is a nil result, never an error.
type KeyValueStore interface {
	Get(ctx context.Context, table string, key Item) (Item, error)
	Put(ctx context.Context, table string, item Item) error

	// Update applies a native update expression. values maps expression
	// placeholders (":v") to their values; names maps attribute-name
	// placeholders ("#n") to real attribute names and may be nil.
	Update(ctx context.Context, table string, key Item, updateExpr string, values map[string]any, names map[string]string) error

	Delete(ctx context.Context, table string, key Item) error

	// QueryByKeyPrefix returns every item under partitionKey whose sort
	// key starts with sortKeyPrefix.
	QueryByKeyPrefix(ctx context.Context, table, partitionKey, sortKeyPrefix string) ([]Item, error)

	// ScanByAttribute walks the whole table and returns items whose
	// attribute equals value. Expensive; used only as a last-resort
	// lookup path.
	ScanByAttribute(ctx context.Context, table, attribute string, value any) ([]Item, error)
}

// CredentialStore is the domain-level contract the vault service talks to.
// Both backends implement it; the relational backend ignores the table
// argument because all rows live in one normalized table.
type CredentialStore interface {
	// Save persists the primary credential record under contextKey.
	Save(ctx context.Context, table, contextKey string, record models.CredentialRecord) error

	// SaveUserLookup persists the secondary user-scoped record so a
	// lookup by user id alone is possible without the tenant context.
	// Records without a user id are skipped silently.
	SaveUserLookup(ctx context.Context, table string, record models.CredentialRecord) error

	// QueryByContextKey returns every credential stored under the exact
	// partition key, newest first.
	QueryByContextKey(ctx context.Context, table, contextKey string) ([]models.CredentialRecord, error)

	// ScanCredentials returns every credential-type record in the table,
	// newest first. Last-resort path for the degraded-match ladder.
	ScanCredentials(ctx context.Context, table string) ([]models.CredentialRecord, error)
}
