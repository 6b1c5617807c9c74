// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Workstream HQ

package store

import (
	"context"
	"sort"
	"strings"

	"github.com/workstreamhq/credvault/internal/logger"
	"github.com/workstreamhq/credvault/models"
)

// kvCredentialStore is the [CredentialStore] over a generic [KeyValueStore].
type kvCredentialStore struct {
	kv     KeyValueStore
	logger *logger.Logger
}

// NewKVCredentialStore wraps a key/value adapter into the domain-level
// credential contract.
func NewKVCredentialStore(kv KeyValueStore, log *logger.Logger) CredentialStore {
	return &kvCredentialStore{
		kv:     kv,
		logger: log,
	}
}

// Save implements [CredentialStore]. Records are never mutated in place on
// the key/value backend: each store call writes a fresh item keyed by a
// fresh record id.
func (s *kvCredentialStore) Save(ctx context.Context, table, contextKey string, record models.CredentialRecord) error {
	item := marshalCredentialItem(PKVaultPrefix+contextKey, record)
	return s.kv.Put(ctx, table, item)
}

// SaveUserLookup implements [CredentialStore].
func (s *kvCredentialStore) SaveUserLookup(ctx context.Context, table string, record models.CredentialRecord) error {
	if record.UserID == "" {
		return nil
	}

	item := marshalCredentialItem(PKUserPrefix+record.UserID, record)
	return s.kv.Put(ctx, table, item)
}

// QueryByContextKey implements [CredentialStore].
func (s *kvCredentialStore) QueryByContextKey(ctx context.Context, table, contextKey string) ([]models.CredentialRecord, error) {
	items, err := s.kv.QueryByKeyPrefix(ctx, table, PKVaultPrefix+contextKey, SKTokenPrefix)
	if err != nil {
		return nil, err
	}

	return toRecords(items), nil
}

// ScanCredentials implements [CredentialStore].
func (s *kvCredentialStore) ScanCredentials(ctx context.Context, table string) ([]models.CredentialRecord, error) {
	items, err := s.kv.ScanByAttribute(ctx, table, attrEntityType, models.EntityTypeCredential)
	if err != nil {
		return nil, err
	}

	return toRecords(items), nil
}

// toRecords converts raw items to records, drops anything that is not a
// credential entity, and orders the result newest first. RFC 3339 strings
// sort chronologically as plain strings.
func toRecords(items []Item) []models.CredentialRecord {
	records := make([]models.CredentialRecord, 0, len(items))
	for _, item := range items {
		if !isCredentialItem(item) {
			continue
		}
		// Secondary user-scoped entries duplicate a primary record and
		// must not surface twice through the scan path.
		if pk, ok := item[attrPK].(string); ok && strings.HasPrefix(pk, PKUserPrefix) {
			continue
		}
		records = append(records, parseCredentialItem(item))
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CreatedAt > records[j].CreatedAt
	})

	return records
}
