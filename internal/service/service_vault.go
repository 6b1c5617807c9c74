// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Workstream HQ

package service

import (
	"context"
	"time"

	"github.com/workstreamhq/credvault/internal/crypto"
	"github.com/workstreamhq/credvault/internal/logger"
	"github.com/workstreamhq/credvault/internal/partition"
	"github.com/workstreamhq/credvault/internal/store"
	"github.com/workstreamhq/credvault/internal/tenant"
	"github.com/workstreamhq/credvault/internal/utils"
	"github.com/workstreamhq/credvault/models"
)

type vaultService struct {
	cipher      crypto.TokenCipher
	router      tenant.RouteResolver
	credentials store.CredentialStore
	tables      *store.TableResolver
	ids         *utils.UUIDGenerator

	logger *logger.Logger
}

func NewVaultService(cipher crypto.TokenCipher, router tenant.RouteResolver, credentials store.CredentialStore, tables *store.TableResolver, logger *logger.Logger) VaultService {
	return &vaultService{
		cipher:      cipher,
		router:      router,
		credentials: credentials,
		tables:      tables,
		ids:         utils.NewUUIDGenerator(),
		logger:      logger,
	}
}

// StoreAccessToken seals the plaintext token and persists the resulting
// record: encrypt, resolve the route, derive the partition key, write the
// optional user-scoped secondary record, then the primary record. The echo
// carries redacted ciphertext only.
func (s *vaultService) StoreAccessToken(ctx context.Context, req models.StoreTokenRequest) (models.CredentialRecord, error) {
	log := logger.FromContext(ctx)

	if req.Token == "" {
		return models.CredentialRecord{}, ErrNoTokenProvided
	}

	sealed, err := s.cipher.Encrypt(req.Token)
	if err != nil {
		return models.CredentialRecord{}, err
	}
	serialized, err := sealed.Serialize()
	if err != nil {
		return models.CredentialRecord{}, err
	}

	route := s.router.Resolve(ctx, req.Context.AccountID, req.RemoteAccountID, req.CloudClass)
	table := s.tables.Resolve(route, req.Context.AccountID)
	contextKey := partition.Key(req.Context)

	now := time.Now().UTC().Format(time.RFC3339)
	record := models.CredentialRecord{
		ID:              s.ids.Generate(),
		UserID:          req.UserID,
		Context:         req.Context,
		CredentialName:  req.CredentialName,
		ConnectorName:   req.ConnectorName,
		EncryptedSecret: serialized,
		TokenType:       req.TokenType,
		Scope:           req.Scope,
		RemoteAccountID: route.RemoteAccountID,
		CloudClass:      route.CloudClass,
		CreatedAt:       now,
		UpdatedAt:       now,
		ExpiresAt:       req.ExpiresAt,
	}

	if record.UserID != "" {
		if err := s.credentials.SaveUserLookup(ctx, table, record); err != nil {
			return models.CredentialRecord{}, err
		}
	}

	if err := s.credentials.Save(ctx, table, contextKey, record); err != nil {
		return models.CredentialRecord{}, err
	}

	log.Debug().
		Str("record_id", record.ID).
		Str("context_key", contextKey).
		Str("table", table).
		Msg("credential stored")

	return record.Redacted(), nil
}

// GetAccessToken walks the read ladder in order, stopping at the first
// decrypted match:
//
//  1. each partition-key variant, most specific first, filtered by the
//     tenant fields the caller supplied;
//  2. a full table scan, only when both account id and enterprise id were
//     supplied;
//  3. the DEFAULT partition holding records written with no tenant context.
//
// A record that fails to decrypt is skipped in favor of the next rung; nil
// with a nil error means nothing matched anywhere.
func (s *vaultService) GetAccessToken(ctx context.Context, query models.TokenQuery) (*models.AccessToken, error) {
	log := logger.FromContext(ctx)

	route := s.router.Resolve(ctx, query.Context.AccountID, query.RemoteAccountID, query.CloudClass)
	table := s.tables.Resolve(route, query.Context.AccountID)

	for _, key := range partition.CandidateKeys(query.Context) {
		records, err := s.credentials.QueryByContextKey(ctx, table, key)
		if err != nil {
			return nil, err
		}

		match := newestMatch(records, query.Context)
		if match == nil {
			continue
		}

		token, err := s.openRecord(*match)
		if err != nil {
			log.Warn().
				Err(err).
				Str("record_id", match.ID).
				Msg("stored credential failed to decrypt, trying next partition variant")
			continue
		}

		return token, nil
	}

	if query.Context.AccountID != "" && query.Context.EnterpriseID != "" {
		token, err := s.scanForToken(ctx, table, query.Context)
		if err != nil || token != nil {
			return token, err
		}
	}

	return s.defaultPartitionToken(ctx, table)
}

// GetAccessTokenByName resolves a credential by its opaque credential or
// connector name: scan, filter by name plus the caller's account and
// enterprise ids, newest first. When the name-scoped scan yields nothing the
// context-key ladder runs as an approximation with the same tenant fields.
func (s *vaultService) GetAccessTokenByName(ctx context.Context, query models.NameQuery) (*models.AccessToken, error) {
	log := logger.FromContext(ctx)

	if query.CredentialName == "" && query.ConnectorName == "" {
		return nil, ErrNoLookupNameProvided
	}

	route := s.router.Resolve(ctx, query.Context.AccountID, query.RemoteAccountID, query.CloudClass)
	table := s.tables.Resolve(route, query.Context.AccountID)

	records, err := s.credentials.ScanCredentials(ctx, table)
	if err != nil {
		return nil, err
	}

	for _, record := range records {
		if !nameMatches(record, query) {
			continue
		}
		if query.Context.AccountID != "" && record.Context.AccountID != query.Context.AccountID {
			continue
		}
		if query.Context.EnterpriseID != "" && record.Context.EnterpriseID != query.Context.EnterpriseID {
			continue
		}

		token, err := s.openRecord(record)
		if err != nil {
			log.Warn().
				Err(err).
				Str("record_id", record.ID).
				Msg("stored credential failed to decrypt, trying next scan match")
			continue
		}

		return token, nil
	}

	return s.GetAccessToken(ctx, models.TokenQuery{
		UserID:          query.UserID,
		Context:         query.Context,
		RemoteAccountID: query.RemoteAccountID,
		CloudClass:      query.CloudClass,
	})
}

// scanForToken is the last-resort scan rung: every credential record in the
// table, filtered in memory by exact equality on each supplied tenant field,
// newest first. A decryption failure here falls through to the DEFAULT
// partition rather than failing the read.
func (s *vaultService) scanForToken(ctx context.Context, table string, tenantCtx models.TenantContext) (*models.AccessToken, error) {
	log := logger.FromContext(ctx)

	records, err := s.credentials.ScanCredentials(ctx, table)
	if err != nil {
		return nil, err
	}

	match := newestMatch(records, tenantCtx)
	if match == nil {
		return nil, nil
	}

	token, err := s.openRecord(*match)
	if err != nil {
		log.Warn().
			Err(err).
			Str("record_id", match.ID).
			Msg("stored credential failed to decrypt during scan fallback")
		return nil, nil
	}

	return token, nil
}

// defaultPartitionToken reads the DEFAULT partition, the terminal rung of
// the ladder. With no further fallback left, a decryption failure here is
// surfaced instead of swallowed.
func (s *vaultService) defaultPartitionToken(ctx context.Context, table string) (*models.AccessToken, error) {
	records, err := s.credentials.QueryByContextKey(ctx, table, partition.DefaultKey)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	return s.openRecord(records[0])
}

// openRecord deserializes and decrypts one stored record into the read-side
// result shape. The embedded record copy is redacted.
func (s *vaultService) openRecord(record models.CredentialRecord) (*models.AccessToken, error) {
	sealed, err := models.ParseEncryptedSecret(record.EncryptedSecret)
	if err != nil {
		return nil, err
	}

	opened, err := s.cipher.Decrypt(sealed)
	if err != nil {
		return nil, err
	}

	return &models.AccessToken{
		Token:     opened.Token,
		TokenType: record.TokenType,
		Scope:     record.Scope,
		Timestamp: opened.Timestamp,
		Record:    record.Redacted(),
	}, nil
}

// newestMatch returns the most recent record satisfying every tenant field
// the caller supplied. Records arrive newest first from both backends, so
// the first hit wins. An unsupplied field imposes no constraint.
func newestMatch(records []models.CredentialRecord, tenantCtx models.TenantContext) *models.CredentialRecord {
	for i := range records {
		if matchesSupplied(records[i], tenantCtx) {
			return &records[i]
		}
	}
	return nil
}

// matchesSupplied checks exact, case-sensitive equality on each of the
// filterable tenant fields the caller supplied. Names are deliberately not
// part of the filter set: historical records predate name capture.
func matchesSupplied(record models.CredentialRecord, tenantCtx models.TenantContext) bool {
	if tenantCtx.AccountID != "" && record.Context.AccountID != tenantCtx.AccountID {
		return false
	}
	if tenantCtx.EnterpriseID != "" && record.Context.EnterpriseID != tenantCtx.EnterpriseID {
		return false
	}
	if tenantCtx.Workstream != "" && record.Context.Workstream != tenantCtx.Workstream {
		return false
	}
	if tenantCtx.Product != "" && record.Context.Product != tenantCtx.Product {
		return false
	}
	if tenantCtx.Service != "" && record.Context.Service != tenantCtx.Service {
		return false
	}
	return true
}

func nameMatches(record models.CredentialRecord, query models.NameQuery) bool {
	if query.CredentialName != "" && record.CredentialName == query.CredentialName {
		return true
	}
	if query.ConnectorName != "" && record.ConnectorName == query.ConnectorName {
		return true
	}
	return false
}
