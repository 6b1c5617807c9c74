// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Workstream HQ

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/workstreamhq/credvault/models"
)

const credentialsTable = "credentials"

// credentialColumns is the canonical column order shared by every select and
// by scanCredentialRows.
var credentialColumns = []string{
	"id",
	"user_id",
	"account_id",
	"account_name",
	"enterprise_id",
	"enterprise_name",
	"workstream",
	"product",
	"service",
	"credential_name",
	"connector_name",
	"context_key",
	"encrypted_secret",
	"token_type",
	"scope",
	"remote_account_id",
	"cloud_class",
	"created_at",
	"updated_at",
	"expires_at",
}

// upsertConflictClause targets the partial unique index over the uniqueness
// triple. "excluded" is understood by both PostgreSQL and SQLite.
const upsertConflictClause = `ON CONFLICT (user_id, account_id, enterprise_id)
	WHERE user_id IS NOT NULL AND account_id IS NOT NULL AND enterprise_id IS NOT NULL
	DO UPDATE SET
		encrypted_secret = excluded.encrypted_secret,
		token_type = excluded.token_type,
		scope = excluded.scope,
		account_name = excluded.account_name,
		enterprise_name = excluded.enterprise_name,
		workstream = excluded.workstream,
		product = excluded.product,
		service = excluded.service,
		credential_name = excluded.credential_name,
		connector_name = excluded.connector_name,
		context_key = excluded.context_key,
		remote_account_id = excluded.remote_account_id,
		cloud_class = excluded.cloud_class,
		updated_at = excluded.updated_at,
		expires_at = excluded.expires_at`

// buildInsertCredentialQuery builds the write statement. The ON CONFLICT
// clause is attached only when the full uniqueness triple is present,
// matching the predicate of the partial unique index.
func buildInsertCredentialQuery(builder sq.StatementBuilderType, contextKey string, record models.CredentialRecord) (string, []any, error) {
	insert := builder.
		Insert(credentialsTable).
		Columns(credentialColumns...).
		Values(
			record.ID,
			nullable(record.UserID),
			nullable(record.Context.AccountID),
			nullable(record.Context.AccountName),
			nullable(record.Context.EnterpriseID),
			nullable(record.Context.EnterpriseName),
			nullable(record.Context.Workstream),
			nullable(record.Context.Product),
			nullable(record.Context.Service),
			nullable(record.CredentialName),
			nullable(record.ConnectorName),
			contextKey,
			record.EncryptedSecret,
			record.TokenType,
			nullable(record.Scope),
			nullable(record.RemoteAccountID),
			nullable(string(record.CloudClass)),
			record.CreatedAt,
			record.UpdatedAt,
			nullable(record.ExpiresAt),
		)

	if hasUniquenessTriple(record) {
		insert = insert.Suffix(upsertConflictClause)
	}

	return insert.ToSql()
}

// buildUpdateCredentialQuery rewrites the row matching the uniqueness
// triple. Used only for unique-violation recovery.
func buildUpdateCredentialQuery(builder sq.StatementBuilderType, contextKey string, record models.CredentialRecord) (string, []any, error) {
	return builder.
		Update(credentialsTable).
		Set("encrypted_secret", record.EncryptedSecret).
		Set("token_type", record.TokenType).
		Set("scope", nullable(record.Scope)).
		Set("credential_name", nullable(record.CredentialName)).
		Set("connector_name", nullable(record.ConnectorName)).
		Set("context_key", contextKey).
		Set("remote_account_id", nullable(record.RemoteAccountID)).
		Set("cloud_class", nullable(string(record.CloudClass))).
		Set("updated_at", record.UpdatedAt).
		Set("expires_at", nullable(record.ExpiresAt)).
		Where(sq.Eq{
			"user_id":       record.UserID,
			"account_id":    record.Context.AccountID,
			"enterprise_id": record.Context.EnterpriseID,
		}).
		ToSql()
}

func buildSelectByContextKeyQuery(builder sq.StatementBuilderType, contextKey string) (string, []any, error) {
	return builder.
		Select(credentialColumns...).
		From(credentialsTable).
		Where(sq.Eq{"context_key": contextKey}).
		OrderBy("created_at DESC").
		ToSql()
}

func buildSelectAllCredentialsQuery(builder sq.StatementBuilderType) (string, []any, error) {
	return builder.
		Select(credentialColumns...).
		From(credentialsTable).
		OrderBy("created_at DESC").
		ToSql()
}

// hasUniquenessTriple reports whether the partial unique index applies to
// this record: all of user id, account id and enterprise id present.
func hasUniquenessTriple(record models.CredentialRecord) bool {
	return record.UserID != "" &&
		record.Context.AccountID != "" &&
		record.Context.EnterpriseID != ""
}

// nullable stores empty strings as NULL so the partial unique index
// predicate behaves as specified.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
