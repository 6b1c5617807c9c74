// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Workstream HQ

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"

	"github.com/workstreamhq/credvault/internal/logger"
	"github.com/workstreamhq/credvault/models"
)

// sqlCredentialRepository is the relational implementation of
// [CredentialStore]. All records live in the single normalized
// "credentials" table regardless of routing; the table argument of the
// interface is ignored.
//
// Writes are atomic upserts against the partial unique index over
// (user_id, account_id, enterprise_id). The read-then-write probe earlier
// deployments used is kept only as a recovery path for a unique violation
// racing past the upsert.
type sqlCredentialRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewCredentialRepository constructs a [CredentialStore] backed by the
// provided database connection and logger.
func NewCredentialRepository(db *DB, log *logger.Logger) CredentialStore {
	return &sqlCredentialRepository{
		db:     db,
		logger: log,
	}
}

// Save implements [CredentialStore]. When the full uniqueness triple
// (user id, account id, enterprise id) is present, the insert carries an
// ON CONFLICT DO UPDATE clause targeting the partial unique index, so a
// concurrent store for the same triple supersedes rather than fails.
// A residual unique violation is converted into an update.
func (r *sqlCredentialRepository) Save(ctx context.Context, _ string, contextKey string, record models.CredentialRecord) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertCredentialQuery(r.db.Builder(), contextKey, record)
	if err != nil {
		log.Err(err).
			Str("func", "sqlCredentialRepository.Save").
			Str("context_key", contextKey).
			Msg("failed to build insert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if !isUniqueViolation(err) {
			log.Err(err).
				Str("func", "sqlCredentialRepository.Save").
				Str("context_key", contextKey).
				Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
				Msg("failed to insert credential")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		log.Debug().
			Str("func", "sqlCredentialRepository.Save").
			Str("record_id", record.ID).
			Msg("unique violation on insert, retrying as update")

		if err = r.updateExisting(ctx, contextKey, record); err != nil {
			return fmt.Errorf("%w: %w", ErrDuplicateCredential, err)
		}
	}

	return nil
}

// SaveUserLookup implements [CredentialStore]. The relational table is
// normalized: user_id is a plain indexed column on the primary row, so no
// secondary record exists to write.
func (r *sqlCredentialRepository) SaveUserLookup(context.Context, string, models.CredentialRecord) error {
	return nil
}

// QueryByContextKey implements [CredentialStore].
func (r *sqlCredentialRepository) QueryByContextKey(ctx context.Context, _ string, contextKey string) ([]models.CredentialRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectByContextKeyQuery(r.db.Builder(), contextKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "sqlCredentialRepository.QueryByContextKey").
			Str("context_key", contextKey).
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanCredentialRows(rows)
}

// ScanCredentials implements [CredentialStore]. Full-table read, newest
// first; the last-resort path of the degraded-match ladder.
func (r *sqlCredentialRepository) ScanCredentials(ctx context.Context, _ string) ([]models.CredentialRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAllCredentialsQuery(r.db.Builder())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "sqlCredentialRepository.ScanCredentials").
			Msg("failed to execute scan query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanCredentialRows(rows)
}

// updateExisting rewrites the secret and metadata of the row matching the
// uniqueness triple. Only called after a unique violation, so the row is
// known to exist.
func (r *sqlCredentialRepository) updateExisting(ctx context.Context, contextKey string, record models.CredentialRecord) error {
	query, args, err := buildUpdateCredentialQuery(r.db.Builder(), contextKey, record)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, raErr := result.RowsAffected(); raErr == nil && affected == 0 {
		return fmt.Errorf("no existing credential row to update")
	}

	return nil
}

// isUniqueViolation reports whether err is a uniqueness-constraint failure
// from either supported driver.
func isUniqueViolation(err error) bool {
	if postgresError(err) == pgerrcode.UniqueViolation {
		return true
	}

	// mattn/go-sqlite3 reports constraint failures by message; matching
	// the error text avoids linking the driver's cgo types here.
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// scanCredentialRows drains rows into records. Column order must match
// credentialColumns.
func scanCredentialRows(rows *sql.Rows) ([]models.CredentialRecord, error) {
	records := make([]models.CredentialRecord, 0, 16)

	for rows.Next() {
		var (
			record models.CredentialRecord

			userID, accountID, accountName       sql.NullString
			enterpriseID, enterpriseName         sql.NullString
			workstream, product, service         sql.NullString
			credentialName, connectorName, scope sql.NullString
			remoteAccountID, cloudClass          sql.NullString
			contextKey, expiresAt                sql.NullString
		)

		err := rows.Scan(
			&record.ID,
			&userID,
			&accountID,
			&accountName,
			&enterpriseID,
			&enterpriseName,
			&workstream,
			&product,
			&service,
			&credentialName,
			&connectorName,
			&contextKey,
			&record.EncryptedSecret,
			&record.TokenType,
			&scope,
			&remoteAccountID,
			&cloudClass,
			&record.CreatedAt,
			&record.UpdatedAt,
			&expiresAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		record.UserID = userID.String
		record.Context = models.TenantContext{
			EnterpriseID:   enterpriseID.String,
			EnterpriseName: enterpriseName.String,
			AccountID:      accountID.String,
			AccountName:    accountName.String,
			Workstream:     workstream.String,
			Product:        product.String,
			Service:        service.String,
		}
		record.CredentialName = credentialName.String
		record.ConnectorName = connectorName.String
		record.Scope = scope.String
		record.RemoteAccountID = remoteAccountID.String
		record.CloudClass = models.CloudClass(cloudClass.String)
		record.ExpiresAt = expiresAt.String

		records = append(records, record)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return records, nil
}
