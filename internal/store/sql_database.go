// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Workstream HQ

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/workstreamhq/credvault/internal/config"
	"github.com/workstreamhq/credvault/internal/logger"
)

// DB wraps the relational connection pool together with its error
// classifier. It is constructed once at startup and injected into
// repositories; there is no ambient global pool.
type DB struct {
	*sql.DB
	driver             string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens and pings the relational backend described by cfg.
// Supported drivers are "pgx" (PostgreSQL) and "sqlite3"; the sqlite driver
// exists for single-node and test deployments.
func NewConnect(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case "pgx", "sqlite3":
	default:
		return nil, fmt.Errorf("unsupported relational driver %q", cfg.Driver)
	}

	conn, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnect").Str("driver", cfg.Driver).Msg("error opening database connection")
		return nil, fmt.Errorf("error opening database connection: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnect").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnect").Str("driver", cfg.Driver).Msg("connected to database successfully")

	db := &DB{
		DB:                 conn,
		driver:             cfg.Driver,
		logger:             log,
		errorClassificator: NewPostgresErrorClassifier(),
	}

	return db, nil
}

// Builder returns a squirrel statement builder configured with the
// placeholder format of the active driver ($n for pgx, ? for sqlite).
func (db *DB) Builder() sq.StatementBuilderType {
	if db.driver == "pgx" {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// GooseDialect returns the migration dialect matching the active driver.
func (db *DB) GooseDialect() string {
	if db.driver == "pgx" {
		return "pgx"
	}
	return "sqlite3"
}

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
