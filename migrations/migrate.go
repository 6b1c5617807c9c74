// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Workstream HQ

// Package migrations carries the embedded schema migrations for the
// relational credential backend. Migrations are additive only; they run at
// first use of the relational backend and are tracked by goose, so applying
// them to a pre-existing deployment is safe.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

// Migrate applies all pending migrations using the given goose dialect
// ("pgx" or "sqlite3").
func Migrate(db *sql.DB, dialect string) error {
	if db == nil {
		return errors.New("db is nil")
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
