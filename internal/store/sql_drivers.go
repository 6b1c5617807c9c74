// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Workstream HQ

package store

// database/sql driver registration. NewConnect opens connections by driver
// name only, so both supported drivers must be linked in here.
import (
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)
