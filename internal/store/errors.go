// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Workstream HQ

package store

import "errors"

// Sentinel errors returned by backend adapters to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUnsupportedBackend is returned by [NewStorages] when the
	// configured backend selector names a backend the vault cannot use.
	// The filesystem store used by the legacy CRUD layer is explicitly in
	// this category.
	ErrUnsupportedBackend = errors.New("unsupported storage backend for vault operations")

	// ErrDuplicateCredential is returned when a relational insert trips
	// the (user_id, account_id, enterprise_id) uniqueness constraint.
	// The repository recovers from it internally by retrying as an
	// update; it escapes only if that retry fails too.
	ErrDuplicateCredential = errors.New("credential already exists for user/account/enterprise")
)

// Low-level database operation errors, wrapped around driver errors so that
// callers can classify failures without depending on the driver.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised
	// SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a read query against
	// the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan credential row")

	// ErrScanningRows is returned when an error is detected during
	// multi-row iteration, typically mid-result-set.
	ErrScanningRows = errors.New("failed to iterate credential rows")

	// ErrKeyValueOperation is returned when a key/value backend call
	// fails at the SDK level. Not retried internally; the caller owns
	// retry policy.
	ErrKeyValueOperation = errors.New("key/value store operation failed")
)
