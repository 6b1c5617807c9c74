// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Workstream HQ

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrMasterKeyTooShort indicates that the vault master key is missing
	// or shorter than the required 32 characters.
	ErrMasterKeyTooShort = errors.New("vault master key must be at least 32 characters")
	// ErrUnknownBackend indicates that the backend selector holds a value
	// other than keyvalue, relational, or filesystem.
	ErrUnknownBackend = errors.New("unknown storage backend selector")
	// ErrInvalidStorageConfigs indicates incomplete settings for the
	// selected backend (for example, missing DSN or region).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid inbound server settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
