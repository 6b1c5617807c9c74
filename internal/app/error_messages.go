// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Workstream HQ

// Package app contains shared application-layer constants used across the
// vault's handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded as
	// JSON at all.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgTokenIsExpired is returned when a JWT bearer token is syntactically
	// valid but its expiry time has passed.
	MsgTokenIsExpired = "token is expired"

	// MsgStoreTokenFailed is returned when the vault cannot persist a
	// credential. The underlying cause is logged, never echoed, so that no
	// storage or crypto detail leaks to the caller.
	MsgStoreTokenFailed = "error storing access token"

	// MsgResolveTokenFailed is returned when the context-ladder read fails
	// with a backend error (absence of a match is not a failure).
	MsgResolveTokenFailed = "error resolving access token"

	// MsgLookupTokenFailed is returned when the lookup-by-name read fails
	// with a backend error.
	MsgLookupTokenFailed = "error resolving access token by name"
)
