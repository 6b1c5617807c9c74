// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Workstream HQ

package crypto

import "errors"

// Sentinel errors returned by the token cipher. Callers should match against
// these values with [errors.Is].
var (
	// ErrMasterKeyMissing is returned when no master-key material is
	// configured at all. Configuration problem; surfaced to the caller
	// before any I/O happens.
	ErrMasterKeyMissing = errors.New("vault master key is not configured")

	// ErrMasterKeyTooShort is returned when the configured master key has
	// fewer than 32 characters.
	ErrMasterKeyTooShort = errors.New("vault master key is shorter than 32 characters")

	// ErrDecryption is returned when a stored secret cannot be opened:
	// malformed hex fields, a truncated ciphertext, or a key mismatch
	// after master-key rotation. CBC does not authenticate, so a wrong
	// key shows up as a padding error or garbled plaintext; both are
	// collapsed into this sentinel rather than returned as data.
	ErrDecryption = errors.New("failed to decrypt stored secret")
)
