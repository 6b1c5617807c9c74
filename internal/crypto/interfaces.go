// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Workstream HQ

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/token_cipher_mock.go -package=mock

import "github.com/workstreamhq/credvault/models"

// TokenCipher seals and opens single secret strings for at-rest storage.
// It knows nothing about tenants, storage, or the network. Every Encrypt
// call consumes fresh randomness for the salt and IV, so encrypting the same
// plaintext twice never produces the same ciphertext.
type TokenCipher interface {
	// Encrypt seals plaintext under a key derived from the configured
	// master key and a fresh random salt. The returned secret carries the
	// hex-encoded ciphertext, IV and salt plus an RFC 3339 timestamp.
	Encrypt(plaintext string) (models.EncryptedSecret, error)

	// Decrypt reverses Encrypt using the salt and IV stored inside the
	// secret. A wrong master key, a malformed field, or corrupted
	// ciphertext surfaces as [ErrDecryption]; garbage is never returned
	// silently.
	Decrypt(secret models.EncryptedSecret) (models.DecryptedToken, error)
}
