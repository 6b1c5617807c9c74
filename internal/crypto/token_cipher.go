// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Workstream HQ

// Package crypto implements the at-rest encryption of credential secrets.
//
// Each secret is sealed with AES-256-CBC under a key derived from the
// deployment-wide master key via PBKDF2-SHA256. The salt and IV are random
// per encryption and stored hex-encoded next to the ciphertext, so rotating
// nothing but the master key is what invalidates old records.
package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"time"
	"unicode/utf8"

	"golang.org/x/crypto/pbkdf2"

	"github.com/workstreamhq/credvault/models"
)

const (
	// minMasterKeyLen is the minimum acceptable master-key length in
	// characters. Anything shorter fails construction.
	minMasterKeyLen = 32

	saltLen = 32
	ivLen   = aes.BlockSize // 16
	keyLen  = 32            // 256 bits

	// kdfIterations is the PBKDF2 iteration count. Kept at 100k so that
	// brute-forcing a derived key requires redoing the full iteration
	// count per guess.
	kdfIterations = 100_000
)

// tokenCipher is the private implementation of [TokenCipher].
type tokenCipher struct {
	masterKey []byte
}

// NewTokenCipher constructs a [TokenCipher] bound to the given master key.
// Returns [ErrMasterKeyMissing] when masterKey is empty and
// [ErrMasterKeyTooShort] when it has fewer than 32 characters.
func NewTokenCipher(masterKey string) (TokenCipher, error) {
	if masterKey == "" {
		return nil, ErrMasterKeyMissing
	}
	if len(masterKey) < minMasterKeyLen {
		return nil, ErrMasterKeyTooShort
	}

	return &tokenCipher{masterKey: []byte(masterKey)}, nil
}

// Encrypt implements [TokenCipher]. It reads a fresh 32-byte salt and
// 16-byte IV from the OS CSPRNG, derives a 256-bit key with PBKDF2-SHA256,
// and seals plaintext with AES-256-CBC and PKCS#7 padding.
func (c *tokenCipher) Encrypt(plaintext string) (models.EncryptedSecret, error) {
	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return models.EncryptedSecret{}, fmt.Errorf("generate salt: %w", err)
	}

	iv := make([]byte, ivLen)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return models.EncryptedSecret{}, fmt.Errorf("generate iv: %w", err)
	}

	key := pbkdf2.Key(c.masterKey, salt, kdfIterations, keyLen, sha256.New)

	block, err := aes.NewCipher(key)
	if err != nil {
		return models.EncryptedSecret{}, fmt.Errorf("create cipher: %w", err)
	}

	padded := padPKCS7([]byte(plaintext), aes.BlockSize)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)

	return models.EncryptedSecret{
		CiphertextHex: hex.EncodeToString(ciphertext),
		IVHex:         hex.EncodeToString(iv),
		SaltHex:       hex.EncodeToString(salt),
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// Decrypt implements [TokenCipher]. It re-derives the key from the stored
// salt, strips the PKCS#7 padding, and rejects anything that does not open
// cleanly. An error here almost always means the master key was rotated
// since the record was written.
func (c *tokenCipher) Decrypt(secret models.EncryptedSecret) (models.DecryptedToken, error) {
	ciphertext, err := hex.DecodeString(secret.CiphertextHex)
	if err != nil {
		return models.DecryptedToken{}, fmt.Errorf("%w: malformed ciphertext hex: %w", ErrDecryption, err)
	}
	iv, err := hex.DecodeString(secret.IVHex)
	if err != nil {
		return models.DecryptedToken{}, fmt.Errorf("%w: malformed iv hex: %w", ErrDecryption, err)
	}
	salt, err := hex.DecodeString(secret.SaltHex)
	if err != nil {
		return models.DecryptedToken{}, fmt.Errorf("%w: malformed salt hex: %w", ErrDecryption, err)
	}

	if len(iv) != ivLen {
		return models.DecryptedToken{}, fmt.Errorf("%w: iv length %d, want %d", ErrDecryption, len(iv), ivLen)
	}
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return models.DecryptedToken{}, fmt.Errorf("%w: ciphertext length %d is not a positive multiple of the block size", ErrDecryption, len(ciphertext))
	}

	key := pbkdf2.Key(c.masterKey, salt, kdfIterations, keyLen, sha256.New)

	block, err := aes.NewCipher(key)
	if err != nil {
		return models.DecryptedToken{}, fmt.Errorf("create cipher: %w", err)
	}

	padded := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(padded, ciphertext)

	plaintext, err := unpadPKCS7(padded, aes.BlockSize)
	if err != nil {
		return models.DecryptedToken{}, fmt.Errorf("%w: %w", ErrDecryption, err)
	}

	// CBC has no authentication tag. A wrong key that survives the padding
	// check still produces garbage, so reject plaintexts that are not
	// valid UTF-8 — stored tokens always are.
	if !utf8.Valid(plaintext) {
		return models.DecryptedToken{}, fmt.Errorf("%w: plaintext integrity check failed", ErrDecryption)
	}

	return models.DecryptedToken{
		Token:     string(plaintext),
		Timestamp: secret.Timestamp,
	}, nil
}

// padPKCS7 appends PKCS#7 padding up to the next blockSize boundary.
// Input that already ends on a boundary gets a full padding block.
func padPKCS7(data []byte, blockSize int) []byte {
	padLen := blockSize - len(data)%blockSize
	return append(data, bytes.Repeat([]byte{byte(padLen)}, padLen)...)
}

// unpadPKCS7 strips and validates PKCS#7 padding.
func unpadPKCS7(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, fmt.Errorf("invalid padded length %d", len(data))
	}

	padLen := int(data[len(data)-1])
	if padLen == 0 || padLen > blockSize {
		return nil, fmt.Errorf("invalid padding length %d", padLen)
	}

	for _, b := range data[len(data)-padLen:] {
		if int(b) != padLen {
			return nil, fmt.Errorf("inconsistent padding bytes")
		}
	}

	return data[:len(data)-padLen], nil
}
