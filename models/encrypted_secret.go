// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Workstream HQ

package models

import (
	"encoding/json"
	"fmt"
)

// EncryptedSecret is the at-rest form of a single credential secret.
// It is produced once per encryption call and never mutated afterwards.
// Ciphertext, IV and salt are hex-encoded; the timestamp records the moment
// of encryption in RFC 3339 form and travels with the ciphertext so that
// decryption can report when the secret was sealed.
type EncryptedSecret struct {
	CiphertextHex string `json:"ciphertext"`
	IVHex         string `json:"iv"`
	SaltHex       string `json:"salt"`
	Timestamp     string `json:"timestamp"`
}

// Serialize renders the secret as its canonical opaque-string form, which is
// what gets embedded into a credential record. The format is plain JSON; no
// other component is allowed to look inside it.
func (e EncryptedSecret) Serialize() (string, error) {
	raw, err := json.Marshal(e)
	if err != nil {
		return "", fmt.Errorf("serialize encrypted secret: %w", err)
	}

	return string(raw), nil
}

// ParseEncryptedSecret parses the opaque string form produced by
// [EncryptedSecret.Serialize] back into a structured value.
func ParseEncryptedSecret(blob string) (EncryptedSecret, error) {
	var secret EncryptedSecret
	if err := json.Unmarshal([]byte(blob), &secret); err != nil {
		return EncryptedSecret{}, fmt.Errorf("parse encrypted secret: %w", err)
	}

	return secret, nil
}

// DecryptedToken is the result of opening an [EncryptedSecret]: the plaintext
// token and the timestamp captured at encryption time.
type DecryptedToken struct {
	Token     string `json:"token"`
	Timestamp string `json:"timestamp"`
}
