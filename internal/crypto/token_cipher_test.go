package crypto

import (
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"github.com/workstreamhq/credvault/models"
)

const testMasterKey = "0123456789abcdef0123456789abcdef" // 32 chars

func TestNewTokenCipher_MasterKeyValidation(t *testing.T) {
	if _, err := NewTokenCipher(""); !errors.Is(err, ErrMasterKeyMissing) {
		t.Fatalf("expected ErrMasterKeyMissing, got %v", err)
	}

	if _, err := NewTokenCipher("too-short"); !errors.Is(err, ErrMasterKeyTooShort) {
		t.Fatalf("expected ErrMasterKeyTooShort, got %v", err)
	}

	if _, err := NewTokenCipher(testMasterKey); err != nil {
		t.Fatalf("unexpected error for valid master key: %v", err)
	}
}

func TestTokenCipher_RoundTrip(t *testing.T) {
	cipher, err := NewTokenCipher(testMasterKey)
	if err != nil {
		t.Fatalf("NewTokenCipher: %v", err)
	}

	secret, err := cipher.Encrypt("ghp_abc123")
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	if secret.CiphertextHex == "" || secret.IVHex == "" || secret.SaltHex == "" {
		t.Fatalf("expected all hex fields populated, got %+v", secret)
	}
	if secret.Timestamp == "" {
		t.Fatalf("expected timestamp to be set")
	}

	opened, err := cipher.Decrypt(secret)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if opened.Token != "ghp_abc123" {
		t.Errorf("plaintext = %q, want %q", opened.Token, "ghp_abc123")
	}
	if opened.Timestamp != secret.Timestamp {
		t.Errorf("timestamp = %q, want %q", opened.Timestamp, secret.Timestamp)
	}
}

func TestTokenCipher_FreshSaltAndIVPerCall(t *testing.T) {
	cipher, err := NewTokenCipher(testMasterKey)
	if err != nil {
		t.Fatalf("NewTokenCipher: %v", err)
	}

	first, err := cipher.Encrypt("same-plaintext")
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	second, err := cipher.Encrypt("same-plaintext")
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	if first.SaltHex == second.SaltHex {
		t.Errorf("expected fresh salt per encryption, got identical salts")
	}
	if first.IVHex == second.IVHex {
		t.Errorf("expected fresh iv per encryption, got identical ivs")
	}
	if first.CiphertextHex == second.CiphertextHex {
		t.Errorf("expected differing ciphertexts, got identical")
	}

	for _, s := range []models.EncryptedSecret{first, second} {
		opened, decErr := cipher.Decrypt(s)
		if decErr != nil {
			t.Fatalf("Decrypt: %v", decErr)
		}
		if opened.Token != "same-plaintext" {
			t.Errorf("plaintext = %q, want %q", opened.Token, "same-plaintext")
		}
	}
}

func TestTokenCipher_DecryptMalformedFields(t *testing.T) {
	cipher, err := NewTokenCipher(testMasterKey)
	if err != nil {
		t.Fatalf("NewTokenCipher: %v", err)
	}

	valid, err := cipher.Encrypt("anything")
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	cases := map[string]models.EncryptedSecret{
		"bad ciphertext hex": {CiphertextHex: "zz", IVHex: valid.IVHex, SaltHex: valid.SaltHex},
		"bad iv hex":         {CiphertextHex: valid.CiphertextHex, IVHex: "zz", SaltHex: valid.SaltHex},
		"bad salt hex":       {CiphertextHex: valid.CiphertextHex, IVHex: valid.IVHex, SaltHex: "zz"},
		"short iv":           {CiphertextHex: valid.CiphertextHex, IVHex: "aabb", SaltHex: valid.SaltHex},
		"truncated ciphertext": {
			CiphertextHex: valid.CiphertextHex[:2],
			IVHex:         valid.IVHex,
			SaltHex:       valid.SaltHex,
		},
	}

	for name, secret := range cases {
		t.Run(name, func(t *testing.T) {
			if _, decErr := cipher.Decrypt(secret); !errors.Is(decErr, ErrDecryption) {
				t.Fatalf("expected ErrDecryption, got %v", decErr)
			}
		})
	}
}

func TestTokenCipher_DecryptWithRotatedMasterKey(t *testing.T) {
	first, err := NewTokenCipher(testMasterKey)
	if err != nil {
		t.Fatalf("NewTokenCipher: %v", err)
	}
	rotated, err := NewTokenCipher(strings.Repeat("x", 32))
	if err != nil {
		t.Fatalf("NewTokenCipher: %v", err)
	}

	secret, err := first.Encrypt("ghp_rotation_victim")
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	if _, decErr := rotated.Decrypt(secret); !errors.Is(decErr, ErrDecryption) {
		t.Fatalf("expected ErrDecryption after master-key rotation, got %v", decErr)
	}
}

func TestPKCS7_PadUnpad(t *testing.T) {
	for _, length := range []int{0, 1, 15, 16, 17, 31, 32} {
		data := []byte(strings.Repeat("a", length))

		padded := padPKCS7(data, 16)
		if len(padded)%16 != 0 {
			t.Fatalf("padded length %d not block aligned", len(padded))
		}

		unpadded, err := unpadPKCS7(padded, 16)
		if err != nil {
			t.Fatalf("unpad of length %d: %v", length, err)
		}
		if string(unpadded) != string(data) {
			t.Errorf("round trip mismatch for length %d", length)
		}
	}
}

func TestPKCS7_UnpadRejectsGarbage(t *testing.T) {
	if _, err := unpadPKCS7([]byte{}, 16); err == nil {
		t.Errorf("expected error for empty input")
	}
	if _, err := unpadPKCS7(hexMust("00112233445566778899aabbccddee20"), 16); err == nil {
		t.Errorf("expected error for padding length above block size")
	}
	if _, err := unpadPKCS7(hexMust("00112233445566778899aabbccdd0203"), 16); err == nil {
		t.Errorf("expected error for inconsistent padding bytes")
	}
}

func hexMust(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}
