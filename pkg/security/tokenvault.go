package security

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/nacl/secretbox"
)

// TokenVault seals third-party platform tokens before they reach the database
// and opens them again on the way out. Sealing uses NaCl secretbox with a key
// derived from the configured secret.
type TokenVault struct {
	key [32]byte
}

// NewTokenVault derives the sealing key from the configured secret.
func NewTokenVault(secret string) (*TokenVault, error) {
	if secret == "" {
		return nil, fmt.Errorf("token seal key cannot be empty")
	}
	return &TokenVault{key: sha256.Sum256([]byte(secret))}, nil
}

// Seal encrypts a plaintext token and returns a base64 string with the nonce
// prepended, suitable for a text column.
func (v *TokenVault) Seal(plaintext string) (string, error) {
	if plaintext == "" {
		return "", fmt.Errorf("cannot seal empty token")
	}

	var nonce [24]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	sealed := secretbox.Seal(nonce[:], []byte(plaintext), &nonce, &v.key)
	return base64.RawStdEncoding.EncodeToString(sealed), nil
}

// Open decrypts a sealed token produced by Seal.
func (v *TokenVault) Open(sealed string) (string, error) {
	raw, err := base64.RawStdEncoding.DecodeString(sealed)
	if err != nil {
		return "", fmt.Errorf("decode sealed token: %w", err)
	}
	if len(raw) < 24 {
		return "", fmt.Errorf("sealed token too short")
	}

	var nonce [24]byte
	copy(nonce[:], raw[:24])

	plaintext, ok := secretbox.Open(nil, raw[24:], &nonce, &v.key)
	if !ok {
		return "", fmt.Errorf("sealed token failed authentication")
	}
	return string(plaintext), nil
}
