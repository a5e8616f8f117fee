// Package cardcipher encrypts card numbers at rest with AES-256-GCM.
//
// The stored form is base64(nonce || ciphertext || tag). Decrypting with a different key
// fails instead of returning garbage.
package cardcipher

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"

	"fueltrack/internal/pkg/errs"
)

const keySize = 32

// AESGCM implements ports.CardCipher.
type AESGCM struct {
	aead cipher.AEAD
}

// NewAESGCM builds a cipher from a base64-encoded 32 byte key.
func NewAESGCM(encodedKey string) (*AESGCM, error) {
	if encodedKey == "" {
		return nil, errs.NewValueIsRequiredError("card encryption key")
	}

	key, err := base64.StdEncoding.DecodeString(encodedKey)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("card encryption key", err)
	}
	if len(key) != keySize {
		return nil, errs.NewValueIsOutOfRangeError("card encryption key length", len(key), keySize, keySize)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create aes cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return &AESGCM{aead: aead}, nil
}

func (c *AESGCM) Encrypt(plain string) (string, error) {
	if plain == "" {
		return "", errs.NewValueIsRequiredError("card number")
	}

	nonce := make([]byte, c.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	sealed := c.aead.Seal(nonce, nonce, []byte(plain), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

func (c *AESGCM) Decrypt(encoded string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", errs.NewValueIsInvalidErrorWithCause("encrypted card number", err)
	}

	size := c.aead.NonceSize()
	if len(raw) < size+c.aead.Overhead() {
		return "", errs.NewValueIsInvalidErrorWithCause("encrypted card number", errors.New("too short"))
	}

	plain, err := c.aead.Open(nil, raw[:size], raw[size:], nil)
	if err != nil {
		return "", errs.NewValueIsInvalidErrorWithCause("encrypted card number", err)
	}
	return string(plain), nil
}
