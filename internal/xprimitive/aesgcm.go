package xprimitive

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

const (
	aesKeySize   = 32
	gcmIVSize    = 12
	gcmTagSize   = 16
)

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != aesKeySize {
		return nil, fmt.Errorf("xprimitive: key must be %d bytes, got %d", aesKeySize, len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("xprimitive: aes.NewCipher: %w", err)
	}
	gcm, err := cipher.NewGCMWithNonceSize(block, gcmIVSize)
	if err != nil {
		return nil, fmt.Errorf("xprimitive: cipher.NewGCM: %w", err)
	}
	return gcm, nil
}

// EncryptGCM encrypts plaintext with AES-256-GCM under key and iv,
// returning the ciphertext and the 16-byte authentication tag separately.
func EncryptGCM(key, iv, plaintext []byte) (ciphertext, tag []byte, err error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, nil, err
	}
	if len(iv) != gcmIVSize {
		return nil, nil, fmt.Errorf("xprimitive: iv must be %d bytes, got %d", gcmIVSize, len(iv))
	}
	sealed := gcm.Seal(nil, iv, plaintext, nil)
	n := len(sealed) - gcmTagSize
	ciphertext = sealed[:n]
	tag = sealed[n:]
	return ciphertext, tag, nil
}

// DecryptGCM decrypts ciphertext with AES-256-GCM under key, iv and tag.
// On tag mismatch it returns an error and the caller must not use the
// (unset) plaintext.
func DecryptGCM(key, iv, tag, ciphertext []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	if len(iv) != gcmIVSize {
		return nil, fmt.Errorf("xprimitive: iv must be %d bytes, got %d", gcmIVSize, len(iv))
	}
	if len(tag) != gcmTagSize {
		return nil, fmt.Errorf("xprimitive: tag must be %d bytes, got %d", gcmTagSize, len(tag))
	}
	sealed := make([]byte, 0, len(ciphertext)+len(tag))
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)
	plaintext, err := gcm.Open(nil, iv, sealed, nil)
	if err != nil {
		return nil, fmt.Errorf("xprimitive: gcm tag verification failed: %w", err)
	}
	return plaintext, nil
}
