package xprimitive

import (
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

// MinPBKDF2Iterations is the floor spec.md §4.C2 imposes on PBKDF2 calls;
// anything below it is rejected outright rather than silently weakened.
const MinPBKDF2Iterations = 1000

// DeriveKey derives a 32-byte key from password and salt using
// PBKDF2-HMAC-SHA256.
func DeriveKey(password, salt []byte, iterations int) ([]byte, error) {
	if iterations < MinPBKDF2Iterations {
		return nil, fmt.Errorf("xprimitive: pbkdf2 iterations %d below minimum %d", iterations, MinPBKDF2Iterations)
	}
	return pbkdf2.Key(password, salt, iterations, 32, sha256.New), nil
}
