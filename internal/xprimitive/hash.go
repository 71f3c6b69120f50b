// Package xprimitive contracts the cryptographic primitives the wallet
// treats as trusted building blocks: SHA-256, Ed25519, AES-256-GCM,
// PBKDF2-HMAC-SHA256, and a CSPRNG. Callers above this package never
// touch crypto/* or a third-party crypto package directly.
package xprimitive

import "crypto/sha256"

// SHA256 returns the SHA-256 digest of data.
func SHA256(data []byte) [32]byte {
	return sha256.Sum256(data)
}

// SHA256Concat returns the SHA-256 digest of a concatenated with b,
// without allocating an intermediate joined slice.
func SHA256Concat(a, b []byte) [32]byte {
	h := sha256.New()
	h.Write(a)
	h.Write(b)
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}
