package xprimitive

import (
	"fmt"

	"github.com/cloudflare/circl/sign/ed25519"
)

// Ed25519DerivePublic derives the 32-byte public key for a 32-byte seed.
func Ed25519DerivePublic(seed []byte) ([32]byte, error) {
	if len(seed) != ed25519.SeedSize {
		return [32]byte{}, fmt.Errorf("xprimitive: seed must be %d bytes, got %d", ed25519.SeedSize, len(seed))
	}
	priv := ed25519.NewKeyFromSeed(seed)
	pub := priv.Public().(ed25519.PublicKey)
	var out [32]byte
	copy(out[:], pub)
	return out, nil
}

// Ed25519Sign signs msg with the keypair derived from seed, returning a
// 64-byte signature. pub is the caller's already-derived public key and
// is used only to assemble the internal circl private key representation
// (seed || public).
func Ed25519Sign(seed, pub, msg []byte) ([64]byte, error) {
	if len(seed) != ed25519.SeedSize {
		return [64]byte{}, fmt.Errorf("xprimitive: seed must be %d bytes, got %d", ed25519.SeedSize, len(seed))
	}
	if len(pub) != ed25519.PublicKeySize {
		return [64]byte{}, fmt.Errorf("xprimitive: public key must be %d bytes, got %d", ed25519.PublicKeySize, len(pub))
	}
	priv := make(ed25519.PrivateKey, ed25519.PrivateKeySize)
	copy(priv[:ed25519.SeedSize], seed)
	copy(priv[ed25519.SeedSize:], pub)

	sig := ed25519.Sign(priv, msg)
	var out [64]byte
	copy(out[:], sig)
	return out, nil
}

// Ed25519Verify reports whether sig is a valid signature over msg by pub.
func Ed25519Verify(pub, msg, sig []byte) bool {
	if len(pub) != ed25519.PublicKeySize || len(sig) != ed25519.SignatureSize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(pub), msg, sig)
}
