// Package credential implements keypair lifecycle, textual address
// encoding, and signing (spec.md §4.C3).
package credential

import (
	"fmt"

	"github.com/hackbalam/ledgerwallet-go/internal/encoding"
	"github.com/hackbalam/ledgerwallet-go/internal/walleterr"
	"github.com/hackbalam/ledgerwallet-go/internal/xprimitive"
)

// Keypair holds a 32-byte Ed25519 seed and its derived public key. It is
// owned by the caller for the duration of its use and must be destroyed
// with Destroy when no longer needed.
type Keypair struct {
	seed     [32]byte
	public   [32]byte
	mnemonic string
}

// Generate draws a new 32-byte seed from the CSPRNG, derives its public
// key, and generates a best-effort 12-word backup phrase (spec.md §9:
// not interoperable with the standard BIP-39 derivation).
func Generate() (*Keypair, error) {
	seedBytes, err := xprimitive.RandomBytes(32)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", walleterr.ErrInternal, err)
	}
	defer encoding.SecureZero(seedBytes)

	kp, err := fromSeed(seedBytes)
	if err != nil {
		return nil, err
	}
	kp.mnemonic = generateMnemonic(seedBytes)
	return kp, nil
}

// FromSeedBytes builds a keypair directly from a 32-byte raw seed, for
// callers (such as the keystore) that already hold validated seed bytes
// rather than a textual secret address.
func FromSeedBytes(seed []byte) (*Keypair, error) {
	if len(seed) != 32 {
		return nil, fmt.Errorf("%w: seed must be 32 bytes, got %d", walleterr.ErrInvalidCredential, len(seed))
	}
	return fromSeed(seed)
}

func fromSeed(seed []byte) (*Keypair, error) {
	pub, err := xprimitive.Ed25519DerivePublic(seed)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", walleterr.ErrInternal, err)
	}
	kp := &Keypair{public: pub}
	copy(kp.seed[:], seed)
	return kp, nil
}

// FromSecretText imports a keypair from its "S..." textual secret
// address (spec.md §4.C3).
func FromSecretText(secret string) (*Keypair, error) {
	version, payload, err := decodeAddress(secret)
	if err != nil {
		return nil, err
	}
	if version != VersionSecretSeed {
		return nil, fmt.Errorf("%w: not a secret-seed address", walleterr.ErrInvalidCredential)
	}
	return fromSeed(payload)
}

// FromMnemonic derives a keypair from a backup phrase using the
// documented simplified derivation: a single SHA-256 pass over the
// whitespace-joined words (spec.md §9 open question, decision (a)).
func FromMnemonic(phrase string) (*Keypair, error) {
	seed := seedFromMnemonic(phrase)
	kp, err := fromSeed(seed[:])
	if err != nil {
		return nil, err
	}
	kp.mnemonic = phrase
	return kp, nil
}

// PublicKey returns a copy of the 32-byte raw public key.
func (k *Keypair) PublicKey() [32]byte { return k.public }

// SeedBytes returns a copy of the 32-byte raw private seed. Sensitive:
// callers must zeroize their copy when done (see encoding.SecureZero).
func (k *Keypair) SeedBytes() [32]byte { return k.seed }

// PublicText returns the "G..." textual public address.
func (k *Keypair) PublicText() string {
	return encodeAddress(VersionPublicKey, k.public[:])
}

// SecretText returns the "S..." textual secret address. Callers must
// treat the result as sensitive.
func (k *Keypair) SecretText() string {
	return encodeAddress(VersionSecretSeed, k.seed[:])
}

// Mnemonic returns the backup phrase if this keypair was created by
// Generate or FromMnemonic, or the empty string otherwise.
func (k *Keypair) Mnemonic() string { return k.mnemonic }

// Sign signs msg and returns a 64-byte Ed25519 signature.
func (k *Keypair) Sign(msg []byte) ([64]byte, error) {
	sig, err := xprimitive.Ed25519Sign(k.seed[:], k.public[:], msg)
	if err != nil {
		return [64]byte{}, fmt.Errorf("%w: %v", walleterr.ErrInternal, err)
	}
	return sig, nil
}

// Verify reports whether sig is a valid signature over msg by this
// keypair's public key.
func (k *Keypair) Verify(msg, sig []byte) bool {
	return xprimitive.Ed25519Verify(k.public[:], msg, sig)
}

// Destroy zeroizes the private seed and clears the mnemonic field. The
// mnemonic is held as an immutable string, so its original bytes are
// not overwritten; only a temporary copy is zeroed. The keypair must not
// be used after Destroy.
func (k *Keypair) Destroy() {
	encoding.SecureZero(k.seed[:])
	if k.mnemonic != "" {
		buf := []byte(k.mnemonic)
		encoding.SecureZero(buf)
		k.mnemonic = ""
	}
}
