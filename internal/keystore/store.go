package keystore

import (
	"bytes"
	"fmt"

	"github.com/hackbalam/ledgerwallet-go/internal/credential"
	"github.com/hackbalam/ledgerwallet-go/internal/encoding"
	"github.com/hackbalam/ledgerwallet-go/internal/walleterr"
	"github.com/hackbalam/ledgerwallet-go/internal/xprimitive"
)

// PBKDF2Iterations is the fixed iteration count the at-rest envelope
// uses to derive its AES key (spec.md §4.C5).
const PBKDF2Iterations = 10000

const (
	minPasswordLen = 8
	maxPasswordLen = 128
)

func validatePassword(password string) error {
	if len(password) < minPasswordLen || len(password) > maxPasswordLen {
		return fmt.Errorf("%w: password length must be %d..%d, got %d", walleterr.ErrInternal, minPasswordLen, maxPasswordLen, len(password))
	}
	return nil
}

// Save encrypts kp's seed under password and persists it to handle.
// On any failure it removes partial persistence rather than leaving a
// truncated or unencrypted blob behind.
func Save(kp *credential.Keypair, password string, handle Handle) (err error) {
	if verr := validatePassword(password); verr != nil {
		return verr
	}

	salt, err := xprimitive.RandomBytes(saltSize)
	if err != nil {
		return fmt.Errorf("%w: %v", walleterr.ErrInternal, err)
	}
	iv, err := xprimitive.RandomBytes(ivSize)
	if err != nil {
		return fmt.Errorf("%w: %v", walleterr.ErrInternal, err)
	}

	key, err := xprimitive.DeriveKey([]byte(password), salt, PBKDF2Iterations)
	if err != nil {
		return fmt.Errorf("%w: %v", walleterr.ErrInternal, err)
	}
	defer encoding.SecureZero(key)

	seed := kp.SeedBytes()
	defer encoding.SecureZero(seed[:])

	ciphertext, tag, err := xprimitive.EncryptGCM(key, iv, seed[:])
	if err != nil {
		return fmt.Errorf("%w: %v", walleterr.ErrInternal, err)
	}

	r := &record{}
	copy(r.salt[:], salt)
	copy(r.iv[:], iv)
	copy(r.ciphertext[:], ciphertext)
	copy(r.tag[:], tag)
	pub := kp.PublicKey()
	copy(r.publicKey[:], pub[:])

	blob := r.marshal()
	defer func() {
		if err != nil {
			_ = handle.Remove()
		}
	}()
	if err = handle.WriteAll(blob); err != nil {
		return err
	}
	return nil
}

// Load decrypts and returns the credential persisted at handle under
// password. All key material involved in the attempt — the derived
// key, and the decrypted seed on a failure path — is zeroized before
// return.
func Load(password string, handle Handle) (*credential.Keypair, error) {
	blob, err := handle.ReadAll()
	if err != nil {
		return nil, err
	}
	r, err := unmarshal(blob)
	if err != nil {
		return nil, err
	}

	key, err := xprimitive.DeriveKey([]byte(password), r.salt[:], PBKDF2Iterations)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", walleterr.ErrInternal, err)
	}
	defer encoding.SecureZero(key)

	seed, err := xprimitive.DecryptGCM(key, r.iv[:], r.tag[:], r.ciphertext[:])
	if err != nil {
		return nil, walleterr.ErrWrongPassword
	}
	defer encoding.SecureZero(seed)

	kp, err := credential.FromSeedBytes(seed)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", walleterr.ErrCorruptRecord, err)
	}
	pub := kp.PublicKey()
	if !bytes.Equal(pub[:], r.publicKey[:]) {
		kp.Destroy()
		return nil, fmt.Errorf("%w: decrypted seed does not match stored public key", walleterr.ErrCorruptRecord)
	}
	return kp, nil
}

// Delete removes the persisted keystore blob at handle. If
// ignoreNotPresent is true, a handle that does not exist is treated as
// success.
func Delete(handle Handle, ignoreNotPresent bool) error {
	if ignoreNotPresent && !handle.Exists() {
		return nil
	}
	return handle.Remove()
}
