// Package txbuilder assembles and signs value-transfer transactions
// (spec.md §4.C8): pre-image construction, the domain-separated signing
// hash, Ed25519 signature, envelope assembly, and Base64 packaging.
package txbuilder

import (
	"context"
	"fmt"

	"github.com/hackbalam/ledgerwallet-go/internal/credential"
	"github.com/hackbalam/ledgerwallet-go/internal/encoding"
	"github.com/hackbalam/ledgerwallet-go/internal/ledger"
	"github.com/hackbalam/ledgerwallet-go/internal/walleterr"
	"github.com/hackbalam/ledgerwallet-go/internal/wire"
	"github.com/hackbalam/ledgerwallet-go/internal/xprimitive"
)

// BaseFee is the hard-coded per-operation fee (spec.md §9: querying the
// current network base fee is left as an extension).
const BaseFee uint32 = 100

// envelopeTypeTx is the 4-byte big-endian tag the signing hash and the
// assembled envelope both carry for a transaction-type envelope.
const envelopeTypeTx uint32 = 2

// sequenceSource is the subset of account.Cache the builder depends on.
type sequenceSource interface {
	Get(ctx context.Context) (ledger.AccountInfo, error)
}

// Params are the caller-supplied inputs to Build.
type Params struct {
	Source      *credential.Keypair
	Destination string
	Amount      float64
	Memo        string
	Passphrase  string
	// Sequence overrides the sequence read from Build's sequences source when non-zero,
	// letting callers pin an exact wire sequence number.
	Sequence uint64
}

// Build assembles a signed, Base64-packaged transaction envelope for a
// single native-asset payment operation, following spec.md §4.C8's
// numbered steps in order.
func Build(ctx context.Context, p Params, sequences sequenceSource) (string, error) {
	seq := p.Sequence
	if seq == 0 {
		info, err := sequences.Get(ctx)
		if err != nil {
			return "", err
		}
		if !info.Exists {
			return "", walleterr.ErrNoSequence
		}
		seq = info.Sequence + 1
	}

	if len(p.Memo) > wire.MaxMemoTextBytes {
		return "", fmt.Errorf("%w: memo exceeds %d bytes", walleterr.ErrInvalidMemo, wire.MaxMemoTextBytes)
	}

	atomicAmount := encoding.DisplayToAtomic(p.Amount)

	dest, err := credential.DecodePublicAddress(p.Destination)
	if err != nil {
		return "", fmt.Errorf("%w: %v", walleterr.ErrInvalidDestination, err)
	}

	preImage := buildPreImage(p.Source.PublicKey(), seq, p.Memo, dest, atomicAmount)

	networkID := xprimitive.SHA256([]byte(p.Passphrase))
	signingHash := computeSigningHash(networkID, preImage)

	seed := p.Source.SeedBytes()
	defer encoding.SecureZero(seed[:])
	sig, err := xprimitive.Ed25519Sign(seed[:], sourcePubSlice(p), signingHash[:])
	if err != nil {
		return "", fmt.Errorf("%w: signing failed: %v", walleterr.ErrInternal, err)
	}

	envelope := assembleEnvelope(preImage, p.Source.PublicKey(), sig)
	return encoding.Base64Encode(envelope), nil
}

func sourcePubSlice(p Params) []byte {
	pub := p.Source.PublicKey()
	return pub[:]
}

// buildPreImage encodes the ordered field sequence spec.md §4.C8 step 4
// names into a fresh wire buffer.
func buildPreImage(sourcePub [32]byte, seq uint64, memo string, dest [32]byte, atomicAmount int64) []byte {
	b := wire.NewBuffer()
	b.AppendPublicKey(sourcePub)
	b.AppendUint32(BaseFee)
	b.AppendUint64(seq)
	b.AppendBool(false) // time-bounds present? always false
	if memo == "" {
		b.AppendMemoNone()
	} else {
		b.AppendMemoText(memo)
	}
	b.AppendUint32(1)    // operations_count
	b.AppendBool(false)  // op-source-override?
	b.AppendUint32(wire.OpPayment)
	b.AppendPaymentOpBody(dest, atomicAmount)
	b.AppendUint32(0) // ext

	out := make([]byte, b.Len())
	copy(out, b.Bytes())
	return out
}

// computeSigningHash returns SHA-256(network_id ‖ envelope_type_tx ‖
// pre_image), spec.md §3/§4.C8 step 6.
func computeSigningHash(networkID [32]byte, preImage []byte) [32]byte {
	b := wire.NewBuffer()
	b.AppendRaw(networkID[:])
	b.AppendUint32(envelopeTypeTx)
	b.AppendRaw(preImage)
	return xprimitive.SHA256(b.Bytes())
}

// assembleEnvelope builds u32(2) ‖ pre_image ‖ u32(1) ‖
// last-4-bytes-of-public ‖ bytes(signature) (spec.md §3/§4.C8 step 8).
func assembleEnvelope(preImage []byte, pub [32]byte, sig [64]byte) []byte {
	b := wire.NewBuffer()
	b.AppendUint32(envelopeTypeTx)
	b.AppendRaw(preImage)
	b.AppendUint32(1) // signatures_count
	b.AppendRaw(pub[28:])
	b.AppendVarBytes(sig[:])

	out := make([]byte, b.Len())
	copy(out, b.Bytes())
	return out
}
