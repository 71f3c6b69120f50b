package txbuilder

import (
	"bytes"
	"context"
	"crypto/sha256"
	"testing"

	"github.com/hackbalam/ledgerwallet-go/internal/credential"
	"github.com/hackbalam/ledgerwallet-go/internal/encoding"
	"github.com/hackbalam/ledgerwallet-go/internal/ledger"
)

// TestSigningHashTestVector reproduces the concrete worked example:
// networkID = SHA-256("Test SDF Network ; September 2015"), pre_image
// is four 0xFF bytes, and the signing hash is
// SHA-256(networkID || u32(2) || pre_image).
func TestSigningHashTestVector(t *testing.T) {
	passphrase := "Test SDF Network ; September 2015"
	networkID := sha256.Sum256([]byte(passphrase))
	preImage := []byte{0xFF, 0xFF, 0xFF, 0xFF}

	got := computeSigningHash(networkID, preImage)

	var want bytes.Buffer
	want.Write(networkID[:])
	want.Write([]byte{0, 0, 0, 2})
	want.Write(preImage)
	wantHash := sha256.Sum256(want.Bytes())

	if got != wantHash {
		t.Errorf("computeSigningHash = %x, want %x", got, wantHash)
	}
}

type stubSequences struct {
	info ledger.AccountInfo
	err  error
}

func (s *stubSequences) Get(ctx context.Context) (ledger.AccountInfo, error) {
	return s.info, s.err
}

func testKeypair(t *testing.T) *credential.Keypair {
	t.Helper()
	kp, err := credential.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	t.Cleanup(kp.Destroy)
	return kp
}

func TestBuildIsDeterministicGivenFixedSequence(t *testing.T) {
	source := testKeypair(t)
	dest := testKeypair(t)
	seqs := &stubSequences{}

	params := Params{
		Source:      source,
		Destination: dest.PublicText(),
		Amount:      12.5,
		Memo:        "invoice 42",
		Passphrase:  "Test SDF Network ; September 2015",
		Sequence:    100,
	}

	a, err := Build(context.Background(), params, seqs)
	if err != nil {
		t.Fatalf("Build (first): %v", err)
	}
	b, err := Build(context.Background(), params, seqs)
	if err != nil {
		t.Fatalf("Build (second): %v", err)
	}

	// Ed25519 signatures are deterministic for a given key and message,
	// so two Build calls with identical inputs produce byte-identical
	// envelopes.
	if a != b {
		t.Error("Build is not deterministic for identical inputs")
	}
}

func TestBuildAutoFetchesSequenceWhenUnset(t *testing.T) {
	source := testKeypair(t)
	dest := testKeypair(t)
	seqs := &stubSequences{info: ledger.AccountInfo{Exists: true, Sequence: 41}}

	envelope, err := Build(context.Background(), Params{
		Source:      source,
		Destination: dest.PublicText(),
		Amount:      1,
		Passphrase:  "Test SDF Network ; September 2015",
	}, seqs)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if envelope == "" {
		t.Error("Build returned an empty envelope")
	}
}

func TestBuildFailsWithoutSequenceWhenAccountMissing(t *testing.T) {
	source := testKeypair(t)
	dest := testKeypair(t)
	seqs := &stubSequences{info: ledger.AccountInfo{Exists: false}}

	_, err := Build(context.Background(), Params{
		Source:      source,
		Destination: dest.PublicText(),
		Amount:      1,
		Passphrase:  "Test SDF Network ; September 2015",
	}, seqs)
	if err == nil {
		t.Error("expected error when the account has no known sequence")
	}
}

func TestBuildRejectsOversizedMemo(t *testing.T) {
	source := testKeypair(t)
	dest := testKeypair(t)
	seqs := &stubSequences{}

	_, err := Build(context.Background(), Params{
		Source:      source,
		Destination: dest.PublicText(),
		Amount:      1,
		Memo:        string(make([]byte, 29)),
		Passphrase:  "Test SDF Network ; September 2015",
		Sequence:    1,
	}, seqs)
	if err == nil {
		t.Error("expected error for a memo exceeding 28 bytes")
	}
}

func TestBuildRejectsInvalidDestination(t *testing.T) {
	source := testKeypair(t)
	seqs := &stubSequences{}

	_, err := Build(context.Background(), Params{
		Source:      source,
		Destination: "not-a-valid-address",
		Amount:      1,
		Passphrase:  "Test SDF Network ; September 2015",
		Sequence:    1,
	}, seqs)
	if err == nil {
		t.Error("expected error for an invalid destination address")
	}
}

func TestBuildProducesValidSignature(t *testing.T) {
	source := testKeypair(t)
	dest := testKeypair(t)
	seqs := &stubSequences{}

	envelopeB64, err := Build(context.Background(), Params{
		Source:      source,
		Destination: dest.PublicText(),
		Amount:      1,
		Passphrase:  "Test SDF Network ; September 2015",
		Sequence:    1,
	}, seqs)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	envelope, err := encoding.Base64Decode(envelopeB64)
	if err != nil {
		t.Fatalf("Base64Decode: %v", err)
	}
	if len(envelope) == 0 {
		t.Fatal("decoded envelope is empty")
	}

	// envelope = u32(2) || pre_image || u32(1) || hint(4) || u32(64) || signature(64)
	const trailer = 4 + 4 + 4 + 64
	if len(envelope) <= 4+trailer {
		t.Fatalf("decoded envelope is %d bytes, too short to hold a signature", len(envelope))
	}
	preImage := envelope[4 : len(envelope)-trailer]
	sig := envelope[len(envelope)-64:]
	signingHash := computeSigningHash(sha256.Sum256([]byte("Test SDF Network ; September 2015")), preImage)
	if !source.Verify(signingHash[:], sig) {
		t.Error("envelope signature does not verify against the source public key")
	}
}
