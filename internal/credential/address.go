package credential

import (
	"fmt"

	"github.com/hackbalam/ledgerwallet-go/internal/encoding"
	"github.com/hackbalam/ledgerwallet-go/internal/walleterr"
)

// Version bytes for the two textual address kinds (spec.md §3).
const (
	VersionPublicKey byte = 0x30 // prefix 'G'
	VersionSecretSeed byte = 0x90 // prefix 'S'
)

const (
	addressPayloadSize  = 32
	addressChecksumSize = 2
	addressRawSize      = 1 + addressPayloadSize + addressChecksumSize // 35
	addressTextLen      = 56
)

// encodeAddress Base32-encodes version||payload||crc16-xmodem-le(version||payload).
func encodeAddress(version byte, payload []byte) string {
	raw := make([]byte, 0, addressRawSize)
	raw = append(raw, version)
	raw = append(raw, payload...)
	crc := encoding.CRC16XModem(raw)
	raw = append(raw, byte(crc), byte(crc>>8))
	return encoding.Base32Encode(raw)
}

// decodeAddress validates and decodes a 56-character textual address,
// returning its version byte and 32-byte payload.
func decodeAddress(s string) (version byte, payload []byte, err error) {
	if len(s) != addressTextLen {
		return 0, nil, fmt.Errorf("%w: expected %d characters, got %d", walleterr.ErrInvalidCredential, addressTextLen, len(s))
	}
	for i := 0; i < len(s); i++ {
		if !isAlphabetChar(s[i]) {
			return 0, nil, fmt.Errorf("%w: character %q outside address alphabet", walleterr.ErrInvalidCredential, s[i])
		}
	}
	raw, err := encoding.Base32Decode(s)
	if err != nil || len(raw) != addressRawSize {
		return 0, nil, fmt.Errorf("%w: base32 decode failed", walleterr.ErrInvalidCredential)
	}
	body, stored := raw[:addressRawSize-addressChecksumSize], raw[addressRawSize-addressChecksumSize:]
	want := encoding.CRC16XModem(body)
	got := uint16(stored[0]) | uint16(stored[1])<<8
	if want != got {
		return 0, nil, fmt.Errorf("%w: checksum mismatch", walleterr.ErrInvalidCredential)
	}
	return body[0], body[1:], nil
}

func isAlphabetChar(b byte) bool {
	for i := 0; i < len(encoding.Alphabet); i++ {
		if encoding.Alphabet[i] == b {
			return true
		}
	}
	return false
}

// DecodePublicAddress decodes a "G..." textual address into its 32-byte
// public key, rejecting anything that isn't a version-0x30 address.
func DecodePublicAddress(s string) ([32]byte, error) {
	var out [32]byte
	version, payload, err := decodeAddress(s)
	if err != nil {
		return out, err
	}
	if version != VersionPublicKey {
		return out, fmt.Errorf("%w: not a public-key address", walleterr.ErrInvalidCredential)
	}
	copy(out[:], payload)
	return out, nil
}
