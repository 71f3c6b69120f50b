// Package keystore implements the PBKDF2 -> AES-256-GCM at-rest
// envelope for a single credential (spec.md §4.C5, §6).
package keystore

import (
	"encoding/binary"
	"fmt"

	"github.com/hackbalam/ledgerwallet-go/internal/encoding"
	"github.com/hackbalam/ledgerwallet-go/internal/walleterr"
)

// RecordSize is the fixed on-disk size of a keystore blob (spec.md §6).
const RecordSize = 115

const (
	magic          uint32 = 0x53544C52 // "STLR"
	recordVersion  byte   = 1
	saltSize              = 16
	ivSize                = 12
	ciphertextSize         = 32
	tagSize               = 16
	pubKeySize            = 32
)

const (
	offMagic      = 0
	offVersion    = 4
	offSalt       = 5
	offIV         = offSalt + saltSize
	offCiphertext = offIV + ivSize
	offTag        = offCiphertext + ciphertextSize
	offPublicKey  = offTag + tagSize
	offChecksum   = offPublicKey + pubKeySize
)

// record is the decoded form of a keystore blob.
type record struct {
	salt       [saltSize]byte
	iv         [ivSize]byte
	ciphertext [ciphertextSize]byte
	tag        [tagSize]byte
	publicKey  [pubKeySize]byte
}

// marshal encodes r into the fixed 115-byte on-disk layout, computing
// the trailing CRC16-XModem checksum over everything preceding it.
func (r *record) marshal() []byte {
	buf := make([]byte, RecordSize)
	binary.BigEndian.PutUint32(buf[offMagic:], magic)
	buf[offVersion] = recordVersion
	copy(buf[offSalt:], r.salt[:])
	copy(buf[offIV:], r.iv[:])
	copy(buf[offCiphertext:], r.ciphertext[:])
	copy(buf[offTag:], r.tag[:])
	copy(buf[offPublicKey:], r.publicKey[:])
	crc := encoding.CRC16XModem(buf[:offChecksum])
	buf[offChecksum] = byte(crc)
	buf[offChecksum+1] = byte(crc >> 8)
	return buf
}

// unmarshal validates and decodes a 115-byte blob. It rejects a wrong
// size, magic, version, or checksum as ErrCorruptRecord.
func unmarshal(buf []byte) (*record, error) {
	if len(buf) != RecordSize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", walleterr.ErrCorruptRecord, RecordSize, len(buf))
	}
	if binary.BigEndian.Uint32(buf[offMagic:]) != magic {
		return nil, fmt.Errorf("%w: bad magic", walleterr.ErrCorruptRecord)
	}
	if buf[offVersion] != recordVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", walleterr.ErrCorruptRecord, buf[offVersion])
	}
	wantCRC := encoding.CRC16XModem(buf[:offChecksum])
	gotCRC := uint16(buf[offChecksum]) | uint16(buf[offChecksum+1])<<8
	if wantCRC != gotCRC {
		return nil, fmt.Errorf("%w: checksum mismatch", walleterr.ErrCorruptRecord)
	}

	r := &record{}
	copy(r.salt[:], buf[offSalt:offIV])
	copy(r.iv[:], buf[offIV:offCiphertext])
	copy(r.ciphertext[:], buf[offCiphertext:offTag])
	copy(r.tag[:], buf[offTag:offPublicKey])
	copy(r.publicKey[:], buf[offPublicKey:offChecksum])
	return r, nil
}
