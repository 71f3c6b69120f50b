package encoding

import (
	"encoding/base32"
	"strings"
)

// Alphabet is the ledger's textual-address alphabet: A-Z then 2-7,
// matching spec.md's 56-character address format (35 raw bytes encode
// to exactly 56 characters, so no padding is ever needed).
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"

var encoding32 = base32.NewEncoding(Alphabet).WithPadding(base32.NoPadding)

// Base32Encode encodes data using the ledger alphabet, no padding.
func Base32Encode(data []byte) string {
	return encoding32.EncodeToString(data)
}

// Base32Decode decodes s using the ledger alphabet. It rejects any
// character outside the alphabet.
func Base32Decode(s string) ([]byte, error) {
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(Alphabet, s[i]) < 0 {
			return nil, base32.CorruptInputError(i)
		}
	}
	return encoding32.DecodeString(s)
}
