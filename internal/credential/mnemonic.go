package credential

import (
	"encoding/binary"
	"strings"

	"github.com/hackbalam/ledgerwallet-go/internal/xprimitive"
)

// wordlist is a best-effort 128-word backup-phrase vocabulary. It is
// intentionally truncated and is NOT the standard 2048-word BIP-39
// list — spec.md §9 documents this as observed, non-interoperable
// behavior rather than a defect.
var wordlist = [128]string{
	"abandon", "ability", "able", "about", "above", "absent", "absorb", "abstract",
	"absurd", "abuse", "access", "accident", "account", "accuse", "achieve", "acid",
	"acoustic", "acquire", "across", "act", "action", "actor", "actress", "actual",
	"adapt", "add", "addict", "address", "adjust", "admit", "adult", "advance",
	"advice", "aerobic", "affair", "afford", "afraid", "again", "age", "agent",
	"agree", "ahead", "aim", "air", "airport", "aisle", "alarm", "album",
	"alert", "alien", "all", "alley", "allow", "almost", "alone", "alpha",
	"already", "also", "alter", "always", "amateur", "amazing", "among", "amount",
	"amused", "analyst", "anchor", "ancient", "anger", "angle", "angry", "animal",
	"ankle", "announce", "annual", "another", "answer", "antenna", "antique", "anxiety",
	"any", "apart", "apology", "appear", "apple", "approve", "april", "arch",
	"arctic", "area", "arena", "argue", "arm", "armed", "armor", "army",
	"around", "arrange", "arrest", "arrive", "arrow", "art", "artefact", "artist",
	"artwork", "ask", "aspect", "assault", "asset", "assist", "assume", "asthma",
	"athlete", "atom", "attack", "attend", "attitude", "attract", "auction", "audit",
	"august", "aunt", "author", "auto", "autumn", "average", "avocado", "avoid",
}

// generateMnemonic derives a 12-word display phrase deterministically
// from seed: each word index comes from a big-endian uint16 taken from
// a distinct 2-byte window of seed, modulo the wordlist size. This is a
// display aid only — FromMnemonic does not attempt to recover seed from
// the phrase (see its own single-SHA-256-pass derivation).
func generateMnemonic(seed []byte) string {
	words := make([]string, 12)
	for i := 0; i < 12; i++ {
		off := (i * 2) % (len(seed) - 1)
		idx := binary.BigEndian.Uint16(seed[off:off+2]) % uint16(len(wordlist))
		words[i] = wordlist[idx]
	}
	return strings.Join(words, " ")
}

// seedFromMnemonic derives a 32-byte seed from a backup phrase using the
// documented simplified scheme: SHA-256 over the whitespace-normalized,
// space-joined words. This is NOT the standard BIP-39 PBKDF2-HMAC-
// SHA-512 derivation (spec.md §9).
func seedFromMnemonic(phrase string) [32]byte {
	words := strings.Fields(phrase)
	joined := strings.Join(words, " ")
	return xprimitive.SHA256([]byte(joined))
}
