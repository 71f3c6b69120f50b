package wire

// Operation type tags (spec.md §4.C4/§9 — only PAYMENT is implemented).
const (
	OpPayment uint32 = 1
)

// Memo tags (spec.md §4.C4).
const (
	MemoNone uint32 = 0
	MemoText uint32 = 1
)

// MaxMemoTextBytes is the largest TEXT memo body spec.md allows.
const MaxMemoTextBytes = 28

// AppendPublicKey appends a muxed-account-shaped plain Ed25519 public
// key: type-tag(0) || 32-byte key — always 36 bytes.
func (b *Buffer) AppendPublicKey(pub [32]byte) {
	b.AppendUint32(0)
	b.AppendRaw(pub[:])
}

// AppendNativeAsset appends the native-asset tag (0x00000000). Other
// asset tags are reserved but unimplemented (spec.md §4.C4).
func (b *Buffer) AppendNativeAsset() {
	b.AppendUint32(0)
}

// AppendMemoNone appends an empty memo (tag 0, no body).
func (b *Buffer) AppendMemoNone() {
	b.AppendUint32(MemoNone)
}

// AppendMemoText appends a TEXT memo: tag(1) || variable string. text
// must be at most MaxMemoTextBytes bytes; callers validate this before
// calling (spec.md §4.C9).
func (b *Buffer) AppendMemoText(text string) {
	b.AppendUint32(MemoText)
	b.AppendVarString(text)
}

// AppendPaymentOpBody appends a payment operation body: muxed
// destination (36 B) || native asset (4 B) || atomic amount (8 B).
func (b *Buffer) AppendPaymentOpBody(dest [32]byte, atomicAmount int64) {
	b.AppendPublicKey(dest)
	b.AppendNativeAsset()
	b.AppendInt64(atomicAmount)
}
