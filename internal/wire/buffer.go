// Package wire implements the ledger's big-endian tagged binary
// serialization (spec.md §4.C4): an appendable buffer plus the domain
// shapes (public key, asset, memo, payment operation) built on top of
// it.
package wire

import "encoding/binary"

const (
	initialCapacity = 512
	growIncrement   = 512
)

// Buffer is an appendable big-endian byte buffer with amortized-O(1)
// growth in fixed increments.
type Buffer struct {
	buf []byte
}

// NewBuffer returns a Buffer pre-sized to the initial capacity.
func NewBuffer() *Buffer {
	return &Buffer{buf: make([]byte, 0, initialCapacity)}
}

// Reset empties the buffer without releasing its backing array.
func (b *Buffer) Reset() { b.buf = b.buf[:0] }

// Bytes returns the buffer's accumulated contents. The slice aliases
// the buffer's internal storage and is invalidated by the next Append*
// call.
func (b *Buffer) Bytes() []byte { return b.buf }

// Len returns the number of bytes written so far.
func (b *Buffer) Len() int { return len(b.buf) }

func (b *Buffer) grow(n int) {
	if cap(b.buf)-len(b.buf) >= n {
		return
	}
	need := len(b.buf) + n
	newCap := cap(b.buf)
	for newCap < need {
		newCap += growIncrement
	}
	grown := make([]byte, len(b.buf), newCap)
	copy(grown, b.buf)
	b.buf = grown
}

// AppendRaw appends data verbatim with no padding. It is the primitive
// higher-level composites use to concatenate already-framed fragments.
func (b *Buffer) AppendRaw(data []byte) {
	b.grow(len(data))
	b.buf = append(b.buf, data...)
}

// AppendUint32 appends a 4-byte big-endian uint32.
func (b *Buffer) AppendUint32(v uint32) {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], v)
	b.AppendRaw(tmp[:])
}

// AppendUint64 appends an 8-byte big-endian uint64.
func (b *Buffer) AppendUint64(v uint64) {
	var tmp [8]byte
	binary.BigEndian.PutUint64(tmp[:], v)
	b.AppendRaw(tmp[:])
}

// AppendInt64 appends an 8-byte big-endian int64.
func (b *Buffer) AppendInt64(v int64) {
	b.AppendUint64(uint64(v))
}

// AppendBool appends a 4-byte boolean: 0x00000000 or 0x00000001.
func (b *Buffer) AppendBool(v bool) {
	if v {
		b.AppendUint32(1)
	} else {
		b.AppendUint32(0)
	}
}

// AppendVarBytes appends length(u32) || data || zero-pad to a 4-byte
// multiple.
func (b *Buffer) AppendVarBytes(data []byte) {
	b.AppendUint32(uint32(len(data)))
	b.AppendRaw(data)
	if pad := (4 - len(data)%4) % 4; pad != 0 {
		var zeros [4]byte
		b.AppendRaw(zeros[:pad])
	}
}

// AppendVarString appends a variable string identically to
// AppendVarBytes (no NUL terminator).
func (b *Buffer) AppendVarString(s string) {
	b.AppendVarBytes([]byte(s))
}
