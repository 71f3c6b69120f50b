package encoding

import "runtime"

// SecureZero overwrites every byte of buf with zero. runtime.KeepAlive
// pins buf past the final write so the compiler cannot prove the store
// dead and elide it.
func SecureZero(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
	runtime.KeepAlive(buf)
}
