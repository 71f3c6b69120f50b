package xprimitive

import (
	"crypto/rand"
	"fmt"
)

// RandomBytes draws n cryptographically secure random bytes. On a real
// device this reads from the hardware RNG; crypto/rand.Reader is the
// portable interface a concrete provider plugs into.
func RandomBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("xprimitive: random read: %w", err)
	}
	return buf, nil
}
