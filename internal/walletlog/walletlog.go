// Package walletlog wires log/slog to a devlog handler so every log line
// carries a component tag and a sub-second timestamp, and never a
// sensitive field (seed, password, derived key — spec.md §7).
package walletlog

import (
	"log/slog"
	"os"
	"sync"

	"hermannm.dev/devlog"
)

var (
	once    sync.Once
	handler slog.Handler
)

func defaultHandler() slog.Handler {
	once.Do(func() {
		handler = devlog.NewHandler(os.Stderr, nil)
	})
	return handler
}

// For returns a logger with a "component" attribute pre-bound, mirroring
// the teacher's "[component] message" bracket-tag convention but as a
// structured attribute instead of a string prefix.
func For(component string) *slog.Logger {
	return slog.New(defaultHandler()).With("component", component)
}
