// Package walleterr defines the closed error taxonomy the wallet surfaces
// to callers (spec.md §7). Validation failures are plain sentinels;
// transport and remote failures carry a detail string callers can
// display while still satisfying errors.Is against the sentinel.
package walleterr

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredential covers bad length, alphabet, version, or
	// checksum on a textual address or secret key.
	ErrInvalidCredential = errors.New("invalid credential")
	// ErrWrongPassword is returned when a keystore AES-GCM tag fails to
	// verify under the supplied password.
	ErrWrongPassword = errors.New("wrong password")
	// ErrCorruptRecord is returned when a keystore blob fails its magic,
	// version, size, or checksum check.
	ErrCorruptRecord = errors.New("corrupt record")
	// ErrInvalidDestination is returned when a payment destination fails
	// address validation or is not a public-key (G) address.
	ErrInvalidDestination = errors.New("invalid destination")
	// ErrInvalidAmount covers non-positive amounts, amounts over the
	// int64 atomic limit, and amounts exceeding balance minus fee.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInvalidMemo is returned when a memo exceeds 28 bytes.
	ErrInvalidMemo = errors.New("invalid memo")
	// ErrNoSequence is returned when an account is unknown or not yet
	// activated, so no sequence number is available.
	ErrNoSequence = errors.New("no sequence number available")
	// ErrCancelled is returned when cooperative cancellation stops a
	// retry loop before it would otherwise have completed.
	ErrCancelled = errors.New("cancelled")
	// ErrInternal covers allocation, parser, or primitive failures that
	// are not part of the caller-facing validation taxonomy.
	ErrInternal = errors.New("internal error")
)

// TransportError wraps a transport-layer failure: retries exhausted on
// network/TLS errors or 5xx responses. Detail carries the last
// response's JSON title or detail when there is one.
type TransportError struct {
	Detail string
	Cause  error
}

func (e *TransportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("transport error: %s: %v", e.Detail, e.Cause)
	}
	return fmt.Sprintf("transport error: %s", e.Detail)
}

func (e *TransportError) Unwrap() error { return e.Cause }

// Is reports true for errors.Is(err, ErrTransport) style sentinel
// checks, independent of Detail/Cause.
func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// ErrTransport is the sentinel TransportError values compare equal to
// via errors.Is.
var ErrTransport = errors.New("transport error")

// ResultCodes mirrors the structured failure codes a 4xx submission
// response can carry (spec.md §4.C6 error extraction).
type ResultCodes struct {
	Transaction string
	Operations  []string
}

// RemoteError wraps a non-2xx response the ledger terminally rejected
// (no retry), optionally carrying structured result codes.
type RemoteError struct {
	Title string
	Codes *ResultCodes
}

func (e *RemoteError) Error() string {
	if e.Codes == nil {
		return fmt.Sprintf("remote error: %s", e.Title)
	}
	msg := e.Title
	if e.Codes.Transaction != "" {
		msg += fmt.Sprintf(" [%s]", e.Codes.Transaction)
	}
	for i, code := range e.Codes.Operations {
		msg += fmt.Sprintf(" op[%d]:%s", i, code)
	}
	return fmt.Sprintf("remote error: %s", msg)
}

func (e *RemoteError) Is(target error) bool {
	return target == ErrRemote
}

// ErrRemote is the sentinel RemoteError values compare equal to via
// errors.Is.
var ErrRemote = errors.New("remote error")
