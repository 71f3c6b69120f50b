// Package ledger implements the retrying HTTPS client that talks to the
// remote ledger API (spec.md §4.C6): account lookups, payment history,
// transaction submission, and transaction status, each wrapped in the
// shared exponential-backoff retry policy.
package ledger

// AccountInfo is the remote account state the ledger client can fetch.
// Exists=false is a normal, cacheable state distinct from a transport
// failure (spec.md §3, §4.C7).
type AccountInfo struct {
	AccountID      string
	Sequence       uint64
	SubentryCount  uint32
	NativeBalance  float64
	Exists         bool
	LastError      string
}

// Payment is a single entry from an account's payment history.
type Payment struct {
	ID        string
	Type      string
	From      string
	To        string
	Amount    string
	AssetType string
	CreatedAt string
}

// TransactionResult is the outcome of fetching a submitted or historical
// transaction by hash.
type TransactionResult struct {
	Hash       string
	Ledger     uint32
	Successful bool
}

// SubmitResult is the parsed reply from a POST /transactions call.
type SubmitResult struct {
	Hash       string
	Ledger     uint32
	Successful bool
	Title      string // set when the submission failed
}
