// Package account implements the short-lived account-state cache
// (spec.md §4.C7): a time-bounded read-through cache in front of the
// ledger client's account lookups, so repeated balance/sequence reads
// within a payment flow do not each cost a round trip.
package account

import (
	"context"
	"sync"
	"time"

	"github.com/hackbalam/ledgerwallet-go/internal/ledger"
)

// freshWindow is how long a cached entry is served without a refetch.
const freshWindow = 10 * time.Second

// fetcher is the subset of ledger.Client the cache depends on, so
// tests can substitute a stub.
type fetcher interface {
	GetAccount(ctx context.Context, accountID string) (ledger.AccountInfo, error)
}

// Cache holds the single most recently fetched AccountInfo for one
// account ID, refreshing it transparently once it goes stale.
type Cache struct {
	client    fetcher
	accountID string

	mu       sync.Mutex
	info     ledger.AccountInfo
	fetchedAt time.Time
	hasData  bool
}

// New returns a Cache that fetches accountID through client.
func New(client fetcher, accountID string) *Cache {
	return &Cache{client: client, accountID: accountID}
}

// isFresh reports whether the cached entry is still within the fresh
// window. It guards against a monotonic clock that has not advanced
// (now before fetchedAt) by treating that as stale too.
func (c *Cache) isFresh(now time.Time) bool {
	if !c.hasData {
		return false
	}
	if now.Before(c.fetchedAt) {
		return false
	}
	return now.Sub(c.fetchedAt) < freshWindow
}

// Get returns the cached AccountInfo, refreshing it from the ledger
// client first if it is missing or stale. A fetch error leaves any
// existing cached entry untouched and is returned to the caller.
func (c *Cache) Get(ctx context.Context) (ledger.AccountInfo, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.isFresh(time.Now()) {
		return c.info, nil
	}

	info, err := c.client.GetAccount(ctx, c.accountID)
	if err != nil {
		return ledger.AccountInfo{}, err
	}

	c.info = info
	c.fetchedAt = time.Now()
	c.hasData = true
	return c.info, nil
}

// Invalidate drops the cached entry so the next Get always refetches.
// Callers invoke this after a successful submission, since the
// account's sequence number and balance have just changed remotely.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hasData = false
}
