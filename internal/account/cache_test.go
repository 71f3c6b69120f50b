package account

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hackbalam/ledgerwallet-go/internal/ledger"
)

type stubFetcher struct {
	calls int
	info  ledger.AccountInfo
	err   error
}

func (s *stubFetcher) GetAccount(ctx context.Context, accountID string) (ledger.AccountInfo, error) {
	s.calls++
	if s.err != nil {
		return ledger.AccountInfo{}, s.err
	}
	return s.info, nil
}

func TestGetFetchesOnFirstCall(t *testing.T) {
	stub := &stubFetcher{info: ledger.AccountInfo{AccountID: "GABC", Exists: true, Sequence: 1}}
	c := New(stub, "GABC")

	info, err := c.Get(context.Background())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if info.Sequence != 1 {
		t.Errorf("Sequence = %d, want 1", info.Sequence)
	}
	if stub.calls != 1 {
		t.Errorf("calls = %d, want 1", stub.calls)
	}
}

func TestGetServesFreshEntryWithoutRefetch(t *testing.T) {
	stub := &stubFetcher{info: ledger.AccountInfo{AccountID: "GABC", Exists: true}}
	c := New(stub, "GABC")

	if _, err := c.Get(context.Background()); err != nil {
		t.Fatalf("first Get: %v", err)
	}
	if _, err := c.Get(context.Background()); err != nil {
		t.Fatalf("second Get: %v", err)
	}
	if stub.calls != 1 {
		t.Errorf("calls = %d, want 1 (second Get should be served from cache)", stub.calls)
	}
}

func TestGetRefetchesAfterStale(t *testing.T) {
	stub := &stubFetcher{info: ledger.AccountInfo{AccountID: "GABC", Exists: true}}
	c := New(stub, "GABC")

	if _, err := c.Get(context.Background()); err != nil {
		t.Fatalf("first Get: %v", err)
	}
	// Force staleness directly rather than sleeping freshWindow in a test.
	c.fetchedAt = time.Now().Add(-freshWindow - time.Second)

	if _, err := c.Get(context.Background()); err != nil {
		t.Fatalf("second Get: %v", err)
	}
	if stub.calls != 2 {
		t.Errorf("calls = %d, want 2 (stale entry should trigger a refetch)", stub.calls)
	}
}

func TestInvalidateForcesRefetch(t *testing.T) {
	stub := &stubFetcher{info: ledger.AccountInfo{AccountID: "GABC", Exists: true}}
	c := New(stub, "GABC")

	if _, err := c.Get(context.Background()); err != nil {
		t.Fatalf("first Get: %v", err)
	}
	c.Invalidate()
	if _, err := c.Get(context.Background()); err != nil {
		t.Fatalf("second Get: %v", err)
	}
	if stub.calls != 2 {
		t.Errorf("calls = %d, want 2 (Invalidate should force a refetch)", stub.calls)
	}
}

func TestGetErrorLeavesCacheUsable(t *testing.T) {
	stub := &stubFetcher{info: ledger.AccountInfo{AccountID: "GABC", Exists: true, Sequence: 5}}
	c := New(stub, "GABC")

	if _, err := c.Get(context.Background()); err != nil {
		t.Fatalf("first Get: %v", err)
	}
	c.fetchedAt = time.Now().Add(-freshWindow - time.Second)
	stub.err = errors.New("transient failure")

	if _, err := c.Get(context.Background()); err == nil {
		t.Fatal("expected error from stale refetch")
	}

	// A subsequent successful fetch should work normally; the cache's
	// own state was not left corrupted by the failed attempt.
	stub.err = nil
	c.fetchedAt = time.Now().Add(-freshWindow - time.Second)
	info, err := c.Get(context.Background())
	if err != nil {
		t.Fatalf("recovery Get: %v", err)
	}
	if info.Sequence != 5 {
		t.Errorf("Sequence = %d, want 5", info.Sequence)
	}
}

func TestIsFreshGuardsClockWrap(t *testing.T) {
	c := &Cache{hasData: true, fetchedAt: time.Now()}
	past := c.fetchedAt.Add(-time.Minute)
	if c.isFresh(past) {
		t.Error("isFresh should treat now-before-fetchedAt as stale")
	}
}
