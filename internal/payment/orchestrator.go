// Package payment implements the orchestrator that drives a single
// value transfer end to end (spec.md §4.C9): validate, confirm funding,
// build and sign the envelope, submit it, parse the reply, and refresh
// the account cache.
package payment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/hackbalam/ledgerwallet-go/internal/account"
	"github.com/hackbalam/ledgerwallet-go/internal/credential"
	"github.com/hackbalam/ledgerwallet-go/internal/encoding"
	"github.com/hackbalam/ledgerwallet-go/internal/ledger"
	"github.com/hackbalam/ledgerwallet-go/internal/txbuilder"
	"github.com/hackbalam/ledgerwallet-go/internal/walleterr"
	"github.com/hackbalam/ledgerwallet-go/internal/walletlog"
)

// feeEpsilon is the fixed per-operation fee expressed in display units,
// matching txbuilder.BaseFee atomic units (spec.md §4.C9).
var feeEpsilon = float64(txbuilder.BaseFee) / encoding.AtomicScale

// Status is the tri-state outcome of a status query (spec.md §4.C9).
type Status string

const (
	StatusSuccess Status = "SUCCESS"
	StatusFailed  Status = "FAILED"
	StatusUnknown Status = "UNKNOWN"
)

// Result is the outcome of a single send.
type Result struct {
	Success bool
	Hash    string
	Ledger  uint32
	Title   string // set when Success is false and the remote supplied one
}

// submitter is the subset of ledger.Client the orchestrator depends on.
type submitter interface {
	SubmitTransaction(ctx context.Context, envelopeBase64, idempotencyKey string) (ledger.SubmitResult, error)
	GetTransaction(ctx context.Context, hash string) (ledger.TransactionResult, error)
	GetPayments(ctx context.Context, accountID, cursor string, limit int) ([]ledger.Payment, error)
}

// Orchestrator composes a signer, a ledger client, and that signer's
// account cache to drive sends and status/history queries.
type Orchestrator struct {
	client     submitter
	cache      *account.Cache
	signer     *credential.Keypair
	passphrase string

	lastTxHash string
	logger     *slog.Logger
}

// New returns an Orchestrator for signer, talking to client and
// reading/refreshing through cache. passphrase selects the signing
// hash's network_id (spec.md §3).
func New(client submitter, cache *account.Cache, signer *credential.Keypair, passphrase string) *Orchestrator {
	return &Orchestrator{
		client:     client,
		cache:      cache,
		signer:     signer,
		passphrase: passphrase,
		logger:     walletlog.For("payment"),
	}
}

// Send validates destination, amount, and memo, confirms the source
// account can cover amount plus the fixed fee, builds and signs the
// envelope, and submits it exactly once (spec.md invariant 10).
func (o *Orchestrator) Send(ctx context.Context, destination string, amount float64, memo string) (Result, error) {
	if _, err := credential.DecodePublicAddress(destination); err != nil {
		return Result{}, fmt.Errorf("%w: %v", walleterr.ErrInvalidDestination, err)
	}
	if amount <= 0 || amount > encoding.MaxDisplayAmount {
		return Result{}, fmt.Errorf("%w: amount %v out of range", walleterr.ErrInvalidAmount, amount)
	}
	if len(memo) > 28 {
		return Result{}, fmt.Errorf("%w: memo exceeds 28 bytes", walleterr.ErrInvalidMemo)
	}

	info, err := o.cache.Get(ctx)
	if err != nil {
		return Result{}, err
	}
	if !info.Exists {
		return Result{}, walleterr.ErrNoSequence
	}
	if info.NativeBalance < amount+feeEpsilon {
		return Result{}, fmt.Errorf("%w: balance %v insufficient for amount %v plus fee", walleterr.ErrInvalidAmount, info.NativeBalance, amount)
	}

	envelope, err := txbuilder.Build(ctx, txbuilder.Params{
		Source:      o.signer,
		Destination: destination,
		Amount:      amount,
		Memo:        memo,
		Passphrase:  o.passphrase,
		Sequence:    info.Sequence + 1,
	}, o.cache)
	if err != nil {
		return Result{}, err
	}

	idempotencyKey := uuid.NewString()
	submitResult, err := o.client.SubmitTransaction(ctx, envelope, idempotencyKey)
	if err != nil {
		var remote *walleterr.RemoteError
		if errors.As(err, &remote) {
			o.logger.Warn("submission rejected", "title", remote.Title)
			return Result{Success: false, Title: remote.Title}, nil
		}
		return Result{}, err
	}

	if submitResult.Hash == "" {
		o.logger.Warn("submission reply missing hash", "title", submitResult.Title)
		return Result{Success: false, Title: submitResult.Title}, nil
	}

	o.lastTxHash = submitResult.Hash
	o.cache.Invalidate()
	o.logger.Info("payment submitted", "hash", submitResult.Hash, "ledger", submitResult.Ledger)
	return Result{Success: true, Hash: submitResult.Hash, Ledger: submitResult.Ledger}, nil
}

// LastStatus reports the status of the most recently sent transaction,
// or StatusUnknown if none has been sent yet this session.
func (o *Orchestrator) LastStatus(ctx context.Context) Status {
	if o.lastTxHash == "" {
		return StatusUnknown
	}
	return o.statusOf(ctx, o.lastTxHash)
}

// StatusOf queries the ledger for hash's outcome.
func (o *Orchestrator) StatusOf(ctx context.Context, hash string) Status {
	return o.statusOf(ctx, hash)
}

func (o *Orchestrator) statusOf(ctx context.Context, hash string) Status {
	result, err := o.client.GetTransaction(ctx, hash)
	if err != nil {
		return StatusUnknown
	}
	if result.Successful {
		return StatusSuccess
	}
	return StatusFailed
}

// History returns up to limit of the signer's most recent payments,
// most recent first (the ledger-history supplement; spec.md §6's
// pay_history façade entry).
func (o *Orchestrator) History(ctx context.Context, limit int) ([]ledger.Payment, error) {
	return o.client.GetPayments(ctx, o.signer.PublicText(), "", limit)
}
