// Package session composes the wallet's components into a single,
// explicitly-threaded value (spec.md §9: "Session" value, no hidden
// globals). Session owns the active credential; everything else
// borrows it for the duration of a call.
package session

import (
	"context"

	"github.com/hackbalam/ledgerwallet-go/internal/account"
	"github.com/hackbalam/ledgerwallet-go/internal/config"
	"github.com/hackbalam/ledgerwallet-go/internal/credential"
	"github.com/hackbalam/ledgerwallet-go/internal/keystore"
	"github.com/hackbalam/ledgerwallet-go/internal/ledger"
	"github.com/hackbalam/ledgerwallet-go/internal/payment"
)

// Session composes a credential with its ledger client, account cache,
// and payment orchestrator. Data flow is acyclic: Session owns
// {credential, client, cache, orchestrator}; orchestrator borrows
// client, cache, and credential for the duration of each call.
type Session struct {
	Config     *config.Config
	Credential *credential.Keypair
	Client     *ledger.Client
	Cache      *account.Cache
	Orchestrator *payment.Orchestrator
}

// New builds a Session around an existing credential and configuration.
func New(cfg *config.Config, cred *credential.Keypair) *Session {
	client := ledger.NewClient(cfg)
	cache := account.New(client, cred.PublicText())
	orch := payment.New(client, cache, cred, cfg.Passphrase())
	return &Session{
		Config:       cfg,
		Credential:   cred,
		Client:       client,
		Cache:        cache,
		Orchestrator: orch,
	}
}

// NewWallet creates a fresh credential and wraps it in a new Session.
func NewWallet(cfg *config.Config) (*Session, error) {
	cred, err := credential.Generate()
	if err != nil {
		return nil, err
	}
	return New(cfg, cred), nil
}

// FromSecret imports a credential from its textual secret address.
func FromSecret(cfg *config.Config, secret string) (*Session, error) {
	cred, err := credential.FromSecretText(secret)
	if err != nil {
		return nil, err
	}
	return New(cfg, cred), nil
}

// FromMnemonic imports a credential from its backup phrase.
func FromMnemonic(cfg *config.Config, phrase string) (*Session, error) {
	cred, err := credential.FromMnemonic(phrase)
	if err != nil {
		return nil, err
	}
	return New(cfg, cred), nil
}

// Load decrypts the credential persisted at cfg.KeystorePath and wraps
// it in a new Session.
func Load(cfg *config.Config, password string) (*Session, error) {
	handle := keystore.NewFileHandle(cfg.KeystorePath)
	cred, err := keystore.Load(password, handle)
	if err != nil {
		return nil, err
	}
	return New(cfg, cred), nil
}

// Save persists the session's credential to cfg.KeystorePath.
func (s *Session) Save(password string) error {
	handle := keystore.NewFileHandle(s.Config.KeystorePath)
	return keystore.Save(s.Credential, password, handle)
}

// DeleteKeystore removes any persisted credential at cfg.KeystorePath.
func (s *Session) DeleteKeystore(ignoreNotPresent bool) error {
	handle := keystore.NewFileHandle(s.Config.KeystorePath)
	return keystore.Delete(handle, ignoreNotPresent)
}

// FundTestnet requests friendbot funding for this session's credential.
func (s *Session) FundTestnet(ctx context.Context) error {
	return s.Client.FundTestnet(ctx, s.Credential.PublicText())
}

// GetInfo returns the current cached or freshly fetched account state.
func (s *Session) GetInfo(ctx context.Context) (ledger.AccountInfo, error) {
	return s.Cache.Get(ctx)
}

// GetBalance returns the native balance from GetInfo.
func (s *Session) GetBalance(ctx context.Context) (float64, error) {
	info, err := s.Cache.Get(ctx)
	if err != nil {
		return 0, err
	}
	return info.NativeBalance, nil
}

// Close destroys the session's credential, zeroizing its private seed.
// The session must not be used after Close.
func (s *Session) Close() {
	s.Credential.Destroy()
}
