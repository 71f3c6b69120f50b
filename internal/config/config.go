// Package config loads wallet configuration from environment / .env
// file into an explicit value — spec.md §9 calls for no hidden globals,
// so unlike the teacher's package-level vars, Load returns a *Config
// the caller threads through the session explicitly.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Network identifies which ledger network a session talks to.
type Network string

const (
	Testnet Network = "testnet"
	Mainnet Network = "mainnet"
)

// Default Horizon-style endpoints and signing passphrases (spec.md §6).
// The passphrases and the friendbot URL are not env-overridable: the
// passphrases are part of the signing contract, not a deployment knob.
// The Horizon base URL can be replaced through WALLET_HORIZON_URL.
const (
	TestnetHorizonURL  = "https://horizon-testnet.stellar.org"
	MainnetHorizonURL  = "https://horizon.stellar.org"
	FriendbotURL       = "https://friendbot.stellar.org"
	TestnetPassphrase  = "Test SDF Network ; September 2015"
	MainnetPassphrase  = "Public Global Stellar Network ; September 2015"
)

// Config holds all caller-tunable wallet settings.
type Config struct {
	Network      Network
	HorizonURL   string // overrides the network default when non-empty
	RequestTimeout time.Duration
	MaxRetries   int
	KeystorePath string
}

// Passphrase returns the network passphrase used to derive the signing
// hash's network_id (spec.md §3, §6).
func (c *Config) Passphrase() string {
	if c.Network == Mainnet {
		return MainnetPassphrase
	}
	return TestnetPassphrase
}

// BaseURL returns the effective Horizon-style base URL for the network,
// honoring an explicit override.
func (c *Config) BaseURL() string {
	if c.HorizonURL != "" {
		return c.HorizonURL
	}
	if c.Network == Mainnet {
		return MainnetHorizonURL
	}
	return TestnetHorizonURL
}

// Load reads .env (if present) then OS env vars into a Config, applying
// defaults for anything unset. It never returns an error: a missing
// .env file is normal and every field has a safe default.
func Load() *Config {
	_ = godotenv.Load()

	network := Network(strings.ToLower(getEnv("WALLET_NETWORK", string(Testnet))))
	if network != Mainnet {
		network = Testnet
	}

	return &Config{
		Network:        network,
		HorizonURL:     getEnv("WALLET_HORIZON_URL", ""),
		RequestTimeout: time.Duration(getEnvInt("WALLET_REQUEST_TIMEOUT_S", 30)) * time.Second,
		MaxRetries:     getEnvInt("WALLET_MAX_RETRIES", 3),
		KeystorePath:   getEnv("WALLET_KEYSTORE_PATH", "wallet.dat"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
