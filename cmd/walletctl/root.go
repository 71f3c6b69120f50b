package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"hermannm.dev/devlog"

	"github.com/hackbalam/ledgerwallet-go/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "walletctl",
	Short: "Construct, sign, and submit ledger value transfers",
}

// Execute runs the root command. Called once by main.main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "walletctl:", err)
		os.Exit(1)
	}
}

func init() {
	slog.SetDefault(slog.New(devlog.NewHandler(os.Stderr, nil)))
	cobra.OnInitialize(func() {
		cfg = config.Load()
	})
}
