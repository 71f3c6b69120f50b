package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hackbalam/ledgerwallet-go/internal/session"
)

var (
	payPassword    string
	payDestination string
	payAmount      float64
	payMemo        string
	payHash        string
	payLimit       int
)

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Sign and submit a native-asset payment",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := session.Load(cfg, payPassword)
		if err != nil {
			return err
		}
		defer sess.Close()
		result, err := sess.Orchestrator.Send(context.Background(), payDestination, payAmount, payMemo)
		if err != nil {
			return err
		}
		if !result.Success {
			return fmt.Errorf("payment rejected: %s", result.Title)
		}
		fmt.Printf("hash=%s ledger=%d\n", result.Hash, result.Ledger)
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Query a transaction's outcome by hash",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := session.Load(cfg, payPassword)
		if err != nil {
			return err
		}
		defer sess.Close()
		status := sess.Orchestrator.StatusOf(context.Background(), payHash)
		fmt.Println(status)
		return nil
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List the credential's most recent payments",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := session.Load(cfg, payPassword)
		if err != nil {
			return err
		}
		defer sess.Close()
		payments, err := sess.Orchestrator.History(context.Background(), payLimit)
		if err != nil {
			return err
		}
		for _, p := range payments {
			fmt.Printf("%s %s->%s %s %s\n", p.ID, p.From, p.To, p.Amount, p.CreatedAt)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sendCmd, statusCmd, historyCmd)

	sendCmd.Flags().StringVar(&payPassword, "password", "", "keystore encryption password")
	sendCmd.Flags().StringVar(&payDestination, "to", "", "destination public address (G...)")
	sendCmd.Flags().Float64Var(&payAmount, "amount", 0, "display amount to send")
	sendCmd.Flags().StringVar(&payMemo, "memo", "", "optional text memo (max 28 bytes)")
	sendCmd.MarkFlagRequired("password")
	sendCmd.MarkFlagRequired("to")
	sendCmd.MarkFlagRequired("amount")

	statusCmd.Flags().StringVar(&payPassword, "password", "", "keystore encryption password")
	statusCmd.Flags().StringVar(&payHash, "hash", "", "transaction hash to query")
	statusCmd.MarkFlagRequired("password")
	statusCmd.MarkFlagRequired("hash")

	historyCmd.Flags().StringVar(&payPassword, "password", "", "keystore encryption password")
	historyCmd.Flags().IntVar(&payLimit, "limit", 10, "maximum number of payments to list")
	historyCmd.MarkFlagRequired("password")
}
