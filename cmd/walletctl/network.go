package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hackbalam/ledgerwallet-go/internal/session"
)

var networkPassword string

func loadSession() (*session.Session, error) {
	return session.Load(cfg, networkPassword)
}

var fundCmd = &cobra.Command{
	Use:   "fund",
	Short: "Request testnet funding for the keystore's credential",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := loadSession()
		if err != nil {
			return err
		}
		defer sess.Close()
		return sess.FundTestnet(context.Background())
	},
}

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Print the keystore credential's native balance",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := loadSession()
		if err != nil {
			return err
		}
		defer sess.Close()
		balance, err := sess.GetBalance(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(balance)
		return nil
	},
}

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print the keystore credential's account state",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := loadSession()
		if err != nil {
			return err
		}
		defer sess.Close()
		info, err := sess.GetInfo(context.Background())
		if err != nil {
			return err
		}
		fmt.Printf("account_id=%s sequence=%d exists=%v balance=%v\n",
			info.AccountID, info.Sequence, info.Exists, info.NativeBalance)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fundCmd, balanceCmd, infoCmd)
	for _, c := range []*cobra.Command{fundCmd, balanceCmd, infoCmd} {
		c.Flags().StringVar(&networkPassword, "password", "", "keystore encryption password")
		c.MarkFlagRequired("password")
	}
}
