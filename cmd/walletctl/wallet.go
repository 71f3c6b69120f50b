package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hackbalam/ledgerwallet-go/internal/session"
)

var (
	walletPassword string
	walletSecret   string
	walletMnemonic string
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Generate a new credential and save it to the keystore",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := session.NewWallet(cfg)
		if err != nil {
			return err
		}
		defer sess.Close()
		if err := sess.Save(walletPassword); err != nil {
			return err
		}
		fmt.Println("address:", sess.Credential.PublicText())
		fmt.Println("mnemonic:", sess.Credential.Mnemonic())
		return nil
	},
}

var fromSecretCmd = &cobra.Command{
	Use:   "from-secret",
	Short: "Import a credential from its textual secret address and save it",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := session.FromSecret(cfg, walletSecret)
		if err != nil {
			return err
		}
		defer sess.Close()
		if err := sess.Save(walletPassword); err != nil {
			return err
		}
		fmt.Println("address:", sess.Credential.PublicText())
		return nil
	},
}

var fromMnemonicCmd = &cobra.Command{
	Use:   "from-mnemonic",
	Short: "Import a credential from its backup phrase and save it",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := session.FromMnemonic(cfg, walletMnemonic)
		if err != nil {
			return err
		}
		defer sess.Close()
		if err := sess.Save(walletPassword); err != nil {
			return err
		}
		fmt.Println("address:", sess.Credential.PublicText())
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Remove the persisted keystore file",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := session.Load(cfg, walletPassword)
		if err != nil {
			return err
		}
		defer sess.Close()
		return sess.DeleteKeystore(false)
	},
}

func init() {
	rootCmd.AddCommand(newCmd, fromSecretCmd, fromMnemonicCmd, deleteCmd)

	for _, c := range []*cobra.Command{newCmd, fromSecretCmd, fromMnemonicCmd, deleteCmd} {
		c.Flags().StringVar(&walletPassword, "password", "", "keystore encryption password")
		c.MarkFlagRequired("password")
	}
	fromSecretCmd.Flags().StringVar(&walletSecret, "secret", "", "textual secret address (S...)")
	fromSecretCmd.MarkFlagRequired("secret")
	fromMnemonicCmd.Flags().StringVar(&walletMnemonic, "mnemonic", "", "backup phrase")
	fromMnemonicCmd.MarkFlagRequired("mnemonic")
}
