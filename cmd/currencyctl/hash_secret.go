package main

import (
	"fmt"

	"github.com/SscSPs/currency_toolkit/internal/utils"
	"github.com/spf13/cobra"
)

// hashSecretCmd prints a bcrypt hash suitable for ADMIN_SECRET_HASH
var hashSecretCmd = &cobra.Command{
	Use:   "hash-secret <secret>",
	Short: "Print the bcrypt hash of an admin secret",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hash, err := utils.HashPassword(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), hash)
		return nil
	},
}
