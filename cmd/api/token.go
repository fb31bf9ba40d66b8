package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/port/identity"
	identityadapter "github.com/amirhossein-jamali/wallet-ledger/internal/infrastructure/adapter/identity"
)

func tokenCmd() *cobra.Command {
	var ttl time.Duration

	cmd := &cobra.Command{
		Use:   "token [subject]",
		Short: "Mint an admin bearer token for the administrative endpoints",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			provider := identityadapter.NewJWTProvider(a.cfg.Auth.JWTSecret, a.cfg.Auth.Issuer, a.timeProvider)
			token, err := provider.IssueToken(args[0], identity.RoleAdmin, ttl)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().DurationVar(&ttl, "ttl", identityadapter.DefaultTokenTTL, "token lifetime")

	return cmd
}
