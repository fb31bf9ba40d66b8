package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/wallet-ledger/internal/domain/usecase/wallet"
)

func userCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage wallet owners",
	}
	cmd.AddCommand(userCreateCmd())
	return cmd
}

func userCreateCmd() *cobra.Command {
	var (
		email   string
		balance string
	)

	cmd := &cobra.Command{
		Use:   "create [user-id]",
		Short: "Register a wallet owner",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			initial := decimal.Zero
			if balance != "" {
				parsed, err := entity.ParseAmount(balance)
				if err != nil {
					return err
				}
				initial = parsed
			}

			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			if err := a.connect(cmd.Context()); err != nil {
				return err
			}

			wallets := wallet.NewWalletUseCase(a.db.CreateUnitOfWork(), a.timeProvider, a.logger)
			user, err := wallets.RegisterUser(cmd.Context(), args[0], email, initial)
			if err != nil {
				return fmt.Errorf("failed to create user: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created user %s with balance %s\n", user.ID, user.GetBalance())
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "contact email used to match card payments")
	cmd.Flags().StringVarP(&balance, "balance", "b", "", "initial balance in major units")

	return cmd
}
