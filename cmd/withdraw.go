package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bankterm/bankterm/internal/app"
	"github.com/bankterm/bankterm/internal/model"
	"github.com/bankterm/bankterm/internal/ui/prompts"
	"github.com/bankterm/bankterm/internal/utils"
)

type withdrawFlags struct {
	Amount string
}

type withdrawRunner struct {
	app   *app.App
	flags *withdrawFlags
	cmd   *cobra.Command
}

func NewWithdrawCmd() *cobra.Command {
	flags := &withdrawFlags{}

	cmd := &cobra.Command{
		Use:   "withdraw",
		Short: "Withdraw money from the account",
		Long: `Withdraw money from the current account.

	Examples:
	# Interactive mode
	bankterm withdraw

	# Quick mode with flags
	bankterm withdraw --amount 80`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &withdrawRunner{
				app:   application,
				flags: flags,
				cmd:   cmd,
			}
			return runner.Run()
		},
	}
	cmd.Flags().StringVarP(&flags.Amount, "amount", "a", "", "Withdrawal amount (e.g., 80 or 80.50)")

	return cmd
}

func (r *withdrawRunner) Run() error {
	ctx := r.cmd.Context()
	r.app.Dashboard.LoadAccount(ctx)

	if !r.cmd.Flags().Changed("amount") {
		return r.app.Dashboard.Withdraw(ctx)
	}

	if err := prompts.ValidateAmount(r.flags.Amount); err != nil {
		return err
	}
	amount, err := utils.ParseAmount(r.flags.Amount)
	if err != nil {
		return fmt.Errorf("invalid amount: %w", err)
	}

	return r.app.Dashboard.ApplyWithdrawal(ctx, model.TransactionResult{
		Type:          model.TypeWithdrawal,
		AccountNumber: currentAccountNumber(r.app),
		Amount:        amount,
	})
}
