package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bankterm/bankterm/internal/app"
	"github.com/bankterm/bankterm/internal/constants"
	"github.com/bankterm/bankterm/internal/model"
	"github.com/bankterm/bankterm/internal/ui/prompts"
	"github.com/bankterm/bankterm/internal/utils"
)

type depositFlags struct {
	Amount  string
	Savings bool
}

type depositRunner struct {
	app   *app.App
	flags *depositFlags
	cmd   *cobra.Command
}

func NewDepositCmd() *cobra.Command {
	flags := &depositFlags{}

	cmd := &cobra.Command{
		Use:   "deposit",
		Short: "Deposit money into the account",
		Long: `Deposit money into the current account or the savings account.

	Examples:
	# Interactive mode
	bankterm deposit

	# Quick mode with flags
	bankterm deposit --amount 150.50

	# Deposit into the savings account
	bankterm deposit --amount 200 --savings`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &depositRunner{
				app:   application,
				flags: flags,
				cmd:   cmd,
			}
			return runner.Run()
		},
	}
	cmd.Flags().StringVarP(&flags.Amount, "amount", "a", "", "Deposit amount (e.g., 150 or 150.50)")
	cmd.Flags().BoolVarP(&flags.Savings, "savings", "s", false, "Deposit into the savings account")

	return cmd
}

func (r *depositRunner) Run() error {
	ctx := r.cmd.Context()
	r.app.Dashboard.LoadAccount(ctx)

	if !r.cmd.Flags().Changed("amount") {
		return r.app.Dashboard.Deposit(ctx)
	}

	if err := prompts.ValidateAmount(r.flags.Amount); err != nil {
		return err
	}
	amount, err := utils.ParseAmount(r.flags.Amount)
	if err != nil {
		return fmt.Errorf("invalid amount: %w", err)
	}

	target := model.TargetCurrent
	if r.flags.Savings {
		target = model.TargetSavings
	}

	return r.app.Dashboard.ApplyDeposit(ctx, model.TransactionResult{
		Type:          model.TypeDeposit,
		AccountNumber: currentAccountNumber(r.app),
		Amount:        amount,
		Target:        target,
	})
}

func currentAccountNumber(application *app.App) string {
	if account := application.Dashboard.CurrentAccount(); account != nil && account.Number != "" {
		return account.Number
	}
	return constants.FallbackAccountNumber
}
