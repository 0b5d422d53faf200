package cmd

import (
	"context"
	"errors"

	"github.com/charmbracelet/huh"

	"github.com/bankterm/bankterm/internal/app"
	"github.com/bankterm/bankterm/internal/constants"
	"github.com/bankterm/bankterm/internal/errhandler"
	"github.com/bankterm/bankterm/internal/model"
	"github.com/bankterm/bankterm/internal/ui/prompts"
	"github.com/bankterm/bankterm/internal/ui/views"
)

const (
	actionDeposit          = "Deposit"
	actionWithdraw         = "Withdraw"
	actionOverdraftEnable  = "Enable overdraft"
	actionOverdraftDisable = "Disable overdraft"
	actionStatementShow    = "View statement"
	actionStatementHide    = "Hide statement"
	actionRefresh          = "Refresh"
	actionQuit             = "Quit"
)

type dashboardRunner struct {
	app *app.App

	// displayed state, driven by account context emissions
	account          *model.Account
	overdraftEnabled bool
}

// Run drives the interactive dashboard: render the account panel, ask for an
// operation, dispatch it, repeat. The displayed account comes from the shared
// account context subscription, so every mutation that pushes a new snapshot
// is reflected on the next render.
func (r *dashboardRunner) Run(ctx context.Context) error {
	dashboard := r.app.Dashboard
	accountView := views.NewDashboardView()
	statementView := views.NewStatementView()

	updates, unsubscribe := r.app.Accounts.Subscribe()
	defer unsubscribe()

	dashboard.LoadAccount(ctx)

	for {
		r.drainUpdates(updates)

		if err := accountView.Render(r.account); err != nil {
			return err
		}

		statement, visible := dashboard.Statement()
		if visible {
			currency := constants.DefaultCurrency
			if r.account != nil && r.account.Currency != "" {
				currency = r.account.Currency
			}
			if err := statementView.Render(statement, currency); err != nil {
				return err
			}
		}

		action, err := prompts.PromptSelect("Choose an operation:", r.actions(visible), actionDeposit)
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}

		switch action {
		case actionDeposit:
			err = dashboard.Deposit(ctx)
		case actionWithdraw:
			err = dashboard.Withdraw(ctx)
		case actionOverdraftEnable:
			_, err = dashboard.ToggleOverdraft(ctx, true)
		case actionOverdraftDisable:
			_, err = dashboard.ToggleOverdraft(ctx, false)
		case actionStatementShow, actionStatementHide:
			// a failed load already raised its banner; the loop carries on
			_ = dashboard.ToggleStatement(ctx)
		case actionRefresh:
			dashboard.LoadAccount(ctx)
		case actionQuit:
			return nil
		}
		if err != nil {
			// Keep the dashboard alive; interrupts exit cleanly inside.
			errhandler.HandleError(err)
		}
	}
}

// drainUpdates applies every pending emission, keeping the newest snapshot.
// Nil emissions leave the last known account on screen.
func (r *dashboardRunner) drainUpdates(updates <-chan *model.Account) {
	for {
		select {
		case account, ok := <-updates:
			if !ok {
				return
			}
			if account != nil {
				r.account = account
				r.overdraftEnabled = account.OverdraftEnabled()
			}
		default:
			return
		}
	}
}

func (r *dashboardRunner) actions(statementVisible bool) []string {
	overdraft := actionOverdraftEnable
	if r.overdraftEnabled {
		overdraft = actionOverdraftDisable
	}

	statement := actionStatementShow
	if statementVisible {
		statement = actionStatementHide
	}

	return []string{
		actionDeposit,
		actionWithdraw,
		overdraft,
		statement,
		actionRefresh,
		actionQuit,
	}
}
