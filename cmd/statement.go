package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bankterm/bankterm/internal/app"
	"github.com/bankterm/bankterm/internal/constants"
	"github.com/bankterm/bankterm/internal/ui/views"
)

type statementRunner struct {
	app *app.App
	cmd *cobra.Command
}

func NewStatementCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "statement",
		Short: "Show the account statement",
		Long:  `Fetch and display the account statement, newest transactions first.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &statementRunner{
				app: application,
				cmd: cmd,
			}
			return runner.Run()
		},
	}
}

func (r *statementRunner) Run() error {
	ctx := r.cmd.Context()
	r.app.Dashboard.LoadAccount(ctx)
	if err := r.app.Dashboard.ToggleStatement(ctx); err != nil {
		return err
	}

	statement, visible := r.app.Dashboard.Statement()
	if !visible {
		return nil
	}

	currency := constants.DefaultCurrency
	if account := r.app.Dashboard.CurrentAccount(); account != nil && account.Currency != "" {
		currency = account.Currency
	}

	return views.NewStatementView().Render(statement, currency)
}
