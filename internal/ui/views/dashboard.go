package views

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/bankterm/bankterm/internal/constants"
	"github.com/bankterm/bankterm/internal/model"
	"github.com/bankterm/bankterm/internal/ui"
	"github.com/bankterm/bankterm/internal/utils"
)

type DashboardView struct{}

func NewDashboardView() *DashboardView {
	return &DashboardView{}
}

// Render prints the account panel: balances, overdraft state and savings
// info. A nil account means nothing has been loaded yet.
func (v *DashboardView) Render(account *model.Account) error {
	ui.PrintL1Title("Account Dashboard")

	if account == nil {
		pterm.Warning.Println("No account loaded")
		return nil
	}

	balance := utils.FormatAmount(account.Balance, account.Currency)
	coloredBalance := pterm.Green(balance)
	if account.Balance.IsNegative() {
		coloredBalance = pterm.Red(balance)
	}

	overdraft := pterm.Gray("disabled")
	if account.OverdraftEnabled() {
		overdraft = pterm.Cyan(fmt.Sprintf("enabled (max %s)",
			utils.FormatAmount(account.OverdraftLimit, account.Currency)))
	}

	savings := utils.FormatAmount(account.SavingsBalance, account.Currency)
	ceiling := fmt.Sprintf("%s: %s", constants.LabelSavingsDepositCeiling,
		utils.FormatAmount(account.SavingsDepositLimit, account.Currency))

	tableData := pterm.TableData{
		{"Account Number", account.Number},
		{"Current Balance", coloredBalance},
		{constants.LabelOverdraft, overdraft},
		{constants.LabelSavingsAccount, fmt.Sprintf("%s (%s)", pterm.Green(savings), ceiling)},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}
