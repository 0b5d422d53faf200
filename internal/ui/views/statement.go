package views

import (
	"sort"

	"github.com/pterm/pterm"

	"github.com/bankterm/bankterm/internal/constants"
	"github.com/bankterm/bankterm/internal/model"
	"github.com/bankterm/bankterm/internal/ui"
	"github.com/bankterm/bankterm/internal/utils"
)

type StatementView struct{}

func NewStatementView() *StatementView {
	return &StatementView{}
}

// SortTransactions returns a copy sorted strictly by parsed timestamp,
// newest first. The sort is stable so same-instant rows keep their input
// order.
func SortTransactions(transactions []model.Transaction) []model.Transaction {
	sorted := make([]model.Transaction, len(transactions))
	copy(sorted, transactions)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date.Time)
	})
	return sorted
}

// Render prints the statement header and its transactions in
// reverse-chronological order.
func (v *StatementView) Render(statement *model.AccountStatement, currency string) error {
	ui.PrintL2Title("Statement for %s", statement.AccountNumber)

	header := pterm.TableData{
		{"Account Type", statement.AccountType},
		{"Current Balance", utils.FormatAmount(statement.CurrentBalance, currency)},
		{"Savings Balance", utils.FormatAmount(statement.SavingsBalance, currency)},
		{"Statement Date", statement.StatementDate.Format(constants.StatementDateFormat)},
	}
	if err := pterm.DefaultTable.WithData(header).Render(); err != nil {
		return err
	}

	transactions := SortTransactions(statement.Transactions)
	if len(transactions) == 0 {
		pterm.Warning.Println("No transactions found")
		return nil
	}

	tableData := pterm.TableData{
		{"Date", "Type", "Amount", "Balance After"},
	}

	for _, tx := range transactions {
		amount := utils.FormatAmount(tx.Amount, currency)

		var coloredType, coloredAmount string
		switch tx.Type {
		case model.TxDepositCurrent, model.TxDepositSavings:
			coloredType = pterm.Green(tx.Type)
			coloredAmount = pterm.Green(amount)
		case model.TxWithdrawal:
			coloredType = pterm.Red(tx.Type)
			coloredAmount = pterm.Red(amount)
		default:
			coloredType = tx.Type
			coloredAmount = amount
		}

		tableData = append(tableData, []string{
			tx.Date.Format(constants.StatementDateFormat),
			coloredType,
			coloredAmount,
			utils.FormatAmount(tx.BalanceAfter, currency),
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %d transactions\n", len(transactions))
	return nil
}
