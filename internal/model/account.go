package model

import "github.com/shopspring/decimal"

// Account is the bank account currently shown on the dashboard. The backend
// owns all balance arithmetic; this is a display snapshot.
type Account struct {
	Number              string          `json:"accountNumber"`
	Balance             decimal.Decimal `json:"balance"`
	Currency            string          `json:"currency,omitempty"`
	OverdraftLimit      decimal.Decimal `json:"overdraftLimit"`
	SavingsBalance      decimal.Decimal `json:"savingsBalance"`
	SavingsDepositLimit decimal.Decimal `json:"savingsDepositLimit"`
}

// OverdraftEnabled reports whether the backend currently allows a negative
// balance on this account.
func (a *Account) OverdraftEnabled() bool {
	return a.OverdraftLimit.IsPositive()
}
