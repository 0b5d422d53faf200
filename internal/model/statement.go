package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction types as reported in statements.
const (
	TxDepositCurrent = "DEPOSIT_CURRENT"
	TxDepositSavings = "DEPOSIT_SAVINGS"
	TxWithdrawal     = "WITHDRAWAL"
)

// AccountStatement is a point-in-time snapshot of an account's balances plus
// its transaction history, fetched on demand and never cached.
type AccountStatement struct {
	AccountNumber  string          `json:"accountNumber"`
	AccountType    string          `json:"accountType"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	SavingsBalance decimal.Decimal `json:"savingsBalance"`
	StatementDate  StatementTime   `json:"statementDate"`
	Transactions   []Transaction   `json:"transactions"`
}

type Transaction struct {
	Date         StatementTime   `json:"date"`
	Type         string          `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	BalanceAfter decimal.Decimal `json:"balanceAfter"`
}

// StatementTime wraps time.Time because the backend emits local timestamps
// without a zone offset alongside regular RFC 3339 ones.
type StatementTime struct {
	time.Time
}

var statementTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

func (t *StatementTime) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "" || raw == "null" {
		t.Time = time.Time{}
		return nil
	}

	for _, layout := range statementTimeLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("unrecognized timestamp %q", raw)
}

func (t StatementTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.Format(time.RFC3339Nano) + `"`), nil
}
