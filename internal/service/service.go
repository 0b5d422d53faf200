package service

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/bankterm/bankterm/internal/model"
)

// ErrOperationInFlight rejects a mutation started while another one is still
// outstanding. The dialog is modal so this cannot happen interactively, but
// the guard makes the policy explicit instead of accidental.
var ErrOperationInFlight = errors.New("another operation is already in flight")

// ErrNoAccountSelected reports an operation that needs an account while the
// context holds none, so non-interactive callers can exit non-zero.
var ErrNoAccountSelected = errors.New("no account selected")

// Gateway is the slice of the backend client the dashboard drives.
type Gateway interface {
	ListAccounts(ctx context.Context) ([]model.Account, error)
	Deposit(ctx context.Context, accountNumber string, amount decimal.Decimal) (*model.Account, error)
	DepositToSavings(ctx context.Context, accountNumber string, amount decimal.Decimal) (*model.Account, error)
	Withdraw(ctx context.Context, accountNumber string, amount decimal.Decimal) (*model.Account, error)
	SetOverdraft(ctx context.Context, accountNumber string, limit decimal.Decimal) (*model.Account, error)
	GetStatement(ctx context.Context, accountNumber string) (*model.AccountStatement, error)
}

// Dialog opens a modal transaction form and reports its outcome.
type Dialog interface {
	Run(data model.TransactionDialogData) (model.DialogOutcome, error)
}
