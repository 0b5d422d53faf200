package model

import "github.com/shopspring/decimal"

// TransactionType selects which flow a transaction dialog drives.
type TransactionType string

const (
	TypeDeposit    TransactionType = "deposit"
	TypeWithdrawal TransactionType = "withdrawal"
)

// TargetAccount selects where a deposit lands. Withdrawals always target the
// current account.
type TargetAccount string

const (
	TargetCurrent TargetAccount = "current"
	TargetSavings TargetAccount = "savings"
)

// TransactionDialogData is the immutable input to a transaction dialog,
// created fresh per invocation.
type TransactionDialogData struct {
	Type          TransactionType
	AccountNumber string
}

// TransactionResult carries a validated, submitted form back to the caller.
// Target is only meaningful for deposits and defaults to TargetCurrent.
type TransactionResult struct {
	Type          TransactionType
	AccountNumber string
	Amount        decimal.Decimal
	Target        TargetAccount
}

// DialogOutcome makes the cancel path a first-class branch: callers switch on
// Submitted instead of testing a pointer for nil.
type DialogOutcome struct {
	Submitted bool
	Result    TransactionResult
}

// Cancelled is the outcome of a dialog closed without a valid submission.
func Cancelled() DialogOutcome {
	return DialogOutcome{}
}

// Submitted wraps a validated form result.
func Submitted(res TransactionResult) DialogOutcome {
	return DialogOutcome{Submitted: true, Result: res}
}
