package constants

// User-facing strings, grouped by flow.

const (
	MsgWithdrawalSuccess             = "Withdrawal completed successfully"
	MsgWithdrawalInsufficientBalance = "Insufficient balance for this withdrawal"
	MsgWithdrawalAccountNotFound     = "Bank account not found"
	MsgWithdrawalGeneric             = "An error occurred during the withdrawal"
)

const (
	MsgDepositSuccess = "Deposit completed successfully"
	MsgDepositGeneric = "An error occurred during the deposit"
)

const (
	MsgOverdraftEnabled        = "Overdraft enabled (max 300)"
	MsgOverdraftDisabled       = "Overdraft disabled"
	MsgOverdraftUpdateError    = "Failed to update the overdraft limit"
	MsgOverdraftNoAccount      = "Account number not found"
	LabelOverdraft             = "Authorized overdraft"
	LabelSavingsAccount        = "Savings account"
	LabelSavingsDepositCeiling = "Ceiling"
)

const (
	MsgLoadAccountError   = "Failed to load the account"
	MsgNoAccountSelected  = "No account selected"
	MsgLoadStatementError = "Unable to load the account statement"
)
