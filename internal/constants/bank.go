package constants

const (
	// Error codes returned by the backend in the optional JSON error body.
	CodeInsufficientBalance = "INSUFFICIENT_BALANCE"
	CodeAccountNotFound     = "ACCOUNT_NOT_FOUND"
	CodeInternalError       = "INTERNAL_ERROR"
)

const (
	// OverdraftMaxLimit is the only non-zero overdraft value the backend
	// accepts; the toggle switches between it and zero.
	OverdraftMaxLimit = 300

	// MinTransactionAmount is the smallest amount the dialog accepts.
	MinTransactionAmount = "0.01"

	// FallbackAccountNumber is used when an operation is triggered before
	// any account has been loaded.
	FallbackAccountNumber = "ACC001"
)

const (
	DefaultCurrency = "EUR"

	// StatementDateFormat renders transaction timestamps in views.
	StatementDateFormat = "02/01/2006 15:04"
)
