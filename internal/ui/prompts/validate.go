package prompts

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/bankterm/bankterm/internal/constants"
	"github.com/bankterm/bankterm/internal/utils"
)

var minTransactionAmount = decimal.RequireFromString(constants.MinTransactionAmount)

// ValidateAmount is the dialog's client-side amount rule: required, numeric,
// at least the minimum transaction amount. Violations keep the form open and
// never reach the network.
func ValidateAmount(input string) error {
	if input == "" {
		return errors.New("amount is required")
	}

	amount, err := utils.ParseAmount(input)
	if err != nil {
		return errors.New("amount must be a number")
	}

	if amount.LessThan(minTransactionAmount) {
		return fmt.Errorf("amount must be at least %s", constants.MinTransactionAmount)
	}
	return nil
}
