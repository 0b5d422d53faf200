package prompts

import (
	"errors"

	"github.com/charmbracelet/huh"

	"github.com/bankterm/bankterm/internal/constants"
	"github.com/bankterm/bankterm/internal/model"
	"github.com/bankterm/bankterm/internal/utils"
)

var dialogTitles = map[model.TransactionType]string{
	model.TypeDeposit:    "Cash deposit",
	model.TypeWithdrawal: "Cash withdrawal",
}

var dialogButtons = map[model.TransactionType]string{
	model.TypeDeposit:    "Deposit",
	model.TypeWithdrawal: "Withdraw",
}

// TransactionDialog collects an amount (and, for deposits, a target account)
// through a modal huh form.
type TransactionDialog struct{}

func NewTransactionDialog() *TransactionDialog {
	return &TransactionDialog{}
}

// Run shows the dialog for the given data. Cancelling (Esc, Ctrl-C, or the
// negative confirm) yields a Cancelled outcome; only a valid, confirmed form
// produces a result.
func (d *TransactionDialog) Run(data model.TransactionDialogData) (model.DialogOutcome, error) {
	var (
		amountInput string
		target      = string(model.TargetCurrent)
		confirmed   bool
	)

	fields := []huh.Field{
		huh.NewInput().
			Title("Amount").
			Description("Minimum " + constants.MinTransactionAmount).
			Value(&amountInput).
			Validate(ValidateAmount),
	}

	if data.Type == model.TypeDeposit {
		fields = append(fields, huh.NewSelect[string]().
			Title("Target account").
			Options(
				huh.NewOption("Current account", string(model.TargetCurrent)),
				huh.NewOption(constants.LabelSavingsAccount, string(model.TargetSavings)),
			).
			Value(&target))
	}

	fields = append(fields, huh.NewConfirm().
		Title(dialogTitles[data.Type]).
		Affirmative(dialogButtons[data.Type]).
		Negative("Cancel").
		Value(&confirmed))

	form := huh.NewForm(huh.NewGroup(fields...).Title(dialogTitles[data.Type]))

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return model.Cancelled(), nil
		}
		return model.Cancelled(), err
	}

	if !confirmed {
		return model.Cancelled(), nil
	}

	// The validator already accepted the input.
	amount, err := utils.ParseAmount(amountInput)
	if err != nil {
		return model.Cancelled(), err
	}

	return model.Submitted(model.TransactionResult{
		Type:          data.Type,
		AccountNumber: data.AccountNumber,
		Amount:        amount,
		Target:        model.TargetAccount(target),
	}), nil
}
