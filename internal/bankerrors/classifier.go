// Package bankerrors maps backend error payloads to user-facing strings, one
// mapping per flow. Structured codes take priority over message text, and
// anything unrecognized falls back to the flow's generic message.
package bankerrors

import (
	"errors"
	"strings"

	"github.com/bankterm/bankterm/internal/constants"
	"github.com/bankterm/bankterm/internal/gateway"
)

// WithdrawalMessage classifies an error from the withdrawal flow.
func WithdrawalMessage(err error) string {
	code, message := payload(err)

	switch code {
	case constants.CodeInsufficientBalance:
		return constants.MsgWithdrawalInsufficientBalance
	case constants.CodeAccountNotFound:
		return constants.MsgWithdrawalAccountNotFound
	}

	// Substring matching is case-sensitive, matching the backend's
	// message wording exactly.
	if strings.Contains(message, "Insufficient balance") {
		return constants.MsgWithdrawalInsufficientBalance
	}
	if strings.Contains(message, "not found") {
		return constants.MsgWithdrawalAccountNotFound
	}

	return constants.MsgWithdrawalGeneric
}

// DepositMessage classifies an error from the deposit flow. The backend
// currently distinguishes nothing here, so every class maps to the generic
// deposit message; the code check is kept so the shape mirrors the
// withdrawal flow.
func DepositMessage(err error) string {
	code, _ := payload(err)

	if code == constants.CodeAccountNotFound {
		return constants.MsgDepositGeneric
	}

	return constants.MsgDepositGeneric
}

// payload extracts the structured code and message from an error. Nil errors
// and transport failures carry no payload and classify as generic.
func payload(err error) (code, message string) {
	var apiErr *gateway.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code, apiErr.Message
	}
	return "", ""
}
