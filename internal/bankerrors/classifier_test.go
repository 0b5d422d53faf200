package bankerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bankterm/bankterm/internal/constants"
	"github.com/bankterm/bankterm/internal/gateway"
)

func TestWithdrawalMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "insufficient balance code",
			err:  &gateway.APIError{Status: 400, Code: constants.CodeInsufficientBalance, Message: "Insufficient balance"},
			want: constants.MsgWithdrawalInsufficientBalance,
		},
		{
			name: "code wins over unrelated message",
			err:  &gateway.APIError{Status: 400, Code: constants.CodeInsufficientBalance, Message: "something else entirely"},
			want: constants.MsgWithdrawalInsufficientBalance,
		},
		{
			name: "code wins over conflicting message",
			err:  &gateway.APIError{Status: 404, Code: constants.CodeAccountNotFound, Message: "Insufficient balance"},
			want: constants.MsgWithdrawalAccountNotFound,
		},
		{
			name: "account not found code",
			err:  &gateway.APIError{Status: 404, Code: constants.CodeAccountNotFound},
			want: constants.MsgWithdrawalAccountNotFound,
		},
		{
			name: "message substring insufficient balance",
			err:  &gateway.APIError{Status: 400, Message: "Insufficient balance to withdraw 300.00"},
			want: constants.MsgWithdrawalInsufficientBalance,
		},
		{
			name: "message substring not found",
			err:  &gateway.APIError{Status: 404, Message: "account ACC999 not found"},
			want: constants.MsgWithdrawalAccountNotFound,
		},
		{
			name: "substring match is case-sensitive",
			err:  &gateway.APIError{Status: 400, Message: "insufficient balance"},
			want: constants.MsgWithdrawalGeneric,
		},
		{
			name: "internal error code falls through to generic",
			err:  &gateway.APIError{Status: 500, Code: constants.CodeInternalError},
			want: constants.MsgWithdrawalGeneric,
		},
		{
			name: "empty payload",
			err:  &gateway.APIError{Status: 500},
			want: constants.MsgWithdrawalGeneric,
		},
		{
			name: "nil error",
			err:  nil,
			want: constants.MsgWithdrawalGeneric,
		},
		{
			name: "transport error without payload",
			err:  errors.New("dial tcp 127.0.0.1:8080: connection refused"),
			want: constants.MsgWithdrawalGeneric,
		},
		{
			name: "wrapped api error",
			err:  fmt.Errorf("withdraw: %w", &gateway.APIError{Status: 400, Code: constants.CodeInsufficientBalance}),
			want: constants.MsgWithdrawalInsufficientBalance,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WithdrawalMessage(tt.err))
		})
	}
}

func TestDepositMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "account not found code", err: &gateway.APIError{Status: 404, Code: constants.CodeAccountNotFound}},
		{name: "insufficient balance code", err: &gateway.APIError{Status: 400, Code: constants.CodeInsufficientBalance}},
		{name: "plain message", err: &gateway.APIError{Status: 400, Message: "Savings deposit limit exceeded"}},
		{name: "nil error", err: nil},
		{name: "transport error", err: errors.New("connection reset")},
	}

	// The deposit flow maps every error class to its generic message.
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, constants.MsgDepositGeneric, DepositMessage(tt.err))
		})
	}
}
