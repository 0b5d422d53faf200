package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, time.Second, zerolog.Nop())
}

func TestListAccounts(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/bank-accounts", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"accountNumber":"ACC001","balance":1000,"overdraftLimit":0,"savingsBalance":0,"savingsDepositLimit":22950},
			{"accountNumber":"ACC002","balance":50.25,"overdraftLimit":300,"savingsBalance":10,"savingsDepositLimit":22950}
		]`))
	})

	accounts, err := client.ListAccounts(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, "ACC001", accounts[0].Number)
	assert.True(t, accounts[0].Balance.Equal(decimal.NewFromInt(1000)))
	assert.True(t, accounts[1].OverdraftLimit.Equal(decimal.NewFromInt(300)))
}

func TestDepositSendsAmountAsNumber(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/bank-accounts/cash-deposit", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]json.RawMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, `"ACC001"`, string(body["accountNumber"]))
		// The backend expects a JSON number, not a quoted decimal.
		assert.Equal(t, "200", string(body["amount"]))

		w.Write([]byte(`{"accountNumber":"ACC001","balance":1200,"overdraftLimit":0,"savingsBalance":0,"savingsDepositLimit":22950}`))
	})

	account, err := client.Deposit(context.Background(), "ACC001", decimal.NewFromInt(200))
	require.NoError(t, err)
	assert.True(t, account.Balance.Equal(decimal.NewFromInt(1200)))
}

func TestDepositToSavingsUsesSavingsEndpoint(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bank-accounts/savings-deposit", r.URL.Path)
		w.Write([]byte(`{"accountNumber":"ACC001","balance":1000,"overdraftLimit":0,"savingsBalance":500,"savingsDepositLimit":22950}`))
	})

	account, err := client.DepositToSavings(context.Background(), "ACC001", decimal.NewFromInt(500))
	require.NoError(t, err)
	assert.True(t, account.SavingsBalance.Equal(decimal.NewFromInt(500)))
	assert.True(t, account.Balance.Equal(decimal.NewFromInt(1000)))
}

func TestWithdrawDecodesStructuredError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bank-accounts/cash-withdrawal", r.URL.Path)
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"code":"INSUFFICIENT_BALANCE","message":"Insufficient balance"}`))
	})

	_, err := client.Withdraw(context.Background(), "ACC001", decimal.NewFromInt(5000))
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "INSUFFICIENT_BALANCE", apiErr.Code)
	assert.Equal(t, "Insufficient balance", apiErr.Message)
}

func TestErrorWithoutBodyStillCarriesStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.Withdraw(context.Background(), "ACC001", decimal.NewFromInt(10))

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Empty(t, apiErr.Code)
}

func TestSetOverdraftBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bank-accounts/overdraft", r.URL.Path)

		var body map[string]json.RawMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, `"ACC001"`, string(body["accountNumber"]))
		assert.Equal(t, "300", string(body["overdraftLimit"]))

		w.Write([]byte(`{"accountNumber":"ACC001","balance":1000,"overdraftLimit":300,"savingsBalance":0,"savingsDepositLimit":22950}`))
	})

	account, err := client.SetOverdraft(context.Background(), "ACC001", decimal.NewFromInt(300))
	require.NoError(t, err)
	assert.True(t, account.OverdraftEnabled())
}

func TestGetStatement(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/bank-accounts/statement/ACC001", r.URL.Path)
		// Timestamps come back without a zone offset.
		w.Write([]byte(`{
			"accountNumber":"ACC001","accountType":"CURRENT_ACCOUNT",
			"currentBalance":700,"savingsBalance":0,
			"statementDate":"2026-08-30T10:00:00",
			"transactions":[
				{"date":"2026-08-29T09:30:00","type":"DEPOSIT_CURRENT","amount":200,"balanceAfter":1200},
				{"date":"2026-08-30T08:15:00","type":"WITHDRAWAL","amount":300,"balanceAfter":700}
			]
		}`))
	})

	statement, err := client.GetStatement(context.Background(), "ACC001")
	require.NoError(t, err)
	assert.Equal(t, "ACC001", statement.AccountNumber)
	require.Len(t, statement.Transactions, 2)
	assert.Equal(t, 2026, statement.Transactions[0].Date.Year())
	assert.Equal(t, 30, statement.StatementDate.Day())
}

func TestGetStatementNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"code":"ACCOUNT_NOT_FOUND","message":"Bank account ACC999 not found"}`))
	})

	_, err := client.GetStatement(context.Background(), "ACC999")

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "ACCOUNT_NOT_FOUND", apiErr.Code)
}

func TestRequestEncodingLeavesGlobalDecimalSettingAlone(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"accountNumber":"ACC001","balance":1200}`))
	})

	_, err := client.Deposit(context.Background(), "ACC001", decimal.NewFromInt(200))
	require.NoError(t, err)

	// Unquoted amounts are a property of the request payloads, not of
	// decimal marshaling everywhere else in the process.
	encoded, err := json.Marshal(decimal.NewFromInt(200))
	require.NoError(t, err)
	assert.Equal(t, `"200"`, string(encoded))
}

func TestTransportErrorIsNotAPIError(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", time.Second, zerolog.Nop())

	_, err := client.ListAccounts(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}
