package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/bankterm/bankterm/internal/model"
)

const (
	pathBankAccounts   = "/bank-accounts"
	pathCashDeposit    = "/bank-accounts/cash-deposit"
	pathCashWithdrawal = "/bank-accounts/cash-withdrawal"
	pathSavingsDeposit = "/bank-accounts/savings-deposit"
	pathOverdraft      = "/bank-accounts/overdraft"
	pathStatement      = "/bank-accounts/statement"
)

// apiAmount marshals a decimal as a bare JSON number, which is how the
// backend expects amounts. Scoped to the request payloads so the package-wide
// decimal quoting setting stays untouched.
type apiAmount struct {
	decimal.Decimal
}

func (a apiAmount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

// Client is the typed HTTP client for the bank backend. Every operation is a
// single request: no retries, no idempotency keys. The backend is the sole
// source of truth on conflicting concurrent mutations.
type Client struct {
	baseURL string
	httpc   *http.Client
	log     zerolog.Logger
}

func NewClient(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
		log:     log,
	}
}

type transactionRequest struct {
	AccountNumber string    `json:"accountNumber"`
	Amount        apiAmount `json:"amount"`
}

type overdraftRequest struct {
	AccountNumber  string    `json:"accountNumber"`
	OverdraftLimit apiAmount `json:"overdraftLimit"`
}

// ListAccounts fetches every account visible to the client. The dashboard
// only uses the first one.
func (c *Client) ListAccounts(ctx context.Context) ([]model.Account, error) {
	var accounts []model.Account
	if err := c.get(ctx, pathBankAccounts, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// Deposit credits amount to the current account and returns the updated
// snapshot.
func (c *Client) Deposit(ctx context.Context, accountNumber string, amount decimal.Decimal) (*model.Account, error) {
	var account model.Account
	req := transactionRequest{AccountNumber: accountNumber, Amount: apiAmount{amount}}
	if err := c.post(ctx, pathCashDeposit, req, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// DepositToSavings credits amount to the savings sub-account. The backend
// enforces the savings deposit ceiling.
func (c *Client) DepositToSavings(ctx context.Context, accountNumber string, amount decimal.Decimal) (*model.Account, error) {
	var account model.Account
	req := transactionRequest{AccountNumber: accountNumber, Amount: apiAmount{amount}}
	if err := c.post(ctx, pathSavingsDeposit, req, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// Withdraw debits amount from the current account. Overdraft and balance
// rules live on the backend, which reports violations as API errors.
func (c *Client) Withdraw(ctx context.Context, accountNumber string, amount decimal.Decimal) (*model.Account, error) {
	var account model.Account
	req := transactionRequest{AccountNumber: accountNumber, Amount: apiAmount{amount}}
	if err := c.post(ctx, pathCashWithdrawal, req, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// SetOverdraft sets the account's overdraft limit. The backend rejects values
// above its permitted maximum.
func (c *Client) SetOverdraft(ctx context.Context, accountNumber string, limit decimal.Decimal) (*model.Account, error) {
	var account model.Account
	req := overdraftRequest{AccountNumber: accountNumber, OverdraftLimit: apiAmount{limit}}
	if err := c.post(ctx, pathOverdraft, req, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// GetStatement fetches the statement for one account. Unknown account numbers
// come back as a not-found APIError.
func (c *Client) GetStatement(ctx context.Context, accountNumber string) (*model.AccountStatement, error) {
	var statement model.AccountStatement
	if err := c.get(ctx, pathStatement+"/"+accountNumber, &statement); err != nil {
		return nil, err
	}
	return &statement, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	start := time.Now()

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.log.Debug().Str("method", req.Method).Str("path", req.URL.Path).Err(err).Msg("request failed")
		return fmt.Errorf("request to %s failed: %w", req.URL.Path, err)
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("method", req.Method).
		Str("path", req.URL.Path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("backend call")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeAPIError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", req.URL.Path, err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil || len(body) == 0 {
		return apiErr
	}

	var payload struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		apiErr.Code = payload.Code
		apiErr.Message = payload.Message
	}
	return apiErr
}
