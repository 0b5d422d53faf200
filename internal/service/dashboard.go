package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/bankterm/bankterm/internal/accountctx"
	"github.com/bankterm/bankterm/internal/bankerrors"
	"github.com/bankterm/bankterm/internal/constants"
	"github.com/bankterm/bankterm/internal/model"
	"github.com/bankterm/bankterm/internal/ui/notify"
)

// DashboardService orchestrates the account dashboard: it loads the account
// into the shared context, runs the deposit and withdrawal flows through the
// transaction dialog, toggles the overdraft allowance, and fetches the
// statement. All failures are translated to user-facing banners here;
// nothing propagates past this layer except the in-flight guard and the
// statement toggle, which also reports its failure to the caller.
type DashboardService struct {
	gateway  Gateway
	accounts *accountctx.Context
	notifier notify.Notifier
	dialog   Dialog
	log      zerolog.Logger

	mu               sync.Mutex
	busy             bool
	statement        *model.AccountStatement
	statementVisible bool
}

func NewDashboardService(gw Gateway, accounts *accountctx.Context, notifier notify.Notifier, dialog Dialog, log zerolog.Logger) *DashboardService {
	return &DashboardService{
		gateway:  gw,
		accounts: accounts,
		notifier: notifier,
		dialog:   dialog,
		log:      log,
	}
}

// LoadAccount fetches the account list and pushes the first account into the
// shared context. An empty list leaves the dashboard ready with no account;
// a failure shows the generic load error and does the same.
func (s *DashboardService) LoadAccount(ctx context.Context) {
	accounts, err := s.gateway.ListAccounts(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("account load failed")
		s.notifier.Error(constants.MsgLoadAccountError)
		return
	}
	if len(accounts) == 0 {
		s.log.Debug().Msg("backend returned no accounts")
		return
	}

	account := accounts[0]
	if account.Currency == "" {
		account.Currency = constants.DefaultCurrency
	}
	s.accounts.Set(&account)
}

// CurrentAccount exposes the context snapshot for rendering.
func (s *DashboardService) CurrentAccount() *model.Account {
	return s.accounts.Current()
}

// Deposit runs the deposit dialog and applies the outcome. Cancelling is a
// no-op.
func (s *DashboardService) Deposit(ctx context.Context) error {
	outcome, err := s.dialog.Run(model.TransactionDialogData{
		Type:          model.TypeDeposit,
		AccountNumber: s.accountNumberOrFallback(),
	})
	if err != nil {
		return err
	}
	if !outcome.Submitted {
		return nil
	}
	return s.ApplyDeposit(ctx, outcome.Result)
}

// ApplyDeposit routes a submitted deposit to the savings or current account
// endpoint, merges the returned snapshot into the context, and notifies.
func (s *DashboardService) ApplyDeposit(ctx context.Context, result model.TransactionResult) error {
	if err := s.begin(); err != nil {
		return err
	}
	defer s.end()

	var (
		updated *model.Account
		err     error
	)
	if result.Target == model.TargetSavings {
		updated, err = s.gateway.DepositToSavings(ctx, result.AccountNumber, result.Amount)
	} else {
		updated, err = s.gateway.Deposit(ctx, result.AccountNumber, result.Amount)
	}

	if err != nil {
		s.log.Warn().Err(err).Str("account", result.AccountNumber).Msg("deposit failed")
		s.notifier.Error(bankerrors.DepositMessage(err))
		return nil
	}

	s.mergeIntoContext(updated)
	s.notifier.Success(constants.MsgDepositSuccess)
	return nil
}

// Withdraw runs the withdrawal dialog and applies the outcome.
func (s *DashboardService) Withdraw(ctx context.Context) error {
	outcome, err := s.dialog.Run(model.TransactionDialogData{
		Type:          model.TypeWithdrawal,
		AccountNumber: s.accountNumberOrFallback(),
	})
	if err != nil {
		return err
	}
	if !outcome.Submitted {
		return nil
	}
	return s.ApplyWithdrawal(ctx, outcome.Result)
}

// ApplyWithdrawal calls the withdrawal endpoint, then reloads the account on
// success. Failures go through the withdrawal classifier.
func (s *DashboardService) ApplyWithdrawal(ctx context.Context, result model.TransactionResult) error {
	if err := s.begin(); err != nil {
		return err
	}
	defer s.end()

	if _, err := s.gateway.Withdraw(ctx, result.AccountNumber, result.Amount); err != nil {
		s.log.Warn().Err(err).Str("account", result.AccountNumber).Msg("withdrawal failed")
		s.notifier.Error(bankerrors.WithdrawalMessage(err))
		return nil
	}

	s.notifier.Success(constants.MsgWithdrawalSuccess)
	s.LoadAccount(ctx)
	return nil
}

// ToggleOverdraft requests the fixed limit when enabling and zero when
// disabling, and returns the state the toggle should display afterwards. On
// failure the prior state is restored.
func (s *DashboardService) ToggleOverdraft(ctx context.Context, enable bool) (bool, error) {
	account := s.accounts.Current()
	if account == nil || account.Number == "" {
		s.notifier.Error(constants.MsgOverdraftNoAccount)
		return false, nil
	}

	if err := s.begin(); err != nil {
		return !enable, err
	}
	defer s.end()

	limit := decimal.Zero
	if enable {
		limit = decimal.NewFromInt(constants.OverdraftMaxLimit)
	}

	updated, err := s.gateway.SetOverdraft(ctx, account.Number, limit)
	if err != nil {
		s.log.Warn().Err(err).Str("account", account.Number).Msg("overdraft update failed")
		s.notifier.Error(constants.MsgOverdraftUpdateError, notify.WithAction("close"))
		return !enable, nil
	}

	s.mergeIntoContext(updated)

	if enable {
		s.notifier.Success(constants.MsgOverdraftEnabled)
	} else {
		s.notifier.Success(constants.MsgOverdraftDisabled, notify.WithAction("✕"))
	}
	return enable, nil
}

// ToggleStatement hides a visible statement without a network call, or
// fetches and shows it when hidden. On a fetch failure the statement stays
// hidden. The banner is raised here; the returned error lets non-interactive
// callers surface the failure through their exit code.
func (s *DashboardService) ToggleStatement(ctx context.Context) error {
	account := s.accounts.Current()
	if account == nil || account.Number == "" {
		s.notifier.Error(constants.MsgNoAccountSelected)
		return ErrNoAccountSelected
	}

	s.mu.Lock()
	if s.statementVisible {
		s.statementVisible = false
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	statement, err := s.gateway.GetStatement(ctx, account.Number)
	if err != nil {
		s.log.Warn().Err(err).Str("account", account.Number).Msg("statement load failed")
		s.notifier.Error(constants.MsgLoadStatementError)
		return fmt.Errorf("failed to load the statement: %w", err)
	}

	s.mu.Lock()
	s.statement = statement
	s.statementVisible = true
	s.mu.Unlock()
	return nil
}

// Statement returns the fetched statement and whether it should be shown.
func (s *DashboardService) Statement() (*model.AccountStatement, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.statement, s.statementVisible
}

func (s *DashboardService) accountNumberOrFallback() string {
	if account := s.accounts.Current(); account != nil && account.Number != "" {
		return account.Number
	}
	return constants.FallbackAccountNumber
}

// mergeIntoContext copies the mutated fields of a returned snapshot onto the
// context's account and re-emits it. The account object is replaced as a
// whole, never partially visible mid-update.
func (s *DashboardService) mergeIntoContext(updated *model.Account) {
	if updated == nil {
		return
	}
	current := s.accounts.Current()
	if current == nil {
		return
	}

	merged := *current
	merged.Balance = updated.Balance
	merged.SavingsBalance = updated.SavingsBalance
	merged.OverdraftLimit = updated.OverdraftLimit
	s.accounts.Set(&merged)
}

func (s *DashboardService) begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy {
		return ErrOperationInFlight
	}
	s.busy = true
	return nil
}

func (s *DashboardService) end() {
	s.mu.Lock()
	s.busy = false
	s.mu.Unlock()
}
