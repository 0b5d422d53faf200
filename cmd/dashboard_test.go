package cmd

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bankterm/bankterm/internal/accountctx"
	"github.com/bankterm/bankterm/internal/model"
)

// The dashboard displays whatever the shared account context last emitted;
// the loop drains the subscription instead of reading the context directly.
func TestDrainUpdatesFollowsContextEmissions(t *testing.T) {
	accounts := accountctx.New()
	updates, unsubscribe := accounts.Subscribe()
	defer unsubscribe()

	r := &dashboardRunner{}

	accounts.Set(&model.Account{Number: "ACC001", Balance: decimal.NewFromInt(1000)})
	accounts.Set(&model.Account{
		Number:         "ACC001",
		Balance:        decimal.NewFromInt(700),
		OverdraftLimit: decimal.NewFromInt(300),
	})
	r.drainUpdates(updates)

	require.NotNil(t, r.account)
	assert.True(t, r.account.Balance.Equal(decimal.NewFromInt(700)), "newest emission wins")
	assert.True(t, r.overdraftEnabled)

	accounts.Set(&model.Account{Number: "ACC001", Balance: decimal.NewFromInt(700)})
	r.drainUpdates(updates)
	assert.False(t, r.overdraftEnabled)
}

func TestDrainUpdatesKeepsLastAccountOnNilEmission(t *testing.T) {
	accounts := accountctx.New()
	updates, unsubscribe := accounts.Subscribe()
	defer unsubscribe()

	r := &dashboardRunner{}

	accounts.Set(&model.Account{Number: "ACC001", Balance: decimal.NewFromInt(1000)})
	accounts.Set(nil)
	r.drainUpdates(updates)

	require.NotNil(t, r.account)
	assert.Equal(t, "ACC001", r.account.Number)
}

func TestActionsReflectSubscribedOverdraftState(t *testing.T) {
	accounts := accountctx.New()
	updates, unsubscribe := accounts.Subscribe()
	defer unsubscribe()

	r := &dashboardRunner{}

	accounts.Set(&model.Account{Number: "ACC001", OverdraftLimit: decimal.NewFromInt(300)})
	r.drainUpdates(updates)
	assert.Contains(t, r.actions(false), actionOverdraftDisable)
	assert.NotContains(t, r.actions(false), actionOverdraftEnable)

	accounts.Set(&model.Account{Number: "ACC001"})
	r.drainUpdates(updates)
	assert.Contains(t, r.actions(false), actionOverdraftEnable)
	assert.Contains(t, r.actions(true), actionStatementHide)
}
