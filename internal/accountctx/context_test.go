package accountctx

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bankterm/bankterm/internal/model"
)

func account(number string, balance int64) *model.Account {
	return &model.Account{Number: number, Balance: decimal.NewFromInt(balance)}
}

func TestCurrentStartsNil(t *testing.T) {
	ctx := New()
	assert.Nil(t, ctx.Current())
}

func TestSetUpdatesSnapshot(t *testing.T) {
	ctx := New()
	ctx.Set(account("ACC001", 1000))

	current := ctx.Current()
	require.NotNil(t, current)
	assert.Equal(t, "ACC001", current.Number)

	ctx.Set(nil)
	assert.Nil(t, ctx.Current())
}

func TestSubscribeReplaysLatestValue(t *testing.T) {
	ctx := New()
	ctx.Set(account("ACC001", 1000))
	ctx.Set(account("ACC001", 1200))

	ch, cancel := ctx.Subscribe()
	defer cancel()

	got := <-ch
	require.NotNil(t, got)
	assert.True(t, got.Balance.Equal(decimal.NewFromInt(1200)))
}

func TestSubscribeReplaysNilOnceSet(t *testing.T) {
	ctx := New()
	ctx.Set(nil)

	ch, cancel := ctx.Subscribe()
	defer cancel()

	select {
	case got := <-ch:
		assert.Nil(t, got)
	default:
		t.Fatal("expected a replayed nil value")
	}
}

func TestSubscribeBeforeFirstSetReplaysNothing(t *testing.T) {
	ctx := New()

	ch, cancel := ctx.Subscribe()
	defer cancel()

	select {
	case <-ch:
		t.Fatal("no value should be replayed before the first Set")
	default:
	}
}

func TestEmissionsArriveInOrder(t *testing.T) {
	ctx := New()
	ch, cancel := ctx.Subscribe()
	defer cancel()

	ctx.Set(account("ACC001", 1))
	ctx.Set(account("ACC001", 2))
	ctx.Set(account("ACC001", 3))

	for i := int64(1); i <= 3; i++ {
		got := <-ch
		require.NotNil(t, got)
		assert.True(t, got.Balance.Equal(decimal.NewFromInt(i)), "emission %d out of order", i)
	}
}

func TestEveryObserverReceivesUpdates(t *testing.T) {
	ctx := New()

	first, cancelFirst := ctx.Subscribe()
	defer cancelFirst()
	second, cancelSecond := ctx.Subscribe()
	defer cancelSecond()

	ctx.Set(account("ACC001", 1000))

	for _, ch := range []<-chan *model.Account{first, second} {
		got := <-ch
		require.NotNil(t, got)
		assert.Equal(t, "ACC001", got.Number)
	}
}

func TestCancelClosesChannel(t *testing.T) {
	ctx := New()
	ch, cancel := ctx.Subscribe()

	cancel()
	_, open := <-ch
	assert.False(t, open)

	// Set after cancel must not panic.
	ctx.Set(account("ACC001", 1000))
}

func TestSlowSubscriberKeepsNewestValues(t *testing.T) {
	ctx := New()
	ch, cancel := ctx.Subscribe()
	defer cancel()

	for i := int64(0); i < subscriberBuffer*3; i++ {
		ctx.Set(account("ACC001", i))
	}

	var last *model.Account
	for {
		select {
		case got := <-ch:
			last = got
			continue
		default:
		}
		break
	}

	require.NotNil(t, last)
	assert.True(t, last.Balance.Equal(decimal.NewFromInt(subscriberBuffer*3-1)))
}
