// Package accountctx holds the account currently shown by the UI. It is a
// blind mutable cell with notification: no validation, one shared instance
// per session, passed explicitly to every consumer.
package accountctx

import (
	"sync"

	"github.com/bankterm/bankterm/internal/model"
)

const subscriberBuffer = 16

// Context is the shared, observable holder of the active account.
type Context struct {
	mu          sync.Mutex
	current     *model.Account
	everSet     bool
	subscribers map[int]chan *model.Account
	nextID      int
}

func New() *Context {
	return &Context{subscribers: make(map[int]chan *model.Account)}
}

// Set replaces the current account (nil allowed) and notifies every
// subscriber in emission order.
func (c *Context) Set(account *model.Account) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.current = account
	c.everSet = true

	for _, ch := range c.subscribers {
		send(ch, account)
	}
}

// Current returns a synchronous snapshot of the active account, or nil if
// none has been set.
func (c *Context) Current() *model.Account {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Subscribe returns a channel that replays the latest value (once one has
// been set) and then receives every subsequent Set. The cancel func removes
// the subscription and closes the channel.
func (c *Context) Subscribe() (<-chan *model.Account, func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextID
	c.nextID++

	ch := make(chan *model.Account, subscriberBuffer)
	c.subscribers[id] = ch

	if c.everSet {
		send(ch, c.current)
	}

	cancel := func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if sub, ok := c.subscribers[id]; ok {
			delete(c.subscribers, id)
			close(sub)
		}
	}
	return ch, cancel
}

// send never blocks: a subscriber more than subscriberBuffer notifications
// behind loses the oldest one. Replay on the latest value still holds.
func send(ch chan *model.Account, account *model.Account) {
	for {
		select {
		case ch <- account:
			return
		default:
			select {
			case <-ch:
			default:
			}
		}
	}
}
