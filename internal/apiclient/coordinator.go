package apiclient

import (
	"context"
	"slices"
	"sync"

	"github.com/MKhiriev/go-punch-tracker/models"
)

// State is the refresh coordinator state.
type State int

const (
	StateIdle State = iota
	StateRefreshing
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "IDLE"
	case StateRefreshing:
		return "REFRESHING"
	default:
		return "UNKNOWN"
	}
}

// outcome is what a settled refresh hands to its waiters.
type outcome struct {
	token models.Token
	err   error
}

// settlement is how a refresh ended, as seen by the settled callback.
type settlement struct {
	outcome
	// epoch is the coordinator epoch right after the refresh settled.
	epoch uint64
	// superseded is set when the token was replaced while the refresh was
	// running. The refresh result was discarded and the waiters received the
	// replacement instead.
	superseded bool
}

// coordinator owns the current token and the single-flight refresh state.
//
// Every request reads the token together with the epoch. The epoch is bumped
// whenever the token is replaced: by a settled refresh, by SetToken or by
// ClearToken. A 401 observed by a request whose epoch is already stale does
// not start a refresh; it reuses the outcome that replaced its token.
type coordinator struct {
	mu      sync.Mutex
	state   State
	waiters []chan outcome
	token   models.Token
	epoch   uint64
	last    outcome
	// started is the epoch at which the running refresh began.
	started uint64

	// refresh performs the refresh call for the given token. It runs on its
	// own goroutine while the state is REFRESHING, on a context detached from
	// the cancellation of the request that started it.
	refresh func(ctx context.Context, current models.Token) outcome
	// settled runs after the waiters have been drained.
	settled func(s settlement)
}

func newCoordinator(refresh func(context.Context, models.Token) outcome, settled func(settlement)) *coordinator {
	if settled == nil {
		settled = func(settlement) {}
	}
	return &coordinator{refresh: refresh, settled: settled}
}

func (c *coordinator) snapshot() (models.Token, uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token, c.epoch
}

func (c *coordinator) current() models.Token {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

// isCurrent reports whether no token replacement happened since epoch.
func (c *coordinator) isCurrent(epoch uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.epoch == epoch
}

func (c *coordinator) currentState() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *coordinator) pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.waiters)
}

// replace installs a token outside of the refresh protocol. err is what a
// stale 401 observes afterwards; nil means retry with token.
func (c *coordinator) replace(token models.Token, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
	c.epoch++
	c.last = outcome{token: token, err: err}
}

// await blocks until the refresh covering a 401 seen at epoch seen settles.
// The first caller while IDLE starts the refresh. The returned error is only
// ever ctx.Err(); refresh failures travel inside the outcome.
func (c *coordinator) await(ctx context.Context, seen uint64) (outcome, error) {
	c.mu.Lock()
	if c.state == StateIdle && c.epoch != seen {
		o := c.last
		c.mu.Unlock()
		return o, nil
	}

	ch := make(chan outcome, 1)
	c.waiters = append(c.waiters, ch)

	if c.state == StateIdle {
		c.state = StateRefreshing
		c.started = c.epoch
		token := c.token
		go c.run(context.WithoutCancel(ctx), token)
	}
	c.mu.Unlock()

	select {
	case o := <-ch:
		return o, nil
	case <-ctx.Done():
		c.abandon(ch)
		return outcome{}, ctx.Err()
	}
}

func (c *coordinator) run(ctx context.Context, token models.Token) {
	c.settled(c.settle(c.refresh(ctx, token)))
}

// settle stores the outcome, drains every waiter and returns to IDLE in one
// critical section. If the token was replaced after the refresh started, the
// replacement wins: the token is left alone and the waiters get the outcome
// of the replacement.
func (c *coordinator) settle(o outcome) settlement {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := settlement{outcome: o}
	if c.epoch != c.started {
		s.outcome = c.last
		s.superseded = true
	} else {
		if o.err == nil {
			c.token = o.token
		} else {
			c.token = models.Token{}
		}
		c.epoch++
		c.last = o
	}
	s.epoch = c.epoch

	for _, ch := range c.waiters {
		ch <- s.outcome
	}
	c.waiters = nil
	c.state = StateIdle

	return s
}

func (c *coordinator) abandon(ch chan outcome) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i := slices.Index(c.waiters, ch); i >= 0 {
		c.waiters = slices.Delete(c.waiters, i, i+1)
	}
}
