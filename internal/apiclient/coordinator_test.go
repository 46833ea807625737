package apiclient

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-punch-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_String(t *testing.T) {
	assert.Equal(t, "IDLE", StateIdle.String())
	assert.Equal(t, "REFRESHING", StateRefreshing.String())
	assert.Equal(t, "UNKNOWN", State(42).String())
}

func TestCoordinator_SingleRefreshForManyWaiters(t *testing.T) {
	const n = 32

	var calls atomic.Int32
	release := make(chan struct{})
	c := newCoordinator(func(_ context.Context, current models.Token) outcome {
		calls.Add(1)
		<-release
		return outcome{token: models.Token{AccessToken: current.AccessToken + "-next"}}
	}, nil)
	c.replace(models.Token{AccessToken: "t0"}, nil)

	_, epoch := c.snapshot()

	var wg sync.WaitGroup
	results := make(chan outcome, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			o, err := c.await(context.Background(), epoch)
			assert.NoError(t, err)
			results <- o
		}()
	}

	require.Eventually(t, func() bool { return c.pending() == n }, time.Second, time.Millisecond)
	close(release)
	wg.Wait()
	close(results)

	assert.EqualValues(t, 1, calls.Load())
	for o := range results {
		assert.NoError(t, o.err)
		assert.Equal(t, "t0-next", o.token.AccessToken)
	}
	assert.Equal(t, StateIdle, c.currentState())
	assert.Equal(t, "t0-next", c.current().AccessToken)
}

func TestCoordinator_StaleEpochReusesSettledOutcome(t *testing.T) {
	var calls atomic.Int32
	c := newCoordinator(func(context.Context, models.Token) outcome {
		calls.Add(1)
		return outcome{token: models.Token{AccessToken: "fresh"}}
	}, nil)

	_, seen := c.snapshot()

	// another request already refreshed after this one read its token
	o, err := c.await(context.Background(), seen)
	require.NoError(t, err)
	require.Equal(t, "fresh", o.token.AccessToken)

	late, err := c.await(context.Background(), seen)
	require.NoError(t, err)
	assert.Equal(t, "fresh", late.token.AccessToken)
	assert.EqualValues(t, 1, calls.Load())
}

func TestCoordinator_FailureClearsToken(t *testing.T) {
	var settled atomic.Int32
	c := newCoordinator(func(context.Context, models.Token) outcome {
		return outcome{err: ErrRefreshFailed}
	}, func(s settlement) {
		assert.ErrorIs(t, s.err, ErrRefreshFailed)
		assert.False(t, s.superseded)
		settled.Add(1)
	})
	c.replace(models.Token{AccessToken: "old"}, nil)
	_, seen := c.snapshot()

	o, err := c.await(context.Background(), seen)
	require.NoError(t, err)
	assert.ErrorIs(t, o.err, ErrRefreshFailed)
	assert.True(t, c.current().IsZero())
	require.Eventually(t, func() bool { return settled.Load() == 1 }, time.Second, time.Millisecond)
}

func TestCoordinator_ReplaceAnswersStaleRequests(t *testing.T) {
	c := newCoordinator(func(context.Context, models.Token) outcome {
		t.Error("refresh must not run")
		return outcome{}
	}, nil)
	_, seen := c.snapshot()

	c.replace(models.Token{AccessToken: "login"}, nil)
	o, err := c.await(context.Background(), seen)
	require.NoError(t, err)
	assert.Equal(t, "login", o.token.AccessToken)

	_, seen = c.snapshot()
	c.replace(models.Token{}, ErrSessionCleared)
	o, err = c.await(context.Background(), seen)
	require.NoError(t, err)
	assert.ErrorIs(t, o.err, ErrSessionCleared)
}

func TestCoordinator_RefreshSurvivesInitiatorCancel(t *testing.T) {
	release := make(chan struct{})
	var sawCancel atomic.Bool
	c := newCoordinator(func(ctx context.Context, _ models.Token) outcome {
		<-release
		sawCancel.Store(ctx.Err() != nil)
		return outcome{token: models.Token{AccessToken: "next"}}
	}, nil)
	_, seen := c.snapshot()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := c.await(ctx, seen)
		done <- err
	}()
	require.Eventually(t, func() bool { return c.pending() == 1 }, time.Second, time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
	assert.Zero(t, c.pending())
	assert.Equal(t, StateRefreshing, c.currentState())

	close(release)
	require.Eventually(t, func() bool { return c.currentState() == StateIdle }, time.Second, time.Millisecond)
	assert.False(t, sawCancel.Load())
	assert.Equal(t, "next", c.current().AccessToken)
}

func TestCoordinator_ClearDuringRefreshWins(t *testing.T) {
	release := make(chan struct{})
	settled := make(chan settlement, 1)
	c := newCoordinator(func(context.Context, models.Token) outcome {
		<-release
		return outcome{token: models.Token{AccessToken: "refreshed"}}
	}, func(s settlement) {
		settled <- s
	})
	c.replace(models.Token{AccessToken: "old"}, nil)
	_, seen := c.snapshot()

	done := make(chan outcome, 1)
	go func() {
		o, err := c.await(context.Background(), seen)
		assert.NoError(t, err)
		done <- o
	}()
	require.Eventually(t, func() bool { return c.pending() == 1 }, time.Second, time.Millisecond)

	c.replace(models.Token{}, ErrSessionCleared)
	_, clearedEpoch := c.snapshot()
	close(release)

	o := <-done
	assert.ErrorIs(t, o.err, ErrSessionCleared)
	assert.ErrorIs(t, o.err, ErrAuthentication)
	assert.True(t, o.token.IsZero())

	s := <-settled
	assert.True(t, s.superseded)
	assert.ErrorIs(t, s.err, ErrSessionCleared)
	assert.Equal(t, clearedEpoch, s.epoch)

	assert.Equal(t, StateIdle, c.currentState())
	assert.True(t, c.current().IsZero())
	assert.True(t, c.isCurrent(clearedEpoch))
}

func TestCoordinator_LoginDuringRefreshWins(t *testing.T) {
	release := make(chan struct{})
	c := newCoordinator(func(context.Context, models.Token) outcome {
		<-release
		return outcome{err: ErrRefreshFailed}
	}, nil)
	c.replace(models.Token{AccessToken: "old"}, nil)
	_, seen := c.snapshot()

	done := make(chan outcome, 1)
	go func() {
		o, _ := c.await(context.Background(), seen)
		done <- o
	}()
	require.Eventually(t, func() bool { return c.pending() == 1 }, time.Second, time.Millisecond)

	c.replace(models.Token{AccessToken: "login"}, nil)
	close(release)

	o := <-done
	require.NoError(t, o.err)
	assert.Equal(t, "login", o.token.AccessToken)
	assert.Equal(t, "login", c.current().AccessToken)
}
