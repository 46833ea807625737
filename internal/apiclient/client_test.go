package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-punch-tracker/internal/logger"
	"github.com/MKhiriev/go-punch-tracker/internal/utils"
	"github.com/MKhiriev/go-punch-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI accepts a single valid access token on every business path and
// hands out newToken from /api/auth/refresh.
type fakeAPI struct {
	valid atomic.Value // string

	// gate, when non-nil, holds refresh responses until it is closed.
	gate chan struct{}

	refreshCalls atomic.Int32
	unauthorized atomic.Int32

	mu            sync.Mutex
	newToken      string
	refreshStatus int
	seen          map[string][]string // path -> Authorization headers
}

func newFakeAPI(valid, newToken string) *fakeAPI {
	f := &fakeAPI{newToken: newToken, refreshStatus: http.StatusOK, seen: map[string][]string{}}
	f.valid.Store(valid)
	return f
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == "/api"+RefreshPath {
		f.refreshCalls.Add(1)
		if f.gate != nil {
			<-f.gate
		}
		f.mu.Lock()
		status, token := f.refreshStatus, f.newToken
		f.mu.Unlock()

		if status != http.StatusOK {
			http.Error(w, "refresh token expired", status)
			return
		}
		f.valid.Store(token)
		_, _ = utils.WriteJSON(w, models.TokenResponse{AccessToken: token, TokenType: "bearer"}, http.StatusOK)
		return
	}

	auth := r.Header.Get("Authorization")
	f.mu.Lock()
	f.seen[r.URL.Path] = append(f.seen[r.URL.Path], auth)
	f.mu.Unlock()

	switch r.URL.Path {
	case "/api/boom":
		http.Error(w, "database is down", http.StatusInternalServerError)
		return
	case "/api/forbidden-forever":
		f.unauthorized.Add(1)
		http.Error(w, "nope", http.StatusUnauthorized)
		return
	}

	if auth != utils.BearerHeader(f.valid.Load().(string)) {
		f.unauthorized.Add(1)
		http.Error(w, "token expired", http.StatusUnauthorized)
		return
	}

	_, _ = utils.WriteJSON(w, map[string]string{"path": r.URL.Path}, http.StatusOK)
}

func (f *fakeAPI) setRefresh(status int, token string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.refreshStatus, f.newToken = status, token
}

func (f *fakeAPI) headers(path string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.seen["/api"+path]...)
}

// memStore is a TokenStore that records what was written to it.
type memStore struct {
	mu      sync.Mutex
	token   models.Token
	cleared int
	loadErr error
}

func (s *memStore) Load(context.Context) (models.Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, s.loadErr
}

func (s *memStore) Save(_ context.Context, token models.Token) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *memStore) Clear(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = models.Token{}
	s.cleared++
	return nil
}

func (s *memStore) get() models.Token {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *memStore) clears() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cleared
}

func newTestClient(t *testing.T, api http.Handler, store TokenStore, refreshTimeout time.Duration) *Client {
	t.Helper()

	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	httpClient, err := utils.NewHTTPClient(srv.URL+"/api", 5*time.Second)
	require.NoError(t, err)

	return New(httpClient, NewHTTPRefresher(httpClient, RefreshPath), store, refreshTimeout, logger.Nop())
}

func setToken(t *testing.T, c *Client, access string) {
	t.Helper()
	require.NoError(t, c.SetToken(context.Background(), models.Token{AccessToken: access}))
}

// ── plain requests ───────────────────────────────────────────────────────────

func TestDo_AttachesBearerToken(t *testing.T) {
	api := newFakeAPI("abc", "new123")
	c := newTestClient(t, api, nil, time.Second)
	setToken(t, c, "abc")

	resp, err := c.Do(context.Background(), NewRequest(http.MethodGet, "/sessions").WithQuery("limit", "5"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, resp.DecodeJSON(&body))
	assert.Equal(t, "/api/sessions", body["path"])
	assert.Equal(t, []string{"Bearer abc"}, api.headers("/sessions"))
	assert.Zero(t, api.refreshCalls.Load())
}

func TestDo_SendsJSONBody(t *testing.T) {
	var got models.SessionCreate
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "trace-1", r.Header.Get("X-Trace-ID"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	httpClient, err := utils.NewHTTPClient(srv.URL, time.Second)
	require.NoError(t, err)
	c := New(httpClient, nil, nil, time.Second, nil)

	req := NewRequest(http.MethodPost, "/sessions").WithBody(models.SessionCreate{Name: "Pads"})
	req.Header = http.Header{"X-Trace-ID": []string{"trace-1"}}

	resp, err := c.Do(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Pads", got.Name)
}

// ── non-auth passthrough ─────────────────────────────────────────────────────

func TestDo_NonAuthErrorPassesThrough(t *testing.T) {
	api := newFakeAPI("abc", "new123")
	c := newTestClient(t, api, nil, time.Second)
	setToken(t, c, "abc")

	resp, err := c.Do(context.Background(), NewRequest(http.MethodGet, "/boom"))
	require.Error(t, err)

	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusInternalServerError, httpErr.StatusCode)
	assert.Equal(t, "database is down", httpErr.Body)
	assert.ErrorIs(t, err, ErrInternalServerError)
	assert.NotErrorIs(t, err, ErrAuthentication)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	assert.Zero(t, api.refreshCalls.Load())
	assert.Equal(t, StateIdle, c.State())
}

func TestDo_TransportErrorPassesThrough(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	var refreshes atomic.Int32
	refresher := RefresherFunc(func(context.Context, models.Token) (models.Token, error) {
		refreshes.Add(1)
		return models.Token{}, errors.New("unexpected")
	})

	httpClient, err := utils.NewHTTPClient(url, time.Second)
	require.NoError(t, err)
	c := New(httpClient, refresher, nil, time.Second, nil)

	_, err = c.Do(context.Background(), NewRequest(http.MethodGet, "/sessions"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
	assert.Zero(t, refreshes.Load())
}

func TestDo_AnonymousUnauthorizedIsPlainHTTPError(t *testing.T) {
	api := newFakeAPI("abc", "new123")
	c := newTestClient(t, api, nil, time.Second)

	_, err := c.Do(context.Background(), NewRequest(http.MethodPost, "/sessions").AsAnonymous())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.NotErrorIs(t, err, ErrAuthentication)
	assert.Zero(t, api.refreshCalls.Load())
	assert.Equal(t, []string{""}, api.headers("/sessions"))
}

// ── example scenario ─────────────────────────────────────────────────────────

func TestDo_ExpiredTokenThreeConcurrentCalls(t *testing.T) {
	api := newFakeAPI("fresh-only", "new123")
	store := &memStore{}
	c := newTestClient(t, api, store, time.Second)
	setToken(t, c, "expired")

	paths := []string{"/sessions", "/analytics/1", "/auth/me"}

	var wg sync.WaitGroup
	errs := make([]error, len(paths))
	bodies := make([]map[string]string, len(paths))
	for i, p := range paths {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := c.Do(context.Background(), NewRequest(http.MethodGet, p))
			errs[i] = err
			if err == nil {
				errs[i] = resp.DecodeJSON(&bodies[i])
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, api.refreshCalls.Load())
	for i, p := range paths {
		require.NoError(t, errs[i], p)
		assert.Equal(t, "/api"+p, bodies[i]["path"])

		hdrs := api.headers(p)
		require.Len(t, hdrs, 2, p)
		assert.Equal(t, "Bearer expired", hdrs[0])
		assert.Equal(t, "Bearer new123", hdrs[1])
	}

	assert.Equal(t, "new123", c.Token().AccessToken)
	assert.Equal(t, StateIdle, c.State())
	require.Eventually(t, func() bool { return store.get().AccessToken == "new123" }, time.Second, time.Millisecond)
}

func TestDo_ExpiredTokenRefreshRejected(t *testing.T) {
	api := newFakeAPI("fresh-only", "new123")
	api.refreshStatus = http.StatusUnauthorized
	store := &memStore{}
	c := newTestClient(t, api, store, time.Second)
	setToken(t, c, "expired")

	expired := make(chan error, 4)
	c.SetSessionExpiredHandler(func(err error) { expired <- err })

	paths := []string{"/sessions", "/analytics/1", "/auth/me"}
	var wg sync.WaitGroup
	errs := make([]error, len(paths))
	for i, p := range paths {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = c.Do(context.Background(), NewRequest(http.MethodGet, p))
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, api.refreshCalls.Load())
	for i := range paths {
		require.Error(t, errs[i])
		assert.ErrorIs(t, errs[i], ErrRefreshFailed)
		assert.ErrorIs(t, errs[i], ErrAuthentication)
	}

	assert.True(t, c.Token().IsZero())
	require.Eventually(t, func() bool { return store.get().IsZero() }, time.Second, time.Millisecond)

	select {
	case err := <-expired:
		assert.ErrorIs(t, err, ErrRefreshFailed)
	case <-time.After(2 * time.Second):
		t.Fatal("session expired handler was not called")
	}
	assert.Empty(t, expired, "handler must run once per failed refresh")
}

// ── single flight with a queue ───────────────────────────────────────────────

func TestDo_SingleFlightQueuesConcurrentUnauthorized(t *testing.T) {
	const n = 16

	api := newFakeAPI("fresh-only", "new123")
	api.gate = make(chan struct{})
	c := newTestClient(t, api, nil, 5*time.Second)
	t.Cleanup(func() {
		select {
		case <-api.gate:
		default:
			close(api.gate)
		}
	})
	setToken(t, c, "expired")

	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.Do(context.Background(), NewRequest(http.MethodGet, "/sessions"))
			errs <- err
		}()
	}

	require.Eventually(t, func() bool { return c.coord.pending() == n }, 2*time.Second, 5*time.Millisecond)
	assert.Equal(t, StateRefreshing, c.State())
	assert.EqualValues(t, 1, api.refreshCalls.Load())

	close(api.gate)
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
	assert.EqualValues(t, 1, api.refreshCalls.Load())
	assert.Equal(t, StateIdle, c.State())
	assert.Zero(t, c.coord.pending())

	hdrs := api.headers("/sessions")
	require.Len(t, hdrs, 2*n)
	retried := 0
	for _, h := range hdrs {
		if h == "Bearer new123" {
			retried++
		}
	}
	assert.Equal(t, n, retried, "each request re-issued exactly once with the new token")
}

// ── drain on failure ─────────────────────────────────────────────────────────

func TestDo_RefreshFailureRejectsAllWaiters(t *testing.T) {
	const n = 8

	api := newFakeAPI("fresh-only", "new123")
	api.refreshStatus = http.StatusForbidden
	api.gate = make(chan struct{})
	store := &memStore{}
	c := newTestClient(t, api, store, 5*time.Second)
	t.Cleanup(func() {
		select {
		case <-api.gate:
		default:
			close(api.gate)
		}
	})
	setToken(t, c, "expired")

	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.Do(context.Background(), NewRequest(http.MethodGet, "/sessions"))
			errs <- err
		}()
	}

	require.Eventually(t, func() bool { return c.coord.pending() == n }, 2*time.Second, 5*time.Millisecond)
	close(api.gate)
	wg.Wait()
	close(errs)

	for err := range errs {
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrRefreshFailed)
		assert.ErrorIs(t, err, ErrForbidden)
	}
	assert.EqualValues(t, 1, api.refreshCalls.Load())
	assert.Equal(t, StateIdle, c.State())
	assert.True(t, c.Token().IsZero())
	require.Eventually(t, func() bool { return store.clears() == 1 }, time.Second, time.Millisecond)
}

func TestDo_RefreshTimeoutFailsWaiters(t *testing.T) {
	api := newFakeAPI("fresh-only", "new123")
	api.gate = make(chan struct{})
	c := newTestClient(t, api, nil, 50*time.Millisecond)
	t.Cleanup(func() { close(api.gate) })
	setToken(t, c, "expired")

	_, err := c.Do(context.Background(), NewRequest(http.MethodGet, "/sessions"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRefreshFailed)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, StateIdle, c.State())
}

// ── no infinite loop ─────────────────────────────────────────────────────────

func TestDo_RetriedRequestIsNotRetriedAgain(t *testing.T) {
	api := newFakeAPI("abc", "new123")
	c := newTestClient(t, api, nil, time.Second)
	setToken(t, c, "abc")

	_, err := c.Do(context.Background(), NewRequest(http.MethodGet, "/forbidden-forever"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRetryExhausted)
	assert.ErrorIs(t, err, ErrAuthentication)
	assert.ErrorIs(t, err, ErrUnauthorized)

	assert.EqualValues(t, 1, api.refreshCalls.Load())
	assert.Len(t, api.headers("/forbidden-forever"), 2)
	assert.Equal(t, StateIdle, c.State())
}

func TestDo_RequestMarkedRetriedSkipsRefresh(t *testing.T) {
	api := newFakeAPI("fresh-only", "new123")
	c := newTestClient(t, api, nil, time.Second)
	setToken(t, c, "expired")

	req := NewRequest(http.MethodGet, "/sessions")
	req.Retried = true

	_, err := c.Do(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRetryExhausted)
	assert.Zero(t, api.refreshCalls.Load())
	assert.Zero(t, c.coord.pending())
}

// ── state reset ──────────────────────────────────────────────────────────────

func TestDo_NewRefreshAfterSettle(t *testing.T) {
	api := newFakeAPI("fresh-only", "new123")
	c := newTestClient(t, api, nil, time.Second)
	setToken(t, c, "expired")

	_, err := c.Do(context.Background(), NewRequest(http.MethodGet, "/sessions"))
	require.NoError(t, err)
	assert.EqualValues(t, 1, api.refreshCalls.Load())
	assert.Equal(t, StateIdle, c.State())

	// the server revokes new123 and will hand out new456 next
	api.valid.Store("rotated")
	api.setRefresh(http.StatusOK, "new456")

	_, err = c.Do(context.Background(), NewRequest(http.MethodGet, "/sessions"))
	require.NoError(t, err)
	assert.EqualValues(t, 2, api.refreshCalls.Load())
	assert.Equal(t, "new456", c.Token().AccessToken)
	assert.Equal(t, StateIdle, c.State())
}

func TestDo_NewRefreshAfterFailedRefresh(t *testing.T) {
	api := newFakeAPI("fresh-only", "new123")
	api.refreshStatus = http.StatusUnauthorized
	c := newTestClient(t, api, nil, time.Second)
	setToken(t, c, "expired")

	_, err := c.Do(context.Background(), NewRequest(http.MethodGet, "/sessions"))
	require.ErrorIs(t, err, ErrRefreshFailed)

	api.setRefresh(http.StatusOK, "new123")
	_, err = c.Do(context.Background(), NewRequest(http.MethodGet, "/sessions"))
	require.NoError(t, err)
	assert.EqualValues(t, 2, api.refreshCalls.Load())
}

// ── cancellation ─────────────────────────────────────────────────────────────

func TestDo_WaiterContextCancelled(t *testing.T) {
	api := newFakeAPI("fresh-only", "new123")
	api.gate = make(chan struct{})
	c := newTestClient(t, api, nil, 5*time.Second)
	setToken(t, c, "expired")

	ctx, cancel := context.WithCancel(context.Background())

	cancelled := make(chan error, 1)
	go func() {
		_, err := c.Do(ctx, NewRequest(http.MethodGet, "/sessions"))
		cancelled <- err
	}()
	require.Eventually(t, func() bool { return c.coord.pending() == 1 }, 2*time.Second, 5*time.Millisecond)

	survivor := make(chan error, 1)
	go func() {
		_, err := c.Do(context.Background(), NewRequest(http.MethodGet, "/auth/me"))
		survivor <- err
	}()
	require.Eventually(t, func() bool { return c.coord.pending() == 2 }, 2*time.Second, 5*time.Millisecond)

	// the request that started the refresh gives up; the refresh keeps going
	cancel()
	assert.ErrorIs(t, <-cancelled, context.Canceled)
	assert.Equal(t, 1, c.coord.pending())

	close(api.gate)
	assert.NoError(t, <-survivor)
	assert.EqualValues(t, 1, api.refreshCalls.Load())
	assert.Equal(t, "new123", c.Token().AccessToken)
}

// ── token management ─────────────────────────────────────────────────────────

func TestRestore(t *testing.T) {
	t.Run("stored token", func(t *testing.T) {
		api := newFakeAPI("abc", "new123")
		store := &memStore{token: models.Token{AccessToken: "abc", RefreshToken: "r1"}}
		c := newTestClient(t, api, store, time.Second)

		ok, err := c.Restore(context.Background())
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "r1", c.Token().RefreshToken)

		_, err = c.Do(context.Background(), NewRequest(http.MethodGet, "/sessions"))
		assert.NoError(t, err)
	})

	t.Run("nothing stored", func(t *testing.T) {
		c := newTestClient(t, newFakeAPI("abc", "x"), &memStore{}, time.Second)
		ok, err := c.Restore(context.Background())
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("store error", func(t *testing.T) {
		c := newTestClient(t, newFakeAPI("abc", "x"), &memStore{loadErr: assert.AnError}, time.Second)
		_, err := c.Restore(context.Background())
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestClearToken(t *testing.T) {
	store := &memStore{}
	c := newTestClient(t, newFakeAPI("abc", "x"), store, time.Second)
	setToken(t, c, "abc")
	require.Equal(t, "abc", store.get().AccessToken)

	require.NoError(t, c.ClearToken(context.Background()))
	assert.True(t, c.Token().IsZero())
	assert.True(t, store.get().IsZero())
}

func TestClearToken_DuringRefreshKeepsSessionCleared(t *testing.T) {
	api := newFakeAPI("fresh-only", "resurrected")
	api.gate = make(chan struct{})
	store := &memStore{}
	c := newTestClient(t, api, store, 5*time.Second)
	t.Cleanup(func() {
		select {
		case <-api.gate:
		default:
			close(api.gate)
		}
	})
	setToken(t, c, "expired")

	expired := make(chan error, 1)
	c.SetSessionExpiredHandler(func(err error) { expired <- err })

	done := make(chan error, 1)
	go func() {
		_, err := c.Do(context.Background(), NewRequest(http.MethodGet, "/sessions"))
		done <- err
	}()
	require.Eventually(t, func() bool { return c.coord.pending() == 1 }, 2*time.Second, 5*time.Millisecond)

	require.NoError(t, c.ClearToken(context.Background()))
	close(api.gate)

	err := <-done
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSessionCleared)
	assert.ErrorIs(t, err, ErrAuthentication)

	require.Eventually(t, func() bool { return c.State() == StateIdle }, time.Second, time.Millisecond)
	assert.True(t, c.Token().IsZero())
	assert.Never(t, func() bool { return !store.get().IsZero() }, 100*time.Millisecond, 5*time.Millisecond)
	assert.Empty(t, expired, "a deliberate logout is not an expired session")
	assert.EqualValues(t, 1, api.refreshCalls.Load())
	assert.Len(t, api.headers("/sessions"), 1)
}

func TestSetToken_DuringFailedRefreshKeepsNewSession(t *testing.T) {
	api := newFakeAPI("login", "unused")
	api.refreshStatus = http.StatusUnauthorized
	api.gate = make(chan struct{})
	store := &memStore{}
	c := newTestClient(t, api, store, 5*time.Second)
	t.Cleanup(func() {
		select {
		case <-api.gate:
		default:
			close(api.gate)
		}
	})
	setToken(t, c, "expired")

	done := make(chan error, 1)
	go func() {
		_, err := c.Do(context.Background(), NewRequest(http.MethodGet, "/sessions"))
		done <- err
	}()
	require.Eventually(t, func() bool { return c.coord.pending() == 1 }, 2*time.Second, 5*time.Millisecond)

	setToken(t, c, "login")
	close(api.gate)

	require.NoError(t, <-done)
	assert.Equal(t, "login", c.Token().AccessToken)
	assert.Never(t, func() bool { return store.get().AccessToken != "login" }, 100*time.Millisecond, 5*time.Millisecond)
	assert.Zero(t, store.clears())
}
