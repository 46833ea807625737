// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/MKhiriev/go-punch-tracker/internal/config"
	"github.com/MKhiriev/go-punch-tracker/internal/logger"
	"github.com/MKhiriev/go-punch-tracker/internal/utils"
	"github.com/MKhiriev/go-punch-tracker/models"
)

// TokenStore persists the session between client runs. Load returns a zero
// [models.Token] and no error when nothing is stored.
type TokenStore interface {
	Load(ctx context.Context) (models.Token, error)
	Save(ctx context.Context, token models.Token) error
	Clear(ctx context.Context) error
}

// Client performs authenticated requests with single-flight token refresh.
// It is safe for concurrent use.
type Client struct {
	http      *utils.HTTPClient
	refresher Refresher
	store     TokenStore
	coord     *coordinator

	refreshTimeout time.Duration

	mu        sync.RWMutex
	onExpired func(error)

	// persistMu orders store writes so that a refresh settling concurrently
	// with SetToken or ClearToken never overwrites the newer session.
	persistMu sync.Mutex

	logger *logger.Logger
}

// NewClient builds a Client for the API at cfg.HTTPAddress using the default
// HTTP refresher on [RefreshPath].
func NewClient(cfg config.ClientAdapter, store TokenStore, log *logger.Logger) (*Client, error) {
	httpClient, err := utils.NewHTTPClient(cfg.HTTPAddress, cfg.RequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return New(httpClient, NewHTTPRefresher(httpClient, RefreshPath), store, cfg.RefreshTimeout, log), nil
}

// New builds a Client from its parts. A nil store keeps the session in memory
// only; a non-positive refreshTimeout falls back to
// [config.DefaultRefreshTimeout].
func New(httpClient *utils.HTTPClient, refresher Refresher, store TokenStore, refreshTimeout time.Duration, log *logger.Logger) *Client {
	if store == nil {
		store = nopStore{}
	}
	if refreshTimeout <= 0 {
		refreshTimeout = config.DefaultRefreshTimeout
	}
	if log == nil {
		log = logger.Nop()
	}

	c := &Client{
		http:           httpClient,
		refresher:      refresher,
		store:          store,
		refreshTimeout: refreshTimeout,
		logger:         log,
	}
	c.coord = newCoordinator(c.refreshToken, c.refreshSettled)

	return c
}

// Do sends req with the current bearer token attached.
//
// Transport failures are returned wrapped in [ErrTransport]. Non-2xx
// responses other than 401 are returned together with an [*HTTPError]. A 401
// on a request that is not anonymous waits for a token refresh and re-issues
// the request once; see the package documentation.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	token, epoch := c.coord.snapshot()
	return c.do(ctx, req, token.AccessToken, epoch)
}

func (c *Client) do(ctx context.Context, req *Request, accessToken string, epoch uint64) (*Response, error) {
	resp, err := c.send(ctx, req, accessToken)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusUnauthorized || req.Anonymous {
		return resp, responseError(resp)
	}

	httpErr := responseError(resp)
	if req.Retried {
		return nil, fmt.Errorf("%w: %s %s: %w", ErrRetryExhausted, req.Method, req.Path, httpErr)
	}

	c.logger.Debug().
		Err(fmt.Errorf("%w: %w", ErrAuthExpired, httpErr)).
		Str("method", req.Method).
		Str("path", req.Path).
		Msg("request unauthorized, waiting for token refresh")

	o, err := c.coord.await(ctx, epoch)
	if err != nil {
		return nil, err
	}
	if o.err != nil {
		return nil, o.err
	}

	return c.do(ctx, req.retry(), o.token.AccessToken, 0)
}

func (c *Client) send(ctx context.Context, req *Request, accessToken string) (*Response, error) {
	r := c.http.R().SetContext(ctx)

	if len(req.Header) > 0 {
		r.SetHeaderMultiValues(req.Header)
	}
	if len(req.Query) > 0 {
		r.SetQueryParamsFromValues(req.Query)
	}
	if req.Body != nil {
		r.SetHeader("Content-Type", "application/json").SetBody(req.Body)
	}
	if !req.Anonymous && accessToken != "" {
		r.SetHeader("Authorization", utils.BearerHeader(accessToken))
	}

	resp, err := r.Execute(req.Method, req.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %w", ErrTransport, req.Method, req.Path, err)
	}

	return &Response{
		StatusCode: resp.StatusCode(),
		Header:     resp.Header(),
		Body:       resp.Body(),
	}, nil
}

func (c *Client) refreshToken(ctx context.Context, current models.Token) outcome {
	refreshCtx, cancel := context.WithTimeout(ctx, c.refreshTimeout)
	defer cancel()

	c.logger.Info().Msg("refreshing access token")

	token, err := c.refresher.Refresh(refreshCtx, current)
	if err == nil && token.IsZero() {
		err = ErrEmptyAccessToken
	}
	if err != nil {
		return outcome{err: fmt.Errorf("%w: %w", ErrRefreshFailed, err)}
	}

	return outcome{token: token}
}

func (c *Client) refreshSettled(s settlement) {
	if s.superseded {
		c.logger.Info().Msg("session replaced during token refresh, refresh result discarded")
		return
	}

	c.persistRefreshed(s)

	if s.err == nil {
		c.logger.Info().Time("expires_at", s.token.ExpiresAt).Msg("access token refreshed")
		return
	}

	c.logger.Warn().Err(s.err).Msg("token refresh failed, session ended")

	c.mu.RLock()
	onExpired := c.onExpired
	c.mu.RUnlock()
	if onExpired != nil {
		onExpired(s.err)
	}
}

// persistRefreshed writes the refresh result to the store unless the session
// was replaced after the refresh settled.
func (c *Client) persistRefreshed(s settlement) {
	c.persistMu.Lock()
	defer c.persistMu.Unlock()

	if !c.coord.isCurrent(s.epoch) {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.refreshTimeout)
	defer cancel()

	if s.err != nil {
		if err := c.store.Clear(ctx); err != nil {
			c.logger.Err(err).Msg("failed to clear stored token")
		}
		return
	}
	if err := c.store.Save(ctx, s.token); err != nil {
		c.logger.Err(err).Msg("failed to persist refreshed token")
	}
}

// SetSessionExpiredHandler registers fn to be called once per failed refresh,
// after every waiting request has been rejected. fn runs on the refresh
// goroutine.
func (c *Client) SetSessionExpiredHandler(fn func(error)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onExpired = fn
}

// SetToken installs token as the current session and persists it.
func (c *Client) SetToken(ctx context.Context, token models.Token) error {
	c.persistMu.Lock()
	defer c.persistMu.Unlock()

	c.coord.replace(token, nil)
	if err := c.store.Save(ctx, token); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}
	return nil
}

// Token returns the current session token.
func (c *Client) Token() models.Token {
	return c.coord.current()
}

// ClearToken drops the current session from memory and from the store.
// Requests that were already in flight fail with [ErrSessionCleared] if they
// come back unauthorized, and a refresh still running is discarded when it
// settles.
func (c *Client) ClearToken(ctx context.Context) error {
	c.persistMu.Lock()
	defer c.persistMu.Unlock()

	c.coord.replace(models.Token{}, ErrSessionCleared)
	if err := c.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear stored token: %w", err)
	}
	return nil
}

// Restore loads a persisted session. It reports whether a token was found.
func (c *Client) Restore(ctx context.Context) (bool, error) {
	token, err := c.store.Load(ctx)
	if err != nil {
		return false, fmt.Errorf("load stored token: %w", err)
	}
	if token.IsZero() {
		return false, nil
	}

	c.coord.replace(token, nil)
	return true, nil
}

// State reports whether a refresh is in progress.
func (c *Client) State() State {
	return c.coord.currentState()
}

type nopStore struct{}

func (nopStore) Load(context.Context) (models.Token, error) { return models.Token{}, nil }
func (nopStore) Save(context.Context, models.Token) error   { return nil }
func (nopStore) Clear(context.Context) error                { return nil }
