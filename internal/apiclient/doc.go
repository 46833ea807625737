// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package apiclient implements the authenticated request client used by every
// outbound call of the go-punch-tracker client.
//
// [Client.Do] attaches the current bearer token to a [Request]. When the
// server answers 401 the request is parked on a refresh coordinator owned by
// the client: the first such request starts exactly one refresh call, every
// other 401 observed meanwhile waits for its outcome, and all of them are
// re-issued once with the new token. A request that gets 401 again after that
// retry fails with [ErrRetryExhausted]. When the refresh itself fails every
// waiter fails with [ErrRefreshFailed], the stored token is cleared and the
// session-expired handler is invoked.
//
// A session replaced while a refresh is running wins over the refresh result.
// After [Client.ClearToken] the waiters fail with [ErrSessionCleared] and
// nothing is written back to the store.
//
// Other failures are never retried: transport errors are wrapped in
// [ErrTransport] and non-2xx responses are returned as [*HTTPError].
package apiclient
