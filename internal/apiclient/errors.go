package apiclient

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrTransport wraps failures that happen before a response is received.
	ErrTransport = errors.New("transport error")

	// ErrAuthExpired marks a 401 on a request that has not been retried yet.
	// It is handled by the refresh protocol and only reaches callers inside
	// logs.
	ErrAuthExpired = errors.New("access token expired")

	// ErrAuthentication is the parent of every terminal authentication error.
	ErrAuthentication = errors.New("authentication failed")

	ErrRefreshFailed  = fmt.Errorf("%w: token refresh failed", ErrAuthentication)
	ErrRetryExhausted = fmt.Errorf("%w: unauthorized after token refresh", ErrAuthentication)
	ErrSessionCleared = fmt.Errorf("%w: session cleared", ErrAuthentication)

	ErrEmptyAccessToken = errors.New("empty access token in refresh response")
)

// Status sentinels. [*HTTPError] unwraps to the one matching its code.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
)

// HTTPError is a non-2xx response.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	body := e.Body
	if body == "" {
		body = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("http %d: %s", e.StatusCode, body)
}

func (e *HTTPError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusTooManyRequests:
		return ErrTooManyRequests
	case http.StatusInternalServerError:
		return ErrInternalServerError
	case http.StatusBadGateway:
		return ErrBadGateway
	case http.StatusServiceUnavailable:
		return ErrServiceUnavailable
	default:
		return nil
	}
}

// responseError returns nil for 2xx responses and an *HTTPError otherwise.
func responseError(resp *Response) error {
	if resp.OK() {
		return nil
	}
	return &HTTPError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(resp.Body))}
}
