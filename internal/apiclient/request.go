package apiclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// Request describes one outbound call. Path is relative to the client's base
// URL. Body, when non-nil, is sent as JSON.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   any

	// Anonymous requests never carry a bearer token and never trigger a
	// refresh. Login and signup use it: a 401 there means bad credentials.
	Anonymous bool

	// Retried is set on the copy re-issued after a refresh. A retried request
	// that receives 401 fails with ErrRetryExhausted.
	Retried bool
}

// NewRequest returns a Request for method and path.
func NewRequest(method, path string) *Request {
	return &Request{Method: method, Path: path}
}

// WithBody sets the JSON body and returns r.
func (r *Request) WithBody(body any) *Request {
	r.Body = body
	return r
}

// WithQuery adds a query parameter and returns r.
func (r *Request) WithQuery(key, value string) *Request {
	if r.Query == nil {
		r.Query = url.Values{}
	}
	r.Query.Add(key, value)
	return r
}

// AsAnonymous marks r as anonymous and returns it.
func (r *Request) AsAnonymous() *Request {
	r.Anonymous = true
	return r
}

func (r *Request) retry() *Request {
	cp := *r
	cp.Retried = true
	return &cp
}

// Response is a completed HTTP exchange.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// DecodeJSON unmarshals the response body into v.
func (r *Response) DecodeJSON(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("decode response body: %w", err)
	}
	return nil
}

// OK reports whether the status code is 2xx.
func (r *Response) OK() bool {
	return r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices
}
