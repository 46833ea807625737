package apiclient

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-punch-tracker/internal/utils"
	"github.com/MKhiriev/go-punch-tracker/models"
)

// RefreshPath is the refresh endpoint relative to the API base URL.
const RefreshPath = "/auth/refresh"

// Refresher exchanges the current credentials for a new access token.
type Refresher interface {
	Refresh(ctx context.Context, current models.Token) (models.Token, error)
}

// RefresherFunc adapts a function to [Refresher].
type RefresherFunc func(ctx context.Context, current models.Token) (models.Token, error)

func (f RefresherFunc) Refresh(ctx context.Context, current models.Token) (models.Token, error) {
	return f(ctx, current)
}

type httpRefresher struct {
	client *utils.HTTPClient
	path   string
}

// NewHTTPRefresher returns a [Refresher] that POSTs to path on client. The
// refresh token, when known, is sent as {"refresh_token": "..."}; otherwise
// the request relies on cookies held by the client's jar. A response without
// a new refresh token keeps the current one.
func NewHTTPRefresher(client *utils.HTTPClient, path string) Refresher {
	return &httpRefresher{client: client, path: path}
}

func (h *httpRefresher) Refresh(ctx context.Context, current models.Token) (models.Token, error) {
	req := h.client.R().SetContext(ctx)
	if current.RefreshToken != "" {
		req.SetHeader("Content-Type", "application/json").
			SetBody(models.RefreshRequest{RefreshToken: current.RefreshToken})
	}

	resp, err := req.Post(h.path)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: refresh request: %w", ErrTransport, err)
	}
	if err = responseError(&Response{StatusCode: resp.StatusCode(), Body: resp.Body()}); err != nil {
		return models.Token{}, fmt.Errorf("refresh rejected: %w", err)
	}

	var tr models.TokenResponse
	if err = json.Unmarshal(resp.Body(), &tr); err != nil {
		return models.Token{}, fmt.Errorf("decode refresh response: %w", err)
	}

	token := models.NewToken(tr)
	if token.IsZero() {
		return models.Token{}, ErrEmptyAccessToken
	}
	if token.RefreshToken == "" {
		token.RefreshToken = current.RefreshToken
	}

	return token, nil
}
