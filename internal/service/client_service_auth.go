package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-punch-tracker/internal/adapter"
	"github.com/MKhiriev/go-punch-tracker/internal/logger"
	"github.com/MKhiriev/go-punch-tracker/models"
)

// clientAuthService implements [ClientAuthService] on top of a
// [adapter.TrainingAPI].
type clientAuthService struct {
	api      adapter.TrainingAPI
	restorer SessionRestorer

	logger *logger.Logger
}

// NewClientAuthService constructs a ClientAuthService. restorer is usually
// the *apiclient.Client the api sends its requests through.
func NewClientAuthService(api adapter.TrainingAPI, restorer SessionRestorer, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{api: api, restorer: restorer, logger: logger}
}

func (c *clientAuthService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	if creds.Email == "" || creds.Password == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	if _, err := c.api.Login(ctx, creds); err != nil {
		return models.User{}, fmt.Errorf("error logging in: %w", err)
	}

	user, err := c.api.Me(ctx)
	if err != nil {
		return models.User{}, fmt.Errorf("error getting profile: %w", err)
	}

	c.logger.Info().Int64("user_id", user.UserID).Msg("logged in")
	return user, nil
}

func (c *clientAuthService) Logout(ctx context.Context) error {
	if err := c.api.Logout(ctx); err != nil {
		return fmt.Errorf("error logging out: %w", err)
	}
	c.logger.Info().Msg("logged out")
	return nil
}

// RestoreSession validates a stored session with a profile request, which
// refreshes an expired access token on the way. A session that cannot be
// refreshed any more is reported as absent.
func (c *clientAuthService) RestoreSession(ctx context.Context) (bool, error) {
	found, err := c.restorer.Restore(ctx)
	if err != nil {
		return false, fmt.Errorf("error restoring session: %w", err)
	}
	if !found {
		return false, nil
	}

	user, err := c.api.Me(ctx)
	if errors.Is(err, adapter.ErrSessionEnded) {
		c.logger.Info().Err(err).Msg("stored session is no longer valid")
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("error checking restored session: %w", err)
	}

	c.logger.Info().Int64("user_id", user.UserID).Msg("session restored")
	return true, nil
}
