package service

import (
	"context"
	"io"

	"github.com/MKhiriev/go-punch-tracker/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService defines the client-side session lifecycle.
type ClientAuthService interface {
	// Login authenticates against the API, installs the returned token pair
	// and returns the user's profile.
	Login(ctx context.Context, creds models.Credentials) (models.User, error)

	// Logout ends the session on the server when possible and always drops
	// the local one.
	Logout(ctx context.Context) error

	// RestoreSession loads a persisted session and checks it against the API.
	// It reports false when there is no session or it can no longer be
	// refreshed.
	RestoreSession(ctx context.Context) (bool, error)
}

// DashboardService loads what the client shows on its main screen.
type DashboardService interface {
	Load(ctx context.Context) (models.Dashboard, error)
}

// ExportService writes training data in portable formats.
type ExportService interface {
	// PunchesCSV writes the punches of a session as CSV with a header row.
	PunchesCSV(ctx context.Context, sessionID int64, w io.Writer) error
}

// SessionRestorer loads a persisted session into the request client.
type SessionRestorer interface {
	Restore(ctx context.Context) (bool, error)
}
