package adapter

import "github.com/MKhiriev/go-punch-tracker/internal/apiclient"

// Status errors returned by [TrainingAPI] calls.
var (
	ErrBadRequest          = apiclient.ErrBadRequest
	ErrUnauthorized        = apiclient.ErrUnauthorized
	ErrForbidden           = apiclient.ErrForbidden
	ErrNotFound            = apiclient.ErrNotFound
	ErrConflict            = apiclient.ErrConflict
	ErrTooManyRequests     = apiclient.ErrTooManyRequests
	ErrInternalServerError = apiclient.ErrInternalServerError
	ErrBadGateway          = apiclient.ErrBadGateway
)

// ErrSessionEnded is matched by every error meaning the user must log in
// again.
var ErrSessionEnded = apiclient.ErrAuthentication
