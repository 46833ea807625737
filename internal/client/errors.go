package client

import "errors"

var (
	// ErrNoCredentials is returned when no session can be restored and no
	// account credentials are configured.
	ErrNoCredentials = errors.New("no stored session and no account credentials configured")

	// ErrUnknownCommand is returned for an unsupported sub-command.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrInvalidSessionID is returned when the export command is given
	// something other than a positive session id.
	ErrInvalidSessionID = errors.New("invalid session id")
)
