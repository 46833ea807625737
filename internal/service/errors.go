package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongCredentials    = errors.New("wrong email or password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrInvalidRefreshToken     = errors.New("refresh token is invalid, expired or already used")

	ErrSessionNotFound     = errors.New("session not found")
	ErrSessionAlreadyEnded = errors.New("session already ended")

	ErrCoachOnly          = errors.New("only coaches can do this")
	ErrAthleteNotFound    = errors.New("athlete not found with that email")
	ErrInvitationNotFound = errors.New("invitation not found or already used")
	ErrAlreadyLinked      = errors.New("athlete is already linked to you")
	ErrUnsupportedRange   = errors.New("only the weekly range is supported")

	ErrNotLoggedIn = errors.New("not logged in")
)
