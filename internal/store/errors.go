package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an account with the same email
	// is already registered.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a user lookup matches nothing.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrSessionNotFound is returned when a training session does not exist
	// or belongs to another user.
	ErrSessionNotFound = errors.New("training session was not found")

	// ErrRefreshTokenNotFound is returned when a refresh token is unknown,
	// revoked or expired.
	ErrRefreshTokenNotFound = errors.New("refresh token was not found")

	// ErrInvitationNotFound is returned when an invite code is unknown,
	// already used or addressed to another athlete.
	ErrInvitationNotFound = errors.New("invitation was not found")

	// ErrInviteCodeTaken is returned when a new invitation reuses the code of
	// an existing one.
	ErrInviteCodeTaken = errors.New("invite code already in use")

	// ErrAlreadyLinked is returned when the athlete already trains with the
	// coach.
	ErrAlreadyLinked = errors.New("athlete is already linked to the coach")

	// ErrCacheMiss is returned by [AnalyticsCache.Get] when nothing is cached.
	ErrCacheMiss = errors.New("cache miss")
)

// Low-level database operation errors. These are returned (or wrapped) by
// the SQLite token store when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan row")
)
