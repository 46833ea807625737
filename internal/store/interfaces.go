// Package store contains persistence for both binaries.
//
// The client persists its session through a [TokenStore]: in memory, or in a
// local SQLite file migrated with goose. The development server keeps users,
// training sessions, punches and refresh tokens in memory and caches
// computed analytics in Redis.
package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-punch-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// TokenStore persists the client session between runs. Load returns a zero
// [models.Token] and a nil error when nothing is stored.
type TokenStore interface {
	Load(ctx context.Context) (models.Token, error)
	Save(ctx context.Context, token models.Token) error
	Clear(ctx context.Context) error
}

// UserRepository stores accounts of the development server.
type UserRepository interface {
	// CreateUser assigns UserID and CreatedAt. Returns
	// [ErrEmailAlreadyExists] when the email is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// TrainingRepository stores training sessions and their punches. Every
// session lookup is scoped to its owner; a session of another user is
// reported as [ErrSessionNotFound].
type TrainingRepository interface {
	CreateSession(ctx context.Context, session models.TrainingSession) (models.TrainingSession, error)
	GetSession(ctx context.Context, userID, sessionID int64) (models.TrainingSession, error)
	ListSessions(ctx context.Context, userID int64, limit, offset int) ([]models.TrainingSession, int, error)
	UpdateSession(ctx context.Context, userID, sessionID int64, update models.SessionUpdate) (models.TrainingSession, error)

	CreatePunch(ctx context.Context, punch models.Punch) (models.Punch, error)
	ListPunches(ctx context.Context, sessionID int64) ([]models.Punch, error)

	// ListUserPunches returns the punches of every session of userID logged
	// in [from, to), oldest first.
	ListUserPunches(ctx context.Context, userID int64, from, to time.Time) ([]models.Punch, error)
}

// CoachRepository stores coach invitations and the coach-athlete links they
// turn into once accepted.
type CoachRepository interface {
	// CreateInvitation stores a pending invitation and sets its CreatedAt.
	// Returns [ErrAlreadyLinked] when the pair is already linked.
	CreateInvitation(ctx context.Context, invitation models.Invitation) (models.Invitation, error)

	// AcceptInvitation consumes the invitation with code on behalf of
	// athleteID and links the pair. An invitation is accepted at most once.
	AcceptInvitation(ctx context.Context, code string, athleteID int64) (models.CoachLink, error)

	// ListLinks returns the athletes of coachID in the order they joined.
	ListLinks(ctx context.Context, coachID int64) ([]models.CoachLink, error)
}

// RefreshTokenRepository stores refresh tokens by hash.
type RefreshTokenRepository interface {
	SaveRefreshToken(ctx context.Context, token models.RefreshToken) error

	// RotateRefreshToken revokes the token with oldHash and stores next in
	// one step. It fails with [ErrRefreshTokenNotFound] when oldHash is
	// unknown, revoked or expired, so that concurrent use of one refresh
	// token yields a single winner.
	RotateRefreshToken(ctx context.Context, oldHash string, next models.RefreshToken) (models.RefreshToken, error)

	RevokeRefreshToken(ctx context.Context, hash string) error
}

// AnalyticsCache caches computed session analytics. Get returns
// [ErrCacheMiss] when nothing is cached.
type AnalyticsCache interface {
	Get(ctx context.Context, sessionID int64) (models.SessionAnalytics, error)
	Set(ctx context.Context, analytics models.SessionAnalytics, ttl time.Duration) error
	Invalidate(ctx context.Context, sessionID int64) error
}
