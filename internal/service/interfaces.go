package service

import (
	"context"

	"github.com/MKhiriev/go-punch-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService issues and verifies the credentials of the development server.
type AuthService interface {
	Signup(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, creds models.Credentials) (models.TokenResponse, error)

	// Refresh rotates refreshToken and returns a new pair. A refresh token is
	// accepted exactly once.
	Refresh(ctx context.Context, refreshToken string) (models.TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error

	Me(ctx context.Context, userID int64) (models.User, error)

	// ParseAccessToken returns the user id of a valid access token.
	ParseAccessToken(ctx context.Context, accessToken string) (int64, error)
}

// TrainingService manages sessions and punches. Every call is scoped to the
// owner: sessions of other users are reported as not found.
type TrainingService interface {
	CreateSession(ctx context.Context, userID int64, req models.SessionCreate) (models.TrainingSession, error)
	ListSessions(ctx context.Context, userID int64, limit, offset int) (models.SessionList, error)
	GetSession(ctx context.Context, userID, sessionID int64) (models.TrainingSession, error)
	UpdateSession(ctx context.Context, userID, sessionID int64, update models.SessionUpdate) (models.TrainingSession, error)

	LogPunch(ctx context.Context, userID int64, req models.PunchCreate) (models.Punch, error)
	SessionPunches(ctx context.Context, userID, sessionID int64) ([]models.Punch, error)
	SessionAnalytics(ctx context.Context, userID, sessionID int64) (models.SessionAnalytics, error)

	// WeeklyAnalytics compares the last seven days of userID with the seven
	// days before.
	WeeklyAnalytics(ctx context.Context, userID int64) (models.WeeklyAnalytics, error)
}

// CoachService links coaches with athletes and reports on the athletes of a
// coach. Methods taking coachID fail with [ErrCoachOnly] for other roles.
type CoachService interface {
	// Invite creates an invitation for the athlete registered under
	// invite.AthleteEmail.
	Invite(ctx context.Context, coachID int64, invite models.CoachInvite) (models.Invitation, error)

	// Accept consumes an invitation addressed to athleteID.
	Accept(ctx context.Context, athleteID int64, accept models.InviteAccept) (models.CoachLink, error)

	// Athletes summarizes the last seven days of every linked athlete.
	Athletes(ctx context.Context, coachID int64) (models.CoachAthletes, error)

	// Leaderboard ranks the linked athletes by punches. rangeName must be
	// "week".
	Leaderboard(ctx context.Context, coachID int64, rangeName string) (models.Leaderboard, error)
}
