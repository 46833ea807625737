// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the typed client of the boxing-training API.
//
// The primary abstraction is [TrainingAPI], which decouples the service layer
// from the REST contract. The HTTP implementation ([NewHTTPTrainingAPI]) sends
// every call through an [apiclient.Client], so an expired access token is
// refreshed once and the call is replayed transparently.
//
// Non-2xx responses surface as errors matching the sentinels in errors.go
// with [errors.Is] (e.g. [ErrConflict] for 409, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-punch-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/training_api_mock.go -package=mock

// TrainingAPI defines the calls the client makes against the training API.
type TrainingAPI interface {
	// Signup registers a new account. It does not log the user in.
	Signup(ctx context.Context, user models.User) (models.User, error)

	// Login exchanges credentials for a token pair and installs it as the
	// current session. A 401 here means bad credentials and never triggers
	// a token refresh.
	Login(ctx context.Context, creds models.Credentials) (models.Token, error)

	// Logout revokes the refresh token on the server when possible and always
	// drops the local session.
	Logout(ctx context.Context) error

	// Me returns the profile of the logged-in user.
	Me(ctx context.Context) (models.User, error)

	// ListSessions returns a page of the user's sessions, newest first.
	ListSessions(ctx context.Context, limit, offset int) (models.SessionList, error)

	CreateSession(ctx context.Context, req models.SessionCreate) (models.TrainingSession, error)
	GetSession(ctx context.Context, sessionID int64) (models.TrainingSession, error)

	// EndSession marks the session finished at the current time.
	EndSession(ctx context.Context, sessionID int64) (models.TrainingSession, error)

	LogPunch(ctx context.Context, req models.PunchCreate) (models.Punch, error)
	SessionPunches(ctx context.Context, sessionID int64) ([]models.Punch, error)
	SessionAnalytics(ctx context.Context, sessionID int64) (models.SessionAnalytics, error)

	// WeeklyAnalytics compares the user's last seven days with the seven
	// days before.
	WeeklyAnalytics(ctx context.Context) (models.WeeklyAnalytics, error)

	// InviteAthlete creates an invitation for the athlete registered under
	// athleteEmail. Coaches only.
	InviteAthlete(ctx context.Context, athleteEmail string) (models.Invitation, error)

	// AcceptInvite links the logged-in athlete with the coach that issued
	// code.
	AcceptInvite(ctx context.Context, code string) (models.CoachLink, error)

	// Athletes lists the coach's athletes with their weekly activity.
	Athletes(ctx context.Context) (models.CoachAthletes, error)

	// Leaderboard ranks the coach's athletes by punches over the last week.
	Leaderboard(ctx context.Context) (models.Leaderboard, error)
}
