package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/go-punch-tracker/internal/apiclient"
	"github.com/MKhiriev/go-punch-tracker/internal/logger"
	"github.com/MKhiriev/go-punch-tracker/models"
)

type httpTrainingAPI struct {
	client *apiclient.Client
	now    func() time.Time

	logger *logger.Logger
}

// NewHTTPTrainingAPI constructs the REST implementation of [TrainingAPI] on
// top of client. Paths are relative to the client's base URL, which is
// expected to end with /api.
func NewHTTPTrainingAPI(client *apiclient.Client, log *logger.Logger) TrainingAPI {
	return &httpTrainingAPI{client: client, now: time.Now, logger: log}
}

// Signup implements [TrainingAPI]. POST /auth/signup.
func (h *httpTrainingAPI) Signup(ctx context.Context, user models.User) (models.User, error) {
	var created models.User
	if err := h.call(ctx, apiclient.NewRequest(http.MethodPost, "/auth/signup").WithBody(user).AsAnonymous(), &created); err != nil {
		return models.User{}, fmt.Errorf("signup: %w", err)
	}
	return created, nil
}

// Login implements [TrainingAPI]. POST /auth/login; the returned pair is
// installed on the client and persisted.
func (h *httpTrainingAPI) Login(ctx context.Context, creds models.Credentials) (models.Token, error) {
	var tr models.TokenResponse
	if err := h.call(ctx, apiclient.NewRequest(http.MethodPost, "/auth/login").WithBody(creds).AsAnonymous(), &tr); err != nil {
		return models.Token{}, fmt.Errorf("login: %w", err)
	}

	token := models.NewToken(tr)
	if token.IsZero() {
		return models.Token{}, fmt.Errorf("login: %w", apiclient.ErrEmptyAccessToken)
	}
	if err := h.client.SetToken(ctx, token); err != nil {
		return models.Token{}, fmt.Errorf("login: %w", err)
	}

	return token, nil
}

// Logout implements [TrainingAPI]. A session persisted by an earlier run is
// loaded first so that its refresh token can be revoked. The server call is
// best-effort: a failure is logged and the local session is cleared
// regardless.
func (h *httpTrainingAPI) Logout(ctx context.Context) error {
	current := h.client.Token()
	if current.IsZero() {
		if _, err := h.client.Restore(ctx); err != nil {
			h.logger.Warn().Err(err).Msg("failed to load stored session for logout")
		}
		current = h.client.Token()
	}
	if current.RefreshToken != "" {
		req := apiclient.NewRequest(http.MethodPost, "/auth/logout").
			WithBody(models.RefreshRequest{RefreshToken: current.RefreshToken})
		if err := h.call(ctx, req, nil); err != nil {
			h.logger.Warn().Err(err).Msg("server logout failed, clearing local session anyway")
		}
	}

	if err := h.client.ClearToken(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// Me implements [TrainingAPI]. GET /auth/me.
func (h *httpTrainingAPI) Me(ctx context.Context) (models.User, error) {
	var user models.User
	if err := h.call(ctx, apiclient.NewRequest(http.MethodGet, "/auth/me"), &user); err != nil {
		return models.User{}, fmt.Errorf("get profile: %w", err)
	}
	return user, nil
}

// ListSessions implements [TrainingAPI]. GET /sessions?limit=&offset=.
func (h *httpTrainingAPI) ListSessions(ctx context.Context, limit, offset int) (models.SessionList, error) {
	req := apiclient.NewRequest(http.MethodGet, "/sessions")
	if limit > 0 {
		req.WithQuery("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		req.WithQuery("offset", strconv.Itoa(offset))
	}

	var list models.SessionList
	if err := h.call(ctx, req, &list); err != nil {
		return models.SessionList{}, fmt.Errorf("list sessions: %w", err)
	}
	return list, nil
}

// CreateSession implements [TrainingAPI]. POST /sessions.
func (h *httpTrainingAPI) CreateSession(ctx context.Context, req models.SessionCreate) (models.TrainingSession, error) {
	var session models.TrainingSession
	if err := h.call(ctx, apiclient.NewRequest(http.MethodPost, "/sessions").WithBody(req), &session); err != nil {
		return models.TrainingSession{}, fmt.Errorf("create session: %w", err)
	}
	return session, nil
}

// GetSession implements [TrainingAPI]. GET /sessions/{id}.
func (h *httpTrainingAPI) GetSession(ctx context.Context, sessionID int64) (models.TrainingSession, error) {
	var session models.TrainingSession
	if err := h.call(ctx, apiclient.NewRequest(http.MethodGet, sessionPath(sessionID)), &session); err != nil {
		return models.TrainingSession{}, fmt.Errorf("get session %d: %w", sessionID, err)
	}
	return session, nil
}

// EndSession implements [TrainingAPI]. PATCH /sessions/{id} with ended_at.
func (h *httpTrainingAPI) EndSession(ctx context.Context, sessionID int64) (models.TrainingSession, error) {
	endedAt := h.now().UTC()

	var session models.TrainingSession
	req := apiclient.NewRequest(http.MethodPatch, sessionPath(sessionID)).
		WithBody(models.SessionUpdate{EndedAt: &endedAt})
	if err := h.call(ctx, req, &session); err != nil {
		return models.TrainingSession{}, fmt.Errorf("end session %d: %w", sessionID, err)
	}
	return session, nil
}

// LogPunch implements [TrainingAPI]. POST /punches.
func (h *httpTrainingAPI) LogPunch(ctx context.Context, req models.PunchCreate) (models.Punch, error) {
	var punch models.Punch
	if err := h.call(ctx, apiclient.NewRequest(http.MethodPost, "/punches").WithBody(req), &punch); err != nil {
		return models.Punch{}, fmt.Errorf("log punch: %w", err)
	}
	return punch, nil
}

// SessionPunches implements [TrainingAPI]. GET /punches/session/{id}.
func (h *httpTrainingAPI) SessionPunches(ctx context.Context, sessionID int64) ([]models.Punch, error) {
	var punches []models.Punch
	path := "/punches/session/" + strconv.FormatInt(sessionID, 10)
	if err := h.call(ctx, apiclient.NewRequest(http.MethodGet, path), &punches); err != nil {
		return nil, fmt.Errorf("list punches of session %d: %w", sessionID, err)
	}
	return punches, nil
}

// SessionAnalytics implements [TrainingAPI]. GET /analytics/{id}.
func (h *httpTrainingAPI) SessionAnalytics(ctx context.Context, sessionID int64) (models.SessionAnalytics, error) {
	var analytics models.SessionAnalytics
	path := "/analytics/" + strconv.FormatInt(sessionID, 10)
	if err := h.call(ctx, apiclient.NewRequest(http.MethodGet, path), &analytics); err != nil {
		return models.SessionAnalytics{}, fmt.Errorf("get analytics of session %d: %w", sessionID, err)
	}
	return analytics, nil
}

// WeeklyAnalytics implements [TrainingAPI]. GET /analytics/weekly.
func (h *httpTrainingAPI) WeeklyAnalytics(ctx context.Context) (models.WeeklyAnalytics, error) {
	var weekly models.WeeklyAnalytics
	if err := h.call(ctx, apiclient.NewRequest(http.MethodGet, "/analytics/weekly"), &weekly); err != nil {
		return models.WeeklyAnalytics{}, fmt.Errorf("get weekly analytics: %w", err)
	}
	return weekly, nil
}

// InviteAthlete implements [TrainingAPI]. POST /coach/invite.
func (h *httpTrainingAPI) InviteAthlete(ctx context.Context, athleteEmail string) (models.Invitation, error) {
	var invitation models.Invitation
	req := apiclient.NewRequest(http.MethodPost, "/coach/invite").
		WithBody(models.CoachInvite{AthleteEmail: athleteEmail})
	if err := h.call(ctx, req, &invitation); err != nil {
		return models.Invitation{}, fmt.Errorf("invite athlete: %w", err)
	}
	return invitation, nil
}

// AcceptInvite implements [TrainingAPI]. POST /coach/accept.
func (h *httpTrainingAPI) AcceptInvite(ctx context.Context, code string) (models.CoachLink, error) {
	var link models.CoachLink
	req := apiclient.NewRequest(http.MethodPost, "/coach/accept").
		WithBody(models.InviteAccept{InviteCode: code})
	if err := h.call(ctx, req, &link); err != nil {
		return models.CoachLink{}, fmt.Errorf("accept invite: %w", err)
	}
	return link, nil
}

// Athletes implements [TrainingAPI]. GET /coach/athletes.
func (h *httpTrainingAPI) Athletes(ctx context.Context) (models.CoachAthletes, error) {
	var athletes models.CoachAthletes
	if err := h.call(ctx, apiclient.NewRequest(http.MethodGet, "/coach/athletes"), &athletes); err != nil {
		return models.CoachAthletes{}, fmt.Errorf("list athletes: %w", err)
	}
	return athletes, nil
}

// Leaderboard implements [TrainingAPI]. GET /coach/leaderboard?range=week.
func (h *httpTrainingAPI) Leaderboard(ctx context.Context) (models.Leaderboard, error) {
	var board models.Leaderboard
	req := apiclient.NewRequest(http.MethodGet, "/coach/leaderboard").WithQuery("range", "week")
	if err := h.call(ctx, req, &board); err != nil {
		return models.Leaderboard{}, fmt.Errorf("get leaderboard: %w", err)
	}
	return board, nil
}

// call performs req and decodes a successful body into out, when out is not
// nil.
func (h *httpTrainingAPI) call(ctx context.Context, req *apiclient.Request, out any) error {
	resp, err := h.client.Do(ctx, req)
	if err != nil {
		return err
	}
	if out == nil || len(resp.Body) == 0 {
		return nil
	}
	return resp.DecodeJSON(out)
}

func sessionPath(id int64) string {
	return "/sessions/" + strconv.FormatInt(id, 10)
}
