package service

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-punch-tracker/internal/logger"
	"github.com/MKhiriev/go-punch-tracker/internal/store"
	"github.com/MKhiriev/go-punch-tracker/models"
)

// LeaderboardRangeWeek is the only leaderboard range served.
const LeaderboardRangeWeek = "week"

const (
	inviteCodeAttempts = 3
	// athleteLookups bounds the concurrent per-athlete queries of Athletes.
	athleteLookups = 4
)

type coachService struct {
	users    store.UserRepository
	coaches  store.CoachRepository
	training store.TrainingRepository

	now     func() time.Time
	newCode func() string

	logger *logger.Logger
}

func NewCoachService(users store.UserRepository, coaches store.CoachRepository, training store.TrainingRepository, logger *logger.Logger) CoachService {
	return &coachService{
		users:    users,
		coaches:  coaches,
		training: training,
		now:      func() time.Time { return time.Now().UTC() },
		newCode:  newInviteCode,
		logger:   logger,
	}
}

// newInviteCode returns the first characters of a random UUID in upper case.
func newInviteCode() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:models.InviteCodeLength])
}

func (s *coachService) Invite(ctx context.Context, coachID int64, invite models.CoachInvite) (models.Invitation, error) {
	if err := s.requireCoach(ctx, coachID); err != nil {
		return models.Invitation{}, err
	}

	athlete, err := s.users.FindUserByEmail(ctx, invite.AthleteEmail)
	if errors.Is(err, store.ErrNoUserWasFound) || (err == nil && athlete.Role != models.RoleAthlete) {
		return models.Invitation{}, ErrAthleteNotFound
	}
	if err != nil {
		return models.Invitation{}, fmt.Errorf("find athlete: %w", err)
	}

	for range inviteCodeAttempts {
		invitation, err := s.coaches.CreateInvitation(ctx, models.Invitation{
			Code:      s.newCode(),
			CoachID:   coachID,
			AthleteID: athlete.UserID,
		})
		switch {
		case errors.Is(err, store.ErrInviteCodeTaken):
			continue
		case errors.Is(err, store.ErrAlreadyLinked):
			return models.Invitation{}, ErrAlreadyLinked
		case err != nil:
			return models.Invitation{}, fmt.Errorf("create invitation: %w", err)
		}

		s.logger.Info().Int64("coach_id", coachID).Int64("athlete_id", athlete.UserID).Msg("athlete invited")
		return invitation, nil
	}

	return models.Invitation{}, fmt.Errorf("create invitation: %w", store.ErrInviteCodeTaken)
}

func (s *coachService) Accept(ctx context.Context, athleteID int64, accept models.InviteAccept) (models.CoachLink, error) {
	code := strings.ToUpper(strings.TrimSpace(accept.InviteCode))
	if code == "" {
		return models.CoachLink{}, ErrInvalidDataProvided
	}

	link, err := s.coaches.AcceptInvitation(ctx, code, athleteID)
	switch {
	case errors.Is(err, store.ErrInvitationNotFound):
		return models.CoachLink{}, ErrInvitationNotFound
	case errors.Is(err, store.ErrAlreadyLinked):
		return models.CoachLink{}, ErrAlreadyLinked
	case err != nil:
		return models.CoachLink{}, fmt.Errorf("accept invitation: %w", err)
	}

	s.logger.Info().Int64("coach_id", link.CoachID).Int64("athlete_id", athleteID).Msg("invitation accepted")
	return link, nil
}

// Athletes reports, per linked athlete, the sessions started and punches
// logged in the last seven days and the start of the latest session.
func (s *coachService) Athletes(ctx context.Context, coachID int64) (models.CoachAthletes, error) {
	if err := s.requireCoach(ctx, coachID); err != nil {
		return models.CoachAthletes{}, err
	}

	links, err := s.coaches.ListLinks(ctx, coachID)
	if err != nil {
		return models.CoachAthletes{}, fmt.Errorf("list athletes: %w", err)
	}

	now := s.now()
	weekAgo := now.Add(-week)
	summaries := make([]*models.AthleteSummary, len(links))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(athleteLookups)
	for i, link := range links {
		g.Go(func() error {
			athlete, err := s.users.FindUserByID(gctx, link.AthleteID)
			if errors.Is(err, store.ErrNoUserWasFound) {
				return nil
			}
			if err != nil {
				return err
			}

			sessions, _, err := s.training.ListSessions(gctx, athlete.UserID, 0, 0)
			if err != nil {
				return err
			}
			punches, err := s.training.ListUserPunches(gctx, athlete.UserID, weekAgo, now)
			if err != nil {
				return err
			}

			stats := weekStats(sessions, punches, weekAgo, now)
			summary := &models.AthleteSummary{
				ID:            athlete.UserID,
				Username:      athlete.Username,
				Email:         athlete.Email,
				TotalPunches:  stats.TotalPunches,
				AverageSpeed:  stats.AvgSpeed,
				SessionsCount: stats.SessionsCount,
			}
			if len(sessions) > 0 {
				last := sessions[0].StartedAt
				summary.LastSessionDate = &last
			}
			summaries[i] = summary
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return models.CoachAthletes{}, fmt.Errorf("summarize athletes: %w", err)
	}

	result := models.CoachAthletes{Athletes: make([]models.AthleteSummary, 0, len(summaries))}
	for _, summary := range summaries {
		if summary != nil {
			result.Athletes = append(result.Athletes, *summary)
		}
	}
	return result, nil
}

// Leaderboard orders the linked athletes by punches over the last seven
// days, most first. Equal totals share a rank and the next rank skips ahead.
func (s *coachService) Leaderboard(ctx context.Context, coachID int64, rangeName string) (models.Leaderboard, error) {
	if err := s.requireCoach(ctx, coachID); err != nil {
		return models.Leaderboard{}, err
	}
	if rangeName != LeaderboardRangeWeek {
		return models.Leaderboard{}, fmt.Errorf("%w: %q", ErrUnsupportedRange, rangeName)
	}

	links, err := s.coaches.ListLinks(ctx, coachID)
	if err != nil {
		return models.Leaderboard{}, fmt.Errorf("list athletes: %w", err)
	}

	now := s.now()
	board := models.Leaderboard{
		Entries:   make([]models.LeaderboardEntry, 0, len(links)),
		WeekStart: now.Add(-week),
		WeekEnd:   now,
	}

	for _, link := range links {
		athlete, err := s.users.FindUserByID(ctx, link.AthleteID)
		if errors.Is(err, store.ErrNoUserWasFound) {
			continue
		}
		if err != nil {
			return models.Leaderboard{}, fmt.Errorf("find athlete: %w", err)
		}

		punches, err := s.training.ListUserPunches(ctx, athlete.UserID, board.WeekStart, now)
		if err != nil {
			return models.Leaderboard{}, fmt.Errorf("list punches: %w", err)
		}

		entry := models.LeaderboardEntry{
			AthleteID:    athlete.UserID,
			AthleteName:  athlete.Username,
			DailyPunches: make([]int, 7),
		}
		entry.TotalPunches, entry.AvgSpeed = punchTotals(punches, board.WeekStart, now)
		for day := range entry.DailyPunches {
			from := board.WeekStart.Add(time.Duration(day) * 24 * time.Hour)
			entry.DailyPunches[day], _ = punchTotals(punches, from, from.Add(24*time.Hour))
		}
		board.Entries = append(board.Entries, entry)
	}

	slices.SortStableFunc(board.Entries, func(a, b models.LeaderboardEntry) int {
		return cmp.Compare(b.TotalPunches, a.TotalPunches)
	})
	for i := range board.Entries {
		if i > 0 && board.Entries[i].TotalPunches == board.Entries[i-1].TotalPunches {
			board.Entries[i].Rank = board.Entries[i-1].Rank
			continue
		}
		board.Entries[i].Rank = i + 1
	}

	return board, nil
}

func (s *coachService) requireCoach(ctx context.Context, userID int64) error {
	user, err := s.users.FindUserByID(ctx, userID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return ErrCoachOnly
	}
	if err != nil {
		return fmt.Errorf("find user: %w", err)
	}
	if !user.IsCoach() {
		return ErrCoachOnly
	}
	return nil
}
