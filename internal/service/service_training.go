// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/MKhiriev/go-punch-tracker/internal/logger"
	"github.com/MKhiriev/go-punch-tracker/internal/store"
	"github.com/MKhiriev/go-punch-tracker/models"
)

// Paging bounds of ListSessions.
const (
	DefaultSessionsLimit = 20
	MaxSessionsLimit     = 100
)

// classifications are handed out by session id until a real model exists.
var classifications = [...]string{"Beginner", "Intermediate", "Advanced", "Professional"}

type trainingService struct {
	repository store.TrainingRepository
	cache      store.AnalyticsCache
	cacheTTL   time.Duration

	now func() time.Time

	logger *logger.Logger
}

// NewTrainingService constructs a TrainingService. Analytics are cached for
// cacheTTL; cache failures are logged and otherwise ignored.
func NewTrainingService(repository store.TrainingRepository, cache store.AnalyticsCache, cacheTTL time.Duration, logger *logger.Logger) TrainingService {
	return &trainingService{
		repository: repository,
		cache:      cache,
		cacheTTL:   cacheTTL,
		now:        func() time.Time { return time.Now().UTC() },
		logger:     logger,
	}
}

func (s *trainingService) CreateSession(ctx context.Context, userID int64, req models.SessionCreate) (models.TrainingSession, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = "Training session"
	}

	session, err := s.repository.CreateSession(ctx, models.TrainingSession{UserID: userID, Name: name})
	if err != nil {
		return models.TrainingSession{}, fmt.Errorf("create session: %w", err)
	}
	return session, nil
}

// ListSessions clamps limit to [1, MaxSessionsLimit], using
// DefaultSessionsLimit for non-positive values.
func (s *trainingService) ListSessions(ctx context.Context, userID int64, limit, offset int) (models.SessionList, error) {
	if limit <= 0 {
		limit = DefaultSessionsLimit
	}
	limit = min(limit, MaxSessionsLimit)
	offset = max(offset, 0)

	sessions, total, err := s.repository.ListSessions(ctx, userID, limit, offset)
	if err != nil {
		return models.SessionList{}, fmt.Errorf("list sessions: %w", err)
	}

	return models.SessionList{Sessions: sessions, Total: total, Limit: limit, Offset: offset}, nil
}

func (s *trainingService) GetSession(ctx context.Context, userID, sessionID int64) (models.TrainingSession, error) {
	session, err := s.repository.GetSession(ctx, userID, sessionID)
	if err != nil {
		return models.TrainingSession{}, mapStoreError(err)
	}
	return session, nil
}

// UpdateSession renames or ends a session. Ending is allowed once and must
// not precede the start.
func (s *trainingService) UpdateSession(ctx context.Context, userID, sessionID int64, update models.SessionUpdate) (models.TrainingSession, error) {
	current, err := s.repository.GetSession(ctx, userID, sessionID)
	if err != nil {
		return models.TrainingSession{}, mapStoreError(err)
	}

	if update.EndedAt != nil {
		if !current.Active() {
			return models.TrainingSession{}, ErrSessionAlreadyEnded
		}
		if update.EndedAt.Before(current.StartedAt) {
			return models.TrainingSession{}, ErrInvalidDataProvided
		}
	}

	updated, err := s.repository.UpdateSession(ctx, userID, sessionID, update)
	if err != nil {
		return models.TrainingSession{}, mapStoreError(err)
	}

	// duration is part of the analytics
	s.invalidate(ctx, sessionID)

	return updated, nil
}

// LogPunch records a group of punches in an active session owned by userID.
func (s *trainingService) LogPunch(ctx context.Context, userID int64, req models.PunchCreate) (models.Punch, error) {
	punchType := strings.ToLower(strings.TrimSpace(req.PunchType))
	if punchType == "" || req.Speed < 0 || req.Count < 0 {
		return models.Punch{}, ErrInvalidDataProvided
	}
	if req.Count == 0 {
		req.Count = 1
	}

	session, err := s.repository.GetSession(ctx, userID, req.SessionID)
	if err != nil {
		return models.Punch{}, mapStoreError(err)
	}
	if !session.Active() {
		return models.Punch{}, ErrSessionAlreadyEnded
	}

	punch, err := s.repository.CreatePunch(ctx, models.Punch{
		SessionID: session.ID,
		PunchType: punchType,
		Speed:     req.Speed,
		Count:     req.Count,
		Notes:     req.Notes,
	})
	if err != nil {
		return models.Punch{}, mapStoreError(err)
	}

	s.invalidate(ctx, session.ID)

	return punch, nil
}

func (s *trainingService) SessionPunches(ctx context.Context, userID, sessionID int64) ([]models.Punch, error) {
	if _, err := s.repository.GetSession(ctx, userID, sessionID); err != nil {
		return nil, mapStoreError(err)
	}

	punches, err := s.repository.ListPunches(ctx, sessionID)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return punches, nil
}

// SessionAnalytics returns the cached analytics of the session or computes
// and caches them.
func (s *trainingService) SessionAnalytics(ctx context.Context, userID, sessionID int64) (models.SessionAnalytics, error) {
	log := logger.FromContext(ctx)

	session, err := s.repository.GetSession(ctx, userID, sessionID)
	if err != nil {
		return models.SessionAnalytics{}, mapStoreError(err)
	}

	cached, err := s.cache.Get(ctx, sessionID)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, store.ErrCacheMiss) {
		log.Warn().Err(err).Int64("session_id", sessionID).Msg("analytics cache read failed")
	}

	punches, err := s.repository.ListPunches(ctx, sessionID)
	if err != nil {
		return models.SessionAnalytics{}, mapStoreError(err)
	}

	analytics := buildAnalytics(session, punches)
	if err = s.cache.Set(ctx, analytics, s.cacheTTL); err != nil {
		log.Warn().Err(err).Int64("session_id", sessionID).Msg("analytics cache write failed")
	}

	return analytics, nil
}

// WeeklyAnalytics compares the last seven days of userID with the seven days
// before and adds a four-week sparkline and a fatigue estimate taken from
// the latest session of this week.
func (s *trainingService) WeeklyAnalytics(ctx context.Context, userID int64) (models.WeeklyAnalytics, error) {
	now := s.now()
	weekStart := now.Add(-week)

	sessions, _, err := s.repository.ListSessions(ctx, userID, 0, 0)
	if err != nil {
		return models.WeeklyAnalytics{}, fmt.Errorf("list sessions: %w", err)
	}
	punches, err := s.repository.ListUserPunches(ctx, userID, now.Add(-sparklineWeeks*week), now)
	if err != nil {
		return models.WeeklyAnalytics{}, fmt.Errorf("list punches: %w", err)
	}

	w := models.WeeklyAnalytics{
		ThisWeek:  weekStats(sessions, punches, weekStart, now),
		LastWeek:  weekStats(sessions, punches, weekStart.Add(-week), weekStart),
		Sparkline: make([]models.SparklinePoint, 0, sparklineWeeks),
	}

	switch {
	case w.LastWeek.TotalPunches > 0:
		delta := float64(w.ThisWeek.TotalPunches-w.LastWeek.TotalPunches) / float64(w.LastWeek.TotalPunches) * 100
		w.DeltaPercent = math.Round(delta*10) / 10
	case w.ThisWeek.TotalPunches > 0:
		w.DeltaPercent = 100
	}

	for i := range sparklineWeeks {
		end := now.Add(-time.Duration(i) * week)
		total, _ := punchTotals(punches, end.Add(-week), end)
		w.Sparkline = append(w.Sparkline, models.SparklinePoint{Date: end.Format(time.DateOnly), TotalPunches: total})
	}

	// sessions are newest first
	for _, session := range sessions {
		if session.StartedAt.Before(weekStart) {
			break
		}
		if session.StartedAt.After(now) {
			continue
		}
		latest, err := s.repository.ListPunches(ctx, session.ID)
		if err != nil {
			return models.WeeklyAnalytics{}, mapStoreError(err)
		}
		w.FatigueProxy = fatigueProxy(latest)
		break
	}

	return w, nil
}

func (s *trainingService) invalidate(ctx context.Context, sessionID int64) {
	if err := s.cache.Invalidate(ctx, sessionID); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Int64("session_id", sessionID).Msg("analytics cache invalidation failed")
	}
}

// buildAnalytics aggregates punches. The average speed is weighted by count
// and rounded to two decimals; the duration is only known once the session
// has ended.
func buildAnalytics(session models.TrainingSession, punches []models.Punch) models.SessionAnalytics {
	a := models.SessionAnalytics{
		SessionID:      session.ID,
		PunchTypes:     make(map[string]int),
		Classification: classifications[session.ID%int64(len(classifications))],
	}

	var weighted float64
	for _, p := range punches {
		a.TotalPunches += p.Count
		a.PunchTypes[p.PunchType] += p.Count
		weighted += p.Speed * float64(p.Count)
	}
	if a.TotalPunches > 0 {
		a.AverageSpeed = math.Round(weighted/float64(a.TotalPunches)*100) / 100
	}

	if session.EndedAt != nil {
		minutes := session.EndedAt.Sub(session.StartedAt).Minutes()
		a.DurationMin = &minutes
	}

	return a
}

const (
	week           = 7 * 24 * time.Hour
	sparklineWeeks = 4
)

// weekStats aggregates the sessions started and the punches logged in
// [from, to).
func weekStats(sessions []models.TrainingSession, punches []models.Punch, from, to time.Time) models.WeekStats {
	var st models.WeekStats
	for _, session := range sessions {
		if !session.StartedAt.Before(from) && session.StartedAt.Before(to) {
			st.SessionsCount++
		}
	}
	st.TotalPunches, st.AvgSpeed = punchTotals(punches, from, to)
	return st
}

// punchTotals sums the punches logged in [from, to) and returns their count
// together with the count-weighted average speed rounded to two decimals.
func punchTotals(punches []models.Punch, from, to time.Time) (int, float64) {
	var (
		total    int
		weighted float64
	)
	for _, p := range punches {
		if p.Timestamp.Before(from) || !p.Timestamp.Before(to) {
			continue
		}
		total += p.Count
		weighted += p.Speed * float64(p.Count)
	}
	if total == 0 {
		return 0, 0
	}
	return total, math.Round(weighted/float64(total)*100) / 100
}

// fatigueProxy is the negated least-squares slope of speed against the
// position of each punch in the session, rounded to three decimals.
func fatigueProxy(punches []models.Punch) *float64 {
	n := len(punches)
	if n < 2 {
		return nil
	}

	var xMean, yMean float64
	for i, p := range punches {
		xMean += float64(i)
		yMean += p.Speed
	}
	xMean /= float64(n)
	yMean /= float64(n)

	var num, den float64
	for i, p := range punches {
		dx := float64(i) - xMean
		num += dx * (p.Speed - yMean)
		den += dx * dx
	}

	// -0 would be reported for a flat session
	fatigue := math.Round(-num/den*1000)/1000 + 0
	return &fatigue
}

func mapStoreError(err error) error {
	if errors.Is(err, store.ErrSessionNotFound) {
		return fmt.Errorf("%w: %w", ErrSessionNotFound, err)
	}
	return err
}
