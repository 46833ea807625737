// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/MKhiriev/go-punch-tracker/internal/logger"
	"github.com/MKhiriev/go-punch-tracker/models"
)

// trainingRepository is the in-memory implementation of
// [TrainingRepository].
type trainingRepository struct {
	db     *memoryDB
	logger *logger.Logger
}

func newTrainingRepository(db *memoryDB, log *logger.Logger) TrainingRepository {
	log.Debug().Msg("creating training repository")
	return &trainingRepository{db: db, logger: log}
}

func (r *trainingRepository) CreateSession(_ context.Context, session models.TrainingSession) (models.TrainingSession, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.nextSessionID++
	session.ID = r.db.nextSessionID
	if session.StartedAt.IsZero() {
		session.StartedAt = r.db.now()
	}
	r.db.sessions[session.ID] = session

	return session, nil
}

func (r *trainingRepository) GetSession(_ context.Context, userID, sessionID int64) (models.TrainingSession, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	return r.ownedSession(userID, sessionID)
}

// ListSessions returns the user's sessions newest first, paged by limit and
// offset, together with the total count. A non-positive limit returns
// everything after offset.
func (r *trainingRepository) ListSessions(_ context.Context, userID int64, limit, offset int) ([]models.TrainingSession, int, error) {
	r.db.mu.RLock()
	owned := make([]models.TrainingSession, 0)
	for _, s := range r.db.sessions {
		if s.UserID == userID {
			owned = append(owned, s)
		}
	}
	r.db.mu.RUnlock()

	slices.SortFunc(owned, func(a, b models.TrainingSession) int {
		if c := b.StartedAt.Compare(a.StartedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})

	total := len(owned)
	offset = min(max(offset, 0), total)
	end := total
	if limit > 0 {
		end = min(offset+limit, total)
	}

	return owned[offset:end], total, nil
}

func (r *trainingRepository) UpdateSession(_ context.Context, userID, sessionID int64, update models.SessionUpdate) (models.TrainingSession, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	session, err := r.ownedSession(userID, sessionID)
	if err != nil {
		return models.TrainingSession{}, err
	}

	if update.Name != nil {
		session.Name = *update.Name
	}
	if update.EndedAt != nil {
		endedAt := *update.EndedAt
		session.EndedAt = &endedAt
	}
	r.db.sessions[sessionID] = session

	return session, nil
}

func (r *trainingRepository) CreatePunch(_ context.Context, punch models.Punch) (models.Punch, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.sessions[punch.SessionID]; !ok {
		return models.Punch{}, ErrSessionNotFound
	}

	r.db.nextPunchID++
	punch.ID = r.db.nextPunchID
	if punch.Timestamp.IsZero() {
		punch.Timestamp = r.db.now()
	}
	r.db.punches[punch.SessionID] = append(r.db.punches[punch.SessionID], punch)

	return punch, nil
}

// ListPunches returns the punches of a session in the order they were logged.
func (r *trainingRepository) ListPunches(_ context.Context, sessionID int64) ([]models.Punch, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	if _, ok := r.db.sessions[sessionID]; !ok {
		return nil, ErrSessionNotFound
	}

	return slices.Clone(r.db.punches[sessionID]), nil
}

func (r *trainingRepository) ListUserPunches(_ context.Context, userID int64, from, to time.Time) ([]models.Punch, error) {
	r.db.mu.RLock()
	punches := make([]models.Punch, 0)
	for id, s := range r.db.sessions {
		if s.UserID != userID {
			continue
		}
		for _, p := range r.db.punches[id] {
			if !p.Timestamp.Before(from) && p.Timestamp.Before(to) {
				punches = append(punches, p)
			}
		}
	}
	r.db.mu.RUnlock()

	slices.SortFunc(punches, func(a, b models.Punch) int {
		if c := a.Timestamp.Compare(b.Timestamp); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	return punches, nil
}

// ownedSession must be called with db.mu held.
func (r *trainingRepository) ownedSession(userID, sessionID int64) (models.TrainingSession, error) {
	session, ok := r.db.sessions[sessionID]
	if !ok || session.UserID != userID {
		return models.TrainingSession{}, ErrSessionNotFound
	}
	return session, nil
}
