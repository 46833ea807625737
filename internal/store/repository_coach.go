package store

import (
	"context"
	"slices"

	"github.com/MKhiriev/go-punch-tracker/internal/logger"
	"github.com/MKhiriev/go-punch-tracker/models"
)

// coachRepository is the in-memory implementation of [CoachRepository].
type coachRepository struct {
	db     *memoryDB
	logger *logger.Logger
}

func newCoachRepository(db *memoryDB, log *logger.Logger) CoachRepository {
	log.Debug().Msg("creating coach repository")
	return &coachRepository{db: db, logger: log}
}

func (r *coachRepository) CreateInvitation(_ context.Context, invitation models.Invitation) (models.Invitation, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if r.linked(invitation.CoachID, invitation.AthleteID) {
		return models.Invitation{}, ErrAlreadyLinked
	}
	if _, ok := r.db.invitations[invitation.Code]; ok {
		return models.Invitation{}, ErrInviteCodeTaken
	}

	invitation.CreatedAt = r.db.now()
	invitation.AcceptedAt = nil
	r.db.invitations[invitation.Code] = invitation

	return invitation, nil
}

func (r *coachRepository) AcceptInvitation(ctx context.Context, code string, athleteID int64) (models.CoachLink, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	invitation, ok := r.db.invitations[code]
	if !ok || invitation.AcceptedAt != nil || invitation.AthleteID != athleteID {
		return models.CoachLink{}, ErrInvitationNotFound
	}

	now := r.db.now()
	invitation.AcceptedAt = &now
	r.db.invitations[code] = invitation

	if r.linked(invitation.CoachID, athleteID) {
		logger.FromContext(ctx).Debug().Str("func", "*coachRepository.AcceptInvitation").Msg("pair already linked, invitation consumed")
		return models.CoachLink{}, ErrAlreadyLinked
	}

	link := models.CoachLink{CoachID: invitation.CoachID, AthleteID: athleteID, CreatedAt: now}
	r.db.coachLinks[link.CoachID] = append(r.db.coachLinks[link.CoachID], link)

	return link, nil
}

func (r *coachRepository) ListLinks(_ context.Context, coachID int64) ([]models.CoachLink, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	links := slices.Clone(r.db.coachLinks[coachID])
	if links == nil {
		links = make([]models.CoachLink, 0)
	}
	return links, nil
}

// linked must be called with db.mu held.
func (r *coachRepository) linked(coachID, athleteID int64) bool {
	return slices.ContainsFunc(r.db.coachLinks[coachID], func(l models.CoachLink) bool {
		return l.AthleteID == athleteID
	})
}
